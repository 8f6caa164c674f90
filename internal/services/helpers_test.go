package services

import (
	"context"
	"sync"

	"github.com/tidwall/gjson"

	"github.com/yungbote/mh1-bff/internal/clients/graphql"
	"github.com/yungbote/mh1-bff/internal/normalization"
	"github.com/yungbote/mh1-bff/internal/platform/clock"
)

const testToday = "2024-05-01"

type cmsCall struct {
	op   string
	vars map[string]any
}

// fakeCMS answers queries from canned documents keyed by operation name.
type fakeCMS struct {
	mu    sync.Mutex
	docs  map[string]string
	err   error
	calls []cmsCall
}

func (f *fakeCMS) Query(_ context.Context, op graphql.Operation, vars map[string]any) (gjson.Result, error) {
	f.mu.Lock()
	f.calls = append(f.calls, cmsCall{op: op.Name, vars: vars})
	f.mu.Unlock()
	if f.err != nil {
		return gjson.Result{}, f.err
	}
	return gjson.Parse(f.docs[op.Name]), nil
}

func (f *fakeCMS) lastCall() cmsCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return cmsCall{}
	}
	return f.calls[len(f.calls)-1]
}

func newTestNormalizer() *normalization.Normalizer {
	return normalization.New(normalization.NewMediaResolver("https://cms.test"), clock.Fixed(testToday))
}
