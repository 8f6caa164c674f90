package testutil

import (
	"context"
	"sync"

	"github.com/yungbote/mh1-bff/internal/data/aggregates"
	"github.com/yungbote/mh1-bff/internal/platform/dbctx"
)

// InjectedTxRunner runs fn without a database and can fail at begin or commit.
// Tx on the passed dbctx is nil, so repos fall back to their own handle.
type InjectedTxRunner struct {
	mu sync.Mutex

	FailBegin  error
	FailCommit error

	Commits   int
	Rollbacks int
}

var _ aggregates.TxRunner = (*InjectedTxRunner)(nil)

func (r *InjectedTxRunner) InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	if r.FailBegin != nil {
		return r.FailBegin
	}
	err := error(nil)
	if fn != nil {
		err = fn(dbctx.Context{Ctx: ctx})
	}
	if err == nil {
		err = r.FailCommit
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		r.Rollbacks++
		return err
	}
	r.Commits++
	return nil
}
