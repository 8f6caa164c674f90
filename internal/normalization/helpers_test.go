package normalization

import (
	"strconv"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/yungbote/mh1-bff/internal/platform/clock"
)

const testBase = "https://cms.example.com"

func newTestNormalizer(t *testing.T) *Normalizer {
	t.Helper()
	n := New(NewMediaResolver(testBase), clock.Fixed("2024-05-01"))
	seq := 0
	n.newID = func() string {
		seq++
		return "id-" + strconv.Itoa(seq)
	}
	return n
}

func parse(t *testing.T, raw string) gjson.Result {
	t.Helper()
	if !gjson.Valid(raw) {
		t.Fatalf("invalid test JSON: %s", raw)
	}
	return gjson.Parse(raw)
}
