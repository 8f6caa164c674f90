package graphql

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/yungbote/mh1-bff/internal/observability"
	"github.com/yungbote/mh1-bff/internal/platform/logger"
)

var testOp = Operation{Name: "NewsCards", Query: "query NewsCards { newsCards { data { id } } }"}

func newTestClient(t *testing.T, h http.HandlerFunc) Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := NewClient(logger.Nop(), Config{Endpoint: srv.URL, Token: "cms-token"}, WithMetrics(observability.NewMetrics()))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func TestQuerySendsRequestAndReturnsData(t *testing.T) {
	var got request
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method: want=POST got=%s", r.Method)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer cms-token" {
			t.Errorf("authorization: got=%q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"newsCards":{"data":[{"id":"1","attributes":{"title":"A <u>big</u> day"}}]}}}`))
	})

	data, err := c.Query(context.Background(), testOp, map[string]any{"weekNumber": 12})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if got.OperationName != "NewsCards" || got.Query != testOp.Query {
		t.Fatalf("request: got=%+v", got)
	}
	if wk, ok := got.Variables["weekNumber"].(float64); !ok || wk != 12 {
		t.Fatalf("variables: got=%+v", got.Variables)
	}
	if title := data.Get("newsCards.data.0.attributes.title").String(); title != "A ++big++ day" {
		t.Fatalf("title: want underline markup rewritten got=%q", title)
	}
}

func TestQueryNilVariablesSendsEmptyObject(t *testing.T) {
	var raw map[string]json.RawMessage
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&raw)
		_, _ = w.Write([]byte(`{"data":{}}`))
	})
	if _, err := c.Query(context.Background(), testOp, nil); err != nil {
		t.Fatalf("Query: %v", err)
	}
	if string(raw["variables"]) != "{}" {
		t.Fatalf("variables: want {} got=%s", raw["variables"])
	}
}

func TestQueryFailures(t *testing.T) {
	cases := []struct {
		name       string
		status     int
		body       string
		wantStatus int
		wantMsg    string
	}{
		{"http error", http.StatusBadGateway, `upstream down`, http.StatusBadGateway, "cms http 502"},
		{"graphql errors", http.StatusOK, `{"errors":[{"message":"Cannot query field"}],"data":null}`, http.StatusOK, "Cannot query field"},
		{"missing data", http.StatusOK, `{"data":null}`, http.StatusOK, "no data"},
		{"invalid json", http.StatusOK, `<html>`, http.StatusOK, "invalid JSON"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})
			_, err := c.Query(context.Background(), testOp, nil)
			var gqlErr *Error
			if !errors.As(err, &gqlErr) {
				t.Fatalf("want *Error got=%T (%v)", err, err)
			}
			if gqlErr.HTTPStatusCode() != tc.wantStatus {
				t.Fatalf("status: want=%d got=%d", tc.wantStatus, gqlErr.HTTPStatusCode())
			}
			if !strings.HasPrefix(err.Error(), "graphql query failed: NewsCards") || !strings.Contains(err.Error(), tc.wantMsg) {
				t.Fatalf("message: got=%q", err.Error())
			}
		})
	}
}

func TestQueryTransportErrorIsWrapped(t *testing.T) {
	c, err := NewClient(logger.Nop(), Config{Endpoint: "http://127.0.0.1:1/graphql"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	_, err = c.Query(context.Background(), testOp, nil)
	var gqlErr *Error
	if !errors.As(err, &gqlErr) || gqlErr.Unwrap() == nil || gqlErr.StatusCode != 0 {
		t.Fatalf("want wrapped transport error got=%v", err)
	}
}

func TestNewClientRequiresEndpoint(t *testing.T) {
	if _, err := NewClient(logger.Nop(), Config{}); err == nil {
		t.Fatalf("NewClient: expected error for empty endpoint")
	}
	if _, err := NewClient(nil, Config{Endpoint: "http://x"}); err == nil {
		t.Fatalf("NewClient: expected error for nil logger")
	}
}
