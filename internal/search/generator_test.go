package search

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFallbackSQL(t *testing.T) {
	cases := []struct {
		query string
		want  string
	}{
		{"show me low stock items", "SELECT * FROM inventory WHERE quantity < 10 ORDER BY quantity ASC;"},
		{"most expensive products", "SELECT * FROM inventory ORDER BY unit_price DESC LIMIT 10;"},
		{"cheapest inventory", "SELECT * FROM inventory ORDER BY unit_price ASC LIMIT 10;"},
		{"list all products", "SELECT * FROM inventory LIMIT 20;"},
		{"which suppliers are active", "SELECT * FROM suppliers WHERE is_active = TRUE;"},
		{"all vendors", "SELECT * FROM suppliers LIMIT 20;"},
		{"pending orders", "SELECT * FROM orders WHERE status = 'pending';"},
		{"completed purchases", "SELECT * FROM orders WHERE status = 'completed';"},
		{"canceled orders", "SELECT * FROM orders WHERE status = 'cancelled';"},
		{"recent orders", "SELECT * FROM orders LIMIT 20;"},
		{"list user accounts", "SELECT id, email, full_name, is_active FROM users LIMIT 20;"},
		{"what is the meaning of life", "SELECT * FROM inventory LIMIT 10;"},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.want, fallbackSQL(tc.query), "query=%q", tc.query)
	}
}

func TestSanitizeSQL(t *testing.T) {
	sql, ok := sanitizeSQL("Here is the query:\nSELECT * FROM inventory LIMIT 5")
	require.True(t, ok)
	assert.Equal(t, "SELECT * FROM inventory LIMIT 5;", sql)

	_, ok = sanitizeSQL("DROP TABLE inventory;")
	assert.False(t, ok)

	_, ok = sanitizeSQL("SELECT;")
	assert.False(t, ok)
}

type stubSource struct {
	sql string
	err error
}

func (s stubSource) GenerateSQL(context.Context, string) (string, error) {
	return s.sql, s.err
}

func TestGeneratorPrefersCompletion(t *testing.T) {
	g := NewGenerator(stubSource{sql: "SELECT name FROM suppliers;"}, zap.NewNop())
	assert.Equal(t, "SELECT name FROM suppliers;", g.Generate(context.Background(), "supplier names"))
}

func TestGeneratorFallsBackOnError(t *testing.T) {
	g := NewGenerator(stubSource{err: errors.New("boom")}, zap.NewNop())
	assert.Equal(t, "SELECT * FROM orders WHERE status = 'pending';", g.Generate(context.Background(), "pending orders"))
}

func TestGeneratorFallsBackOnNonSelect(t *testing.T) {
	g := NewGenerator(stubSource{sql: "DELETE FROM orders;"}, zap.NewNop())
	assert.True(t, strings.HasPrefix(g.Generate(context.Background(), "orders"), "SELECT"))
}

func TestCompletionClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer key-1" {
			t.Fatalf("unexpected auth header: %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices":[{"message":{"role":"assistant","content":"SELECT * FROM inventory;"}}]}`)
	}))
	defer server.Close()

	client := NewCompletionClient(server.URL, "key-1", "gpt", time.Second)
	sql, err := client.GenerateSQL(context.Background(), "everything in stock")
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM inventory;", sql)
}

func TestCompletionClientErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewCompletionClient(server.URL, "", "gpt", time.Second)
	_, err := client.GenerateSQL(context.Background(), "anything")
	assert.Error(t, err)
}
