package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/supplychain-service/internal/credential"
	"github.com/spec-kit/supplychain-service/internal/gateway"
)

type captureSink struct {
	mu      sync.Mutex
	records []ActivityRecord
}

func (s *captureSink) Record(rec ActivityRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
}

func (s *captureSink) all() []ActivityRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ActivityRecord(nil), s.records...)
}

func TestLogActivityAttributesActor(t *testing.T) {
	stub := &apiStub{
		token: "ABC",
		users: map[string]string{
			"Bearer ABC": `{"id":7,"full_name":"Jane","email":"jane@corp.test","role":"user","is_active":true}`,
		},
	}
	srv := httptest.NewServer(stub.handler())
	t.Cleanup(srv.Close)

	creds := credential.NewMemoryStore()
	client := gateway.NewClient(srv.URL, 5*time.Second, creds, zap.NewNop())
	sink := &captureSink{}
	store := NewStore(client, creds, sink, zap.NewNop())

	store.LogActivity("viewed_dashboard", "")
	require.NoError(t, store.Login(context.Background(), "jane@corp.test", "pw"))
	store.LogActivity("placed_order", "order 42")

	records := sink.all()
	require.Len(t, records, 2)
	assert.Zero(t, records[0].ActorID, "anonymous activity is attributed to actor 0")
	assert.Equal(t, int64(7), records[1].ActorID)
	assert.Equal(t, "placed_order", records[1].Action)
	assert.False(t, records[1].Timestamp.IsZero())
}

func TestLogActivityWithoutSinkIsNoop(t *testing.T) {
	creds := credential.NewMemoryStore()
	client := gateway.NewClient("http://127.0.0.1:1", time.Second, creds, zap.NewNop())
	store := NewStore(client, creds, nil, zap.NewNop())

	// must not panic or block
	store.LogActivity("anything", "")
}

func TestRemoteSinkShipsRecords(t *testing.T) {
	received := make(chan map[string]any, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		received <- payload
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	client := gateway.NewClient(srv.URL, 5*time.Second, credential.NewMemoryStore(), zap.NewNop())
	sink := NewRemoteSink(gateway.NewActivity(client), zap.NewNop(), 4)

	sink.Record(ActivityRecord{ActorID: 7, Action: "exported_csv", Details: "inventory"})
	sink.Close()

	select {
	case payload := <-received:
		assert.Equal(t, "exported_csv", payload["action"])
		assert.Equal(t, "inventory", payload["details"])
	case <-time.After(2 * time.Second):
		t.Fatal("record never reached the server")
	}
}

func TestRemoteSinkDropsWhenFull(t *testing.T) {
	blocked := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	client := gateway.NewClient(srv.URL, 5*time.Second, credential.NewMemoryStore(), zap.NewNop())
	sink := NewRemoteSink(gateway.NewActivity(client), zap.NewNop(), 1)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 50; i++ {
			sink.Record(ActivityRecord{Action: "burst"})
		}
		close(done)
	}()

	select {
	case <-done:
		// full queue drops rather than blocks
	case <-time.After(2 * time.Second):
		t.Fatal("Record blocked on a full queue")
	}
	close(blocked)
	sink.Close()
}
