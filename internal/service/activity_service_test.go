package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/supplychain-service/internal/domain"
	"github.com/spec-kit/supplychain-service/internal/events"
)

type fakeActivityRepo struct {
	logs      []domain.ActivityLog
	createErr error
}

func (r *fakeActivityRepo) Create(_ context.Context, log *domain.ActivityLog) error {
	if r.createErr != nil {
		return r.createErr
	}
	log.ID = int64(len(r.logs) + 1)
	r.logs = append(r.logs, *log)
	return nil
}

func (r *fakeActivityRepo) List(_ context.Context, offset, limit int) ([]domain.ActivityLog, error) {
	return r.logs, nil
}

func TestActivityRecorderPersistsEvents(t *testing.T) {
	repo := &fakeActivityRepo{}
	dispatcher := events.NewInMemoryDispatcher()
	svc := NewActivityService(repo, dispatcher, zap.NewNop())
	svc.RegisterHandlers()

	publish(context.Background(), dispatcher, events.Event{
		Type:       events.EventEntityCreated,
		ActorID:    7,
		EntityType: domain.ActivityEntityOrder,
		EntityID:   42,
		Payload:    events.EntityMutationPayload{Summary: "order placed"},
	})

	require.Len(t, repo.logs, 1)
	entry := repo.logs[0]
	assert.Equal(t, int64(7), entry.UserID)
	assert.Equal(t, "entity_created", entry.Action)
	assert.Equal(t, domain.ActivityEntityOrder, entry.EntityType)
	assert.Equal(t, int64(42), entry.EntityID)
	assert.JSONEq(t, `{"summary":"order placed"}`, entry.Details)
}

func TestActivityRecorderSwallowsPersistenceFailures(t *testing.T) {
	repo := &fakeActivityRepo{createErr: errors.New("db down")}
	dispatcher := events.NewInMemoryDispatcher()
	svc := NewActivityService(repo, dispatcher, zap.NewNop())
	svc.RegisterHandlers()

	// publishing must not panic or surface the repo error
	publish(context.Background(), dispatcher, events.Event{
		Type:    events.EventUserLoggedIn,
		ActorID: 3,
	})
	assert.Empty(t, repo.logs)
}

func TestActivityRecordDirectSubmission(t *testing.T) {
	repo := &fakeActivityRepo{}
	svc := NewActivityService(repo, nil, zap.NewNop())

	log := &domain.ActivityLog{UserID: 5, Action: "exported_csv", Details: "inventory"}
	require.NoError(t, svc.Record(context.Background(), log))
	assert.NotZero(t, log.ID)
}
