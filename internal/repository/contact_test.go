package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shenikar/sos_alert_system/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactRepository_ListNotifiable_Filter(t *testing.T) {
	mock := newMockDB(t)
	repo := NewContactRepository(mock)
	ownerID := uuid.New()

	mock.ExpectQuery(sqlFragments("WHERE owner_id = $1 AND notifications_enabled = TRUE AND email <> ''")).
		WithArgs(ownerID).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	contacts, err := repo.ListNotifiable(context.Background(), ownerID)

	require.NoError(t, err)
	assert.Empty(t, contacts)
}

func TestContactRepository_SetNotifications_NotFound(t *testing.T) {
	mock := newMockDB(t)
	repo := NewContactRepository(mock)
	id := uuid.New()

	mock.ExpectExec(sqlFragments("UPDATE contacts SET notifications_enabled = $1, updated_at = NOW()")).
		WithArgs(false, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.SetNotifications(context.Background(), id, false)

	assert.ErrorIs(t, err, service.ErrNotFound)
}
