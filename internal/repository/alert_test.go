package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shenikar/sos_alert_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertRepository_ListByStatuses_OnlyVisible(t *testing.T) {
	mock := newMockDB(t)
	repo := NewAlertRepository(mock)

	mock.ExpectQuery(sqlFragments("FROM alerts a", "WHERE a.status = ANY($1) AND a.visible = TRUE", "ORDER BY a.created_at DESC")).
		WithArgs([]string{"pending", "assigned", "en-route"}).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	alerts, err := repo.ListByStatuses(context.Background(), models.OpenStatuses)

	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestAlertRepository_ListByCreator_OnlyVisible(t *testing.T) {
	mock := newMockDB(t)
	repo := NewAlertRepository(mock)
	creatorID := uuid.New()

	mock.ExpectQuery(sqlFragments("WHERE a.creator_id = $1 AND a.visible = TRUE")).
		WithArgs(creatorID).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	alerts, err := repo.ListByCreator(context.Background(), creatorID)

	require.NoError(t, err)
	assert.NotNil(t, alerts)
}

func TestAlertRepository_HideByCreator(t *testing.T) {
	mock := newMockDB(t)
	repo := NewAlertRepository(mock)
	creatorID := uuid.New()

	mock.ExpectExec(sqlFragments("UPDATE alerts SET visible = FALSE", "WHERE creator_id = $1")).
		WithArgs(creatorID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))

	hidden, err := repo.HideByCreator(context.Background(), creatorID)

	require.NoError(t, err)
	assert.Equal(t, int64(3), hidden)
}

func TestAlertRepository_HideByCreator_Error(t *testing.T) {
	mock := newMockDB(t)
	repo := NewAlertRepository(mock)

	mock.ExpectExec(sqlFragments("UPDATE alerts SET visible = FALSE")).
		WithArgs(pgxmock.AnyArg()).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.HideByCreator(context.Background(), uuid.New())

	assert.ErrorContains(t, err, "failed to hide alerts")
}
