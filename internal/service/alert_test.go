package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/sos_alert_system/internal/config"
	"github.com/shenikar/sos_alert_system/internal/mailer"
	mailer_mocks "github.com/shenikar/sos_alert_system/internal/mailer/mocks"
	"github.com/shenikar/sos_alert_system/internal/models"
	"github.com/shenikar/sos_alert_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type alertMocks struct {
	alerts        *mocks.MockAlertRepository
	notifications *mocks.MockNotificationRepository
	contacts      *mocks.MockContactRepository
	users         *mocks.MockUserRepository
	dispatcher    *mailer_mocks.MockDispatcher
}

func testConfig() *config.Config {
	return &config.Config{
		DetailMinChars:          5,
		DetailMaxChars:          300,
		DetailMinWords:          3,
		DetailMaxWords:          100,
		ResolutionNotesMinChars: 10,
		MailTimezone:            "UTC",
		ResetCodeTTL:            15 * time.Minute,
	}
}

// newTestAlertService создает сервис тревог с моками всех зависимостей
func newTestAlertService(t *testing.T) (*alertService, alertMocks) {
	ctrl := gomock.NewController(t)
	m := alertMocks{
		alerts:        mocks.NewMockAlertRepository(ctrl),
		notifications: mocks.NewMockNotificationRepository(ctrl),
		contacts:      mocks.NewMockContactRepository(ctrl),
		users:         mocks.NewMockUserRepository(ctrl),
		dispatcher:    mailer_mocks.NewMockDispatcher(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	svc := NewAlertService(m.alerts, m.notifications, m.contacts, m.users, m.dispatcher, logger, testConfig())
	return svc.(*alertService), m
}

func validAlert() *models.Alert {
	return &models.Alert{
		Address:   "Calle 10 #20-30",
		CreatorID: uuid.New(),
		Detail:    "Robo en curso cerca del parque",
		Location:  models.Coordinates{Lat: 4.6097, Lng: -74.0817},
	}
}

func TestCreateAlert_Success(t *testing.T) {
	service, m := newTestAlertService(t)
	ctx := context.Background()
	alert := validAlert()
	alertID := uuid.New()
	contacts := []*models.Contact{
		{ID: uuid.New(), FirstName: "Ana", Email: "ana@example.com"},
		{ID: uuid.New(), FirstName: "Luis", Email: "luis@example.com"},
	}

	m.alerts.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.Alert) error {
			assert.Equal(t, models.StatusPending, a.Status)
			assert.True(t, a.Visible)
			a.ID = alertID
			return nil
		}).Times(1)

	m.notifications.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, n *models.Notification) error {
			assert.Equal(t, alertID, n.AlertID)
			assert.Equal(t, models.NotificationCreated, n.Type)
			n.ID = uuid.New()
			return nil
		}).Times(1)

	m.contacts.EXPECT().ListNotifiable(ctx, alert.CreatorID).Return(contacts, nil).Times(1)

	m.dispatcher.EXPECT().
		Dispatch(ctx, gomock.Len(2)).
		DoAndReturn(func(_ context.Context, msgs []mailer.Message) []mailer.Outcome {
			assert.Equal(t, "ana@example.com", msgs[0].To)
			assert.Equal(t, "luis@example.com", msgs[1].To)
			// одна доставка падает, на результат это не влияет
			return []mailer.Outcome{
				{Message: msgs[0]},
				{Message: msgs[1], Err: errors.New("smtp timeout")},
			}
		}).Times(1)

	notification, err := service.CreateAlert(ctx, alert)

	require.NoError(t, err)
	require.NotNil(t, notification)
	assert.Equal(t, models.NotificationCreated, notification.Type)
	assert.Equal(t, alertID, alert.ID)
	assert.Equal(t, models.StatusPending, alert.Status)
	assert.True(t, alert.Visible)
	assert.False(t, alert.Timestamp.IsZero())
	assert.NotNil(t, alert.Evidence)
}

func TestCreateAlert_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(a *models.Alert)
		field  string
	}{
		{"missing address", func(a *models.Alert) { a.Address = "   " }, "address"},
		{"missing creator", func(a *models.Alert) { a.CreatorID = uuid.Nil }, "creator_id"},
		{"latitude out of range", func(a *models.Alert) { a.Location.Lat = 91 }, "location"},
		{"longitude out of range", func(a *models.Alert) { a.Location.Lng = -181 }, "location"},
		{"empty detail", func(a *models.Alert) { a.Detail = "  " }, "detail"},
		{"detail too short", func(a *models.Alert) { a.Detail = "ay" }, "detail"},
		{"too few words", func(a *models.Alert) { a.Detail = "ayuda urgente" }, "detail"},
		{"detail too long", func(a *models.Alert) { a.Detail = strings.Repeat("ayuda ", 51) }, "detail"},
		{"too many words", func(a *models.Alert) { a.Detail = strings.TrimSpace(strings.Repeat("a ", 101)) }, "detail"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Репозиторий не должен вызываться: у моков нет ожиданий
			service, _ := newTestAlertService(t)
			alert := validAlert()
			tt.modify(alert)

			notification, err := service.CreateAlert(context.Background(), alert)

			require.Error(t, err)
			assert.Nil(t, notification)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestCreateAlert_RepositoryError(t *testing.T) {
	service, m := newTestAlertService(t)
	ctx := context.Background()

	m.alerts.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("db down")).Times(1)

	notification, err := service.CreateAlert(ctx, validAlert())

	require.Error(t, err)
	assert.Nil(t, notification)
	assert.False(t, isValidation(err))
}

func TestCreateAlert_NotificationFailureStillNotifiesContacts(t *testing.T) {
	service, m := newTestAlertService(t)
	ctx := context.Background()
	alert := validAlert()

	m.alerts.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)
	m.notifications.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("insert failed")).Times(1)
	m.contacts.EXPECT().ListNotifiable(ctx, alert.CreatorID).
		Return([]*models.Contact{{FirstName: "Ana", Email: "ana@example.com"}}, nil).Times(1)
	m.dispatcher.EXPECT().Dispatch(ctx, gomock.Len(1)).Return([]mailer.Outcome{{}}).Times(1)

	notification, err := service.CreateAlert(ctx, alert)

	require.NoError(t, err)
	assert.Nil(t, notification)
}

func TestCreateAlert_NoContacts(t *testing.T) {
	service, m := newTestAlertService(t)
	ctx := context.Background()
	alert := validAlert()

	m.alerts.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)
	m.notifications.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)
	m.contacts.EXPECT().ListNotifiable(ctx, alert.CreatorID).Return([]*models.Contact{}, nil).Times(1)
	m.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.CreateAlert(ctx, alert)
	require.NoError(t, err)
}

func TestUpdateStatus_ResolveRequiresNotes(t *testing.T) {
	for _, notes := range []string{"", "corto", "   nueve    "} {
		t.Run(notes, func(t *testing.T) {
			service, m := newTestAlertService(t)
			m.alerts.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)
			m.alerts.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

			_, err := service.UpdateStatus(context.Background(), uuid.New(), models.StatusUpdate{
				Status:          "resolved",
				ResolutionNotes: notes,
			})

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, "resolution_notes", vErr.Field)
		})
	}
}

func TestUpdateStatus_Resolve(t *testing.T) {
	service, m := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()
	existing := &models.Alert{
		ID:       alertID,
		Address:  "Calle 10",
		Status:   models.StatusEnRoute,
		Visible:  true,
		Evidence: []string{"https://cdn.example.com/a.jpg"},
	}

	m.alerts.EXPECT().GetByID(ctx, alertID).Return(existing, nil).Times(1)
	m.alerts.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.Alert) error {
			assert.Equal(t, models.StatusResolved, a.Status)
			return nil
		}).Times(1)
	m.notifications.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, n *models.Notification) error {
			assert.Equal(t, models.NotificationResolved, n.Type)
			assert.Equal(t, alertID, n.AlertID)
			return nil
		}).Times(1)

	alert, err := service.UpdateStatus(ctx, alertID, models.StatusUpdate{
		Status:          "resolved",
		ResolutionNotes: "  Sospechoso detenido en el lugar  ",
		EvidenceURL:     "https://cdn.example.com/b.jpg",
	})

	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, alert.Status)
	assert.Equal(t, "Sospechoso detenido en el lugar", alert.ResolutionNotes)
	assert.Equal(t, []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"}, alert.Evidence)
}

func TestUpdateStatus_AssignHandlerAndRoute(t *testing.T) {
	service, m := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()
	policeID := uuid.New()
	existing := &models.Alert{ID: alertID, Status: models.StatusPending, Visible: true, Evidence: []string{}}
	origin := &models.Coordinates{Lat: 4.60, Lng: -74.08}
	destination := &models.Coordinates{Lat: 4.61, Lng: -74.07}

	m.alerts.EXPECT().GetByID(ctx, alertID).Return(existing, nil).Times(1)
	m.users.EXPECT().GetByID(ctx, policeID).Return(&models.User{ID: policeID, Role: models.RolePolice}, nil).Times(1)
	m.alerts.EXPECT().Update(ctx, existing).Return(nil).Times(1)
	// Для промежуточных статусов уведомление не создается
	m.notifications.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	alert, err := service.UpdateStatus(ctx, alertID, models.StatusUpdate{
		Status:      "en-route",
		HandlerID:   &policeID,
		Origin:      origin,
		Destination: destination,
	})

	require.NoError(t, err)
	assert.Equal(t, models.StatusEnRoute, alert.Status)
	require.NotNil(t, alert.HandlerID)
	assert.Equal(t, policeID, *alert.HandlerID)
	require.NotNil(t, alert.Route)
	assert.Equal(t, *origin, alert.Route.Origin)
	assert.Equal(t, *destination, alert.Route.Destination)
}

func TestUpdateStatus_RouteNeedsBothPoints(t *testing.T) {
	service, m := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()
	existing := &models.Alert{ID: alertID, Status: models.StatusPending}

	m.alerts.EXPECT().GetByID(ctx, alertID).Return(existing, nil).Times(1)
	m.alerts.EXPECT().Update(ctx, existing).Return(nil).Times(1)

	alert, err := service.UpdateStatus(ctx, alertID, models.StatusUpdate{
		Status: "assigned",
		Origin: &models.Coordinates{Lat: 1, Lng: 1},
	})

	require.NoError(t, err)
	assert.Nil(t, alert.Route)
}

func TestUpdateStatus_HandlerMustBePolice(t *testing.T) {
	service, m := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()
	citizenID := uuid.New()

	m.alerts.EXPECT().GetByID(ctx, alertID).Return(&models.Alert{ID: alertID, Status: models.StatusPending}, nil).Times(1)
	m.users.EXPECT().GetByID(ctx, citizenID).Return(&models.User{ID: citizenID, Role: models.RoleCitizen}, nil).Times(1)
	m.alerts.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.UpdateStatus(ctx, alertID, models.StatusUpdate{Status: "assigned", HandlerID: &citizenID})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "handler_id", vErr.Field)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	service, m := newTestAlertService(t)
	m.alerts.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.UpdateStatus(context.Background(), uuid.New(), models.StatusUpdate{Status: "archived"})

	assert.True(t, isValidation(err))
}

func TestUpdateStatus_RejectsIllegalTransition(t *testing.T) {
	service, m := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()
	existing := &models.Alert{ID: alertID, Status: models.StatusResolved, ResolutionNotes: "Caso cerrado sin novedad"}

	m.alerts.EXPECT().GetByID(ctx, alertID).Return(existing, nil).Times(1)
	m.alerts.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.UpdateStatus(ctx, alertID, models.StatusUpdate{Status: "pending"})

	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.EqualError(t, err, "invalid status transition: alert is already resolved")
	assert.Equal(t, models.StatusResolved, existing.Status)
}

func TestCheckTransition(t *testing.T) {
	assert.NoError(t, checkTransition(models.StatusPending, models.StatusEnRoute))
	assert.EqualError(t, checkTransition(models.StatusEnRoute, models.StatusAssigned),
		"invalid status transition: en-route -> assigned")
	assert.EqualError(t, checkTransition(models.StatusCancelled, models.StatusCancelled),
		"invalid status transition: alert is already cancelled")
}

func TestUpdateStatus_NotFound(t *testing.T) {
	service, m := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()

	m.alerts.EXPECT().GetByID(ctx, alertID).Return(nil, ErrNotFound).Times(1)

	_, err := service.UpdateStatus(ctx, alertID, models.StatusUpdate{Status: "assigned"})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStatus_CancelledRoutesToCancel(t *testing.T) {
	service, m := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()

	m.alerts.EXPECT().GetByID(ctx, alertID).Return(&models.Alert{ID: alertID, Status: models.StatusAssigned, Visible: true}, nil).Times(1)
	m.alerts.EXPECT().Update(ctx, gomock.Any()).Return(nil).Times(1)
	m.notifications.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)

	alert, err := service.UpdateStatus(ctx, alertID, models.StatusUpdate{Status: "cancelled"})

	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, alert.Status)
	assert.False(t, alert.Visible)
}

func TestCancelAlert(t *testing.T) {
	service, m := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()
	existing := &models.Alert{ID: alertID, Address: "Calle 10", Status: models.StatusPending, Visible: true}

	m.alerts.EXPECT().GetByID(ctx, alertID).Return(existing, nil).Times(1)
	m.alerts.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.Alert) error {
			assert.Equal(t, models.StatusCancelled, a.Status)
			assert.False(t, a.Visible)
			return nil
		}).Times(1)
	m.notifications.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, n *models.Notification) error {
			assert.Equal(t, models.NotificationCancelled, n.Type)
			return nil
		}).Times(1)

	alert, err := service.CancelAlert(ctx, alertID)

	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, alert.Status)
	assert.False(t, alert.Visible)
}

func TestCancelAlert_AlreadyResolved(t *testing.T) {
	service, m := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()

	m.alerts.EXPECT().GetByID(ctx, alertID).Return(&models.Alert{ID: alertID, Status: models.StatusResolved}, nil).Times(1)
	m.alerts.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)
	m.notifications.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.CancelAlert(ctx, alertID)

	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.EqualError(t, err, "invalid status transition: alert is already resolved")
}

func TestListPending_UsesOpenStatuses(t *testing.T) {
	service, m := newTestAlertService(t)
	ctx := context.Background()
	expected := []*models.Alert{{ID: uuid.New(), Status: models.StatusPending}}

	m.alerts.EXPECT().
		ListByStatuses(ctx, []models.AlertStatus{models.StatusPending, models.StatusAssigned, models.StatusEnRoute}).
		Return(expected, nil).Times(1)

	alerts, err := service.ListPending(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, alerts)
}

func TestListResolvedByHandler_Error(t *testing.T) {
	service, m := newTestAlertService(t)
	ctx := context.Background()
	policeID := uuid.New()

	m.alerts.EXPECT().ListResolvedByHandler(ctx, policeID).Return(nil, errors.New("db down")).Times(1)

	alerts, err := service.ListResolvedByHandler(ctx, policeID)

	require.Error(t, err)
	assert.Nil(t, alerts)
}
