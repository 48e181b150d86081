package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAlertStatus(t *testing.T) {
	for _, label := range []string{"pending", "assigned", "en-route", "resolved", "cancelled"} {
		status, ok := ParseAlertStatus(label)
		assert.True(t, ok, label)
		assert.Equal(t, AlertStatus(label), status)
	}

	_, ok := ParseAlertStatus("pendiente")
	assert.False(t, ok)
	_, ok = ParseAlertStatus("")
	assert.False(t, ok)
}

func TestAlertStatus_Transitions(t *testing.T) {
	tests := []struct {
		from    AlertStatus
		to      AlertStatus
		allowed bool
	}{
		{StatusPending, StatusAssigned, true},
		{StatusPending, StatusEnRoute, true},
		{StatusPending, StatusCancelled, true},
		{StatusAssigned, StatusEnRoute, true},
		{StatusAssigned, StatusAssigned, true},
		{StatusEnRoute, StatusResolved, true},
		{StatusEnRoute, StatusAssigned, false},
		{StatusAssigned, StatusPending, false},
		{StatusResolved, StatusPending, false},
		{StatusResolved, StatusResolved, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestAlertStatus_IsTerminal(t *testing.T) {
	assert.True(t, StatusResolved.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusEnRoute.IsTerminal())
}

func TestRole(t *testing.T) {
	assert.True(t, RolePolice.CanHandleAlerts())
	assert.True(t, RoleAdmin.CanHandleAlerts())
	assert.False(t, RoleCitizen.CanHandleAlerts())
	assert.False(t, Role("superuser").Valid())
}
