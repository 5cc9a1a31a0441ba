package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk-backend/models"
	"frontdesk-backend/storage"
)

func TestUIStateSearchKeepsDigitsOnly(t *testing.T) {
	ctx := context.Background()
	ui := NewUIStateService(storage.NewMemoryStore(), models.DefaultUIState())

	require.NoError(t, ui.SetSearch(ctx, "room 1a2-b3"))
	assert.Equal(t, "123", ui.Snapshot().Search)

	require.NoError(t, ui.SetSearch(ctx, "no digits here"))
	assert.Equal(t, "", ui.Snapshot().Search)
}

func TestUIStateFilterChangesResetPage(t *testing.T) {
	ctx := context.Background()
	ui := NewUIStateService(storage.NewMemoryStore(), models.DefaultUIState())

	require.NoError(t, ui.SetPage(ctx, 3))
	require.NoError(t, ui.SetFilter(ctx, models.FilterBooked))
	assert.Equal(t, 1, ui.Snapshot().Page)

	require.NoError(t, ui.SetPage(ctx, 2))
	require.NoError(t, ui.SetCategory(ctx, "Deluxe"))
	assert.Equal(t, 1, ui.Snapshot().Page)

	require.NoError(t, ui.SetPage(ctx, 2))
	require.NoError(t, ui.SetSearch(ctx, "1"))
	assert.Equal(t, 1, ui.Snapshot().Page)
}

func TestUIStateValidation(t *testing.T) {
	ctx := context.Background()
	ui := NewUIStateService(storage.NewMemoryStore(), models.DefaultUIState())

	assert.ErrorIs(t, ui.SetFilter(ctx, "Occupied"), ErrValidation)
	assert.ErrorIs(t, ui.SetCategory(ctx, "  "), ErrValidation)
	assert.ErrorIs(t, ui.SetPage(ctx, 0), ErrValidation)
	assert.ErrorIs(t, ui.SetPageSize(ctx, 0), ErrValidation)

	// failed setters leave the state untouched
	assert.Equal(t, models.DefaultUIState(), ui.Snapshot())
}

func TestUIStatePersistsEveryChange(t *testing.T) {
	ctx := context.Background()
	gw := storage.NewMemoryStore()
	ui := NewUIStateService(gw, models.DefaultUIState())

	require.NoError(t, ui.SetDark(ctx, true))

	blob, found, err := gw.Get(ctx, storage.KeyUI)
	require.NoError(t, err)
	require.True(t, found)

	var stored models.UIState
	require.NoError(t, json.Unmarshal(blob, &stored))
	assert.True(t, stored.Dark)
}

func TestUIStateRollsBackOnPersistFailure(t *testing.T) {
	ctx := context.Background()
	gw := newFailingGateway()
	ui := NewUIStateService(gw, models.DefaultUIState())

	gw.fail = true
	err := ui.SetFilter(ctx, models.FilterAvailable)
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Equal(t, models.FilterAll, ui.Snapshot().Filter)
}
