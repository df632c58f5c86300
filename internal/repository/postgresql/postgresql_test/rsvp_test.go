package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/gatherly/rsvp-backend-go/internal/domain/invite"
	"github.com/gatherly/rsvp-backend-go/internal/domain/rsvp"
	"github.com/gatherly/rsvp-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestInvite(t *testing.T, ctx context.Context, setup *TestDatabaseSetup) invite.Invite {
	t.Helper()

	inviteRepo := postgresql.NewInviteRepository(setup.DB)
	start := time.Now().UTC().Add(time.Hour)

	inv, err := inviteRepo.Create(ctx, invite.Invite{
		Title:        "Friday five-a-side",
		CreatorID:    "creator-1",
		CreatorEmail: "creator@example.com",
		WindowStart:  start,
		WindowEnd:    start.Add(2 * time.Hour),
	})
	require.NoError(t, err)
	return inv
}

func TestRSVPRepository_Upsert_InsertThenUpdate(t *testing.T) {
	ctx := context.Background()
	setup := NewTestDatabase(t)
	require.NoError(t, setup.TruncateAllTables(ctx))

	rsvpRepo := postgresql.NewRSVPRepository(setup.DB)
	inv := createTestInvite(t, ctx, setup)

	first, err := rsvpRepo.Upsert(ctx, inv.ID, "dana@example.com", "Dana", rsvp.StateMaybe)
	require.NoError(t, err)
	assert.Equal(t, rsvp.StateMaybe, first.State)
	assert.Equal(t, "Dana", first.DisplayName)

	second, err := rsvpRepo.Upsert(ctx, inv.ID, "dana@example.com", "Dana", rsvp.StateJoin)
	require.NoError(t, err)

	// Same logical row: id and first-submission time are stable
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.CreatedAt.Equal(first.CreatedAt))
	assert.Equal(t, rsvp.StateJoin, second.State)
	assert.False(t, second.UpdatedAt.Before(first.UpdatedAt))

	rows, err := rsvpRepo.ListByInvite(ctx, inv.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestRSVPRepository_Upsert_EmptyNameDoesNotClobber(t *testing.T) {
	ctx := context.Background()
	setup := NewTestDatabase(t)
	require.NoError(t, setup.TruncateAllTables(ctx))

	rsvpRepo := postgresql.NewRSVPRepository(setup.DB)
	inv := createTestInvite(t, ctx, setup)

	_, err := rsvpRepo.Upsert(ctx, inv.ID, "dana@example.com", "Dana", rsvp.StateJoin)
	require.NoError(t, err)

	// Resubmitting without a name keeps the earlier one
	updated, err := rsvpRepo.Upsert(ctx, inv.ID, "dana@example.com", "", rsvp.StateDecline)
	require.NoError(t, err)
	assert.Equal(t, "Dana", updated.DisplayName)
	assert.Equal(t, rsvp.StateDecline, updated.State)

	// A new non-empty name wins
	renamed, err := rsvpRepo.Upsert(ctx, inv.ID, "dana@example.com", "Dana R.", rsvp.StateDecline)
	require.NoError(t, err)
	assert.Equal(t, "Dana R.", renamed.DisplayName)
}

func TestRSVPRepository_CountStates(t *testing.T) {
	ctx := context.Background()
	setup := NewTestDatabase(t)
	require.NoError(t, setup.TruncateAllTables(ctx))

	rsvpRepo := postgresql.NewRSVPRepository(setup.DB)
	inv := createTestInvite(t, ctx, setup)

	_, err := rsvpRepo.Upsert(ctx, inv.ID, "a@example.com", "", rsvp.StateJoin)
	require.NoError(t, err)
	_, err = rsvpRepo.Upsert(ctx, inv.ID, "b@example.com", "", rsvp.StateMaybe)
	require.NoError(t, err)

	// b changes their mind: still one respondent, counted under join
	_, err = rsvpRepo.Upsert(ctx, inv.ID, "b@example.com", "", rsvp.StateJoin)
	require.NoError(t, err)

	counts, err := rsvpRepo.CountStates(ctx, inv.ID)
	require.NoError(t, err)

	assert.Equal(t, 2, counts.Join)
	assert.Equal(t, 0, counts.Maybe)
	assert.Equal(t, 0, counts.Decline)
	assert.Equal(t, 2, counts.Total)
}

func TestRSVPRepository_FirstResponseAt(t *testing.T) {
	ctx := context.Background()
	setup := NewTestDatabase(t)
	require.NoError(t, setup.TruncateAllTables(ctx))

	rsvpRepo := postgresql.NewRSVPRepository(setup.DB)
	inv := createTestInvite(t, ctx, setup)

	first, err := rsvpRepo.FirstResponseAt(ctx, inv.ID)
	require.NoError(t, err)
	assert.Nil(t, first)

	row, err := rsvpRepo.Upsert(ctx, inv.ID, "a@example.com", "", rsvp.StateJoin)
	require.NoError(t, err)

	// A later state change must not move the first-response time
	_, err = rsvpRepo.Upsert(ctx, inv.ID, "a@example.com", "", rsvp.StateDecline)
	require.NoError(t, err)

	first, err = rsvpRepo.FirstResponseAt(ctx, inv.ID)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.True(t, first.Equal(row.CreatedAt))
}

func TestRSVPRepository_GetByInviteAndEmail_NotFound(t *testing.T) {
	ctx := context.Background()
	setup := NewTestDatabase(t)
	require.NoError(t, setup.TruncateAllTables(ctx))

	rsvpRepo := postgresql.NewRSVPRepository(setup.DB)
	inv := createTestInvite(t, ctx, setup)

	_, err := rsvpRepo.GetByInviteAndEmail(ctx, inv.ID, "ghost@example.com")
	assert.ErrorIs(t, err, rsvp.ErrRSVPNotFound)
}

func TestInviteRepository_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	setup := NewTestDatabase(t)
	require.NoError(t, setup.TruncateAllTables(ctx))

	inviteRepo := postgresql.NewInviteRepository(setup.DB)

	_, err := inviteRepo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, invite.ErrInviteNotFound)
}

func TestInviteRepository_DeleteCascadesToRSVPs(t *testing.T) {
	ctx := context.Background()
	setup := NewTestDatabase(t)
	require.NoError(t, setup.TruncateAllTables(ctx))

	inviteRepo := postgresql.NewInviteRepository(setup.DB)
	rsvpRepo := postgresql.NewRSVPRepository(setup.DB)
	inv := createTestInvite(t, ctx, setup)

	_, err := rsvpRepo.Upsert(ctx, inv.ID, "a@example.com", "", rsvp.StateJoin)
	require.NoError(t, err)

	require.NoError(t, inviteRepo.Delete(ctx, inv.ID))

	rows, err := rsvpRepo.ListByInvite(ctx, inv.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
