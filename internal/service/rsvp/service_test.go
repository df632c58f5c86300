package rsvp

import (
	"context"
	"testing"
	"time"

	"github.com/gatherly/rsvp-backend-go/internal/domain/circle"
	"github.com/gatherly/rsvp-backend-go/internal/domain/identity"
	"github.com/gatherly/rsvp-backend-go/internal/domain/invite"
	"github.com/gatherly/rsvp-backend-go/internal/domain/rsvp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInviteRepository struct {
	inv invite.Invite
	err error
}

func (f *fakeInviteRepository) Create(ctx context.Context, inv invite.Invite) (invite.Invite, error) {
	return inv, nil
}

func (f *fakeInviteRepository) GetByID(ctx context.Context, id uuid.UUID) (invite.Invite, error) {
	if f.err != nil {
		return invite.Invite{}, f.err
	}
	return f.inv, nil
}

func (f *fakeInviteRepository) ListByCreator(ctx context.Context, creatorID string) ([]invite.Invite, error) {
	return nil, nil
}

func (f *fakeInviteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

type fakeRSVPRepository struct {
	upsertCalls int
	lastEmail   string
	rows        []rsvp.RSVP
}

func (f *fakeRSVPRepository) Upsert(ctx context.Context, inviteID uuid.UUID, email, displayName string, state rsvp.State) (rsvp.RSVP, error) {
	f.upsertCalls++
	f.lastEmail = email
	now := time.Now().UTC()
	return rsvp.RSVP{
		ID:          uuid.New(),
		InviteID:    inviteID,
		Email:       email,
		DisplayName: displayName,
		State:       state,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (f *fakeRSVPRepository) GetByInviteAndEmail(ctx context.Context, inviteID uuid.UUID, email string) (rsvp.RSVP, error) {
	return rsvp.RSVP{}, rsvp.ErrRSVPNotFound
}

func (f *fakeRSVPRepository) ListByInvite(ctx context.Context, inviteID uuid.UUID) ([]rsvp.RSVP, error) {
	return f.rows, nil
}

func (f *fakeRSVPRepository) CountStates(ctx context.Context, inviteID uuid.UUID) (rsvp.StateCounts, error) {
	return rsvp.StateCounts{}, nil
}

func (f *fakeRSVPRepository) FirstResponseAt(ctx context.Context, inviteID uuid.UUID) (*time.Time, error) {
	return nil, nil
}

type fakeMembershipRepository struct{}

func (f *fakeMembershipRepository) EnsureMember(ctx context.Context, circleID uuid.UUID, email string, displayName *string) (circle.Membership, error) {
	return circle.Membership{CircleID: circleID, Email: email}, nil
}

func (f *fakeMembershipRepository) ListByCircle(ctx context.Context, circleID uuid.UUID) ([]circle.Membership, error) {
	return nil, nil
}

type fakeEmailService struct{}

func (f *fakeEmailService) SendRSVPNotification(to, inviteTitle, respondentName, state string, joinCount, maybeCount, declineCount int) error {
	return nil
}

func newTestService(inviteRepo *fakeInviteRepository, rsvpRepo *fakeRSVPRepository) rsvp.RSVPService {
	return NewRSVPService(rsvpRepo, inviteRepo, &fakeMembershipRepository{}, &fakeEmailService{})
}

func guestRespondent(email string) identity.Respondent {
	return identity.Respondent{Guest: &identity.Guest{Email: email}}
}

func TestSubmit_RejectsExpiredInviteWithoutWrite(t *testing.T) {
	t.Parallel()
	start := time.Now().UTC().Add(-3 * time.Hour)
	inviteRepo := &fakeInviteRepository{inv: invite.Invite{
		ID:          uuid.New(),
		CreatorID:   "owner",
		WindowStart: start,
		WindowEnd:   start.Add(2 * time.Hour),
	}}
	rsvpRepo := &fakeRSVPRepository{}
	svc := newTestService(inviteRepo, rsvpRepo)

	_, err := svc.Submit(context.Background(), rsvp.SubmitRequest{
		InviteID: inviteRepo.inv.ID.String(),
		Email:    "dana@example.com",
		State:    "join",
	}, guestRespondent("dana@example.com"))

	assert.ErrorIs(t, err, invite.ErrInviteExpired)
	// Rejected before the ledger is ever touched
	assert.Equal(t, 0, rsvpRepo.upsertCalls)
}

func TestSubmit_UnknownInvite(t *testing.T) {
	t.Parallel()
	inviteRepo := &fakeInviteRepository{err: invite.ErrInviteNotFound}
	rsvpRepo := &fakeRSVPRepository{}
	svc := newTestService(inviteRepo, rsvpRepo)

	_, err := svc.Submit(context.Background(), rsvp.SubmitRequest{
		InviteID: uuid.NewString(),
		Email:    "dana@example.com",
		State:    "join",
	}, guestRespondent("dana@example.com"))

	assert.ErrorIs(t, err, invite.ErrInviteNotFound)
	assert.Equal(t, 0, rsvpRepo.upsertCalls)
}

func TestSubmit_CanonicalizesGuestEmailBeforeWrite(t *testing.T) {
	t.Parallel()
	start := time.Now().UTC()
	inviteRepo := &fakeInviteRepository{inv: invite.Invite{
		ID:          uuid.New(),
		CreatorID:   "owner",
		WindowStart: start,
		WindowEnd:   start.Add(2 * time.Hour),
	}}
	rsvpRepo := &fakeRSVPRepository{}
	svc := newTestService(inviteRepo, rsvpRepo)

	ack, err := svc.Submit(context.Background(), rsvp.SubmitRequest{
		InviteID: inviteRepo.inv.ID.String(),
		Email:    "  Dana@Example.com  ",
		State:    "join",
	}, guestRespondent("  Dana@Example.com  "))
	require.NoError(t, err)

	assert.Equal(t, 1, rsvpRepo.upsertCalls)
	assert.Equal(t, "dana@example.com", rsvpRepo.lastEmail)
	assert.Equal(t, "dana@example.com", ack.Email)
	assert.Equal(t, "join", ack.State)
}

func TestRoster_DeniedForNonCreator(t *testing.T) {
	t.Parallel()
	inviteRepo := &fakeInviteRepository{inv: invite.Invite{
		ID:        uuid.New(),
		CreatorID: "owner",
	}}
	rsvpRepo := &fakeRSVPRepository{}
	svc := newTestService(inviteRepo, rsvpRepo)

	_, err := svc.Roster(context.Background(), inviteRepo.inv.ID.String(), "someone-else")
	assert.ErrorIs(t, err, rsvp.ErrRosterDenied)
}

func TestRoster_ListsForCreator(t *testing.T) {
	t.Parallel()
	inviteID := uuid.New()
	inviteRepo := &fakeInviteRepository{inv: invite.Invite{
		ID:        inviteID,
		CreatorID: "owner",
	}}
	rsvpRepo := &fakeRSVPRepository{rows: []rsvp.RSVP{
		{InviteID: inviteID, Email: "a@example.com", DisplayName: "A", State: rsvp.StateJoin},
		{InviteID: inviteID, Email: "b@example.com", State: rsvp.StateDecline},
	}}
	svc := newTestService(inviteRepo, rsvpRepo)

	entries, err := svc.Roster(context.Background(), inviteID.String(), "owner")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "join", entries[0].State)
	assert.Equal(t, "A", entries[0].DisplayName)
	assert.Equal(t, "b@example.com", entries[1].Email)
}
