package rsvp

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gatherly/rsvp-backend-go/internal/domain/circle"
	"github.com/gatherly/rsvp-backend-go/internal/domain/identity"
	"github.com/gatherly/rsvp-backend-go/internal/domain/invite"
	"github.com/gatherly/rsvp-backend-go/internal/domain/rsvp"
	"github.com/gatherly/rsvp-backend-go/internal/pkg/email"
	"github.com/google/uuid"
)

const sideEffectTimeout = 30 * time.Second

type RSVPServiceImpl struct {
	rsvp.RSVPRepository
	inviteRepository     invite.InviteRepository
	membershipRepository circle.MembershipRepository
	emailService         email.EmailService
}

// NewRSVPService creates a new response service instance
func NewRSVPService(
	rsvpRepo rsvp.RSVPRepository,
	inviteRepo invite.InviteRepository,
	membershipRepo circle.MembershipRepository,
	emailService email.EmailService,
) rsvp.RSVPService {
	return &RSVPServiceImpl{
		RSVPRepository:       rsvpRepo,
		inviteRepository:     inviteRepo,
		membershipRepository: membershipRepo,
		emailService:         emailService,
	}
}

// Submit implements rsvp.RSVPService.
func (s *RSVPServiceImpl) Submit(ctx context.Context, req rsvp.SubmitRequest, respondent identity.Respondent) (rsvp.Ack, error) {
	if err := req.Validate(respondent.Account != nil); err != nil {
		return rsvp.Ack{}, err
	}

	inviteID, err := uuid.Parse(req.InviteID)
	if err != nil {
		return rsvp.Ack{}, invite.ErrInviteNotFound
	}

	inv, err := s.inviteRepository.GetByID(ctx, inviteID)
	if err != nil {
		return rsvp.Ack{}, err
	}

	if !inv.AcceptsResponses(time.Now().UTC()) {
		return rsvp.Ack{}, invite.ErrInviteExpired
	}

	resolved, err := identity.Resolve(respondent)
	if err != nil {
		return rsvp.Ack{}, err
	}

	row, err := s.RSVPRepository.Upsert(ctx, inv.ID, resolved.Email, resolved.DisplayName, rsvp.State(req.State))
	if err != nil {
		return rsvp.Ack{}, fmt.Errorf("failed to record response: %w", err)
	}

	// Side effects run after the write commits and never fail the ack
	go s.reconcileAndNotify(inv, resolved, row)

	return rsvp.Ack{
		InviteID:  row.InviteID.String(),
		Email:     row.Email,
		State:     string(row.State),
		CreatedAt: row.CreatedAt.Format(time.RFC3339),
		UpdatedAt: row.UpdatedAt.Format(time.RFC3339),
	}, nil
}

// Roster implements rsvp.RSVPService.
func (s *RSVPServiceImpl) Roster(ctx context.Context, inviteID string, callerID string) ([]rsvp.RosterEntry, error) {
	id, err := uuid.Parse(inviteID)
	if err != nil {
		return nil, invite.ErrInviteNotFound
	}

	inv, err := s.inviteRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if inv.CreatorID != callerID {
		return nil, rsvp.ErrRosterDenied
	}

	rows, err := s.RSVPRepository.ListByInvite(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}

	entries := make([]rsvp.RosterEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, rsvp.RosterEntry{
			State:       string(row.State),
			DisplayName: row.DisplayName,
			Email:       row.Email,
		})
	}

	return entries, nil
}

// reconcileAndNotify folds a guest respondent into the invite's circles
// and emails the creator a ledger snapshot. Each step is best-effort.
func (s *RSVPServiceImpl) reconcileAndNotify(inv invite.Invite, resolved identity.Resolved, row rsvp.RSVP) {
	ctx, cancel := context.WithTimeout(context.Background(), sideEffectTimeout)
	defer cancel()

	if !resolved.Authenticated {
		var displayName *string
		if resolved.DisplayName != "" {
			displayName = &resolved.DisplayName
		}

		for _, circleID := range inv.CircleIDs {
			if _, err := s.membershipRepository.EnsureMember(ctx, circleID, resolved.Email, displayName); err != nil {
				slog.Warn("Failed to reconcile circle membership",
					"invite_id", inv.ID,
					"circle_id", circleID,
					"error", err,
				)
			}
		}
	}

	counts, err := s.RSVPRepository.CountStates(ctx, inv.ID)
	if err != nil {
		slog.Warn("Failed to count responses for notification", "invite_id", inv.ID, "error", err)
		return
	}

	respondentName := row.DisplayName
	if respondentName == "" {
		respondentName = row.Email
	}

	err = s.emailService.SendRSVPNotification(
		inv.CreatorEmail,
		inv.Title,
		respondentName,
		string(row.State),
		counts.Join,
		counts.Maybe,
		counts.Decline,
	)
	if err != nil {
		slog.Warn("Failed to send RSVP notification", "invite_id", inv.ID, "error", err)
	}
}
