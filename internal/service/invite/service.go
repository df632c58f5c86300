package invite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gatherly/rsvp-backend-go/internal/domain/funnel"
	"github.com/gatherly/rsvp-backend-go/internal/domain/invite"
	"github.com/gatherly/rsvp-backend-go/internal/domain/rsvp"
	"github.com/gatherly/rsvp-backend-go/internal/pkg/window"
	"github.com/google/uuid"
)

type InviteServiceImpl struct {
	invite.InviteRepository
	rsvp.RSVPRepository
	eventRepository funnel.EventRepository
	windowParser    window.Parser
}

// NewInviteService creates a new invite service instance
func NewInviteService(
	inviteRepo invite.InviteRepository,
	rsvpRepo rsvp.RSVPRepository,
	eventRepo funnel.EventRepository,
	windowParser window.Parser,
) invite.InviteService {
	return &InviteServiceImpl{
		InviteRepository: inviteRepo,
		RSVPRepository:   rsvpRepo,
		eventRepository:  eventRepo,
		windowParser:     windowParser,
	}
}

// Create implements invite.InviteService.
func (s *InviteServiceImpl) Create(ctx context.Context, req invite.CreateRequest, creatorID, creatorEmail string) (invite.InviteResponse, error) {
	if err := req.Validate(); err != nil {
		return invite.InviteResponse{}, err
	}

	now := time.Now().UTC()

	start, end, err := s.windowParser.Parse(ctx, req.When, now)
	if err != nil {
		if errors.Is(err, invite.ErrWindowParseFailed) {
			return invite.InviteResponse{}, err
		}
		return invite.InviteResponse{}, fmt.Errorf("failed to parse time window: %w", err)
	}

	if !end.After(start) {
		return invite.InviteResponse{}, invite.ErrInvalidWindow
	}

	circleIDs := make([]uuid.UUID, 0, len(req.CircleIDs))
	for _, raw := range req.CircleIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return invite.InviteResponse{}, fmt.Errorf("invalid circle id %q: %w", raw, err)
		}
		circleIDs = append(circleIDs, id)
	}

	created, err := s.InviteRepository.Create(ctx, invite.Invite{
		Title:        req.Title,
		CreatorID:    creatorID,
		CreatorEmail: creatorEmail,
		WindowStart:  start.UTC(),
		WindowEnd:    end.UTC(),
		CircleIDs:    circleIDs,
	})
	if err != nil {
		return invite.InviteResponse{}, fmt.Errorf("failed to create invite: %w", err)
	}

	// Feed the creation funnel; losing an event must never fail the invite
	if req.SessionID != "" {
		if _, err := s.eventRepository.Record(ctx, req.SessionID, funnel.KindInviteCreated, now); err != nil {
			slog.Warn("Failed to record invite_created event", "invite_id", created.ID, "error", err)
		}
	}

	return s.toResponse(ctx, created)
}

// Get implements invite.InviteService.
func (s *InviteServiceImpl) Get(ctx context.Context, id string) (invite.InviteResponse, error) {
	inviteID, err := uuid.Parse(id)
	if err != nil {
		return invite.InviteResponse{}, invite.ErrInviteNotFound
	}

	inv, err := s.InviteRepository.GetByID(ctx, inviteID)
	if err != nil {
		return invite.InviteResponse{}, err
	}

	return s.toResponse(ctx, inv)
}

// ListMine implements invite.InviteService.
func (s *InviteServiceImpl) ListMine(ctx context.Context, creatorID string) ([]invite.ListItemResponse, error) {
	invites, err := s.InviteRepository.ListByCreator(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}

	now := time.Now().UTC()
	items := make([]invite.ListItemResponse, 0, len(invites))
	for _, inv := range invites {
		counts, err := s.RSVPRepository.CountStates(ctx, inv.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count responses: %w", err)
		}

		firstResponseAt, err := s.RSVPRepository.FirstResponseAt(ctx, inv.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get first response time: %w", err)
		}

		items = append(items, invite.ListItemResponse{
			ID:             inv.ID.String(),
			Title:          inv.Title,
			WindowStart:    inv.WindowStart.Format(time.RFC3339),
			WindowEnd:      inv.WindowEnd.Format(time.RFC3339),
			CreatedAt:      inv.CreatedAt.Format(time.RFC3339),
			Classification: string(invite.Classify(inv, firstResponseAt, now)),
			Counts: invite.ResponseCounts{
				Join:        counts.Join,
				Maybe:       counts.Maybe,
				Decline:     counts.Decline,
				Respondents: counts.Total,
			},
		})
	}

	return items, nil
}

// Delete implements invite.InviteService.
func (s *InviteServiceImpl) Delete(ctx context.Context, id string, creatorID string) error {
	inviteID, err := uuid.Parse(id)
	if err != nil {
		return invite.ErrInviteNotFound
	}

	inv, err := s.InviteRepository.GetByID(ctx, inviteID)
	if err != nil {
		return err
	}

	if inv.CreatorID != creatorID {
		return invite.ErrNotInviteCreator
	}

	return s.InviteRepository.Delete(ctx, inviteID)
}

func (s *InviteServiceImpl) toResponse(ctx context.Context, inv invite.Invite) (invite.InviteResponse, error) {
	counts, err := s.RSVPRepository.CountStates(ctx, inv.ID)
	if err != nil {
		return invite.InviteResponse{}, fmt.Errorf("failed to count responses: %w", err)
	}

	firstResponseAt, err := s.RSVPRepository.FirstResponseAt(ctx, inv.ID)
	if err != nil {
		return invite.InviteResponse{}, fmt.Errorf("failed to get first response time: %w", err)
	}

	return invite.InviteResponse{
		ID:             inv.ID.String(),
		Title:          inv.Title,
		WindowStart:    inv.WindowStart.Format(time.RFC3339),
		WindowEnd:      inv.WindowEnd.Format(time.RFC3339),
		CreatedAt:      inv.CreatedAt.Format(time.RFC3339),
		Classification: string(invite.Classify(inv, firstResponseAt, time.Now().UTC())),
		Counts: invite.ResponseCounts{
			Join:        counts.Join,
			Maybe:       counts.Maybe,
			Decline:     counts.Decline,
			Respondents: counts.Total,
		},
	}, nil
}
