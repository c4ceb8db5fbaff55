package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/leadcoach/leadcoach-api/internal/domain"
	"github.com/leadcoach/leadcoach-api/internal/repository"
)

// TeamService handles the invitation lifecycle and derives the teammate set
type TeamService struct {
	inviteRepo  repository.InvitationRepository
	profileRepo repository.ProfileRepository
}

// NewTeamService creates a new TeamService
func NewTeamService(inviteRepo repository.InvitationRepository, profileRepo repository.ProfileRepository) *TeamService {
	return &TeamService{
		inviteRepo:  inviteRepo,
		profileRepo: profileRepo,
	}
}

// ResolveTeamState derives the current user's teammate set and pending
// invitations in both directions.
//
// The invitation edge is directed and anchored by email on the receiving
// side, so the teammate relation is resolved symmetrically: for every
// accepted edge the other party is looked up by receiver_email when the
// current user sent it, and by sender_id when the current user received it.
// Teammates are deduplicated by profile id in insertion order.
func (s *TeamService) ResolveTeamState(ctx context.Context, user *domain.Profile) (*domain.TeamState, error) {
	state := &domain.TeamState{
		Teammates:       []*domain.Profile{},
		SentPending:     []*domain.Invitation{},
		ReceivedPending: []*domain.Invitation{},
	}

	// Without an identity there is nothing to resolve
	if user == nil || user.ID == "" || user.Email == "" {
		return state, nil
	}

	accepted, err := s.inviteRepo.GetAcceptedForUser(ctx, user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, invite := range accepted {
		var teammate *domain.Profile

		if invite.SenderID == user.ID {
			// Current user sent the invite, the receiver is the teammate.
			// The receiver may not have registered yet: skip, not an error.
			teammate, err = s.profileRepo.GetByEmail(ctx, invite.ReceiverEmail)
			if errors.Is(err, domain.ErrProfileNotFound) {
				continue
			}
		} else {
			// Current user received the invite, the sender is the teammate
			teammate, err = s.profileRepo.GetByID(ctx, invite.SenderID)
		}
		if err != nil {
			return nil, err
		}

		if _, ok := seen[teammate.ID]; ok {
			continue
		}
		seen[teammate.ID] = struct{}{}
		state.Teammates = append(state.Teammates, teammate)
	}

	sent, err := s.inviteRepo.GetPendingBySender(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if sent != nil {
		state.SentPending = sent
	}

	received, err := s.inviteRepo.GetPendingByReceiverEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if received != nil {
		state.ReceivedPending = received
	}

	return state, nil
}

// SendInvite creates a pending invitation from sender to receiverEmail.
//
// The email is compared as stored, without normalization. The pair is checked
// in both directions before inserting: an accepted edge wins over a pending
// one. The check and the insert are separate statements, so two concurrent
// invites between the same pair may both land; duplicate pending invites are
// tolerated because the teammate derivation dedups by profile id.
func (s *TeamService) SendInvite(ctx context.Context, sender *domain.Profile, receiverEmail string) (*domain.Invitation, error) {
	receiverEmail = strings.TrimSpace(receiverEmail)
	if receiverEmail == "" {
		return nil, domain.ErrEmptyEmail
	}
	if receiverEmail == sender.Email {
		return nil, domain.ErrSelfInvite
	}

	history, err := s.inviteRepo.GetPairHistory(ctx, sender.ID, sender.Email, receiverEmail)
	if err != nil {
		return nil, err
	}

	hasPending := false
	for _, existing := range history {
		if existing.Status == domain.InviteStatusAccepted {
			return nil, domain.ErrAlreadyTeammate
		}
		if existing.Status == domain.InviteStatusPending {
			hasPending = true
		}
	}
	if hasPending {
		return nil, domain.ErrInvitePending
	}

	invite := &domain.Invitation{
		ID:            uuid.NewString(),
		SenderID:      sender.ID,
		ReceiverEmail: receiverEmail,
		Status:        domain.InviteStatusPending,
	}

	if err := s.inviteRepo.Create(ctx, invite); err != nil {
		return nil, err
	}

	return invite, nil
}

// RespondToInvite accepts or declines a pending invitation.
//
// Only the addressee may respond; an invitation sent to another email is
// reported as not found. Both terminal statuses are final: responding to an
// already resolved invitation is a no-op that returns the invitation
// unchanged.
func (s *TeamService) RespondToInvite(ctx context.Context, user *domain.Profile, inviteID string, decision domain.InvitationStatus) (*domain.Invitation, error) {
	if decision != domain.InviteStatusAccepted && decision != domain.InviteStatusDeclined {
		return nil, domain.ErrInvalidDecision
	}

	invite, err := s.inviteRepo.GetByID(ctx, inviteID)
	if err != nil {
		return nil, err
	}
	if invite.ReceiverEmail != user.Email {
		return nil, domain.ErrInviteNotFound
	}

	updated, err := s.inviteRepo.UpdateStatusIfPending(ctx, inviteID, decision)
	if err != nil {
		return nil, err
	}
	if updated {
		invite.Status = decision
	}

	return invite, nil
}
