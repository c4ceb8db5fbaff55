package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/leadcoach/leadcoach-api/internal/domain"
	"github.com/leadcoach/leadcoach-api/internal/repository"
)

// MessageService handles direct messages between teammates
type MessageService struct {
	messageRepo repository.TeamMessageRepository
	profileRepo repository.ProfileRepository
	teamService *TeamService
}

// NewMessageService creates a new MessageService
func NewMessageService(
	messageRepo repository.TeamMessageRepository,
	profileRepo repository.ProfileRepository,
	teamService *TeamService,
) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		profileRepo: profileRepo,
		teamService: teamService,
	}
}

// Send delivers a direct message to a teammate. The receiver must be in the
// sender's resolved teammate set.
func (s *MessageService) Send(ctx context.Context, sender *domain.Profile, receiverID, text string) (*domain.TeamMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrEmptyMessage
	}

	state, err := s.teamService.ResolveTeamState(ctx, sender)
	if err != nil {
		return nil, err
	}

	var receiver *domain.Profile
	for _, teammate := range state.Teammates {
		if teammate.ID == receiverID {
			receiver = teammate
			break
		}
	}
	if receiver == nil {
		return nil, domain.ErrNotTeammate
	}

	msg := &domain.TeamMessage{
		ID:          uuid.NewString(),
		SenderID:    sender.ID,
		ReceiverID:  receiver.ID,
		MessageText: text,
	}

	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	msg.SenderProfile = sender
	msg.ReceiverProfile = receiver
	return msg, nil
}

// Conversation returns the full message history between the user and another
// profile, oldest first
func (s *MessageService) Conversation(ctx context.Context, user *domain.Profile, otherID string) ([]*domain.TeamMessage, error) {
	return s.messageRepo.GetConversation(ctx, user.ID, otherID)
}

// Delete removes a message. Only the sender or the receiver may delete it;
// for anyone else the message does not exist.
func (s *MessageService) Delete(ctx context.Context, user *domain.Profile, messageID string) error {
	return s.messageRepo.Delete(ctx, messageID, user.ID)
}
