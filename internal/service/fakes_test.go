package service

import (
	"context"
	"sort"
	"time"

	"github.com/leadcoach/leadcoach-api/internal/domain"
	"github.com/leadcoach/leadcoach-api/internal/repository"
)

// In-memory репозитории для юнит-тестов сервисов:
// зависимости инжектируются, поэтому хранилище подменяется целиком.

type fakeProfileRepo struct {
	profiles map[string]*domain.Profile // по id
}

var _ repository.ProfileRepository = (*fakeProfileRepo)(nil)

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*domain.Profile)}
}

func (f *fakeProfileRepo) Create(_ context.Context, profile *domain.Profile) error {
	for _, p := range f.profiles {
		if p.Email == profile.Email {
			return domain.ErrEmailTaken
		}
	}
	profile.CreatedAt = time.Now()
	stored := *profile
	f.profiles[profile.ID] = &stored
	return nil
}

func (f *fakeProfileRepo) GetByID(_ context.Context, profileID string) (*domain.Profile, error) {
	p, ok := f.profiles[profileID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakeProfileRepo) GetByEmail(_ context.Context, email string) (*domain.Profile, error) {
	for _, p := range f.profiles {
		if p.Email == email {
			copied := *p
			return &copied, nil
		}
	}
	return nil, domain.ErrProfileNotFound
}

func (f *fakeProfileRepo) UpdateInfo(_ context.Context, profileID, firstName, lastName, avatarURL string) error {
	p, ok := f.profiles[profileID]
	if !ok {
		return domain.ErrProfileNotFound
	}
	p.FirstName = firstName
	p.LastName = lastName
	p.AvatarURL = avatarURL
	return nil
}

func (f *fakeProfileRepo) UpdateScores(_ context.Context, profileID string, scores domain.Scores) error {
	p, ok := f.profiles[profileID]
	if !ok {
		return domain.ErrProfileNotFound
	}
	p.Scores = scores
	return nil
}

type fakeInvitationRepo struct {
	profiles *fakeProfileRepo
	invites  []*domain.Invitation
}

var _ repository.InvitationRepository = (*fakeInvitationRepo)(nil)

func newFakeInvitationRepo(profiles *fakeProfileRepo) *fakeInvitationRepo {
	return &fakeInvitationRepo{profiles: profiles}
}

func (f *fakeInvitationRepo) Create(_ context.Context, invite *domain.Invitation) error {
	invite.CreatedAt = time.Now()
	stored := *invite
	f.invites = append(f.invites, &stored)
	return nil
}

func (f *fakeInvitationRepo) GetByID(_ context.Context, inviteID string) (*domain.Invitation, error) {
	for _, inv := range f.invites {
		if inv.ID == inviteID {
			copied := *inv
			return &copied, nil
		}
	}
	return nil, domain.ErrInviteNotFound
}

func (f *fakeInvitationRepo) GetAcceptedForUser(_ context.Context, userID, email string) ([]*domain.Invitation, error) {
	var result []*domain.Invitation
	for _, inv := range f.invites {
		if inv.Status == domain.InviteStatusAccepted && (inv.SenderID == userID || inv.ReceiverEmail == email) {
			copied := *inv
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeInvitationRepo) GetPendingBySender(_ context.Context, userID string) ([]*domain.Invitation, error) {
	var result []*domain.Invitation
	for _, inv := range f.invites {
		if inv.Status == domain.InviteStatusPending && inv.SenderID == userID {
			copied := *inv
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeInvitationRepo) GetPendingByReceiverEmail(ctx context.Context, email string) ([]*domain.Invitation, error) {
	var result []*domain.Invitation
	for _, inv := range f.invites {
		if inv.Status == domain.InviteStatusPending && inv.ReceiverEmail == email {
			copied := *inv
			sender, err := f.profiles.GetByID(ctx, inv.SenderID)
			if err != nil {
				return nil, err
			}
			copied.Sender = sender
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeInvitationRepo) GetPairHistory(ctx context.Context, senderID, senderEmail, receiverEmail string) ([]*domain.Invitation, error) {
	var result []*domain.Invitation
	for _, inv := range f.invites {
		forward := inv.SenderID == senderID && inv.ReceiverEmail == receiverEmail
		reverse := false
		if inv.ReceiverEmail == senderEmail {
			if sender, err := f.profiles.GetByID(ctx, inv.SenderID); err == nil && sender.Email == receiverEmail {
				reverse = true
			}
		}
		if forward || reverse {
			copied := *inv
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeInvitationRepo) UpdateStatusIfPending(_ context.Context, inviteID string, status domain.InvitationStatus) (bool, error) {
	for _, inv := range f.invites {
		if inv.ID == inviteID {
			if inv.Status != domain.InviteStatusPending {
				return false, nil
			}
			inv.Status = status
			return true, nil
		}
	}
	return false, nil
}

type fakeFeedbackRepo struct {
	messages []*domain.ScoredMessage
}

var _ repository.FeedbackRepository = (*fakeFeedbackRepo)(nil)

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{}
}

func (f *fakeFeedbackRepo) Create(_ context.Context, msg *domain.ScoredMessage) error {
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	stored := *msg
	f.messages = append(f.messages, &stored)
	return nil
}

func (f *fakeFeedbackRepo) ListByUser(_ context.Context, userID string) ([]*domain.ScoredMessage, error) {
	var result []*domain.ScoredMessage
	for _, msg := range f.messages {
		if msg.UserID == userID {
			copied := *msg
			result = append(result, &copied)
		}
	}
	// Новые первыми, как в хранилище
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

type fakeTeamMessageRepo struct {
	messages []*domain.TeamMessage
}

var _ repository.TeamMessageRepository = (*fakeTeamMessageRepo)(nil)

func newFakeTeamMessageRepo() *fakeTeamMessageRepo {
	return &fakeTeamMessageRepo{}
}

func (f *fakeTeamMessageRepo) Create(_ context.Context, msg *domain.TeamMessage) error {
	msg.CreatedAt = time.Now()
	stored := *msg
	f.messages = append(f.messages, &stored)
	return nil
}

func (f *fakeTeamMessageRepo) GetConversation(_ context.Context, userID, otherID string) ([]*domain.TeamMessage, error) {
	var result []*domain.TeamMessage
	for _, msg := range f.messages {
		between := (msg.SenderID == userID && msg.ReceiverID == otherID) ||
			(msg.SenderID == otherID && msg.ReceiverID == userID)
		if between {
			copied := *msg
			result = append(result, &copied)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (f *fakeTeamMessageRepo) Delete(_ context.Context, messageID, participantID string) error {
	for i, msg := range f.messages {
		if msg.ID == messageID && msg.IsParticipant(participantID) {
			f.messages = append(f.messages[:i], f.messages[i+1:]...)
			return nil
		}
	}
	return domain.ErrMessageNotFound
}
