package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadcoach/leadcoach-api/internal/domain"
)

type teamFixture struct {
	profiles *fakeProfileRepo
	invites  *fakeInvitationRepo
	svc      *TeamService
}

func newTeamFixture() *teamFixture {
	profiles := newFakeProfileRepo()
	invites := newFakeInvitationRepo(profiles)
	return &teamFixture{
		profiles: profiles,
		invites:  invites,
		svc:      NewTeamService(invites, profiles),
	}
}

func (f *teamFixture) addProfile(t *testing.T, email string) *domain.Profile {
	t.Helper()
	p := &domain.Profile{
		ID:    uuid.NewString(),
		Email: email,
	}
	require.NoError(t, f.profiles.Create(context.Background(), p))
	return p
}

func TestResolveTeamState_SymmetryAndDedup(t *testing.T) {
	f := newTeamFixture()
	ctx := context.Background()

	alice := f.addProfile(t, "alice@example.com")
	bob := f.addProfile(t, "bob@example.com")

	invite, err := f.svc.SendInvite(ctx, alice, bob.Email)
	require.NoError(t, err)

	_, err = f.svc.RespondToInvite(ctx, bob, invite.ID, domain.InviteStatusAccepted)
	require.NoError(t, err)

	// Обе стороны видят друг друга ровно один раз
	aliceState, err := f.svc.ResolveTeamState(ctx, alice)
	require.NoError(t, err)
	require.Len(t, aliceState.Teammates, 1)
	assert.Equal(t, bob.ID, aliceState.Teammates[0].ID)

	bobState, err := f.svc.ResolveTeamState(ctx, bob)
	require.NoError(t, err)
	require.Len(t, bobState.Teammates, 1)
	assert.Equal(t, alice.ID, bobState.Teammates[0].ID)

	// Дубликат принятой связи в обратную сторону не задваивает тиммейта
	require.NoError(t, f.invites.Create(ctx, &domain.Invitation{
		ID:            uuid.NewString(),
		SenderID:      bob.ID,
		ReceiverEmail: alice.Email,
		Status:        domain.InviteStatusAccepted,
	}))

	aliceState, err = f.svc.ResolveTeamState(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, aliceState.Teammates, 1)

	bobState, err = f.svc.ResolveTeamState(ctx, bob)
	require.NoError(t, err)
	assert.Len(t, bobState.Teammates, 1)
}

func TestResolveTeamState_UnregisteredReceiverSkipped(t *testing.T) {
	f := newTeamFixture()
	ctx := context.Background()

	alice := f.addProfile(t, "alice@example.com")

	// Принятая связь с email без зарегистрированного профиля — не ошибка
	require.NoError(t, f.invites.Create(ctx, &domain.Invitation{
		ID:            uuid.NewString(),
		SenderID:      alice.ID,
		ReceiverEmail: "ghost@example.com",
		Status:        domain.InviteStatusAccepted,
	}))

	state, err := f.svc.ResolveTeamState(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, state.Teammates)
}

func TestResolveTeamState_MissingIdentity(t *testing.T) {
	f := newTeamFixture()
	ctx := context.Background()

	state, err := f.svc.ResolveTeamState(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, state.Teammates)
	assert.Empty(t, state.SentPending)
	assert.Empty(t, state.ReceivedPending)

	state, err = f.svc.ResolveTeamState(ctx, &domain.Profile{ID: "some-id"})
	require.NoError(t, err)
	assert.Empty(t, state.Teammates)
}

func TestResolveTeamState_PendingLists(t *testing.T) {
	f := newTeamFixture()
	ctx := context.Background()

	alice := f.addProfile(t, "alice@example.com")
	bob := f.addProfile(t, "bob@example.com")

	invite, err := f.svc.SendInvite(ctx, alice, bob.Email)
	require.NoError(t, err)

	aliceState, err := f.svc.ResolveTeamState(ctx, alice)
	require.NoError(t, err)
	require.Len(t, aliceState.SentPending, 1)
	assert.Equal(t, invite.ID, aliceState.SentPending[0].ID)
	assert.Empty(t, aliceState.Teammates)

	bobState, err := f.svc.ResolveTeamState(ctx, bob)
	require.NoError(t, err)
	require.Len(t, bobState.ReceivedPending, 1)
	assert.Equal(t, invite.ID, bobState.ReceivedPending[0].ID)
	// Входящее приглашение несет профиль отправителя для отображения
	require.NotNil(t, bobState.ReceivedPending[0].Sender)
	assert.Equal(t, alice.ID, bobState.ReceivedPending[0].Sender.ID)
}

func TestSendInvite_Validation(t *testing.T) {
	f := newTeamFixture()
	ctx := context.Background()

	alice := f.addProfile(t, "alice@example.com")

	_, err := f.svc.SendInvite(ctx, alice, "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyEmail)

	_, err = f.svc.SendInvite(ctx, alice, alice.Email)
	assert.ErrorIs(t, err, domain.ErrSelfInvite)

	// Валидация отсекается до записи в хранилище
	assert.Empty(t, f.invites.invites)
}

func TestSendInvite_PendingConflict(t *testing.T) {
	f := newTeamFixture()
	ctx := context.Background()

	alice := f.addProfile(t, "alice@example.com")
	bob := f.addProfile(t, "bob@example.com")

	_, err := f.svc.SendInvite(ctx, alice, bob.Email)
	require.NoError(t, err)

	// Повторное приглашение той же пары не создает второй pending
	_, err = f.svc.SendInvite(ctx, alice, bob.Email)
	assert.ErrorIs(t, err, domain.ErrInvitePending)
	assert.Len(t, f.invites.invites, 1)

	// Встречное приглашение тоже конфликтует
	_, err = f.svc.SendInvite(ctx, bob, alice.Email)
	assert.ErrorIs(t, err, domain.ErrInvitePending)
	assert.Len(t, f.invites.invites, 1)
}

func TestSendInvite_AlreadyTeammate(t *testing.T) {
	f := newTeamFixture()
	ctx := context.Background()

	alice := f.addProfile(t, "alice@example.com")
	bob := f.addProfile(t, "bob@example.com")

	invite, err := f.svc.SendInvite(ctx, alice, bob.Email)
	require.NoError(t, err)
	_, err = f.svc.RespondToInvite(ctx, bob, invite.ID, domain.InviteStatusAccepted)
	require.NoError(t, err)

	_, err = f.svc.SendInvite(ctx, alice, bob.Email)
	assert.ErrorIs(t, err, domain.ErrAlreadyTeammate)

	_, err = f.svc.SendInvite(ctx, bob, alice.Email)
	assert.ErrorIs(t, err, domain.ErrAlreadyTeammate)
}

func TestSendInvite_AfterDecline(t *testing.T) {
	f := newTeamFixture()
	ctx := context.Background()

	alice := f.addProfile(t, "alice@example.com")
	bob := f.addProfile(t, "bob@example.com")

	invite, err := f.svc.SendInvite(ctx, alice, bob.Email)
	require.NoError(t, err)
	_, err = f.svc.RespondToInvite(ctx, bob, invite.ID, domain.InviteStatusDeclined)
	require.NoError(t, err)

	// Отклоненное приглашение не блокирует новое
	_, err = f.svc.SendInvite(ctx, alice, bob.Email)
	require.NoError(t, err)
}

func TestRespondToInvite_InvalidDecision(t *testing.T) {
	f := newTeamFixture()
	ctx := context.Background()

	bob := f.addProfile(t, "bob@example.com")

	_, err := f.svc.RespondToInvite(ctx, bob, uuid.NewString(), "maybe")
	assert.ErrorIs(t, err, domain.ErrInvalidDecision)
}

func TestRespondToInvite_NotFound(t *testing.T) {
	f := newTeamFixture()
	ctx := context.Background()

	bob := f.addProfile(t, "bob@example.com")

	_, err := f.svc.RespondToInvite(ctx, bob, uuid.NewString(), domain.InviteStatusAccepted)
	assert.ErrorIs(t, err, domain.ErrInviteNotFound)
}

func TestRespondToInvite_WrongAddressee(t *testing.T) {
	f := newTeamFixture()
	ctx := context.Background()

	alice := f.addProfile(t, "alice@example.com")
	bob := f.addProfile(t, "bob@example.com")
	carol := f.addProfile(t, "carol@example.com")

	invite, err := f.svc.SendInvite(ctx, alice, bob.Email)
	require.NoError(t, err)

	// Чужое приглашение неотличимо от отсутствующего
	_, err = f.svc.RespondToInvite(ctx, carol, invite.ID, domain.InviteStatusAccepted)
	assert.ErrorIs(t, err, domain.ErrInviteNotFound)
}

func TestRespondToInvite_TerminalIsNoOp(t *testing.T) {
	f := newTeamFixture()
	ctx := context.Background()

	alice := f.addProfile(t, "alice@example.com")
	bob := f.addProfile(t, "bob@example.com")

	invite, err := f.svc.SendInvite(ctx, alice, bob.Email)
	require.NoError(t, err)

	accepted, err := f.svc.RespondToInvite(ctx, bob, invite.ID, domain.InviteStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, domain.InviteStatusAccepted, accepted.Status)

	// Повторный ответ по терминальному приглашению игнорируется
	still, err := f.svc.RespondToInvite(ctx, bob, invite.ID, domain.InviteStatusDeclined)
	require.NoError(t, err)
	assert.Equal(t, domain.InviteStatusAccepted, still.Status)

	stored, err := f.invites.GetByID(ctx, invite.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InviteStatusAccepted, stored.Status)
}
