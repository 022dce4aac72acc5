package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmsswimming/go_academy_backend/internal/adapter/storage/memstore"
	"github.com/mmsswimming/go_academy_backend/internal/domain"
	"github.com/mmsswimming/go_academy_backend/internal/domain/user"
)

type recordingBus struct {
	events []domain.Event
}

func (b *recordingBus) PublishEvents(events ...domain.Event) error {
	b.events = append(b.events, events...)
	return nil
}

func testService(t *testing.T) (*Service, *memstore.MemStorage, *recordingBus) {
	t.Helper()

	store := memstore.New()
	bus := &recordingBus{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(store, testAuthorizer(), bus, logger), store, bus
}

func registration() Registration {
	return Registration{
		Email:         "a@x.com",
		Password:      "secret1",
		FullName:      "A B",
		Phone:         "01012345678",
		Age:           20,
		SwimmingLevel: "beginner",
		Program:       "adult",
	}
}

func TestRegisterCreatesMemberRole(t *testing.T) {
	svc, _, bus := testService(t)

	res, err := svc.Register(context.Background(), registration())
	require.NoError(t, err)

	assert.Equal(t, user.RoleMember, res.User.Role)
	assert.Equal(t, res.User.ID, res.Member.UserID)
	assert.Equal(t, "A B", res.Member.FullName)
	assert.NotEmpty(t, res.Token)

	claims, err := svc.Authorizer.ValidateToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.ID)
	assert.Equal(t, res.User.Email, claims.Email)
	assert.Equal(t, user.RoleMember, claims.Role)

	require.Len(t, bus.events, 1)
	assert.Equal(t, user.EventRegistered, bus.events[0].Type())
}

func TestRegisterNeverStoresPlaintextPassword(t *testing.T) {
	svc, store, _ := testService(t)

	res, err := svc.Register(context.Background(), registration())
	require.NoError(t, err)

	stored, err := store.GetUserByID(context.Background(), res.User.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.NotContains(t, stored.PasswordHash, "secret1")
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	svc, store, _ := testService(t)
	ctx := context.Background()

	first, err := svc.Register(ctx, registration())
	require.NoError(t, err)

	_, err = svc.Register(ctx, registration())
	require.Error(t, err)
	assert.ErrorIs(t, err, user.ErrUserExists)

	// The first account is untouched.
	u, err := store.GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, first.User.ID, u.ID)
	m, err := store.GetMemberByUserID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Member.ID, m.ID)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _, _ := testService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registration())
	require.NoError(t, err)

	_, unknownErr := svc.Login(ctx, "nobody@x.com", "secret1", user.Device{})
	_, badPassErr := svc.Login(ctx, "a@x.com", "wrong-password", user.Device{})

	assert.ErrorIs(t, unknownErr, user.ErrInvalidCredentials)
	assert.ErrorIs(t, badPassErr, user.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), badPassErr.Error())
}

func TestLoginReturnsMemberProfileAndToken(t *testing.T) {
	svc, _, bus := testService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registration())
	require.NoError(t, err)

	res, err := svc.Login(ctx, "a@x.com", "secret1", user.Device{Browser: "Firefox", OS: "Linux"})
	require.NoError(t, err)
	require.NotNil(t, res.Profile)
	assert.NotEmpty(t, res.Token)

	var loginEvent *user.LoginEvent
	for _, e := range bus.events {
		if le, ok := e.(user.LoginEvent); ok {
			loginEvent = &le
		}
	}
	require.NotNil(t, loginEvent)
	assert.Equal(t, "Firefox", loginEvent.Device.Browser)
}
