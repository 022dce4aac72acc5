package memstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmsswimming/go_academy_backend/internal/adapter/storage"
	"github.com/mmsswimming/go_academy_backend/internal/domain/content"
	"github.com/mmsswimming/go_academy_backend/internal/domain/enrollment"
	"github.com/mmsswimming/go_academy_backend/internal/domain/member"
	"github.com/mmsswimming/go_academy_backend/internal/domain/user"
)

func TestSeedData(t *testing.T) {
	s := New()
	ctx := context.Background()

	programs, err := s.ListPrograms(ctx)
	require.NoError(t, err)
	require.Len(t, programs, 3)
	assert.Equal(t, 1, programs[0].ID)
	assert.Equal(t, "Kids Program", programs[0].Name)
	assert.Equal(t, "800", programs[0].Price)
	assert.Equal(t, "Adult Program", programs[1].Name)
	assert.Equal(t, "Competitive Training", programs[2].Name)

	admin, err := s.GetUserByEmail(ctx, "admin@mmsswimming.com")
	require.NoError(t, err)
	assert.Equal(t, 1, admin.ID)
	assert.Equal(t, user.RoleAdmin, admin.Role)

	coaches, err := s.ListCoaches(ctx)
	require.NoError(t, err)
	require.Len(t, coaches, 2)
	assert.Equal(t, "Ahmed Hassan", coaches[0].FullName)
	assert.Equal(t, "Sarah Mohamed", coaches[1].FullName)
	assert.Equal(t, []string{"Freestyle", "Butterfly"}, coaches[0].Specialties)

	posts, err := s.ListBlogPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "Mastering the Freestyle Stroke", posts[0].Title)
	assert.Equal(t, "Water Safety for Kids", posts[1].Title)

	classes, err := s.ListClasses(ctx)
	require.NoError(t, err)
	require.Len(t, classes, 2)
	assert.Equal(t, "Monday", classes[0].DayOfWeek)
	assert.Equal(t, 5, classes[0].CurrentEnrollment)
	assert.Equal(t, programs[0].ID, classes[0].ProgramID)
	assert.Equal(t, coaches[1].ID, classes[0].CoachID)
}

func TestCreateAssignsIncreasingIDs(t *testing.T) {
	s := New()
	ctx := context.Background()

	first, err := s.CreateContact(ctx, content.NewContact("A", "a@x.com", nil, "hi", "hello"))
	require.NoError(t, err)
	second, err := s.CreateContact(ctx, content.NewContact("B", "b@x.com", nil, "hi", "hello"))
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Greater(t, second.ID, first.ID)
}

func TestCreateUserEnforcesEmailUniqueness(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.CreateUser(ctx, &user.User{Email: "dup@x.com", PasswordHash: "h", Role: user.RoleMember})
	require.NoError(t, err)

	_, err = s.CreateUser(ctx, &user.User{Email: "dup@x.com", PasswordHash: "h2", Role: user.RoleMember})
	require.Error(t, err)
	assert.True(t, errors.Is(err, user.ErrUserExists))
}

func TestGetMemberByUserIDReturnsFirstMatch(t *testing.T) {
	s := New()
	ctx := context.Background()

	m1, err := s.CreateMember(ctx, member.New(42, "First", "01000000000", 20, "beginner", "adult", nil, nil))
	require.NoError(t, err)
	_, err = s.CreateMember(ctx, member.New(42, "Second", "01000000001", 21, "beginner", "adult", nil, nil))
	require.NoError(t, err)

	got, err := s.GetMemberByUserID(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, m1.ID, got.ID)
	assert.Equal(t, "First", got.FullName)

	_, err = s.GetMemberByUserID(ctx, 999)
	assert.ErrorIs(t, err, member.ErrMemberNotFound)
}

func TestUpdateMemberMergesPartialFields(t *testing.T) {
	s := New()
	ctx := context.Background()

	created, err := s.CreateMember(ctx, member.New(7, "Jana", "01000000000", 25, "beginner", "adult", nil, nil))
	require.NoError(t, err)

	status := member.StatusInactive
	updated, err := s.UpdateMember(ctx, created.ID, member.Update{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, member.StatusInactive, updated.Status)
	assert.Equal(t, "Jana", updated.FullName)
	assert.Equal(t, 25, updated.Age)
	assert.Equal(t, created.RegistrationDate, updated.RegistrationDate)
}

func TestUpdateMemberUnknownIDFailsWithoutMutation(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.UpdateMember(ctx, 12345, member.Update{})
	assert.ErrorIs(t, err, member.ErrMemberNotFound)

	members, err := s.ListMembers(ctx)
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestListBookingsByMemberFiltersAndOrders(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.CreateBooking(ctx, enrollment.NewBooking(1, 1, "", nil))
	require.NoError(t, err)
	_, err = s.CreateBooking(ctx, enrollment.NewBooking(2, 1, "", nil))
	require.NoError(t, err)
	_, err = s.CreateBooking(ctx, enrollment.NewBooking(1, 2, "", nil))
	require.NoError(t, err)

	bookings, err := s.ListBookingsByMember(ctx, 1)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, 1, bookings[0].ClassID)
	assert.Equal(t, 2, bookings[1].ClassID)
	assert.Equal(t, enrollment.BookingConfirmed, bookings[0].Status)
}

func TestAtomicStorageCallsDoNotDeadlock(t *testing.T) {
	s := New()
	ctx := context.Background()

	err := s.Atomic(ctx, func(store storage.Storage) error {
		u, err := store.CreateUser(ctx, &user.User{Email: "tx@x.com", PasswordHash: "h", Role: user.RoleMember})
		if err != nil {
			return err
		}
		_, err = store.CreateMember(ctx, member.New(u.ID, "Tx Member", "01000000000", 30, "beginner", "adult", nil, nil))
		return err
	})
	require.NoError(t, err)

	u, err := s.GetUserByEmail(ctx, "tx@x.com")
	require.NoError(t, err)
	m, err := s.GetMemberByUserID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tx Member", m.FullName)
}
