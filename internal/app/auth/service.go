package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/mmsswimming/go_academy_backend/internal/adapter/storage"
	"github.com/mmsswimming/go_academy_backend/internal/domain"
	"github.com/mmsswimming/go_academy_backend/internal/domain/member"
	"github.com/mmsswimming/go_academy_backend/internal/domain/user"
)

type EventPublisher interface {
	PublishEvents(events ...domain.Event) error
}

type Service struct {
	logger     *slog.Logger
	store      storage.Storage
	bus        EventPublisher
	Authorizer *Authorizer
}

func NewService(store storage.Storage, authorizer *Authorizer, bus EventPublisher, logger *slog.Logger) *Service {
	return &Service{
		logger:     logger,
		store:      store,
		bus:        bus,
		Authorizer: authorizer,
	}
}

type Registration struct {
	Email            string
	Password         string
	FullName         string
	Phone            string
	Age              int
	SwimmingLevel    string
	Program          string
	MedicalInfo      *string
	EmergencyContact *string
}

type RegisterResult struct {
	User   *user.User
	Member *member.Member
	Token  string
}

// Register creates the account and its member profile in one atomic step,
// so a failed profile insert cannot leave an orphaned user behind. The role
// is always "member" regardless of input.
func (s *Service) Register(ctx context.Context, reg Registration) (res RegisterResult, err error) {
	u := user.New(reg.Email, reg.Password, user.RoleMember, s.Authorizer)

	err = s.store.Atomic(ctx, func(store storage.Storage) error {
		created, err := store.CreateUser(ctx, u)
		if err != nil {
			return err
		}

		m := member.New(
			created.ID,
			reg.FullName,
			reg.Phone,
			reg.Age,
			reg.SwimmingLevel,
			reg.Program,
			reg.MedicalInfo,
			reg.EmergencyContact,
		)
		createdMember, err := store.CreateMember(ctx, m)
		if err != nil {
			return err
		}

		res.User = created
		res.Member = createdMember
		return nil
	})
	if err != nil {
		return RegisterResult{}, err
	}

	res.Token, err = s.Authorizer.GenerateToken(res.User)
	if err != nil {
		return RegisterResult{}, err
	}

	if err := s.bus.PublishEvents(u.PopEvents()...); err != nil {
		s.logger.Error("failed to publish events", "error", err)
	}

	s.logger.Info("member registered", "user_id", res.User.ID, "email", res.User.Email)
	return res, nil
}

type LoginResult struct {
	User *user.User
	// Profile is the member or coach record matching the user's role, nil
	// for admin accounts.
	Profile any
	Token   string
}

func (s *Service) Login(ctx context.Context, email, password string, device user.Device) (LoginResult, error) {
	u, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		// Same generic failure as a bad password.
		return LoginResult{}, user.ErrInvalidCredentials
	}

	if err := s.Authorizer.Verify(u.PasswordHash, password); err != nil {
		return LoginResult{}, err
	}

	token, err := s.Authorizer.GenerateToken(u)
	if err != nil {
		return LoginResult{}, err
	}

	var profile any
	switch u.Role {
	case user.RoleMember:
		if m, err := s.store.GetMemberByUserID(ctx, u.ID); err == nil {
			profile = m
		}
	case user.RoleCoach:
		if c, err := s.store.GetCoachByUserID(ctx, u.ID); err == nil {
			profile = c
		}
	}

	if err := s.bus.PublishEvents(user.LoginEvent{
		At:     time.Now().UTC(),
		UserID: u.ID,
		Email:  u.Email,
		Device: device,
	}); err != nil {
		s.logger.Error("failed to publish events", "error", err)
	}

	return LoginResult{User: u, Profile: profile, Token: token}, nil
}
