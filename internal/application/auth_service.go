package application

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/campusbridge/student-support-api/internal/domain/entity"
	repo "github.com/campusbridge/student-support-api/internal/domain/repository"
	"github.com/campusbridge/student-support-api/pkg/helpers"
	"github.com/campusbridge/student-support-api/pkg/mailer"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthorized      = errors.New("not authorized")
)

// AuthService implements registration and login. Both flows issue a fresh
// bearer token; there is no server-side session state.
type AuthService struct {
	Users       repo.UserRepository
	JWT         *helpers.JWTManager
	Logger      *logrus.Logger
	Pub         *helpers.RabbitPublisher
	AppName     string
	MailEnabled bool
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger, pub *helpers.RabbitPublisher, appName string, mailEnabled bool) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger, Pub: pub, AppName: appName, MailEnabled: mailEnabled}
}

type RegisterInput struct {
	Name      string
	Email     string
	Password  string
	StudentID string
	Phone     string
}

// AuthResult is returned by both register and login.
type AuthResult struct {
	Token string
	User  entity.PublicView
}

// Register hashes the password, persists the user, and issues a token.
// A uniqueness violation surfaces as *repository.DuplicateError.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	phone := in.Phone
	if phone == "" {
		// opaque placeholder keeps the phone uniqueness constraint satisfied
		phone = uuid.NewString()
	}

	u := &entity.User{
		Name:      in.Name,
		Email:     in.Email,
		Password:  hash,
		StudentID: in.StudentID,
		Phone:     phone,
		Role:      entity.RoleStudent,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, err
	}

	token, err := s.JWT.Generate(u.ID, u.Role)
	if err != nil {
		return nil, err
	}

	s.enqueueWelcomeEmail(ctx, u)

	return &AuthResult{Token: token, User: u.Public()}, nil
}

// Login validates credentials and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		// only an absent account is a credential failure; infrastructure
		// errors surface to the handler's 500 path
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.JWT.Generate(u.ID, u.Role)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: u.Public()}, nil
}

func (s *AuthService) enqueueWelcomeEmail(ctx context.Context, u *entity.User) {
	if s.Pub == nil || !s.MailEnabled {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: mailer.TemplateWelcome,
		Data: map[string]any{
			"Name":    u.Name,
			"Email":   u.Email,
			"AppName": s.AppName,
		},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("enqueue welcome email failed")
	}
}
