package application

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-diary-api/internal/domain/entity"
	repo "github.com/oksasatya/go-diary-api/internal/domain/repository"
	"github.com/oksasatya/go-diary-api/pkg/helpers"
	"github.com/oksasatya/go-diary-api/pkg/mailer"
	"github.com/oksasatya/go-diary-api/pkg/mailer/templates"
	"github.com/oksasatya/go-diary-api/pkg/validation"
)

const MinPasswordLength = 6

// JobPublisher puts a JSON job on a queue.
type JobPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

type AuthService struct {
	Repo   repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger

	// Welcome email; disabled while Mail is nil.
	Mail      JobPublisher
	AppName   string
	ClientURL string

	dummyOnce sync.Once
	dummyHash string
}

func NewAuthService(repo repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: repo, JWT: jwt, Logger: logger}
}

// WithWelcomeMail enables the best-effort welcome email after registration.
func (s *AuthService) WithWelcomeMail(pub JobPublisher, appName, clientURL string) *AuthService {
	s.Mail = pub
	s.AppName = appName
	s.ClientURL = clientURL
	return s
}

type RegisterInput struct {
	Username string `json:"username" validate:"username"`
	Email    string `json:"email" validate:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      entity.PublicUser
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = normalizeEmail(in.Email)
	if in.Username == "" || in.Email == "" || strings.TrimSpace(in.Password) == "" {
		return nil, invalid("All fields are required")
	}
	if utf8.RuneCountInString(in.Password) < MinPasswordLength {
		return nil, ErrWeakPassword
	}
	if err := validation.Struct(in); err != nil {
		return nil, invalidFields("Invalid registration details", err)
	}

	existing, err := s.Repo.FindByEmailOrUsername(ctx, in.Email, in.Username)
	switch {
	case err == nil && existing != nil:
		return nil, ErrDuplicateUser
	case err != nil && !errors.Is(err, repo.ErrNotFound):
		return nil, internal("find user", err)
	}

	u, err := entity.NewUser(in.Username, in.Email, in.Password)
	if err != nil {
		if errors.Is(err, helpers.ErrPasswordTooLong) {
			return nil, &ValidationError{
				Message: "Password is too long",
				Details: map[string]string{"password": "must be at most 72 bytes long"},
			}
		}
		return nil, internal("hash password", err)
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrDuplicateUser
		}
		return nil, internal("create user", err)
	}

	res, err := s.issue(u)
	if err != nil {
		return nil, err
	}
	authStats.Add(statRegistrations, 1)
	helpers.LogInfo(s.Logger, "user registered", logrus.Fields{"user_id": u.ID})
	s.sendWelcome(ctx, u)
	return res, nil
}

func (s *AuthService) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, invalid("Email and password are required")
	}

	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			// burn the same bcrypt work as a real comparison
			helpers.CompareHashAndPassword(s.dummy(), in.Password)
			authStats.Add(statLoginFailures, 1)
			return nil, ErrInvalidCredentials
		}
		return nil, internal("get user", err)
	}
	if !u.CheckPassword(in.Password) {
		authStats.Add(statLoginFailures, 1)
		return nil, ErrInvalidCredentials
	}

	res, err := s.issue(u)
	if err != nil {
		return nil, err
	}
	authStats.Add(statLogins, 1)
	return res, nil
}

// CurrentUser loads the user a verified token names. A missing user is
// reported as ErrUnauthenticated.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, internal("get user", err)
	}
	return u, nil
}

func (s *AuthService) UpdateTheme(ctx context.Context, userID, theme string) (*entity.User, error) {
	t := entity.Theme(strings.TrimSpace(theme))
	if !t.Valid() {
		return nil, invalid("Invalid theme")
	}
	u, err := s.Repo.UpdateTheme(ctx, userID, t)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, internal("update theme", err)
	}
	return u, nil
}

func (s *AuthService) issue(u *entity.User) (*AuthResult, error) {
	token, exp, err := s.JWT.Issue(u.ID)
	if err != nil {
		return nil, internal("issue token", err)
	}
	return &AuthResult{Token: token, ExpiresAt: exp, User: u.Public()}, nil
}

func (s *AuthService) dummy() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = helpers.HashPassword("not-a-real-password")
	})
	return s.dummyHash
}

func (s *AuthService) sendWelcome(ctx context.Context, u *entity.User) {
	if s.Mail == nil {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: templates.Welcome,
		Data: templates.NewWelcomeData(s.AppName, u.Username, u.Email,
			templates.WithClientURL(s.ClientURL),
			templates.WithTime(u.CreatedAt),
		),
	}
	c, cancel := context.WithTimeout(context.WithoutCancel(ctx), 3*time.Second)
	defer cancel()
	if err := s.Mail.PublishJSON(c, job); err != nil {
		helpers.LogError(s.Logger, "enqueue welcome email", err, logrus.Fields{"user_id": u.ID})
	}
}
