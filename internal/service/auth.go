package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"
	"unicode"

	"github.com/parkwell/parkwell-go/internal/crypto"
	"github.com/parkwell/parkwell-go/internal/mailer"
	"github.com/parkwell/parkwell-go/internal/model"
	"github.com/parkwell/parkwell-go/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrWeakPassword       = errors.New("password must be at least 6 characters with an uppercase letter, a number and a special character")
	ErrNameRequired       = errors.New("first and last name must be 2-50 characters")
	ErrEmailTaken         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidResetToken  = errors.New("invalid or expired password reset link")
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// AuthService handles registration, login and the password-reset flow.
type AuthService struct {
	users       *repository.UserRepository
	mail        mailer.Mailer
	jwtSecret   string
	jwtExpiry   time.Duration
	resetExpiry time.Duration
	frontendURL string
}

// NewAuthService creates a new AuthService.
func NewAuthService(users *repository.UserRepository, mail mailer.Mailer, jwtSecret string, jwtExpiry, resetExpiry time.Duration, frontendURL string) *AuthService {
	return &AuthService{
		users:       users,
		mail:        mail,
		jwtSecret:   jwtSecret,
		jwtExpiry:   jwtExpiry,
		resetExpiry: resetExpiry,
		frontendURL: frontendURL,
	}
}

// Register creates a new user account and returns an auth token (auto-login).
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error) {
	if !emailPattern.MatchString(req.Email) {
		return model.AuthResponse{}, ErrInvalidEmail
	}
	if !validPassword(req.Password) {
		return model.AuthResponse{}, ErrWeakPassword
	}
	if !validName(req.FirstName) || !validName(req.LastName) {
		return model.AuthResponse{}, ErrNameRequired
	}
	role, err := model.ParseRole(req.Role)
	if err != nil {
		return model.AuthResponse{}, err
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.AuthResponse{}, err
	}

	user := &model.User{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         role,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.AuthResponse{}, ErrEmailTaken
		}
		return model.AuthResponse{}, err
	}

	token, err := crypto.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{Token: token, User: user.Public()}, nil
}

// Login authenticates a user and returns an auth token. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	if !crypto.VerifyPassword(req.Password, user.PasswordHash) {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{Token: token, User: user.Public()}, nil
}

// CurrentUser retrieves the authenticated user's profile.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (model.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, ErrUserNotFound
		}
		return model.UserResponse{}, err
	}
	return user.Public(), nil
}

// ForgotPassword starts the reset flow. It reveals nothing about account
// existence: unknown emails and outstanding live tokens both return success
// without issuing anything.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil
		}
		return err
	}

	if user.ResetToken != nil && user.ResetTokenExpiry != nil && user.ResetTokenExpiry.After(time.Now()) {
		return nil
	}

	token, err := crypto.GenerateResetToken()
	if err != nil {
		return err
	}

	if err := s.users.SetResetToken(ctx, user.ID, token, time.Now().Add(s.resetExpiry)); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", s.frontendURL, token)
	if err := s.mail.SendPasswordReset(ctx, user.Email, resetURL); err != nil {
		// The token is already stored; a retry of the flow within the expiry
		// window returns success without issuing a new one.
		slog.ErrorContext(ctx, "sending password reset email", "error", err)
	}
	return nil
}

// ResetPassword consumes a reset token and replaces the user's password.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if !validPassword(newPassword) {
		return ErrWeakPassword
	}

	user, err := s.users.GetByLiveResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}

	hash, err := crypto.HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}

	if err := s.mail.SendPasswordChanged(ctx, user.Email); err != nil {
		slog.ErrorContext(ctx, "sending password changed email", "error", err)
	}
	return nil
}

// validPassword enforces the registration policy: at least 6 characters with
// an uppercase letter, a digit and a non-alphanumeric character.
func validPassword(password string) bool {
	if len(password) < 6 {
		return false
	}
	var upper, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			special = true
		}
	}
	return upper && digit && special
}

func validName(name string) bool {
	return len(name) >= 2 && len(name) <= 50
}
