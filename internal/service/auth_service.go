package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"

	"task_tracker/internal/model"
	"task_tracker/internal/repository"
	"task_tracker/internal/utils"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("forbidden: user does not have permission for this action")
)

// ValidationKind identifies which signup rule failed. Human-readable messages
// are rendered from the kind at the HTTP boundary, not here.
type ValidationKind string

const (
	ValidationMissingFields    ValidationKind = "missing_fields"
	ValidationNonStringValues  ValidationKind = "non_string_values"
	ValidationPasswordTooShort ValidationKind = "password_too_short"
	ValidationInvalidEmail     ValidationKind = "invalid_email"
	ValidationDuplicateEmail   ValidationKind = "duplicate_email"
)

// ValidationError reports a rejected signup input. It is distinguishable from
// internal failures so callers can tell "your input was bad" from "the system
// is broken".
type ValidationError struct {
	Kind ValidationKind
}

func (e *ValidationError) Error() string {
	return "validation failed: " + string(e.Kind)
}

// Format check only; deliverability is out of scope.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SignupInput carries the raw decoded JSON fields. Fields stay untyped so a
// missing value and a non-string value remain distinguishable.
type SignupInput struct {
	Name     any `json:"name"`
	Email    any `json:"email"`
	Password any `json:"password"`
}

// AuthService provides signup, login and profile lookup.
type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	GetProfile(ctx context.Context, userID string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	jwtUtil  *utils.JWTUtil
	hasher   *utils.PasswordHasher
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil, hasher *utils.PasswordHasher) AuthService {
	return &authService{
		userRepo: userRepo,
		jwtUtil:  jwtUtil,
		hasher:   hasher,
	}
}

// validateSignup applies the signup rules in order; the first failing rule
// short-circuits. An empty string counts as missing.
func validateSignup(in SignupInput) (name, email, password string, err error) {
	for _, v := range []any{in.Name, in.Email, in.Password} {
		if v == nil {
			return "", "", "", &ValidationError{Kind: ValidationMissingFields}
		}
		if s, ok := v.(string); ok && s == "" {
			return "", "", "", &ValidationError{Kind: ValidationMissingFields}
		}
	}

	name, nameOK := in.Name.(string)
	email, emailOK := in.Email.(string)
	password, passwordOK := in.Password.(string)
	if !nameOK || !emailOK || !passwordOK {
		return "", "", "", &ValidationError{Kind: ValidationNonStringValues}
	}

	// Characters, not bytes: a two-character multibyte password is too short.
	if utf8.RuneCountInString(password) < 4 {
		return "", "", "", &ValidationError{Kind: ValidationPasswordTooShort}
	}

	if !emailRegex.MatchString(email) {
		return "", "", "", &ValidationError{Kind: ValidationInvalidEmail}
	}

	return name, email, password, nil
}

// Signup validates the input, hashes the password and creates the account.
// Every account created through signup is an administrator; this is a
// single-tenant system with no non-admin signup path.
func (s *authService) Signup(ctx context.Context, in SignupInput) (*model.User, error) {
	name, email, password, err := validateSignup(in)
	if err != nil {
		return nil, err
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, &ValidationError{Kind: ValidationDuplicateEmail}
	}

	hashedPassword, err := s.hasher.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         model.RoleAdmin,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique index may still reject a concurrent signup that passed
		// the FindByEmail check above.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, &ValidationError{Kind: ValidationDuplicateEmail}
		}
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}

	return user, nil
}

// Login authenticates a user and returns a signed access token. Unknown email
// and wrong password collapse into the same error.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("error finding user by email: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if !s.hasher.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtUtil.GenerateToken(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// GetProfile re-reads the canonical user record and enforces the admin role
// gate. Authentication happened upstream; this is the authorization step.
func (s *authService) GetProfile(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.Role != model.RoleAdmin {
		return nil, ErrForbidden
	}
	return user, nil
}
