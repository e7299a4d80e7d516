package services

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"hrms/internal/models"
	"hrms/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// emailPattern decides whether a login identifier is an email or a username.
// It is intentionally loose: it only branches the lookup, it does not
// validate addresses.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// tokenDuration is the fixed validity window of issued tokens.
const tokenDuration = 30 * 24 * time.Hour

// AuthService handles business logic for authentication and authorization.
type AuthService struct {
	userRepo  repositories.UserRepository
	jwtSecret []byte
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
	}
}

// RegisterUser registers a new user. The raw password on the user is
// replaced by its bcrypt hash before anything is persisted; the hashing is
// an explicit step here, not a storage-layer hook. The duplicate pre-check
// is advisory — the unique indexes on username and email are the real guard
// against concurrent signups.
func (s *AuthService) RegisterUser(user *models.User) error {
	if _, err := s.userRepo.GetByUsername(user.Username); err == nil {
		return fmt.Errorf("username '%s': %w", user.Username, ErrDuplicateIdentity)
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if _, err := s.userRepo.GetByEmail(user.Email); err == nil {
		return fmt.Errorf("email '%s': %w", user.Email, ErrDuplicateIdentity)
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword)

	if err := s.userRepo.Create(user); err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}

// LoginUser authenticates a user by email or username and returns a signed
// token on success. Every failure surfaces as ErrInvalidCredentials so the
// caller cannot tell which part was wrong.
func (s *AuthService) LoginUser(identifier, password string) (string, error) {
	var (
		user *models.User
		err  error
	)
	if emailPattern.MatchString(identifier) {
		user, err = s.userRepo.GetByEmail(identifier)
	} else {
		user, err = s.userRepo.GetByUsername(identifier)
	}
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.GenerateToken(user.ID)
}

// GenerateToken produces a signed token for the given user ID with a fixed
// 30-day expiry.
func (s *AuthService) GenerateToken(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  userID,
		"iat": now.Unix(),
		"exp": now.Add(tokenDuration).Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken verifies signature and expiry and returns the subject user
// ID. Any tampering, malformed structure, wrong signature, or expiry yields
// ErrInvalidToken — causes are never distinguished for the caller.
func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}
	userID, ok := claims["id"].(string)
	if !ok || userID == "" {
		return "", ErrInvalidToken
	}
	return userID, nil
}

// GetUserByID resolves a user by ID. Used by the authorization gate after
// token verification: a valid token whose subject no longer exists must
// still be rejected.
func (s *AuthService) GetUserByID(id string) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// UserUpdate carries the fields a user may change. Nil fields are left
// untouched.
type UserUpdate struct {
	Username *string
	Email    *string
	Password *string
}

// UpdateUser applies a sparse update to a user. A password change
// re-triggers hashing. UpdatedAt is refreshed by the save even when no
// field actually changed.
func (s *AuthService) UpdateUser(id string, update UserUpdate) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.Username != nil {
		user.Username = *update.Username
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hashedPassword)
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
