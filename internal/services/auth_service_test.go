package services_test

import (
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"hrms/internal/models"
	"hrms/internal/repositories"
	"hrms/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func notFoundErr(what string) error {
	return fmt.Errorf("%s: %w", what, repositories.ErrNotFound)
}

func TestMain(m *testing.M) {
	log.SetOutput(os.Stdout)
	code := m.Run()
	os.Exit(code)
}

func TestAuthService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	user := &models.User{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
	}

	// Successful registration: the stored password must be a bcrypt hash of
	// the raw input, never the raw input itself.
	mockRepo.On("GetByUsername", user.Username).Return(nil, notFoundErr("user")).Once()
	mockRepo.On("GetByEmail", user.Email).Return(nil, notFoundErr("user")).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	err := authService.RegisterUser(user)
	assert.NoError(t, err)
	assert.NotEqual(t, "password123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
	mockRepo.AssertExpectations(t)

	// Username already taken
	mockRepo.On("GetByUsername", user.Username).Return(&models.User{ID: "1"}, nil).Once()
	err = authService.RegisterUser(user)
	assert.ErrorIs(t, err, services.ErrDuplicateIdentity)
	mockRepo.AssertExpectations(t)

	// Email already registered
	mockRepo.On("GetByUsername", user.Username).Return(nil, notFoundErr("user")).Once()
	mockRepo.On("GetByEmail", user.Email).Return(&models.User{ID: "1"}, nil).Once()
	err = authService.RegisterUser(user)
	assert.ErrorIs(t, err, services.ErrDuplicateIdentity)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-123",
		Username: "testuser",
		Email:    "test@example.com",
		Password: string(hashedPassword),
	}

	// Login by username
	mockRepo.On("GetByUsername", "testuser").Return(user, nil).Once()
	token, err := authService.LoginUser("testuser", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	mockRepo.AssertExpectations(t)

	// Login by email: an identifier matching the email pattern must branch
	// to the email lookup.
	mockRepo.On("GetByEmail", "test@example.com").Return(user, nil).Once()
	token, err = authService.LoginUser("test@example.com", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	mockRepo.AssertExpectations(t)

	// The issued token carries exactly the user's ID as subject.
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(testJWTSecret), nil
	})
	assert.NoError(t, err)
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, user.ID, claims["id"])

	// Wrong password
	mockRepo.On("GetByUsername", "testuser").Return(user, nil).Once()
	_, err = authService.LoginUser("testuser", "wrongpassword")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)

	// Unknown user surfaces the same uniform rejection
	mockRepo.On("GetByUsername", "nonexistentuser").Return(nil, notFoundErr("user")).Once()
	_, err = authService.LoginUser("nonexistentuser", "password123")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	// Round trip: a token issued for a user verifies back to that user's ID.
	tokenString, err := authService.GenerateToken("user-123")
	assert.NoError(t, err)
	userID, err := authService.ValidateToken(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", userID)

	// Malformed token
	_, err = authService.ValidateToken("invalid.token.string")
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	// Wrong signature
	otherService := services.NewAuthService(mockRepo, "some_other_secret")
	foreignToken, _ := otherService.GenerateToken("user-123")
	_, err = authService.ValidateToken(foreignToken)
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	// Expired token
	expiredToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  "user-123",
		"iat": time.Now().Add(-2 * time.Hour).Unix(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	expiredTokenString, _ := expiredToken.SignedString([]byte(testJWTSecret))
	_, err = authService.ValidateToken(expiredTokenString)
	assert.ErrorIs(t, err, services.ErrInvalidToken)
}

func TestAuthService_UpdateUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	oldHash, _ := bcrypt.GenerateFromPassword([]byte("oldpassword"), bcrypt.DefaultCost)
	stored := &models.User{
		ID:       "user-123",
		Username: "testuser",
		Email:    "test@example.com",
		Password: string(oldHash),
	}

	// A password change re-triggers hashing; untouched fields stay as they
	// were.
	newPassword := "newpassword"
	mockRepo.On("GetByID", "user-123").Return(stored, nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.User")).Return(nil).Once()

	updated, err := authService.UpdateUser("user-123", services.UserUpdate{Password: &newPassword})
	assert.NoError(t, err)
	assert.Equal(t, "testuser", updated.Username)
	assert.NotEqual(t, newPassword, updated.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte(newPassword)))
	mockRepo.AssertExpectations(t)

	// Only the supplied fields change.
	newEmail := "new@example.com"
	mockRepo.On("GetByID", "user-123").Return(stored, nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.User")).Return(nil).Once()

	updated, err = authService.UpdateUser("user-123", services.UserUpdate{Email: &newEmail})
	assert.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Email)
	assert.Equal(t, "testuser", updated.Username)
	mockRepo.AssertExpectations(t)

	// Absent user
	mockRepo.On("GetByID", "ghost").Return(nil, notFoundErr("user")).Once()
	_, err = authService.UpdateUser("ghost", services.UserUpdate{Email: &newEmail})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}
