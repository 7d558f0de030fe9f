package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"volunteer-connect/internal/apperror"
	"volunteer-connect/internal/auth"
	"volunteer-connect/internal/models"
	"volunteer-connect/internal/repository"
)

var (
	errInvalidCredentials = apperror.Authentication("Invalid credentials")
	errPasswordTooLong    = apperror.Validation("password", fmt.Sprintf("Password must be at most %d bytes", auth.MaxPasswordBytes))
)

// RegisterInput is the registration payload; nil fields were not supplied
type RegisterInput struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

// LoginInput is the login payload
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is returned on successful authentication
type LoginResult struct {
	User  *models.User
	Token string
}

// AuthService handles registration and login
type AuthService struct {
	repo   *repository.Repository
	hasher *auth.PasswordHasher
	tokens *auth.TokenIssuer
}

// NewAuthService creates a new AuthService
func NewAuthService(repo *repository.Repository, hasher *auth.PasswordHasher, tokens *auth.TokenIssuer) *AuthService {
	return &AuthService{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register validates the payload and stores a new user with a hashed password
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	name, err := requiredString(input.Name, "name", "Name is required")
	if err != nil {
		return nil, err
	}
	email, err := requiredString(input.Email, "email", "Email is required")
	if err != nil {
		return nil, err
	}
	if input.Password == nil || *input.Password == "" {
		return nil, apperror.Validation("password", "Password is required")
	}
	if len(*input.Password) > auth.MaxPasswordBytes {
		return nil, errPasswordTooLong
	}
	roleText, err := requiredString(input.Role, "role", "Role is required")
	if err != nil {
		return nil, err
	}

	role := models.Role(roleText)
	if !role.Valid() {
		return nil, apperror.Validation("role", "Role must be one of: volunteer, organization")
	}

	hash, err := s.hasher.Hash(*input.Password)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, errPasswordTooLong
	}
	if err != nil {
		return nil, storeError("register", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		_, err := tx.GetUserByEmail(ctx, email)
		if err == nil {
			return emailConflict()
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx.CreateUser(ctx, user)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, emailConflict()
		}
		return nil, storeError("register", err)
	}

	log.Printf("New user registered: role=%s (ID: %d)", user.Role, user.ID)
	return user, nil
}

// Login checks the credentials and issues a session token. Unknown emails and
// wrong passwords produce the same error.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, errInvalidCredentials
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, lookupError("login", err, errInvalidCredentials)
	}

	if !s.hasher.Matches(user.PasswordHash, input.Password) {
		return nil, errInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, storeError("login", err)
	}

	log.Printf("User logged in (ID: %d)", user.ID)
	return &LoginResult{User: user, Token: token}, nil
}

func emailConflict() *apperror.Error {
	return apperror.Conflict("email", "Email already exists")
}
