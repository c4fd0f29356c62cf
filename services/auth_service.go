package services

import (
	"fmt"

	"match-lab/auth"
	"match-lab/errors"
	"match-lab/repositories"
)

type Token string

type IAuthService interface {
	Login(email, password string) (Token, error)
	Register(email, displayName, password string) (Token, error)
}

// AuthService turns credentials into session tokens. The matchmaking core
// never sees passwords; it only consumes the verified identity behind the
// token.
type AuthService struct {
	users  repositories.IUserRepository
	tokens *auth.TokenService
}

func NewAuthService(users repositories.IUserRepository, tokens *auth.TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

func (s *AuthService) Register(email, displayName, password string) (Token, error) {
	req := auth.RegisterRequest{Email: email, DisplayName: displayName, Password: password}
	// Validate business rules before any expensive cryptographic work.
	if err := auth.ValidateRegister(req); err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrInvalidPassword, err)
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hashing failed: %w", err)
	}

	userID, err := s.users.CreateUser(email, displayName, hashed)
	if err != nil {
		return "", err
	}

	token, err := s.tokens.GenerateToken(userID, displayName)
	if err != nil {
		return "", errors.ErrTokenGeneration
	}
	return Token(token), nil
}

func (s *AuthService) Login(email, password string) (Token, error) {
	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		// Generic error to prevent user enumeration.
		return "", errors.ErrInvalidCredentials
	}

	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match {
		return "", errors.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID, user.DisplayName)
	if err != nil {
		return "", errors.ErrTokenGeneration
	}
	return Token(token), nil
}
