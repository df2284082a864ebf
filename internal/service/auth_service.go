package service

import (
	"errors"

	"go-stocktrack/internal/model"
	"go-stocktrack/internal/repository"
	"go-stocktrack/pkg/jwt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user account is inactive")
)

type LoginResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

type AuthService interface {
	Login(email, password string) (*LoginResponse, error)
	ValidateToken(tokenString string) (*model.User, error)
}

type authService struct {
	users  repository.UserRepository
	secret []byte
}

func NewAuthService(users repository.UserRepository, secret []byte) AuthService {
	return &authService{users: users, secret: secret}
}

func (s *authService) Login(email, password string) (*LoginResponse, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}
	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(s.secret, user.ID, user.Email, user.FullName)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{Token: token, User: user}, nil
}

func (s *authService) ValidateToken(tokenString string) (*model.User, error) {
	claims, err := jwt.ValidateToken(s.secret, tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(claims.UserID)
	if err != nil {
		return nil, jwt.ErrInvalidToken
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}
	return user, nil
}
