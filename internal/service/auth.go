package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"agrimart/internal/auth"
	"agrimart/internal/model"
	"agrimart/internal/repository"
	"agrimart/internal/validation"
)

type RegisterInput struct {
	Name     string     `json:"name" validate:"required,min=2,max=50,personname"`
	Phone    string     `json:"phone" validate:"required,phone_in"`
	Email    string     `json:"email" validate:"required,email,max=100"`
	Password string     `json:"password" validate:"required,min=6,max=20"`
	Role     model.Role `json:"role" validate:"required,oneof=seller buyer"`
	Location string     `json:"location" validate:"max=100"`
}

type LoginInput struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Session is returned by a successful register or login.
type Session struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      *model.User `json:"user"`
}

// AuthService registers accounts and exchanges credentials for tokens.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*Session, error)
	// Login fails with ErrInvalidCredentials whether the phone or the password is wrong.
	Login(ctx context.Context, in LoginInput) (*Session, error)
	Verify(token string) (*auth.Claims, error)
}

type authService struct {
	users  repository.UserRepository
	tokens *auth.Tokens
}

func NewAuthService(users repository.UserRepository, tokens *auth.Tokens) AuthService {
	return &authService{users: users, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	phone, _ := validation.NormalizePhone(in.Phone)

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.users.Create(ctx, &model.User{
		Name:         in.Name,
		Phone:        phone,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		Location:     strings.TrimSpace(in.Location),
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrPhoneTaken
		}
		return nil, err
	}
	return s.session(u)
}

func (s *authService) Login(ctx context.Context, in LoginInput) (*Session, error) {
	phone, ok := validation.NormalizePhone(in.Phone)
	if !ok || in.Password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.users.FindByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(u.PasswordHash, in.Password) {
		return nil, ErrInvalidCredentials
	}
	return s.session(u)
}

func (s *authService) Verify(token string) (*auth.Claims, error) {
	return s.tokens.Parse(token)
}

func (s *authService) session(u *model.User) (*Session, error) {
	token, exp, err := s.tokens.Issue(u)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, ExpiresAt: exp, User: u}, nil
}
