package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"agrimart/internal/model"
	"agrimart/internal/repository"
	"agrimart/internal/validation"
)

// UnknownSeller is shown when a listing's seller account no longer resolves.
const UnknownSeller = "Unknown Seller"

// ProfileUpdate is a partial profile change; omitted fields stay as they are.
type ProfileUpdate struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=50,personname"`
	Email    *string `json:"email" validate:"omitempty,email,max=100"`
	Location *string `json:"location" validate:"omitempty,max=100"`
}

type UserListResult struct {
	Items []model.User `json:"data"`
	Total int          `json:"total"`
}

type UserService interface {
	Profile(ctx context.Context, phone string) (*model.User, error)
	UpdateProfile(ctx context.Context, phone string, upd ProfileUpdate) (*model.User, error)
	// SellerContact never fails on a missing account; it falls back to UnknownSeller.
	SellerContact(ctx context.Context, phone string) (*model.SellerContact, error)
	List(ctx context.Context, limit, offset int) (*UserListResult, error)
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) Profile(ctx context.Context, phone string) (*model.User, error) {
	u, err := s.users.FindByPhone(ctx, phone)
	if err != nil {
		return nil, notFound(err)
	}
	return u, nil
}

func (s *userService) UpdateProfile(ctx context.Context, phone string, upd ProfileUpdate) (*model.User, error) {
	trim(upd.Name)
	trim(upd.Email)
	trim(upd.Location)
	if err := validation.Struct(upd); err != nil {
		return nil, err
	}
	u, err := s.users.Update(ctx, phone, model.UserUpdate{
		Name:     upd.Name,
		Email:    upd.Email,
		Location: upd.Location,
	})
	if err != nil {
		return nil, notFound(err)
	}
	return u, nil
}

func (s *userService) SellerContact(ctx context.Context, phone string) (*model.SellerContact, error) {
	u, err := s.users.FindByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &model.SellerContact{Name: UnknownSeller, Phone: phone}, nil
		}
		return nil, err
	}
	return &model.SellerContact{
		Name:     u.Name,
		Phone:    u.Phone,
		Email:    u.Email,
		Location: u.Location,
	}, nil
}

func (s *userService) List(ctx context.Context, limit, offset int) (*UserListResult, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	res, err := s.users.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &UserListResult{Items: res.Items, Total: res.Total}, nil
}

func trim(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
