package service

import (
	"context"
	"strings"

	"agrimart/internal/model"
	"agrimart/internal/repository"
	"agrimart/internal/validation"
)

type AddressInput struct {
	Label        string `json:"label" validate:"required,max=50"`
	AddressLine1 string `json:"address_line1" validate:"required,max=200"`
	AddressLine2 string `json:"address_line2" validate:"max=200"`
	City         string `json:"city" validate:"required,max=100"`
	State        string `json:"state" validate:"required,max=100"`
	Pincode      string `json:"pincode" validate:"required,pincode"`
	IsDefault    bool   `json:"is_default"`
}

type AddressService interface {
	// Add saves an address. The user's first address becomes the default.
	Add(ctx context.Context, phone string, in AddressInput) (*model.Address, error)
	List(ctx context.Context, phone string) ([]model.Address, error)
	SetDefault(ctx context.Context, phone string, id int64) error
	Delete(ctx context.Context, phone string, id int64) error
}

type addressService struct {
	repo repository.AddressRepository
}

func NewAddressService(repo repository.AddressRepository) AddressService {
	return &addressService{repo: repo}
}

func (s *addressService) Add(ctx context.Context, phone string, in AddressInput) (*model.Address, error) {
	for _, f := range []*string{&in.Label, &in.AddressLine1, &in.AddressLine2, &in.City, &in.State, &in.Pincode} {
		*f = strings.TrimSpace(*f)
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	existing, err := s.repo.ListByUser(ctx, phone)
	if err != nil {
		return nil, err
	}
	first := len(existing) == 0

	a, err := s.repo.Create(ctx, &model.Address{
		UserPhone:    phone,
		Label:        in.Label,
		AddressLine1: in.AddressLine1,
		AddressLine2: in.AddressLine2,
		City:         in.City,
		State:        in.State,
		Pincode:      in.Pincode,
		IsDefault:    first,
	})
	if err != nil {
		return nil, err
	}
	if in.IsDefault && !first {
		if err := s.repo.SetDefault(ctx, phone, a.ID); err != nil {
			return nil, err
		}
		a.IsDefault = true
	}
	return a, nil
}

func (s *addressService) List(ctx context.Context, phone string) ([]model.Address, error) {
	return s.repo.ListByUser(ctx, phone)
}

func (s *addressService) SetDefault(ctx context.Context, phone string, id int64) error {
	return notFound(s.repo.SetDefault(ctx, phone, id))
}

func (s *addressService) Delete(ctx context.Context, phone string, id int64) error {
	return notFound(s.repo.Delete(ctx, phone, id))
}
