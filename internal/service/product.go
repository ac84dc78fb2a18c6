package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"agrimart/internal/model"
	"agrimart/internal/repository"
	"agrimart/internal/storage"
	"agrimart/internal/validation"
)

// ProductInput is the seller-editable part of a listing.
type ProductInput struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Category    string  `json:"category" validate:"required,oneof=Vegetables Fruits Grains Pulses Spices Dairy Other"`
	Variety     string  `json:"variety" validate:"max=100"`
	Unit        string  `json:"unit" validate:"required,oneof=kg quintal ton litre dozen piece bundle"`
	Price       float64 `json:"price" validate:"gt=0"`
	StockQty    float64 `json:"stock_qty" validate:"gte=0"`
	Description string  `json:"description" validate:"max=1000"`
	// Status is honoured by Update only; new listings start active.
	Status string `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (in *ProductInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Variety = strings.TrimSpace(in.Variety)
	in.Description = strings.TrimSpace(in.Description)
}

// ImageUpload is a product photo streamed from the client.
type ImageUpload struct {
	Reader   io.Reader
	Filename string
	Size     int64
}

type ProductService interface {
	Add(ctx context.Context, sellerPhone string, in ProductInput) (*model.Product, error)
	Update(ctx context.Context, sellerPhone string, id int64, in ProductInput) (*model.Product, error)
	// Delete deactivates the listing; past orders keep referencing it.
	Delete(ctx context.Context, sellerPhone string, id int64) error
	Get(ctx context.Context, id int64) (*model.Product, error)
	Mine(ctx context.Context, sellerPhone string) ([]model.Product, error)
	All(ctx context.Context) ([]model.Product, error)
	// Marketplace lists active, in-stock products with their sellers. limit 0 means all.
	Marketplace(ctx context.Context, limit int) ([]model.ProductListing, error)
	// Search falls back to Marketplace for a blank term.
	Search(ctx context.Context, term string) ([]model.ProductListing, error)
	// UploadImage stores the photo and points the product at it. The stored
	// object is removed again when the product cannot be updated.
	UploadImage(ctx context.Context, sellerPhone string, id int64, img ImageUpload) (*model.Product, error)
	ImageURL(ctx context.Context, id int64) (string, error)
}

type productService struct {
	repo          repository.ProductRepository
	store         storage.ObjectStore
	presignExpiry time.Duration
}

// NewProductService builds the product use cases. store may be nil, in which
// case image operations return ErrImagesDisabled.
func NewProductService(repo repository.ProductRepository, store storage.ObjectStore, presignExpiry time.Duration) ProductService {
	if presignExpiry <= 0 {
		presignExpiry = 15 * time.Minute
	}
	return &productService{repo: repo, store: store, presignExpiry: presignExpiry}
}

func (s *productService) Add(ctx context.Context, sellerPhone string, in ProductInput) (*model.Product, error) {
	in.normalize()
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if in.StockQty <= 0 {
		return nil, validation.Errors{{Field: "stock_qty", Error: "must be greater than 0"}}
	}
	return s.repo.Create(ctx, &model.Product{
		SellerPhone: sellerPhone,
		Name:        in.Name,
		Category:    in.Category,
		Variety:     in.Variety,
		Unit:        in.Unit,
		Price:       in.Price,
		StockQty:    in.StockQty,
		Description: in.Description,
		Status:      model.ProductStatusActive,
	})
}

func (s *productService) owned(ctx context.Context, sellerPhone string, id int64) (*model.Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if p.SellerPhone != sellerPhone {
		return nil, ErrForbidden
	}
	return p, nil
}

func (s *productService) Update(ctx context.Context, sellerPhone string, id int64, in ProductInput) (*model.Product, error) {
	in.normalize()
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	current, err := s.owned(ctx, sellerPhone, id)
	if err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = current.Status
	}
	p, err := s.repo.Update(ctx, &model.Product{
		ID:          id,
		SellerPhone: sellerPhone,
		Name:        in.Name,
		Category:    in.Category,
		Variety:     in.Variety,
		Unit:        in.Unit,
		Price:       in.Price,
		StockQty:    in.StockQty,
		Description: in.Description,
		Status:      status,
	})
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

func (s *productService) Delete(ctx context.Context, sellerPhone string, id int64) error {
	if _, err := s.owned(ctx, sellerPhone, id); err != nil {
		return err
	}
	return notFound(s.repo.Delete(ctx, id, sellerPhone))
}

func (s *productService) Get(ctx context.Context, id int64) (*model.Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

func (s *productService) Mine(ctx context.Context, sellerPhone string) ([]model.Product, error) {
	return s.repo.ListBySeller(ctx, sellerPhone)
}

func (s *productService) All(ctx context.Context) ([]model.Product, error) {
	return s.repo.ListActive(ctx)
}

func (s *productService) Marketplace(ctx context.Context, limit int) ([]model.ProductListing, error) {
	if limit < 0 {
		limit = 0
	}
	return s.repo.ListAvailable(ctx, limit)
}

func (s *productService) Search(ctx context.Context, term string) ([]model.ProductListing, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.Marketplace(ctx, 0)
	}
	return s.repo.Search(ctx, term)
}

func (s *productService) UploadImage(ctx context.Context, sellerPhone string, id int64, img ImageUpload) (*model.Product, error) {
	if s.store == nil {
		return nil, ErrImagesDisabled
	}
	if img.Reader == nil {
		return nil, ErrReaderNil
	}
	if img.Size > storage.MaxImageSize {
		return nil, validation.Errors{{Field: "image", Error: "must not exceed 5 MB"}}
	}
	key, err := storage.ImageKey(img.Filename)
	if err != nil {
		return nil, validation.Errors{{Field: "image", Error: "must be a jpg, png or webp file"}}
	}

	p, err := s.owned(ctx, sellerPhone, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.store.Put(ctx, key, img.Reader, storage.PutOptions{
		Size:        img.Size,
		ContentType: storage.ImageContentType(key),
		Metadata:    map[string]string{"original-filename": img.Filename},
	}); err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	if err := s.repo.SetImagePath(ctx, id, sellerPhone, key); err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", notFound(err))
	}

	previous := p.ImagePath
	p.ImagePath = key
	if previous != "" && previous != key {
		// The new image is already referenced; a leftover object is harmless.
		_ = s.store.Delete(ctx, previous)
	}
	return p, nil
}

func (s *productService) ImageURL(ctx context.Context, id int64) (string, error) {
	if s.store == nil {
		return "", ErrImagesDisabled
	}
	p, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if p.ImagePath == "" {
		return "", ErrNoImage
	}
	u, err := s.store.PresignGet(ctx, p.ImagePath, s.presignExpiry)
	if err != nil {
		if storage.IsNotFound(err) {
			return "", ErrNoImage
		}
		return "", err
	}
	return u, nil
}

