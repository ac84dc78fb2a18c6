package service

import (
	"context"

	"agrimart/internal/model"
	"agrimart/internal/repository"
	"agrimart/internal/validation"
)

type CartLine struct {
	model.CartItem
	LineTotal float64 `json:"line_total"`
}

// CartView is the buyer's cart with totals.
type CartView struct {
	Items []CartLine `json:"items"`
	Total float64    `json:"total"`
}

type CartService interface {
	// Add puts qty units of a product into the cart, adding to any quantity
	// already there. A zero qty means one unit.
	Add(ctx context.Context, buyerPhone string, productID int64, qty float64) error
	Items(ctx context.Context, buyerPhone string) (*CartView, error)
	Remove(ctx context.Context, buyerPhone string, productID int64) error
	Clear(ctx context.Context, buyerPhone string) error
}

type cartService struct {
	cart     repository.CartRepository
	products repository.ProductRepository
}

func NewCartService(cart repository.CartRepository, products repository.ProductRepository) CartService {
	return &cartService{cart: cart, products: products}
}

func (s *cartService) Add(ctx context.Context, buyerPhone string, productID int64, qty float64) error {
	if qty == 0 {
		qty = 1
	}
	if qty < 0 {
		return validation.Errors{{Field: "quantity", Error: "must be greater than 0"}}
	}

	p, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return notFound(err)
	}
	if p.SellerPhone == buyerPhone {
		return ErrOwnProduct
	}
	if p.Status != model.ProductStatusActive || p.StockQty <= 0 {
		return ErrUnavailable
	}
	inCart, err := s.cart.Quantity(ctx, buyerPhone, productID)
	if err != nil {
		return err
	}
	if inCart+qty > p.StockQty {
		return repository.ErrInsufficientStock
	}
	return s.cart.Add(ctx, buyerPhone, productID, qty)
}

func (s *cartService) Items(ctx context.Context, buyerPhone string) (*CartView, error) {
	items, err := s.cart.Items(ctx, buyerPhone)
	if err != nil {
		return nil, err
	}
	view := &CartView{Items: make([]CartLine, 0, len(items))}
	for _, it := range items {
		line := CartLine{CartItem: it, LineTotal: it.LineTotal()}
		view.Total += line.LineTotal
		view.Items = append(view.Items, line)
	}
	return view, nil
}

func (s *cartService) Remove(ctx context.Context, buyerPhone string, productID int64) error {
	return notFound(s.cart.Remove(ctx, buyerPhone, productID))
}

func (s *cartService) Clear(ctx context.Context, buyerPhone string) error {
	return s.cart.Clear(ctx, buyerPhone)
}
