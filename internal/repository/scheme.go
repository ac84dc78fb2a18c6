package repository

import (
	"context"

	"agrimart/internal/model"
)

type SchemeRepository interface {
	// ListActive returns active schemes ordered by name.
	ListActive(ctx context.Context) ([]model.Scheme, error)
}
