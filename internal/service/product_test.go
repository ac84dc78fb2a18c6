package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agrimart/internal/model"
	repoMocks "agrimart/internal/repository/mocks"
	"agrimart/internal/storage"
	storeMocks "agrimart/internal/storage/mocks"
	"agrimart/internal/validation"
)

const (
	sellerPhone = "9876543210"
	buyerPhone  = "9123456789"
)

func tomatoInput() ProductInput {
	return ProductInput{Name: " Tomato ", Category: "Vegetables", Unit: "kg", Price: 40, StockQty: 100}
}

func TestProductService_Add(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		in         ProductInput
		setupMocks func(m *repoMocks.MockProductRepository)
		field      string
	}{
		{
			name: "happy path",
			in:   tomatoInput(),
			setupMocks: func(m *repoMocks.MockProductRepository) {
				m.On("Create", ctx, mock.MatchedBy(func(p *model.Product) bool {
					return p.Name == "Tomato" && p.SellerPhone == sellerPhone && p.Status == model.ProductStatusActive
				})).Return(&model.Product{ID: 1, Name: "Tomato"}, nil)
			},
		},
		{
			name: "zero price",
			in: func() ProductInput {
				in := tomatoInput()
				in.Price = 0
				return in
			}(),
			setupMocks: func(m *repoMocks.MockProductRepository) {},
			field:      "price",
		},
		{
			name: "zero stock",
			in: func() ProductInput {
				in := tomatoInput()
				in.StockQty = 0
				return in
			}(),
			setupMocks: func(m *repoMocks.MockProductRepository) {},
			field:      "stock_qty",
		},
		{
			name: "unknown unit",
			in: func() ProductInput {
				in := tomatoInput()
				in.Unit = "bag"
				return in
			}(),
			setupMocks: func(m *repoMocks.MockProductRepository) {},
			field:      "unit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockProductRepository)
			tt.setupMocks(mRepo)
			svc := NewProductService(mRepo, nil, 0)

			p, err := svc.Add(ctx, sellerPhone, tt.in)
			if tt.field != "" {
				var fe validation.Errors
				require.True(t, errors.As(err, &fe))
				assert.Equal(t, tt.field, fe[0].Field)
				assert.Nil(t, p)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(1), p.ID)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestProductService_Update(t *testing.T) {
	ctx := context.Background()
	existing := &model.Product{ID: 7, SellerPhone: sellerPhone, Status: model.ProductStatusInactive}

	t.Run("keeps status when omitted", func(t *testing.T) {
		mRepo := new(repoMocks.MockProductRepository)
		mRepo.On("FindByID", ctx, int64(7)).Return(existing, nil)
		mRepo.On("Update", ctx, mock.MatchedBy(func(p *model.Product) bool {
			return p.ID == 7 && p.Status == model.ProductStatusInactive && p.Price == 40
		})).Return(&model.Product{ID: 7}, nil)

		_, err := NewProductService(mRepo, nil, 0).Update(ctx, sellerPhone, 7, tomatoInput())
		assert.NoError(t, err)
		mRepo.AssertExpectations(t)
	})

	t.Run("other seller", func(t *testing.T) {
		mRepo := new(repoMocks.MockProductRepository)
		mRepo.On("FindByID", ctx, int64(7)).Return(existing, nil)

		_, err := NewProductService(mRepo, nil, 0).Update(ctx, "9000000000", 7, tomatoInput())
		assert.ErrorIs(t, err, ErrForbidden)
		mRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("missing", func(t *testing.T) {
		mRepo := new(repoMocks.MockProductRepository)
		mRepo.On("FindByID", ctx, int64(8)).Return(nil, sql.ErrNoRows)

		_, err := NewProductService(mRepo, nil, 0).Update(ctx, sellerPhone, 8, tomatoInput())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestProductService_Delete(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockProductRepository)
	mRepo.On("FindByID", ctx, int64(7)).Return(&model.Product{ID: 7, SellerPhone: sellerPhone}, nil)
	mRepo.On("Delete", ctx, int64(7), sellerPhone).Return(nil)

	assert.NoError(t, NewProductService(mRepo, nil, 0).Delete(ctx, sellerPhone, 7))
	mRepo.AssertExpectations(t)
}

func TestProductService_SearchFallsBackToMarketplace(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockProductRepository)
	listing := []model.ProductListing{{Product: model.Product{Name: "Tomato"}, SellerName: "Ramesh"}}
	mRepo.On("ListAvailable", ctx, 0).Return(listing, nil)
	mRepo.On("Search", ctx, "tom").Return(listing, nil)
	svc := NewProductService(mRepo, nil, 0)

	got, err := svc.Search(ctx, "   ")
	require.NoError(t, err)
	assert.Equal(t, listing, got)

	got, err = svc.Search(ctx, " tom ")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	mRepo.AssertNumberOfCalls(t, "ListAvailable", 1)
	mRepo.AssertNumberOfCalls(t, "Search", 1)
}

func TestProductService_UploadImage(t *testing.T) {
	ctx := context.Background()
	owned := func() *model.Product { return &model.Product{ID: 7, SellerPhone: sellerPhone} }

	tests := []struct {
		name       string
		filename   string
		setupMocks func(mStore *storeMocks.MockObjectStore, mRepo *repoMocks.MockProductRepository) io.Reader
		wantErr    error
		wantErrMsg string
	}{
		{
			name:     "happy path",
			filename: "tomato.JPG",
			setupMocks: func(mStore *storeMocks.MockObjectStore, mRepo *repoMocks.MockProductRepository) io.Reader {
				r := strings.NewReader("img")
				mRepo.On("FindByID", ctx, int64(7)).Return(owned(), nil)
				mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
					return strings.HasPrefix(key, "products/") && strings.HasSuffix(key, ".jpg")
				}), r, storage.PutOptions{
					Size:        3,
					ContentType: "image/jpeg",
					Metadata:    map[string]string{"original-filename": "tomato.JPG"},
				}).Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutOptions) storage.ObjectInfo {
					return storage.ObjectInfo{Key: key}
				}, nil)
				mRepo.On("SetImagePath", ctx, int64(7), sellerPhone, mock.AnythingOfType("string")).Return(nil)
				return r
			},
		},
		{
			name:     "unsupported type",
			filename: "notes.pdf",
			setupMocks: func(mStore *storeMocks.MockObjectStore, mRepo *repoMocks.MockProductRepository) io.Reader {
				return strings.NewReader("pdf")
			},
			wantErrMsg: "image must be a jpg, png or webp file",
		},
		{
			name:     "not owner",
			filename: "a.png",
			setupMocks: func(mStore *storeMocks.MockObjectStore, mRepo *repoMocks.MockProductRepository) io.Reader {
				mRepo.On("FindByID", ctx, int64(7)).Return(&model.Product{ID: 7, SellerPhone: "9000000000"}, nil)
				return strings.NewReader("img")
			},
			wantErr: ErrForbidden,
		},
		{
			name:     "storage error",
			filename: "a.png",
			setupMocks: func(mStore *storeMocks.MockObjectStore, mRepo *repoMocks.MockProductRepository) io.Reader {
				r := strings.NewReader("img")
				mRepo.On("FindByID", ctx, int64(7)).Return(owned(), nil)
				mStore.On("Put", ctx, mock.Anything, r, mock.Anything).Return(storage.ObjectInfo{}, errors.New("storage fail"))
				return r
			},
			wantErrMsg: "upload to storage: storage fail",
		},
		{
			name:     "repository error with successful rollback",
			filename: "a.png",
			setupMocks: func(mStore *storeMocks.MockObjectStore, mRepo *repoMocks.MockProductRepository) io.Reader {
				r := strings.NewReader("img")
				mRepo.On("FindByID", ctx, int64(7)).Return(owned(), nil)
				mStore.On("Put", ctx, mock.Anything, r, mock.Anything).Return(storage.ObjectInfo{}, nil)
				mRepo.On("SetImagePath", ctx, int64(7), sellerPhone, mock.Anything).Return(errors.New("db fail"))
				mStore.On("Delete", ctx, mock.Anything).Return(nil)
				return r
			},
			wantErrMsg: "db save failed: db fail",
		},
		{
			name:     "repository error with failed rollback",
			filename: "a.png",
			setupMocks: func(mStore *storeMocks.MockObjectStore, mRepo *repoMocks.MockProductRepository) io.Reader {
				r := strings.NewReader("img")
				mRepo.On("FindByID", ctx, int64(7)).Return(owned(), nil)
				mStore.On("Put", ctx, mock.Anything, r, mock.Anything).Return(storage.ObjectInfo{}, nil)
				mRepo.On("SetImagePath", ctx, int64(7), sellerPhone, mock.Anything).Return(errors.New("db fail"))
				mStore.On("Delete", ctx, mock.Anything).Return(errors.New("delete fail"))
				return r
			},
			wantErrMsg: "rollback delete failed: delete fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storeMocks.MockObjectStore)
			mRepo := new(repoMocks.MockProductRepository)
			r := tt.setupMocks(mStore, mRepo)
			svc := NewProductService(mRepo, mStore, time.Minute)

			p, err := svc.UploadImage(ctx, sellerPhone, 7, ImageUpload{Reader: r, Filename: tt.filename, Size: 3})

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantErrMsg != "":
				assert.ErrorContains(t, err, tt.wantErrMsg)
			default:
				require.NoError(t, err)
				assert.True(t, strings.HasPrefix(p.ImagePath, "products/"))
			}
			mStore.AssertExpectations(t)
			mRepo.AssertExpectations(t)
		})
	}
}

func TestProductService_UploadImage_ReplacesPrevious(t *testing.T) {
	ctx := context.Background()
	mStore := new(storeMocks.MockObjectStore)
	mRepo := new(repoMocks.MockProductRepository)
	mRepo.On("FindByID", ctx, int64(7)).Return(&model.Product{ID: 7, SellerPhone: sellerPhone, ImagePath: "products/old.png"}, nil)
	mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).Return(storage.ObjectInfo{}, nil)
	mRepo.On("SetImagePath", ctx, int64(7), sellerPhone, mock.Anything).Return(nil)
	mStore.On("Delete", ctx, "products/old.png").Return(nil)

	p, err := NewProductService(mRepo, mStore, time.Minute).
		UploadImage(ctx, sellerPhone, 7, ImageUpload{Reader: strings.NewReader("x"), Filename: "new.png", Size: 1})
	require.NoError(t, err)
	assert.NotEqual(t, "products/old.png", p.ImagePath)
	mStore.AssertExpectations(t)
}

func TestProductService_ImagesDisabled(t *testing.T) {
	svc := NewProductService(new(repoMocks.MockProductRepository), nil, 0)
	_, err := svc.UploadImage(context.Background(), sellerPhone, 1, ImageUpload{Reader: strings.NewReader("x"), Filename: "a.png"})
	assert.ErrorIs(t, err, ErrImagesDisabled)
	_, err = svc.ImageURL(context.Background(), 1)
	assert.ErrorIs(t, err, ErrImagesDisabled)
}

func TestProductService_ImageURL(t *testing.T) {
	ctx := context.Background()
	mStore := new(storeMocks.MockObjectStore)
	mRepo := new(repoMocks.MockProductRepository)
	mRepo.On("FindByID", ctx, int64(7)).Return(&model.Product{ID: 7, ImagePath: "products/a.png"}, nil)
	mRepo.On("FindByID", ctx, int64(8)).Return(&model.Product{ID: 8}, nil)
	mRepo.On("FindByID", ctx, int64(9)).Return(&model.Product{ID: 9, ImagePath: "products/gone.png"}, nil)
	mStore.On("PresignGet", ctx, "products/a.png", 2*time.Minute).Return("https://minio/presigned", nil)
	mStore.On("PresignGet", ctx, "products/gone.png", 2*time.Minute).Return("", minio.ErrorResponse{Code: "NoSuchKey"})
	svc := NewProductService(mRepo, mStore, 2*time.Minute)

	u, err := svc.ImageURL(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "https://minio/presigned", u)

	_, err = svc.ImageURL(ctx, 8)
	assert.ErrorIs(t, err, ErrNoImage)

	_, err = svc.ImageURL(ctx, 9)
	assert.ErrorIs(t, err, ErrNoImage)
}
