package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agrimart/internal/auth"
	"agrimart/internal/model"
	"agrimart/internal/repository"
	repoMocks "agrimart/internal/repository/mocks"
	"agrimart/internal/validation"
)

func testTokens() *auth.Tokens {
	return auth.NewTokens("service-test-secret-0123", time.Hour)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	valid := RegisterInput{
		Name:     " Ramesh Kumar ",
		Phone:    "+91 98765-43210",
		Email:    "ramesh@example.com",
		Password: "secret1",
		Role:     model.RoleSeller,
		Location: "Hamirpur",
	}

	tests := []struct {
		name       string
		in         RegisterInput
		setupMocks func(m *repoMocks.MockUserRepository)
		wantErr    error
		wantFields bool
	}{
		{
			name: "happy path",
			in:   valid,
			setupMocks: func(m *repoMocks.MockUserRepository) {
				m.On("Create", ctx, mock.MatchedBy(func(u *model.User) bool {
					return u.Phone == "9876543210" &&
						u.Name == "Ramesh Kumar" &&
						u.PasswordHash != "secret1" &&
						auth.CheckPassword(u.PasswordHash, "secret1")
				})).Return(&model.User{ID: 1, Name: "Ramesh Kumar", Phone: "9876543210", Role: model.RoleSeller}, nil)
			},
		},
		{
			name: "duplicate phone",
			in:   valid,
			setupMocks: func(m *repoMocks.MockUserRepository) {
				m.On("Create", ctx, mock.Anything).Return(nil, repository.ErrDuplicate)
			},
			wantErr: ErrPhoneTaken,
		},
		{
			name:       "invalid input",
			in:         RegisterInput{Name: "X", Phone: "123", Role: "admin"},
			setupMocks: func(m *repoMocks.MockUserRepository) {},
			wantFields: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockUserRepository)
			tt.setupMocks(mRepo)
			svc := NewAuthService(mRepo, testTokens())

			sess, err := svc.Register(ctx, tt.in)

			switch {
			case tt.wantFields:
				var fe validation.Errors
				assert.True(t, errors.As(err, &fe))
				assert.Nil(t, sess)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, sess)
			default:
				require.NoError(t, err)
				assert.NotEmpty(t, sess.Token)
				claims, err := svc.Verify(sess.Token)
				require.NoError(t, err)
				assert.Equal(t, "9876543210", claims.Phone())
				assert.Equal(t, model.RoleSeller, claims.Role)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := auth.HashPassword("secret1")
	require.NoError(t, err)
	stored := &model.User{ID: 1, Name: "Asha", Phone: "9123456789", PasswordHash: hash, Role: model.RoleBuyer}

	tests := []struct {
		name       string
		in         LoginInput
		setupMocks func(m *repoMocks.MockUserRepository)
		wantErr    error
	}{
		{
			name: "happy path",
			in:   LoginInput{Phone: "91234 56789", Password: "secret1"},
			setupMocks: func(m *repoMocks.MockUserRepository) {
				m.On("FindByPhone", ctx, "9123456789").Return(stored, nil)
			},
		},
		{
			name: "wrong password",
			in:   LoginInput{Phone: "9123456789", Password: "nope"},
			setupMocks: func(m *repoMocks.MockUserRepository) {
				m.On("FindByPhone", ctx, "9123456789").Return(stored, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name: "unknown phone",
			in:   LoginInput{Phone: "9000000000", Password: "secret1"},
			setupMocks: func(m *repoMocks.MockUserRepository) {
				m.On("FindByPhone", ctx, "9000000000").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:       "malformed phone",
			in:         LoginInput{Phone: "12", Password: "secret1"},
			setupMocks: func(m *repoMocks.MockUserRepository) {},
			wantErr:    ErrInvalidCredentials,
		},
		{
			name: "database down",
			in:   LoginInput{Phone: "9123456789", Password: "secret1"},
			setupMocks: func(m *repoMocks.MockUserRepository) {
				m.On("FindByPhone", ctx, "9123456789").Return(nil, errors.New("conn refused"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockUserRepository)
			tt.setupMocks(mRepo)
			svc := NewAuthService(mRepo, testTokens())

			sess, err := svc.Login(ctx, tt.in)

			switch {
			case tt.name == "database down":
				assert.EqualError(t, err, "conn refused")
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.EqualError(t, err, "invalid phone number or password")
				assert.Nil(t, sess)
			default:
				require.NoError(t, err)
				assert.Equal(t, "Asha", sess.User.Name)
				assert.NotEmpty(t, sess.Token)
			}
			mRepo.AssertExpectations(t)
		})
	}
}
