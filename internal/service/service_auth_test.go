package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-trip-planner/internal/config"
	"github.com/MKhiriev/go-trip-planner/internal/logger"
	"github.com/MKhiriev/go-trip-planner/internal/mock"
	"github.com/MKhiriev/go-trip-planner/internal/store"
	"github.com/MKhiriev/go-trip-planner/internal/validators"
	"github.com/MKhiriev/go-trip-planner/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository, *mock.MockPasswordHasher) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	cfg := config.App{TokenSignKey: "test-secret", TokenAlgorithm: "HS256"}
	svc := NewAuthService(repo, hasher, cfg, logger.Nop()).(*authService)
	svc.now = func() time.Time { return testNow }

	return svc, repo, hasher
}

// ─────────────────────────────────────────────
// RegisterUser
// ─────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().FindUserByEmail(ctx, "ann@example.com").Return(models.User{}, store.ErrUserNotFound),
		hasher.EXPECT().Hash("s3cret").Return("$argon2id$hash", nil),
		repo.EXPECT().CreateUser(ctx, models.User{Email: "ann@example.com", PasswordHash: "$argon2id$hash"}).
			Return(models.User{UserID: 1, Email: "ann@example.com", PasswordHash: "$argon2id$hash"}, nil),
	)

	user, err := svc.RegisterUser(ctx, models.Credentials{Email: "  ann@example.com ", Password: "s3cret"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
	assert.Equal(t, "ann@example.com", user.Email)
}

func TestAuthService_RegisterUser_InvalidData(t *testing.T) {
	tests := []struct {
		name      string
		creds     models.Credentials
		wantField string
	}{
		{name: "empty email", creds: models.Credentials{Password: "p"}, wantField: validators.FieldEmail},
		{name: "malformed email", creds: models.Credentials{Email: "not-an-email", Password: "p"}, wantField: validators.FieldEmail},
		{name: "empty password", creds: models.Credentials{Email: "ann@example.com"}, wantField: validators.FieldPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			// no repository or hasher calls are expected
			svc, _, _ := newTestAuthSvc(t, ctrl)

			_, err := svc.RegisterUser(context.Background(), tt.creds)

			require.ErrorIs(t, err, ErrInvalidDataProvided)
			var violations validators.ValidationErrors
			require.True(t, errors.As(err, &violations))
			assert.Equal(t, tt.wantField, violations[0].Field)
		})
	}
}

func TestAuthService_RegisterUser_EmailTakenOnLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByEmail(gomock.Any(), "ann@example.com").Return(models.User{UserID: 3}, nil)

	_, err := svc.RegisterUser(context.Background(), models.Credentials{Email: "ann@example.com", Password: "p"})

	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
}

func TestAuthService_RegisterUser_EmailTakenOnInsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserNotFound)
	hasher.EXPECT().Hash("p").Return("hash", nil)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.Credentials{Email: "ann@example.com", Password: "p"})

	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
}

func TestAuthService_RegisterUser_LookupFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestAuthSvc(t, ctrl)

	dbErr := errors.New("connection reset")
	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, dbErr)

	_, err := svc.RegisterUser(context.Background(), models.Credentials{Email: "ann@example.com", Password: "p"})

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrEmailAlreadyRegistered)
}

func TestAuthService_RegisterUser_HashFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserNotFound)
	hasher.EXPECT().Hash(gomock.Any()).Return("", errors.New("entropy exhausted"))

	_, err := svc.RegisterUser(context.Background(), models.Credentials{Email: "ann@example.com", Password: "p"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "password hashing failed")
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuthService_Login(t *testing.T) {
	stored := models.User{UserID: 5, Email: "ann@example.com", PasswordHash: "stored-hash"}

	tests := []struct {
		name    string
		creds   models.Credentials
		setup   func(repo *mock.MockUserRepository, hasher *mock.MockPasswordHasher)
		wantErr error
	}{
		{
			name:  "success",
			creds: models.Credentials{Email: "ann@example.com", Password: "right"},
			setup: func(repo *mock.MockUserRepository, hasher *mock.MockPasswordHasher) {
				repo.EXPECT().FindUserByEmail(gomock.Any(), "ann@example.com").Return(stored, nil)
				hasher.EXPECT().Verify("right", "stored-hash").Return(true, nil)
			},
		},
		{
			name:    "empty email",
			creds:   models.Credentials{Password: "right"},
			setup:   func(*mock.MockUserRepository, *mock.MockPasswordHasher) {},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:    "empty password",
			creds:   models.Credentials{Email: "ann@example.com"},
			setup:   func(*mock.MockUserRepository, *mock.MockPasswordHasher) {},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:  "unknown email",
			creds: models.Credentials{Email: "bob@example.com", Password: "right"},
			setup: func(repo *mock.MockUserRepository, _ *mock.MockPasswordHasher) {
				repo.EXPECT().FindUserByEmail(gomock.Any(), "bob@example.com").Return(models.User{}, store.ErrUserNotFound)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:  "wrong password",
			creds: models.Credentials{Email: "ann@example.com", Password: "wrong"},
			setup: func(repo *mock.MockUserRepository, hasher *mock.MockPasswordHasher) {
				repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(stored, nil)
				hasher.EXPECT().Verify("wrong", "stored-hash").Return(false, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:  "corrupted hash",
			creds: models.Credentials{Email: "ann@example.com", Password: "right"},
			setup: func(repo *mock.MockUserRepository, hasher *mock.MockPasswordHasher) {
				repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(stored, nil)
				hasher.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(false, errors.New("invalid hash"))
			},
			wantErr: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo, hasher := newTestAuthSvc(t, ctrl)
			tt.setup(repo, hasher)

			user, err := svc.Login(context.Background(), tt.creds)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, stored, user)
		})
	}
}

func TestAuthService_Login_RepositoryFailureIsNotHidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestAuthSvc(t, ctrl)

	dbErr := errors.New("db down")
	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, dbErr)

	_, err := svc.Login(context.Background(), models.Credentials{Email: "ann@example.com", Password: "p"})

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// ─────────────────────────────────────────────
// Tokens
// ─────────────────────────────────────────────

func TestAuthService_CreateToken_ParseToken_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{Email: "ann@example.com"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)
	assert.True(t, token.ExpiresAt.Time.Equal(testNow.Add(models.TokenLifetime)))

	parsed, err := svc.ParseToken(ctx, token.SignedString)

	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", parsed.Email)
}

func TestAuthService_CreateToken_EmptyEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.CreateToken(context.Background(), models.User{})

	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{Email: "ann@example.com"})
	require.NoError(t, err)

	svc.now = func() time.Time { return testNow.Add(models.TokenLifetime + time.Second) }
	_, err = svc.ParseToken(ctx, token.SignedString)

	assert.ErrorIs(t, err, ErrTokenIsExpired)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	other := NewAuthService(nil, nil, config.App{TokenSignKey: "other-secret", TokenAlgorithm: "HS256"}, logger.Nop()).(*authService)
	other.now = svc.now
	foreign, err := other.CreateToken(ctx, models.User{Email: "ann@example.com"})
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-jwt"},
		{name: "empty", token: ""},
		{name: "wrong key", token: foreign.SignedString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseToken(ctx, tt.token)
			assert.ErrorIs(t, err, ErrTokenIsInvalid)
		})
	}
}

// ─────────────────────────────────────────────
// Authenticate
// ─────────────────────────────────────────────

func TestAuthService_Authenticate_ResolvesUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{Email: "ann@example.com"})
	require.NoError(t, err)

	repo.EXPECT().FindUserByEmail(ctx, "ann@example.com").Return(models.User{UserID: 9, Email: "ann@example.com"}, nil)

	user, err := svc.Authenticate(ctx, token.SignedString)

	require.NoError(t, err)
	assert.Equal(t, int64(9), user.UserID)
}

func TestAuthService_Authenticate_DeletedUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{Email: "gone@example.com"})
	require.NoError(t, err)

	repo.EXPECT().FindUserByEmail(ctx, "gone@example.com").Return(models.User{}, store.ErrUserNotFound)

	_, err = svc.Authenticate(ctx, token.SignedString)

	assert.ErrorIs(t, err, ErrTokenIsInvalid)
}

func TestAuthService_Authenticate_InvalidTokenSkipsLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Authenticate(context.Background(), "broken")

	assert.ErrorIs(t, err, ErrTokenIsInvalid)
}
