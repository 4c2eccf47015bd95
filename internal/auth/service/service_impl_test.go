package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/finboard/finboard/internal/auth/domain"
	"github.com/finboard/finboard/internal/auth/repository"
	"github.com/finboard/finboard/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id snowflake.ID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type mockSessionRepo struct {
	mock.Mock
}

func (m *mockSessionRepo) CreateSession(ctx context.Context, session *domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *mockSessionRepo) GetSessionByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *mockSessionRepo) RevokeSession(ctx context.Context, id snowflake.ID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *mockSessionRepo) UpdateLastSeen(ctx context.Context, id snowflake.ID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func newDBBackedService(t *testing.T) domain.Service {
	t.Helper()

	dbConn, err := db.NewTest()
	require.NoError(t, err)
	require.NoError(t, dbConn.AutoMigrate(&domain.User{}, &domain.Session{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	userRepo, sessionRepo := repository.New(dbConn)
	return New(zap.NewNop(), userRepo, sessionRepo, node)
}

func newMockBackedService(t *testing.T, users *mockUserRepo, sessions *mockSessionRepo) domain.Service {
	t.Helper()

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	return New(zap.NewNop(), users, sessions, node)
}

func TestLoginHappyPath(t *testing.T) {
	svc := newDBBackedService(t)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, domain.CreateUserRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	result, err := svc.Login(ctx, domain.LoginRequest{
		Email:    "Ada@Example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, result.User.ID)
	assert.NotEmpty(t, result.RawToken)
	assert.True(t, result.ExpiresAt.After(time.Now()))

	session, err := svc.Authenticate(ctx, result.RawToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, session.UserID)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newDBBackedService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, domain.CreateUserRequest{
		Email:    "ada@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, domain.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong horse",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newDBBackedService(t)

	_, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "correct horse",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginShapeCheckSkipsLookup(t *testing.T) {
	cases := []domain.LoginRequest{
		{Email: "not-an-email", Password: "long enough"},
		{Email: "ada@example.com", Password: "short"},
		{Email: "", Password: ""},
	}
	for _, req := range cases {
		users := &mockUserRepo{}
		sessions := &mockSessionRepo{}
		svc := newMockBackedService(t, users, sessions)

		_, err := svc.Login(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials, "email %q", req.Email)
		users.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	}
}

func TestLoginLookupFailurePropagates(t *testing.T) {
	transportErr := errors.New("dial tcp: connection refused")
	users := &mockUserRepo{}
	users.On("FindByEmail", mock.Anything, "ada@example.com").Return(nil, transportErr)
	sessions := &mockSessionRepo{}
	svc := newMockBackedService(t, users, sessions)

	_, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "ada@example.com",
		Password: "correct horse",
	})
	assert.ErrorIs(t, err, transportErr)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
	sessions.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything)
}

func TestLogoutRevokesSession(t *testing.T) {
	svc := newDBBackedService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, domain.CreateUserRequest{
		Email:    "ada@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	result, err := svc.Login(ctx, domain.LoginRequest{
		Email:    "ada@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, result.RawToken))

	_, err = svc.Authenticate(ctx, result.RawToken)
	assert.ErrorIs(t, err, domain.ErrSessionRevoked)
}

func TestAuthenticateExpiredSession(t *testing.T) {
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	expired := &domain.Session{
		ID:        node.Generate(),
		UserID:    node.Generate(),
		ExpiresAt: time.Now().UTC().Add(-time.Hour),
	}
	sessions := &mockSessionRepo{}
	sessions.On("GetSessionByTokenHash", mock.Anything, mock.Anything).Return(expired, nil)
	svc := newMockBackedService(t, &mockUserRepo{}, sessions)

	_, err = svc.Authenticate(context.Background(), "some-token")
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
	sessions.AssertNotCalled(t, "UpdateLastSeen", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthenticateUnknownToken(t *testing.T) {
	svc := newDBBackedService(t)

	_, err := svc.Authenticate(context.Background(), "never-issued")
	assert.ErrorIs(t, err, domain.ErrInvalidSession)

	_, err = svc.Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidSession)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	svc := newDBBackedService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, domain.CreateUserRequest{
		Email:    "ada@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, domain.CreateUserRequest{
		Email:    "ada@example.com",
		Password: "another pass",
	})
	assert.ErrorIs(t, err, domain.ErrUserExists)
}
