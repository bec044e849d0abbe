package usecase

import (
	"context"
	"testing"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/dto/request"
	"travel-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *utils.Config {
	return &utils.Config{
		Session: utils.SessionConfig{ExpiryHours: 24},
	}
}

func TestRegister_Success(t *testing.T) {
	repo := newTestRepo()
	service := NewAuthService(repo, testConfig(), testLogger())

	resp, err := service.Register(context.Background(), &request.RegisterRequest{
		Username: "alice",
		Email:    "Alice@Example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "alice@example.com", resp.Email)
	assert.Equal(t, entity.RoleUser, resp.Role)
	assert.Empty(t, resp.Token)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newTestRepo()
	service := NewAuthService(repo, testConfig(), testLogger())

	req := &request.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "supersecret",
	}
	_, err := service.Register(context.Background(), req)
	require.NoError(t, err)

	req.Username = "alice2"
	_, err = service.Register(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestLogin_Success(t *testing.T) {
	repo := newTestRepo()
	service := NewAuthService(repo, testConfig(), testLogger())

	_, err := service.Register(context.Background(), &request.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	resp, err := service.Login(context.Background(), &request.LoginRequest{
		Username: "alice",
		Password: "supersecret",
	}, "test-agent", "127.0.0.1")
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), resp.ExpiresAt, time.Minute)

	session, err := repo.Session.FindValidSession(context.Background(), resp.Token)
	require.NoError(t, err)
	require.NotNil(t, session)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newTestRepo()
	service := NewAuthService(repo, testConfig(), testLogger())

	_, err := service.Register(context.Background(), &request.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), &request.LoginRequest{
		Username: "alice",
		Password: "wrongpass1",
	}, "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestLogin_ByEmail(t *testing.T) {
	repo := newTestRepo()
	service := NewAuthService(repo, testConfig(), testLogger())

	_, err := service.Register(context.Background(), &request.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	resp, err := service.Login(context.Background(), &request.LoginRequest{
		Username: "alice@example.com",
		Password: "supersecret",
	}, "", "")
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)
}

func TestLogout_RevokesSession(t *testing.T) {
	repo := newTestRepo()
	service := NewAuthService(repo, testConfig(), testLogger())

	_, err := service.Register(context.Background(), &request.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	loginResp, err := service.Login(context.Background(), &request.LoginRequest{
		Username: "alice",
		Password: "supersecret",
	}, "", "")
	require.NoError(t, err)

	require.NoError(t, service.Logout(context.Background(), loginResp.Token))

	session, err := repo.Session.FindValidSession(context.Background(), loginResp.Token)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestDeactivate_AnotherUser(t *testing.T) {
	repo := newTestRepo()
	service := NewUserService(repo, testLogger())

	user := seedUser(repo, "alice")
	other := seedUser(repo, "bob")

	err := service.Deactivate(context.Background(), user.ID.String(), other.ID.String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unauthorized")
}

func TestGetUsers_Paginated(t *testing.T) {
	repo := newTestRepo()
	service := NewUserService(repo, testLogger())

	for _, name := range []string{"alice", "bob", "carol"} {
		seedUser(repo, name)
	}

	resp, err := service.GetUsers(context.Background(), request.PaginatedRequest{Page: 1, PerPage: 2})
	require.NoError(t, err)

	assert.Len(t, resp.Data, 2)
	assert.Equal(t, int64(3), resp.Pagination.Total)
	assert.Equal(t, 2, resp.Pagination.TotalPages)
}
