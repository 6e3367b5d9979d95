package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-TheatreBooking/internal/domain"
	adminRepo "github.com/m04kA/SMC-TheatreBooking/internal/infra/storage/admin"
	"github.com/m04kA/SMC-TheatreBooking/internal/service/auth/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type fakeAdmins struct{ admins []*domain.Admin }

func (f *fakeAdmins) GetByEmail(_ context.Context, email string) (*domain.Admin, error) {
	for _, a := range f.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, adminRepo.ErrAdminNotFound
}

func (f *fakeAdmins) GetByID(_ context.Context, id uuid.UUID) (*domain.Admin, error) {
	for _, a := range f.admins {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, adminRepo.ErrAdminNotFound
}

func newTestService(t *testing.T) (*Service, *fakeAdmins, *fixedTime) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeAdmins{admins: []*domain.Admin{{
		ID:           uuid.New(),
		Email:        "owner@theatre.in",
		PasswordHash: string(hash),
	}}}
	clock := &fixedTime{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc := NewService(repo, "test-secret", time.Hour, nopLogger{}).WithTimeProvider(clock)
	return svc, repo, clock
}

func TestLoginAndAuthenticate(t *testing.T) {
	svc, repo, clock := newTestService(t)

	resp, err := svc.Login(context.Background(), &models.LoginRequest{Email: " Owner@Theatre.in ", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, clock.now.Add(time.Hour), resp.ExpiresAt)

	admin, err := svc.Authenticate(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, repo.admins[0].ID, admin.ID)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Login(context.Background(), &models.LoginRequest{Email: "owner@theatre.in", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &models.LoginRequest{Email: "nobody@theatre.in", Password: "s3cret"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_Expired(t *testing.T) {
	svc, _, clock := newTestService(t)
	resp, err := svc.Login(context.Background(), &models.LoginRequest{Email: "owner@theatre.in", Password: "s3cret"})
	require.NoError(t, err)

	clock.now = clock.now.Add(2 * time.Hour)

	_, err = svc.Authenticate(context.Background(), resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthenticate_Tampered(t *testing.T) {
	svc, _, _ := newTestService(t)
	resp, err := svc.Login(context.Background(), &models.LoginRequest{Email: "owner@theatre.in", Password: "s3cret"})
	require.NoError(t, err)

	other := NewService(&fakeAdmins{}, "another-secret", time.Hour, nopLogger{})
	_, err = other.Authenticate(context.Background(), resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.Authenticate(context.Background(), strings.TrimSuffix(resp.Token, resp.Token[len(resp.Token)-2:]))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthenticate_AdminRemoved(t *testing.T) {
	svc, repo, _ := newTestService(t)
	resp, err := svc.Login(context.Background(), &models.LoginRequest{Email: "owner@theatre.in", Password: "s3cret"})
	require.NoError(t, err)

	repo.admins = nil

	_, err = svc.Authenticate(context.Background(), resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
