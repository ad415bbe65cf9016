package service

import (
	"context"
	"strings"
	"testing"

	"campus-events-api/core/config"
	"campus-events-api/core/errors"
	"campus-events-api/core/utils"
	"campus-events-api/modules/auth/dto"
	"campus-events-api/modules/auth/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthRepo struct {
	byEmail map[string]*entity.User
	deleted []uuid.UUID
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{byEmail: map[string]*entity.User{}}
}

func (f *fakeAuthRepo) CreateUser(ctx context.Context, user *entity.User) error {
	user.ID = uuid.New()
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeAuthRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeAuthRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeAuthRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func (f *fakeAuthRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeAuthRepo) DeleteUser(ctx context.Context, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	for email, u := range f.byEmail {
		if u.ID == id {
			delete(f.byEmail, email)
		}
	}
	return nil
}

type fakeCache struct {
	blacklisted map[string]bool
}

func (f *fakeCache) AddToTokenBlacklist(ctx context.Context, token string) error {
	if f.blacklisted == nil {
		f.blacklisted = map[string]bool{}
	}
	f.blacklisted[token] = true
	return nil
}

func (f *fakeCache) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	return f.blacklisted[token], nil
}

func (f *fakeCache) Close() error { return nil }

func setupAuth(t *testing.T) (*AuthService, *fakeAuthRepo, *fakeCache) {
	t.Helper()
	config.SetForTest(&config.Config{JWT: config.JWTConfig{Secret: "test-secret"}})
	repo := newFakeAuthRepo()
	cache := &fakeCache{}
	return NewAuthService(repo, cache), repo, cache
}

func signupRequest() *dto.SignupRequest {
	return &dto.SignupRequest{
		Name:            "Minh Nguyen",
		Email:           "Minh@Campus.EDU",
		Password:        "supersecret",
		PasswordConfirm: "supersecret",
		Role:            "student",
	}
}

func TestSignup_CreatesUserAndIssuesToken(t *testing.T) {
	svc, repo, _ := setupAuth(t)

	resp, appErr := svc.Signup(context.Background(), signupRequest())
	require.Nil(t, appErr)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "minh@campus.edu", resp.User.Email)
	assert.Equal(t, "student", resp.User.Role)

	stored := repo.byEmail["minh@campus.edu"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "supersecret", stored.Password)
	assert.True(t, utils.ComparePassword(stored.Password, "supersecret"))

	claims, err := utils.ValidateAndParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, claims.UserID)
	assert.Equal(t, "student", claims.Role)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	svc, _, _ := setupAuth(t)

	_, appErr := svc.Signup(context.Background(), signupRequest())
	require.Nil(t, appErr)

	_, appErr = svc.Signup(context.Background(), signupRequest())
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrAlreadyExists, appErr.Code)
}

func TestSignup_DefaultsToStudentRole(t *testing.T) {
	svc, repo, _ := setupAuth(t)

	req := signupRequest()
	req.Role = ""
	_, appErr := svc.Signup(context.Background(), req)
	require.Nil(t, appErr)
	assert.Equal(t, entity.RoleStudent, repo.byEmail["minh@campus.edu"].Role)
}

func TestLogin_Success(t *testing.T) {
	svc, _, _ := setupAuth(t)

	_, appErr := svc.Signup(context.Background(), signupRequest())
	require.Nil(t, appErr)

	resp, appErr := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "minh@campus.edu",
		Password: "supersecret",
	})
	require.Nil(t, appErr)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _, _ := setupAuth(t)

	_, appErr := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@campus.edu",
		Password: "whatever",
	})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _, _ := setupAuth(t)

	_, appErr := svc.Signup(context.Background(), signupRequest())
	require.Nil(t, appErr)

	_, appErr = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "minh@campus.edu",
		Password: "not-the-password",
	})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrUnauthorized, appErr.Code)
}

func TestLogout_BlacklistsToken(t *testing.T) {
	svc, _, cache := setupAuth(t)

	appErr := svc.Logout(context.Background(), "some.jwt.token")
	require.Nil(t, appErr)
	assert.True(t, cache.blacklisted["some.jwt.token"])
}

func TestSignup_NormalizesEmailCase(t *testing.T) {
	svc, repo, _ := setupAuth(t)

	req := signupRequest()
	req.Email = "  MINH@CAMPUS.EDU "
	_, appErr := svc.Signup(context.Background(), req)
	require.Nil(t, appErr)

	for email := range repo.byEmail {
		assert.Equal(t, strings.ToLower(strings.TrimSpace(email)), email)
	}
}
