package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compasshq/erp-api/internal/domain/entity"
	"github.com/compasshq/erp-api/internal/domain/enum"
	"github.com/compasshq/erp-api/pkg/apperror"
	"github.com/compasshq/erp-api/pkg/pagination"
	"github.com/compasshq/erp-api/pkg/utils"
)

type fakeUserRepo struct{ users map[uuid.UUID]entity.User }

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsernameOrEmail(ctx context.Context, identifier string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == identifier || u.Email == identifier {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.User, int64, error) {
	var out []entity.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, int64(len(out)), nil
}

type fakeActivityRepo struct{ activities []entity.UserActivity }

func (r *fakeActivityRepo) Create(ctx context.Context, activity *entity.UserActivity) error {
	if activity.ID == uuid.Nil {
		activity.ID = uuid.New()
	}
	r.activities = append(r.activities, *activity)
	return nil
}

func (r *fakeActivityRepo) ListByUser(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.UserActivity, int64, error) {
	var out []entity.UserActivity
	for _, a := range r.activities {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, int64(len(out)), nil
}

type fakePasswordResetRepo struct{ tokens map[string]entity.PasswordResetToken }

func newFakePasswordResetRepo() *fakePasswordResetRepo {
	return &fakePasswordResetRepo{tokens: make(map[string]entity.PasswordResetToken)}
}

func (r *fakePasswordResetRepo) Create(ctx context.Context, token *entity.PasswordResetToken) error {
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	r.tokens[token.Token] = *token
	return nil
}

func (r *fakePasswordResetRepo) GetByToken(ctx context.Context, token string) (*entity.PasswordResetToken, error) {
	t, ok := r.tokens[token]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *fakePasswordResetRepo) MarkAsUsed(ctx context.Context, token string) error {
	t, ok := r.tokens[token]
	if !ok {
		return nil
	}
	t.Used = true
	r.tokens[token] = t
	return nil
}

func (r *fakePasswordResetRepo) DeleteByEmail(ctx context.Context, email string) error {
	for k, t := range r.tokens {
		if t.Email == email {
			delete(r.tokens, k)
		}
	}
	return nil
}

func (r *fakePasswordResetRepo) DeleteExpired(ctx context.Context) error { return nil }

type authFixture struct {
	svc        *AuthService
	users      *fakeUserRepo
	activities *fakeActivityRepo
	resets     *fakePasswordResetRepo
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	users := newFakeUserRepo()
	activities := &fakeActivityRepo{}
	resets := newFakePasswordResetRepo()
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	svc := NewAuthService(users, activities, resets, jwtManager, nil, nil)
	return &authFixture{svc: svc, users: users, activities: activities, resets: resets}
}

func (f *authFixture) register(t *testing.T, username, email, password string) *entity.User {
	t.Helper()
	user, err := f.svc.Register(context.Background(), &RegisterInput{
		Username: username,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return user
}

func TestRegister(t *testing.T) {
	f := newAuthFixture(t)

	user := f.register(t, "ada", "ada@example.com", "secret-pass")
	assert.Equal(t, enum.UserRoleStaff, user.Role)
	assert.Equal(t, enum.UserStatusActive, user.Status)
	assert.Equal(t, "local", user.Provider)
	assert.NotEqual(t, "secret-pass", user.Password, "password must be stored hashed")

	_, err := f.svc.Register(context.Background(), &RegisterInput{
		Username: "other",
		Email:    "ada@example.com",
		Password: "secret-pass",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)

	_, err = f.svc.Register(context.Background(), &RegisterInput{
		Username: "ada",
		Email:    "other@example.com",
		Password: "secret-pass",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)

	badRole := enum.UserRole("overlord")
	_, err = f.svc.Register(context.Background(), &RegisterInput{
		Username: "grace",
		Email:    "grace@example.com",
		Password: "secret-pass",
		Role:     &badRole,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestLogin(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, "ada", "ada@example.com", "secret-pass")

	// Both username and email work as the identifier
	for _, identifier := range []string{"ada", "ada@example.com"} {
		out, err := f.svc.Login(context.Background(), &LoginInput{
			Identifier: identifier,
			Password:   "secret-pass",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, out.AccessToken)
		assert.NotEmpty(t, out.RefreshToken)
		assert.NotNil(t, out.User.LastLogin)
	}

	_, err := f.svc.Login(context.Background(), &LoginInput{
		Identifier: "ada",
		Password:   "wrong",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperror.GetAppError(err).Code)

	_, err = f.svc.Login(context.Background(), &LoginInput{
		Identifier: "nobody",
		Password:   "secret-pass",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperror.GetAppError(err).Code)
}

func TestLogin_InactiveAccount(t *testing.T) {
	f := newAuthFixture(t)
	user := f.register(t, "ada", "ada@example.com", "secret-pass")

	stored := f.users.users[user.ID]
	stored.Status = enum.UserStatusSuspended
	f.users.users[user.ID] = stored

	_, err := f.svc.Login(context.Background(), &LoginInput{
		Identifier: "ada",
		Password:   "secret-pass",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, apperror.GetAppError(err).Code)
}

func TestLogin_RecordsActivity(t *testing.T) {
	f := newAuthFixture(t)
	user := f.register(t, "ada", "ada@example.com", "secret-pass")

	ip := "203.0.113.7"
	_, err := f.svc.Login(context.Background(), &LoginInput{
		Identifier: "ada",
		Password:   "secret-pass",
		IPAddress:  &ip,
	})
	require.NoError(t, err)

	require.Len(t, f.activities.activities, 1)
	activity := f.activities.activities[0]
	assert.Equal(t, user.ID, activity.UserID)
	assert.Equal(t, "login", activity.Action)
	require.NotNil(t, activity.IPAddress)
	assert.Equal(t, ip, *activity.IPAddress)
}

func TestRefreshToken(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, "ada", "ada@example.com", "secret-pass")

	out, err := f.svc.Login(context.Background(), &LoginInput{
		Identifier: "ada",
		Password:   "secret-pass",
	})
	require.NoError(t, err)

	refreshed, err := f.svc.RefreshToken(context.Background(), out.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = f.svc.RefreshToken(context.Background(), "garbage")
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperror.GetAppError(err).Code)
}

func TestChangePassword(t *testing.T) {
	f := newAuthFixture(t)
	user := f.register(t, "ada", "ada@example.com", "secret-pass")

	err := f.svc.ChangePassword(context.Background(), &ChangePasswordInput{
		UserID:          user.ID,
		CurrentPassword: "wrong",
		NewPassword:     "new-secret",
	})
	require.Error(t, err)

	err = f.svc.ChangePassword(context.Background(), &ChangePasswordInput{
		UserID:          user.ID,
		CurrentPassword: "secret-pass",
		NewPassword:     "new-secret",
	})
	require.NoError(t, err)

	_, err = f.svc.Login(context.Background(), &LoginInput{
		Identifier: "ada",
		Password:   "new-secret",
	})
	require.NoError(t, err)
}

func TestUpdateProfile(t *testing.T) {
	f := newAuthFixture(t)
	user := f.register(t, "ada", "ada@example.com", "secret-pass")
	f.register(t, "grace", "grace@example.com", "secret-pass")

	updated, err := f.svc.UpdateProfile(context.Background(), &UpdateProfileInput{
		UserID:   user.ID,
		Username: "ada-l",
	})
	require.NoError(t, err)
	assert.Equal(t, "ada-l", updated.Username)

	_, err = f.svc.UpdateProfile(context.Background(), &UpdateProfileInput{
		UserID:   user.ID,
		Username: "grace",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)

	_, err = f.svc.UpdateProfile(context.Background(), &UpdateProfileInput{
		UserID: user.ID,
		Email:  "grace@example.com",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)
}

func TestResetPassword(t *testing.T) {
	f := newAuthFixture(t)
	user := f.register(t, "ada", "ada@example.com", "secret-pass")

	token := &entity.PasswordResetToken{
		Email:     user.Email,
		Token:     "reset-token-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, f.resets.Create(context.Background(), token))

	err := f.svc.ResetPassword(context.Background(), &ResetPasswordInput{
		Email:       "other@example.com",
		Token:       "reset-token-1",
		NewPassword: "new-secret",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)

	err = f.svc.ResetPassword(context.Background(), &ResetPasswordInput{
		Email:       user.Email,
		Token:       "reset-token-1",
		NewPassword: "new-secret",
	})
	require.NoError(t, err)

	_, err = f.svc.Login(context.Background(), &LoginInput{
		Identifier: "ada",
		Password:   "new-secret",
	})
	require.NoError(t, err)

	// Tokens are single use
	err = f.svc.ResetPassword(context.Background(), &ResetPasswordInput{
		Email:       user.Email,
		Token:       "reset-token-1",
		NewPassword: "another-secret",
	})
	require.Error(t, err)
}

func TestResetPassword_ExpiredToken(t *testing.T) {
	f := newAuthFixture(t)
	user := f.register(t, "ada", "ada@example.com", "secret-pass")

	token := &entity.PasswordResetToken{
		Email:     user.Email,
		Token:     "reset-token-2",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, f.resets.Create(context.Background(), token))

	err := f.svc.ResetPassword(context.Background(), &ResetPasswordInput{
		Email:       user.Email,
		Token:       "reset-token-2",
		NewPassword: "new-secret",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}
