package auth

import (
	"context"
	"testing"

	"github.com/RomanBrocki/ponto-online-go/internal/domain/auth"
	"github.com/RomanBrocki/ponto-online-go/internal/domain/user"
	"github.com/RomanBrocki/ponto-online-go/internal/pkg/jwt"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepository struct {
	users map[string]user.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]user.User)}
}

func (f *fakeUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return user.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	f.users[newUser.ID] = newUser
	return newUser, nil
}

func (f *fakeUserRepository) ListEmployees(ctx context.Context) ([]user.User, error) {
	var employees []user.User
	for _, u := range f.users {
		if u.Role == user.RoleEmployee {
			employees = append(employees, u)
		}
	}
	return employees, nil
}

func (f *fakeUserRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	u, ok := f.users[userID]
	if !ok {
		return pgx.ErrNoRows
	}
	u.PasswordHash = &passwordHash
	f.users[userID] = u
	return nil
}

// fakeJWTRepository mirrors the refresh_tokens table: unknown tokens
// surface pgx.ErrNoRows, known ones carry a revoked flag.
type fakeJWTRepository struct {
	revoked map[string]bool
}

func newFakeJWTRepository() *fakeJWTRepository {
	return &fakeJWTRepository{revoked: make(map[string]bool)}
}

func (f *fakeJWTRepository) CreateRefreshToken(ctx context.Context, userID string, token string, expiresAt int64, sessionReq auth.SessionTrackingRequest) error {
	f.revoked[token] = false
	return nil
}

func (f *fakeJWTRepository) IsRefreshTokenRevoked(ctx context.Context, token string) (bool, error) {
	revoked, ok := f.revoked[token]
	if !ok {
		return false, pgx.ErrNoRows
	}
	return revoked, nil
}

func (f *fakeJWTRepository) RevokeRefreshToken(ctx context.Context, token string) error {
	f.revoked[token] = true
	return nil
}

func newTestAuthService(users *fakeUserRepository, tokens *fakeJWTRepository) (*AuthServiceImpl, jwt.Service) {
	jwtService := jwt.NewJWTService("test-secret", "15m", "720h")
	service := &AuthServiceImpl{
		UserRepository: users,
		Service:        jwtService,
		JWTRepository:  tokens,
		withTx: func(ctx context.Context, fn func(tx pgx.Tx) error) error {
			return fn(nil)
		},
	}
	return service, jwtService
}

func seedUser(t *testing.T, repo *fakeUserRepository, password string) user.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	hash := string(hashed)
	seeded := user.User{
		ID:           "user-1",
		Email:        "maria@empresa.com.br",
		PasswordHash: &hash,
		Name:         "Maria da Silva",
		Role:         user.RoleEmployee,
	}
	repo.users[seeded.ID] = seeded
	return seeded
}

func TestLoginIssuesTokens(t *testing.T) {
	users := newFakeUserRepository()
	tokens := newFakeJWTRepository()
	seeded := seedUser(t, users, "senha-forte")
	svc, jwtService := newTestAuthService(users, tokens)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    seeded.Email,
		Password: "senha-forte",
	}, auth.SessionTrackingRequest{})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, string(user.RoleEmployee), resp.Role)
	assert.Equal(t, seeded.Name, resp.Name)

	decoded, err := jwtService.JWTAuth().Decode(resp.AccessToken)
	require.NoError(t, err)
	userID, _ := decoded.Get("user_id")
	assert.Equal(t, seeded.ID, userID)
	tokenType, _ := decoded.Get("type")
	assert.Equal(t, "access", tokenType)

	// Login persists the refresh token so it can later be revoked.
	revoked, err := tokens.IsRefreshTokenRevoked(context.Background(), resp.RefreshToken)
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestLoginInvalidCredentials(t *testing.T) {
	users := newFakeUserRepository()
	seeded := seedUser(t, users, "senha-forte")
	svc, _ := newTestAuthService(users, newFakeJWTRepository())
	ctx := context.Background()

	_, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "ninguem@empresa.com.br",
		Password: "senha-forte",
	}, auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials, "unknown email")

	_, err = svc.Login(ctx, auth.LoginRequest{
		Email:    seeded.Email,
		Password: "senha-errada",
	}, auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials, "wrong password")

	seeded.PasswordHash = nil
	users.users[seeded.ID] = seeded
	_, err = svc.Login(ctx, auth.LoginRequest{
		Email:    seeded.Email,
		Password: "senha-forte",
	}, auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials, "no stored hash")
}

func TestLoginValidatesRequest(t *testing.T) {
	svc, _ := newTestAuthService(newFakeUserRepository(), newFakeJWTRepository())

	_, err := svc.Login(context.Background(), auth.LoginRequest{}, auth.SessionTrackingRequest{})
	assert.Error(t, err)

	_, err = svc.Login(context.Background(), auth.LoginRequest{
		Email:    "maria@empresa.com.br",
		Password: "curta",
	}, auth.SessionTrackingRequest{})
	assert.Error(t, err)
}

func TestRefreshTokenIssuesNewAccessToken(t *testing.T) {
	users := newFakeUserRepository()
	seeded := seedUser(t, users, "senha-forte")
	svc, jwtService := newTestAuthService(users, newFakeJWTRepository())
	ctx := context.Background()

	login, err := svc.Login(ctx, auth.LoginRequest{Email: seeded.Email, Password: "senha-forte"}, auth.SessionTrackingRequest{})
	require.NoError(t, err)

	resp, err := svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)

	decoded, err := jwtService.JWTAuth().Decode(resp.AccessToken)
	require.NoError(t, err)
	tokenType, _ := decoded.Get("type")
	assert.Equal(t, "access", tokenType)
	userID, _ := decoded.Get("user_id")
	assert.Equal(t, seeded.ID, userID)
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	users := newFakeUserRepository()
	seeded := seedUser(t, users, "senha-forte")
	svc, _ := newTestAuthService(users, newFakeJWTRepository())
	ctx := context.Background()

	login, err := svc.Login(ctx, auth.LoginRequest{Email: seeded.Email, Password: "senha-forte"}, auth.SessionTrackingRequest{})
	require.NoError(t, err)

	// An access token is signed with the same key but carries the wrong type.
	_, err = svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: login.AccessToken})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefreshTokenRejectsGarbage(t *testing.T) {
	svc, _ := newTestAuthService(newFakeUserRepository(), newFakeJWTRepository())

	_, err := svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: "not-a-jwt"})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefreshTokenRejectsRevoked(t *testing.T) {
	users := newFakeUserRepository()
	tokens := newFakeJWTRepository()
	seeded := seedUser(t, users, "senha-forte")
	svc, _ := newTestAuthService(users, tokens)
	ctx := context.Background()

	login, err := svc.Login(ctx, auth.LoginRequest{Email: seeded.Email, Password: "senha-forte"}, auth.SessionTrackingRequest{})
	require.NoError(t, err)

	require.NoError(t, tokens.RevokeRefreshToken(ctx, login.RefreshToken))

	_, err = svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestRefreshTokenUnknownUser(t *testing.T) {
	users := newFakeUserRepository()
	seeded := seedUser(t, users, "senha-forte")
	svc, _ := newTestAuthService(users, newFakeJWTRepository())
	ctx := context.Background()

	login, err := svc.Login(ctx, auth.LoginRequest{Email: seeded.Email, Password: "senha-forte"}, auth.SessionTrackingRequest{})
	require.NoError(t, err)

	delete(users.users, seeded.ID)

	_, err = svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	users := newFakeUserRepository()
	tokens := newFakeJWTRepository()
	seeded := seedUser(t, users, "senha-forte")
	svc, _ := newTestAuthService(users, tokens)
	ctx := context.Background()

	login, err := svc.Login(ctx, auth.LoginRequest{Email: seeded.Email, Password: "senha-forte"}, auth.SessionTrackingRequest{})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, auth.RefreshTokenRequest{RefreshToken: login.RefreshToken}))

	_, err = svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)

	// Logging out twice, or with a token that was never stored, is a no-op.
	require.NoError(t, svc.Logout(ctx, auth.RefreshTokenRequest{RefreshToken: login.RefreshToken}))
	require.NoError(t, svc.Logout(ctx, auth.RefreshTokenRequest{RefreshToken: login.AccessToken}))
}
