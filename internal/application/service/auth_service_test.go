package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odanga/stockledger-api/pkg/utils"
)

func newAuthFixture(t *testing.T) (*AuthService, *utils.JWTManager) {
	t.Helper()
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService("Admin@Local", "hunter22", jwtManager), jwtManager
}

func TestLoginIssuesTokenPair(t *testing.T) {
	auth, jwtManager := newAuthFixture(t)

	tokens, err := auth.Login(context.Background(), &LoginInput{
		Email:    "admin@local",
		Password: "hunter22",
	})
	require.NoError(t, err)
	require.NotEmpty(t, tokens.AccessToken)
	require.NotEmpty(t, tokens.RefreshToken)

	claims, err := jwtManager.ValidateAccessToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin@local", claims.Email)
}

func TestLoginEmailIsCaseInsensitive(t *testing.T) {
	auth, _ := newAuthFixture(t)

	_, err := auth.Login(context.Background(), &LoginInput{
		Email:    "  ADMIN@LOCAL ",
		Password: "hunter22",
	})
	assert.NoError(t, err)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	auth, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := auth.Login(ctx, &LoginInput{Email: "admin@local", Password: "wrong"})
	assert.Error(t, err)

	_, err = auth.Login(ctx, &LoginInput{Email: "someone@else", Password: "hunter22"})
	assert.Error(t, err)
}

func TestRefreshIssuesNewAccessToken(t *testing.T) {
	auth, jwtManager := newAuthFixture(t)
	ctx := context.Background()

	tokens, err := auth.Login(ctx, &LoginInput{Email: "admin@local", Password: "hunter22"})
	require.NoError(t, err)

	access, err := auth.Refresh(ctx, tokens.RefreshToken)
	require.NoError(t, err)

	claims, err := jwtManager.ValidateAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, "admin@local", claims.Email)
}

func TestRefreshRejectsAccessTokenFromAnotherSecret(t *testing.T) {
	auth, _ := newAuthFixture(t)

	other := utils.NewJWTManager("other-secret", time.Hour, 24*time.Hour)
	forged, err := other.GenerateRefreshToken("admin@local")
	require.NoError(t, err)

	_, err = auth.Refresh(context.Background(), forged)
	assert.Error(t, err)
}
