package pasetoToken_test

import (
	"testing"
	"time"

	"github.com/plateful/recipe-box/pkg/auth/tokenAuth"
	pasetoToken "github.com/plateful/recipe-box/pkg/auth/tokenAuth/paseto"
	"github.com/plateful/recipe-box/pkg/tools/random"
	"github.com/stretchr/testify/require"
)

func TestPasetoMaker(t *testing.T) {
	t.Run("Create Paseto Token", func(t *testing.T) {
		maker, err := pasetoToken.NewPasetoMaker(random.String(32))
		require.NoError(t, err)

		userID := random.String(16)
		email := random.Email()
		duration := time.Minute
		issuedAt := time.Now()
		expiredAt := issuedAt.Add(duration)

		token, err := maker.CreateToken(userID, email, duration)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		payload, err := maker.VerifyToken(token)
		require.NoError(t, err)
		require.NotEmpty(t, payload)

		require.NotZero(t, payload.ID)
		require.Equal(t, userID, payload.UserID)
		require.Equal(t, email, payload.Email)
		require.WithinDuration(t, issuedAt, payload.IssuedAt, time.Second)
		require.WithinDuration(t, expiredAt, payload.ExpiredAt, time.Second)
	})

	t.Run("Expired Paseto Token", func(t *testing.T) {
		maker, err := pasetoToken.NewPasetoMaker(random.String(32))
		require.NoError(t, err)

		token, err := maker.CreateToken(random.String(16), random.Email(), -time.Minute)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		payload, err := maker.VerifyToken(token)
		require.Error(t, err)
		require.EqualError(t, err, tokenAuth.ErrExpiredToken.Error())
		require.Nil(t, payload)
	})

	t.Run("Invalid Key Size", func(t *testing.T) {
		maker, err := pasetoToken.NewPasetoMaker(random.String(31))
		require.Error(t, err)
		require.Nil(t, maker)
	})

	t.Run("Tampered Token", func(t *testing.T) {
		maker, err := pasetoToken.NewPasetoMaker(random.String(32))
		require.NoError(t, err)

		payload, err := maker.VerifyToken(random.String(64))
		require.Error(t, err)
		require.EqualError(t, err, tokenAuth.ErrInvalidToken.Error())
		require.Nil(t, payload)
	})
}
