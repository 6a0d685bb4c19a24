package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appdev0823/nhap-thanh-long-heroku/pkg/jwt"
)

func TestGenerateParse_RoundTrip(t *testing.T) {
	token, err := jwt.Generate("secreto", "thanh", 1, "nhap-thanh-long", 5)
	require.NoError(t, err)

	username, role, err := jwt.Parse("secreto", token)
	require.NoError(t, err)
	assert.Equal(t, "thanh", username)
	assert.Equal(t, 1, role)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate("secreto", "thanh", 0, "nhap-thanh-long", 5)
	require.NoError(t, err)

	_, _, err = jwt.Parse("otro-secreto", token)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	token, err := jwt.Generate("secreto", "thanh", 0, "nhap-thanh-long", -1)
	require.NoError(t, err)

	_, _, err = jwt.Parse("secreto", token)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "thanh", 0, "nhap-thanh-long", 5)
	assert.Error(t, err)
}

func TestGenerate_TokensDistintos(t *testing.T) {
	a, err := jwt.Generate("secreto", "thanh", 0, "nhap-thanh-long", 5)
	require.NoError(t, err)
	b, err := jwt.Generate("secreto", "thanh", 0, "nhap-thanh-long", 5)
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "cada token lleva su propio jti")
}
