package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "ibeauty-test"
)

func newTestCodec(t *testing.T) *Codec {
	t.Helper()
	c, err := NewCodec(testSecret, testIssuer)
	require.NoError(t, err)
	return c
}

func TestCodec_IssueAndVerify(t *testing.T) {
	c := newTestCodec(t)

	tok, err := c.Issue(Claims{UserID: 7, OrganizationID: 3, Role: "admin"}, time.Hour)
	require.NoError(t, err)

	claims, err := c.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, int64(3), claims.OrganizationID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, PurposeSession, claims.Purpose, "sin propósito explícito el token es de sesión")
	assert.NotEmpty(t, claims.TokenID())
	assert.Equal(t, "7", claims.Subject)
}

func TestCodec_TokensDistintosPorEmision(t *testing.T) {
	c := newTestCodec(t)
	a, err := c.Issue(Claims{UserID: 1, OrganizationID: 1}, time.Minute)
	require.NoError(t, err)
	b, err := c.Issue(Claims{UserID: 1, OrganizationID: 1}, time.Minute)
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "el jti hace único cada token aunque se emitan en el mismo segundo")
}

func TestCodec_Expirado(t *testing.T) {
	c := newTestCodec(t)
	tok, err := c.Issue(Claims{UserID: 1, OrganizationID: 1}, -time.Minute)
	require.NoError(t, err)

	_, err = c.Verify(tok)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestCodec_SecretIncorrecto(t *testing.T) {
	tok, err := newTestCodec(t).Issue(Claims{UserID: 1, OrganizationID: 1}, time.Minute)
	require.NoError(t, err)

	other, err := NewCodec("otro-secret-completamente-distinto", testIssuer)
	require.NoError(t, err)
	_, err = other.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestCodec_Malformado(t *testing.T) {
	_, err := newTestCodec(t).Verify("token.invalido.aqui")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestCodec_SinFirma_Rechazado(t *testing.T) {
	claims := Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Issuer:    testIssuer,
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID:         1,
		OrganizationID: 1,
		Purpose:        PurposeSession,
	}
	unsigned, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, claims).SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = newTestCodec(t).Verify(unsigned)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestCodec_VerifyPurpose(t *testing.T) {
	c := newTestCodec(t)
	handoff, err := c.Issue(Claims{UserID: 1, OrganizationID: 2, Purpose: PurposeHandOff, ModuleID: 5}, 10*time.Minute)
	require.NoError(t, err)

	claims, err := c.VerifyPurpose(handoff, PurposeHandOff)
	require.NoError(t, err)
	assert.Equal(t, int64(5), claims.ModuleID)

	_, err = c.VerifyPurpose(handoff, PurposeSession)
	assert.ErrorIs(t, err, ErrInvalid, "un enlace de traspaso no sirve como sesión")
}

func TestCodec_IdentidadObligatoria(t *testing.T) {
	_, err := newTestCodec(t).Issue(Claims{UserID: 1}, time.Minute)
	assert.Error(t, err)

	_, err = NewCodec("", testIssuer)
	assert.Error(t, err)
}

func TestClaims_ExpiresIn(t *testing.T) {
	now := time.Now()
	c := &Claims{RegisteredClaims: gojwt.RegisteredClaims{ExpiresAt: gojwt.NewNumericDate(now.Add(90 * time.Second))}}
	assert.InDelta(t, float64(90*time.Second), float64(c.ExpiresIn(now)), float64(time.Second))
	assert.Equal(t, time.Duration(0), c.ExpiresIn(now.Add(time.Hour)))
}
