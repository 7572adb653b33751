package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Propósitos de token. Un token de sesión nunca sirve como enlace de traspaso y viceversa.
const (
	PurposeSession = "session"
	PurposeHandOff = "handoff"
)

// Errores internos de verificación. Los handlers los colapsan en un único 401.
var (
	ErrInvalid = errors.New("jwt: token inválido")
	ErrExpired = errors.New("jwt: token expirado")
)

// Claims identidad firmada: usuario y organización siempre presentes.
type Claims struct {
	jwt.RegisteredClaims
	UserID         int64  `json:"user_id"`
	OrganizationID int64  `json:"organization_id"`
	Purpose        string `json:"purpose"`
	Role           string `json:"role,omitempty"` // solo en sesión: el middleware RBAC decide sin consultar la DB
	ModuleID       int64  `json:"module_id,omitempty"`
}

// TokenID devuelve el jti (identificador único usado por el registro de revocación).
func (c *Claims) TokenID() string {
	return c.ID
}

// ExpiresIn tiempo restante hasta la expiración (0 si ya expiró).
func (c *Claims) ExpiresIn(now time.Time) time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	d := c.ExpiresAt.Time.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// Codec firma y verifica tokens HS256. Es inmutable y seguro para uso concurrente.
type Codec struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewCodec construye el codec. El secret es obligatorio.
func NewCodec(secret, issuer string) (*Codec, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	return &Codec{secret: []byte(secret), issuer: issuer, now: time.Now}, nil
}

// Issue firma los claims con la duración indicada. Completa iss, sub, iat, exp y jti.
func (c *Codec) Issue(claims Claims, ttl time.Duration) (string, error) {
	if claims.UserID == 0 || claims.OrganizationID == 0 {
		return "", fmt.Errorf("jwt: user_id y organization_id son obligatorios")
	}
	if claims.Purpose == "" {
		claims.Purpose = PurposeSession
	}
	now := c.now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    c.issuer,
		Subject:   strconv.FormatInt(claims.UserID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Verify valida firma, algoritmo y expiración. Cualquier fallo devuelve ErrInvalid o ErrExpired.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return c.secret, nil
	},
		jwt.WithIssuer(c.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if !token.Valid || claims.UserID == 0 || claims.OrganizationID == 0 {
		return nil, ErrInvalid
	}
	return claims, nil
}

// VerifyPurpose verifica el token y exige el propósito indicado.
func (c *Codec) VerifyPurpose(tokenString, purpose string) (*Claims, error) {
	claims, err := c.Verify(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Purpose != purpose {
		return nil, ErrInvalid
	}
	return claims, nil
}
