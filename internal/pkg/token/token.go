// Package token issues and verifies the HS256 bearer tokens that prove
// authentication. The server holds no session state: the token is the sole
// proof, valid until its expiry with no revocation list.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/amanj01/catalog-admin/internal/core/domain"
)

var (
	// ErrSignature means the signature does not verify under the server secret.
	ErrSignature = errors.New("token signature invalid")
	// ErrMalformed means the token cannot be decoded into the expected shape,
	// including claims carrying an unknown role.
	ErrMalformed = errors.New("token malformed")
	// ErrExpired means the token's expiry has elapsed.
	ErrExpired = errors.New("token expired")
)

// Claims is the decoded assertion carried by a verified token.
type Claims struct {
	SubjectID string
	Role      domain.Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Issuer signs and verifies tokens under a process-wide secret fixed at
// construction. Rotating the secret invalidates all outstanding tokens.
type Issuer struct {
	secret []byte
	now    func() time.Time
}

func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: []byte(secret), now: time.Now}
}

// Issue returns a signed token embedding the subject, role, issued-at = now
// and expires-at = now + ttl.
func (i *Issuer) Issue(subjectID string, role domain.Role, ttl time.Duration) (string, error) {
	now := i.now().UTC()
	claims := jwt.MapClaims{
		"sub":  subjectID,
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// Verify checks the signature and expiry and returns the decoded claims.
// Expiry is checked here rather than by the JWT library so that the boundary
// instant (now == expires-at) counts as still valid.
func (i *Issuer) Verify(raw string) (*Claims, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	tkn, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, ErrSignature
		}
		return nil, ErrMalformed
	}
	if !tkn.Valid {
		return nil, ErrSignature
	}

	sub, _ := claims["sub"].(string)
	rawRole, _ := claims["role"].(string)
	expUnix, okExp := claims["exp"].(float64)
	iatUnix, _ := claims["iat"].(float64)

	role, roleErr := domain.ParseRole(rawRole)
	if sub == "" || roleErr != nil || !okExp {
		return nil, ErrMalformed
	}

	expiresAt := time.Unix(int64(expUnix), 0).UTC()
	if i.now().After(expiresAt) {
		return nil, ErrExpired
	}

	return &Claims{
		SubjectID: sub,
		Role:      role,
		IssuedAt:  time.Unix(int64(iatUnix), 0).UTC(),
		ExpiresAt: expiresAt,
	}, nil
}
