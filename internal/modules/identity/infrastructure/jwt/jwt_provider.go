package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/saransh1220/artistly/internal/modules/identity/domain"
)

type SessionClaims struct {
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Provider signs and verifies HS256 session tokens.
type Provider struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

func NewProvider(secret string, expiry time.Duration) *Provider {
	return &Provider{secret: []byte(secret), expiry: expiry, now: time.Now}
}

// GenerateToken encodes the session in a signed token; the user ID becomes
// the subject.
func (p *Provider) GenerateToken(s domain.Session) (string, error) {
	now := p.now()
	claims := SessionClaims{
		Name:  s.Name,
		Email: s.Email,
		Role:  s.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(p.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
}

// ValidateToken verifies signature and expiry and returns the session the
// token carries.
func (p *Provider) ValidateToken(tokenStr string) (domain.Session, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return p.secret, nil
	})
	if err != nil {
		return domain.Session{}, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return domain.Session{}, jwt.ErrTokenMalformed
	}
	return domain.Session{ID: claims.Subject, Name: claims.Name, Email: claims.Email, Role: claims.Role}, nil
}
