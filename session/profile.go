package session

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/shopfront/storefront/catalog"
	"github.com/shopfront/storefront/internal/errors"
)

// profileClaims wraps the user profile in a JWT so the client-side projection
// is tamper-evident across page loads.
type profileClaims struct {
	User catalog.User `json:"user"`
	jwt.RegisteredClaims
}

func (s *Store) signProfile(user catalog.User) (string, error) {
	claims := profileClaims{
		User: user,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: user.ID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrapf(err, "sign profile cookie")
	}
	return signed, nil
}

func (s *Store) verifyProfile(raw string) (*catalog.User, error) {
	var claims profileClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.ErrProfileTampered
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.Wrapf(errors.ErrProfileTampered, "verify profile cookie")
	}
	return &claims.User, nil
}
