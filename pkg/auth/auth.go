package auth

import (
	"context"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

// Principal is the authenticated caller, passed explicitly through the
// service layer. There is no ambient current-user state.
type Principal struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Admin bool   `json:"admin"`
}

type Profile struct {
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
	IsAdmin    bool   `json:"isAdmin"`
}

type Claims struct {
	Profile Profile `json:"profile"`
	jwt.RegisteredClaims
}

var JWTKey = []byte(jwtKeyFromEnv())

func jwtKeyFromEnv() string {
	if k := os.Getenv("JWT_KEY"); k != "" {
		return k
	}
	return "fleet-service-dev-key"
}

// NewToken issues an HS256 token for the principal. Used by tests and the
// employee-provisioning flow; production tokens come from the identity provider.
func NewToken(p Principal, ttl time.Duration) (string, error) {
	claims := Claims{
		Profile: Profile{EmployeeID: p.ID, Name: p.Name, IsAdmin: p.Admin},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(JWTKey)
}

type principalKey struct{}

func SetAuthContext(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

var ErrNoPrincipal = errors.New("no principal in context")

func FromContext(ctx context.Context) (Principal, error) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	if !ok {
		return Principal{}, ErrNoPrincipal
	}
	return p, nil
}
