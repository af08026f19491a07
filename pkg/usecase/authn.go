package usecase

import (
	"context"
	"time"

	"github.com/gameops-lab/rconhub/pkg/domain/model"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultSessionTTL is the lifetime of an issued session token
const DefaultSessionTTL = 12 * time.Hour

const sessionIssuer = "rconhub"

// AuthUseCase issues and validates operator session tokens. Tokens are
// HS256-signed JWTs whose claims carry the operator name, the superuser
// flag, and the granted permissions. In no-auth mode validation is skipped
// entirely and callers inject an anonymous superuser instead.
type AuthUseCase struct {
	secret  []byte
	noAuthn bool
}

// NewAuthUseCase creates a validator backed by the shared signing secret
func NewAuthUseCase(secret []byte) (*AuthUseCase, error) {
	if len(secret) == 0 {
		return nil, goerr.New("session signing secret is required")
	}
	return &AuthUseCase{secret: secret}, nil
}

// NewNoAuthn creates the development-mode validator that accepts everything
func NewNoAuthn() *AuthUseCase {
	return &AuthUseCase{noAuthn: true}
}

// IsNoAuthn reports whether authentication is disabled
func (uc *AuthUseCase) IsNoAuthn() bool {
	return uc.noAuthn
}

// IssueToken signs a session token for the actor
func (uc *AuthUseCase) IssueToken(actor model.Actor, ttl time.Duration) (string, error) {
	if uc.noAuthn {
		return "", goerr.New("cannot issue tokens in no-auth mode")
	}
	if ttl == 0 {
		ttl = DefaultSessionTTL
	}

	now := time.Now()
	builder := jwt.NewBuilder().
		Issuer(sessionIssuer).
		Subject(actor.Name).
		IssuedAt(now).
		Expiration(now.Add(ttl)).
		Claim("superuser", actor.IsSuperuser)

	perms := actor.Permissions.List()
	if len(perms) > 0 {
		builder = builder.Claim("permissions", perms)
	}

	token, err := builder.Build()
	if err != nil {
		return "", goerr.Wrap(err, "failed to build session token")
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256, uc.secret))
	if err != nil {
		return "", goerr.Wrap(err, "failed to sign session token")
	}
	return string(signed), nil
}

// ValidateToken verifies the signed token and converts its claims into an
// actor. Allows 10 seconds of clock skew.
func (uc *AuthUseCase) ValidateToken(ctx context.Context, raw string) (model.Actor, error) {
	if uc.noAuthn {
		return model.Actor{}, goerr.New("no-auth mode does not validate tokens")
	}

	token, err := jwt.Parse([]byte(raw),
		jwt.WithKey(jwa.HS256, uc.secret),
		jwt.WithValidate(true),
		jwt.WithIssuer(sessionIssuer),
		jwt.WithAcceptableSkew(10*time.Second),
	)
	if err != nil {
		return model.Actor{}, goerr.Wrap(err, "failed to parse or verify session token")
	}

	name := token.Subject()
	if name == "" {
		return model.Actor{}, goerr.New("sub claim not found in token")
	}

	var isSuperuser bool
	if v, ok := token.Get("superuser"); ok {
		b, ok := v.(bool)
		if !ok {
			return model.Actor{}, goerr.New("superuser claim is not a boolean")
		}
		isSuperuser = b
	}

	var grants []model.PermissionGrant
	if v, ok := token.Get("permissions"); ok {
		items, ok := v.([]any)
		if !ok {
			return model.Actor{}, goerr.New("permissions claim is not a list")
		}
		for _, item := range items {
			p, ok := item.(string)
			if !ok {
				return model.Actor{}, goerr.New("permissions claim contains a non-string entry")
			}
			grants = append(grants, model.PermissionGrant{Permission: p})
		}
	}

	return model.NewActor(name, isSuperuser, grants), nil
}
