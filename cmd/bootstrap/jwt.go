package bootstrap

import (
	"time"

	"content-dispatch/internal/pkg/config"
	"content-dispatch/internal/pkg/errs"
	"content-dispatch/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

// NewJWTService fails startup on a malformed or non-positive token lifetime.
func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	access, err := tokenDuration("JWT_ACCESS_TOKEN_DURATION", cfg.JWT.AccessTokenDuration)
	if err != nil {
		return nil, err
	}
	refresh, err := tokenDuration("JWT_REFRESH_TOKEN_DURATION", cfg.JWT.RefreshTokenDuration)
	if err != nil {
		return nil, err
	}
	return jwt.NewService(cfg.JWT.Secret, access, refresh), nil
}

func tokenDuration(name, raw string) (time.Duration, error) {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, errs.Wrapf(err, "invalid %s", name)
	}
	if d <= 0 {
		return 0, errs.Newf("invalid %s: must be positive, got %s", name, raw)
	}
	return d, nil
}
