//go:build unit

package bootstrap

import (
	"testing"
	"time"

	"content-dispatch/internal/pkg/config"
	"content-dispatch/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTService(t *testing.T) {
	tests := []struct {
		name    string
		access  string
		refresh string
		wantErr string
	}{
		{name: "valid lifetimes", access: "15m", refresh: "168h"},
		{name: "malformed access lifetime", access: "fifteen", refresh: "168h", wantErr: "JWT_ACCESS_TOKEN_DURATION"},
		{name: "malformed refresh lifetime", access: "15m", refresh: "", wantErr: "JWT_REFRESH_TOKEN_DURATION"},
		{name: "zero access lifetime", access: "0s", refresh: "168h", wantErr: "must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Config{JWT: config.JWTConfig{Secret: "s", AccessTokenDuration: tt.access, RefreshTokenDuration: tt.refresh}}

			var (
				svc *jwt.Service
				err error
			)
			require.NotPanics(t, func() { svc, err = NewJWTService(cfg) })

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 15*time.Minute, svc.AccessTokenDuration())
		})
	}
}
