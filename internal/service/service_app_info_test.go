package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-issue-bridge/internal/config"
	"github.com/MKhiriev/go-issue-bridge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.App
		build   models.AppBuildInfo
		want    string
		wantErr error
	}{
		{
			name:  "configured version wins",
			cfg:   config.App{Version: "1.0.0"},
			build: models.NewAppBuildInfo("0.9.0", "2026-01-01", "abc"),
			want:  "1.0.0",
		},
		{
			name:  "falls back to build version",
			cfg:   config.App{},
			build: models.NewAppBuildInfo("0.9.0", "2026-01-01", "abc"),
			want:  "0.9.0",
		},
		{
			name:    "nothing known",
			cfg:     config.App{},
			build:   models.NewAppBuildInfo("N/A", "N/A", "N/A"),
			wantErr: ErrVersionIsNotSpecified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(tt.cfg, tt.build)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, svc)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, svc.GetAppVersion(context.Background()))
		})
	}
}
