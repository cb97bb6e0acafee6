package service

import (
	"context"

	"github.com/Masterminds/semver/v3"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

type appInfoService struct {
	appVersion       string
	minClientVersion *semver.Version

	logger *logger.Logger
}

// NewAppInfoService fails when no server version is configured or when the
// minimum client version is not a semantic version.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	s := &appInfoService{
		appVersion: cfg.Version,
		logger:     logger,
	}

	if cfg.MinClientVersion != "" {
		v, err := semver.NewVersion(cfg.MinClientVersion)
		if err != nil {
			return nil, err
		}
		s.minClientVersion = v
	}

	return s, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// Status tells a client whether it must update. Clients that do not report a
// parsable version are asked to update whenever a minimum is configured.
func (s *appInfoService) Status(ctx context.Context, clientVersion string) models.StatusResponse {
	resp := models.StatusResponse{ServerVersion: s.appVersion}
	if s.minClientVersion == nil {
		return resp
	}

	resp.MinimumClientVersion = s.minClientVersion.String()

	v, err := semver.NewVersion(clientVersion)
	if err != nil {
		logger.FromContext(ctx).Debug().Str("client_version", clientVersion).Msg("unparsable client version")
		resp.UpdateRequired = true
		return resp
	}

	resp.UpdateRequired = v.LessThan(s.minClientVersion)
	return resp
}
