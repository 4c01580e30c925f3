package release

import (
	"context"
	"errors"

	"go.trai.ch/cheflow/internal/core/domain"
	"go.trai.ch/cheflow/internal/core/ports"
	"go.trai.ch/zerr"
)

// ShouldFreeze reports whether a version is uploaded frozen. Production versions are frozen.
func ShouldFreeze(v domain.SemanticVersion) bool {
	return v.Channel() == domain.ChannelProduction
}

// Uploader uploads cookbooks with the freeze flag derived from their version.
type Uploader struct {
	logger ports.Logger
}

// NewUploader creates a new Uploader.
func NewUploader(logger ports.Logger) *Uploader {
	return &Uploader{logger: logger}
}

// Upload sends the cookbook to the server. It does not retry.
func (u *Uploader) Upload(ctx context.Context, server ports.CookbookUploader, cookbook domain.Cookbook) error {
	freeze := ShouldFreeze(cookbook.Version)
	if freeze {
		u.logger.Debug("uploading " + cookbook.String() + " frozen")
	} else {
		u.logger.Debug("uploading " + cookbook.String() + " unfrozen")
	}

	err := server.UploadCookbook(ctx, cookbook, freeze)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrFrozenCookbookConflict):
		conflict := zerr.Wrap(domain.ErrFrozenCookbookConflict, "bump the version before uploading again")
		conflict = zerr.With(conflict, "cookbook", cookbook.Identity.Name())
		return zerr.With(conflict, "version", cookbook.Version.String())
	default:
		failed := zerr.Wrap(errors.Join(domain.ErrUploadFailed, err), "cannot upload "+cookbook.String())
		return zerr.With(failed, "cookbook", cookbook.Identity.Name())
	}
}
