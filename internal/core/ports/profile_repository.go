package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/profile"
)

// ProfileRepository stores destination profiles.
type ProfileRepository interface {
	Add(ctx context.Context, aggregate *profile.Profile) error
	Get(ctx context.Context, id kernel.UUID) (*profile.Profile, error)
}
