package commands

import (
	"context"

	"shipping/internal/core/domain/model/profile"
)

// CreateProfileCommandHandler persists new destination profiles.
type CreateProfileCommandHandler struct {
	uowFactory ProfileUoWFactory
}

func NewCreateProfileCommandHandler(uowFactory ProfileUoWFactory) CreateProfileCommandHandler {
	return CreateProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle builds the profile aggregate and stores it in a single transaction.
func (h CreateProfileCommandHandler) Handle(ctx context.Context, cmd CreateProfileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	p, err := profile.NewProfile(cmd.ProfileID(), cmd.FullName(), cmd.Address())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProfileRepository().Add(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
