package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/profile"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrCreateProfileCommandIsNotConstructed = errors.New(
	"CreateProfileCommand must be created via NewCreateProfileCommand constructor",
)

// CreateProfileCommand registers a destination profile that orders can later
// be packed against.
type CreateProfileCommand struct { //nolint:recvcheck //using for validation
	profileID kernel.UUID
	fullName  string
	address   profile.Address

	guard guard.ConstructorGuard
}

// NewCreateProfileCommand validates the profile identifier and recipient name.
// Address rules are enforced by the profile aggregate itself.
func NewCreateProfileCommand(profileID kernel.UUID, fullName string, address profile.Address) (CreateProfileCommand, error) {
	cmd := CreateProfileCommand{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProfileID(profileID),
		cmd.setFullName(fullName),
	); err != nil {
		return CreateProfileCommand{}, err
	}

	return cmd, nil
}

func (c CreateProfileCommand) Validate() error {
	return c.guard.Validate(ErrCreateProfileCommandIsNotConstructed)
}

func (c CreateProfileCommand) ProfileID() kernel.UUID {
	return c.profileID
}

func (c CreateProfileCommand) FullName() string {
	return c.fullName
}

func (c CreateProfileCommand) Address() profile.Address {
	return c.address
}

func (c *CreateProfileCommand) setProfileID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.profileID = id
	return nil
}

func (c *CreateProfileCommand) setFullName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("full_name")
	}

	c.fullName = name
	return nil
}
