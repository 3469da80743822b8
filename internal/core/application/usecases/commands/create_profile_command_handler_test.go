package commands_test

import (
	"errors"
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/profile"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateProfileCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateProfileCommand(kernel.NewUUID(), "Jane Doe", portland)

	repo := new(MockProfileRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProfileRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.MatchedBy(func(p *profile.Profile) bool {
			return p.ID().IsEqual(cmd.ProfileID())
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProfileUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProfileCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateProfileCommandHandler_Handle_InvalidAddress(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateProfileCommand(kernel.NewUUID(), "Jane Doe", profile.Address{CountryCode: "usa"})

	factory := new(MockProfileUoWFactory)
	h := commands.NewCreateProfileCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateProfileCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateProfileCommand(kernel.NewUUID(), "Jane Doe", portland)

	repo := new(MockProfileRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProfileRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*profile.Profile")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProfileUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProfileCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
