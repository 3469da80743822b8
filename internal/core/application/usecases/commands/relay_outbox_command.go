package commands

import (
	"errors"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrRelayOutboxCommandIsNotConstructed = errors.New(
	"RelayOutboxCommand must be created via NewRelayOutboxCommand constructor",
)

// RelayOutboxCommand publishes up to BatchSize committed outbox messages.
type RelayOutboxCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

func NewRelayOutboxCommand(batchSize int) (RelayOutboxCommand, error) {
	cmd := RelayOutboxCommand{guard: guard.NewConstructorGuard()}
	if err := cmd.setBatchSize(batchSize); err != nil {
		return RelayOutboxCommand{}, err
	}
	return cmd, nil
}

func (c RelayOutboxCommand) Validate() error {
	return c.guard.Validate(ErrRelayOutboxCommandIsNotConstructed)
}

func (c RelayOutboxCommand) BatchSize() int {
	return c.batchSize
}

func (c *RelayOutboxCommand) setBatchSize(size int) error {
	if size < 1 {
		return errs.NewValueIsOutOfRangeError("batch_size", size, 1, "unbounded")
	}
	c.batchSize = size
	return nil
}
