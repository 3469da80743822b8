package errs_test

import (
	"errors"
	"testing"

	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("shipmentId", "123")

		assert.Equal(t, "shipmentId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("shipmentId", "123", cause)

		assert.Equal(t, "shipmentId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: shipmentId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderItemId", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("package_type")

		assert.Equal(t, "package_type", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: package_type", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("package_type", cause)

		assert.Equal(t, "package_type", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: package_type (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 150, 0, 120)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 120, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 150 is quantity, min value is 0, max value is 120", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("weight", -5, 0, 100, cause)

		assert.Equal(t, "weight", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100, err.Max)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is weight, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("purchased_entity_id")

		assert.Equal(t, "purchased_entity_id", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: purchased_entity_id", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("purchased_entity_id", cause)

		assert.Equal(t, "purchased_entity_id", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: purchased_entity_id (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestTransitionIsNotAllowedError(t *testing.T) {
	t.Run("NewTransitionIsNotAllowedError", func(t *testing.T) {
		err := errs.NewTransitionIsNotAllowedError("shipment_default", "ship", "draft")

		assert.Equal(t, "shipment_default", err.WorkflowID)
		assert.Equal(t, "ship", err.Transition)
		assert.Equal(t, "draft", err.State)
		require.NoError(t, err.Cause)
		assert.Equal(t, "transition is not allowed: ship from draft in workflow shipment_default", err.Error())
		assert.Equal(t, errs.ErrTransitionIsNotAllowed, err.Unwrap())
	})

	t.Run("NewTransitionIsNotAllowedErrorWithCause", func(t *testing.T) {
		cause := errors.New("unknown transition")
		err := errs.NewTransitionIsNotAllowedErrorWithCause("order_default", "fulfill", "draft", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"transition is not allowed: fulfill from draft in workflow order_default (cause: unknown transition)",
			err.Error())
	})

	t.Run("is not an invalid argument", func(t *testing.T) {
		err := errs.NewTransitionIsNotAllowedError("shipment_default", "ship", "draft")
		assert.NotErrorIs(t, err, errs.ErrInvalidArgument)
	})
}

func TestInvalidArgumentGrouping(t *testing.T) {
	require.ErrorIs(t, errs.NewValueIsRequiredError("items"), errs.ErrInvalidArgument)
	require.ErrorIs(t, errs.NewValueIsInvalidError("quantity"), errs.ErrInvalidArgument)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("quantity", -1, 0, 10), errs.ErrInvalidArgument)
	assert.NotErrorIs(t, errs.NewObjectNotFoundError("order", "1"), errs.ErrInvalidArgument)

	joined := errors.Join(errs.NewValueIsRequiredError("type"), errs.NewValueIsRequiredError("order_id"))
	require.ErrorIs(t, joined, errs.ErrInvalidArgument)
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrTransitionIsNotAllowed)
		require.Error(t, errs.ErrInvalidArgument)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "transition is not allowed", errs.ErrTransitionIsNotAllowed.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("shipmentId", "123")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		valueInvalidErr := errs.NewValueIsInvalidError("package_type")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("quantity", 150, 0, 120)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		valueRequiredErr := errs.NewValueIsRequiredError("purchased_entity_id")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)

		transitionErr := errs.NewTransitionIsNotAllowedError("shipment_default", "cancel", "shipped")
		require.ErrorIs(t, transitionErr, errs.ErrTransitionIsNotAllowed)
	})
}
