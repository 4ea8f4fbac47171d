package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"seaport/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("vessel", uint64(7))

		assert.Equal(t, "vessel", err.ParamName)
		assert.Equal(t, uint64(7), err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: vessel 7", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("berth", "12", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: berth, ID is: 12 (cause: database connection failed)",
			err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("formats bounds", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("weight", 60000, 1, 49999)

		assert.Equal(t, "value is out of range: 60000 is weight, min value is 1, max value is 49999", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeErrorWithCause("available", -1, 0, 4, errors.New("inventory update"))

		assert.Contains(t, err.Error(), "(cause: inventory update)")
	})

	t.Run("sanitizes newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("label", "gate\nA", 0, 10)

		assert.Contains(t, err.Error(), "gate A")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestParamErrors(t *testing.T) {
	cause := errors.New("detail")

	testCases := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{"value invalid", errs.NewValueIsInvalidError("length"), errs.ErrValueIsInvalid, "value is invalid: length"},
		{"value required", errs.NewValueIsRequiredError("owner"), errs.ErrValueIsRequired, "value is required: owner"},
		{"already exists", errs.NewAlreadyExistsError("schedule"), errs.ErrAlreadyExists, "object already exists: schedule"},
		{"already assigned", errs.NewAlreadyAssignedError("vessel"), errs.ErrAlreadyAssigned, "object already assigned: vessel"},
		{"resource occupied", errs.NewResourceOccupiedError("berth"), errs.ErrResourceOccupied, "resource is occupied: berth"},
		{"invalid status", errs.NewInvalidStatusError("operation"), errs.ErrInvalidStatus, "status is invalid: operation"},
		{"invalid operation", errs.NewInvalidOperationError("type"), errs.ErrInvalidOperation, "operation is invalid: type"},
		{"capacity exceeded", errs.NewCapacityExceededError("envelope"), errs.ErrCapacityExceeded, "capacity exceeded: envelope"},
		{
			"invalid status with cause",
			errs.NewInvalidStatusErrorWithCause("vessel", cause),
			errs.ErrInvalidStatus,
			"status is invalid: vessel (cause: detail)",
		},
		{
			"resource occupied with cause",
			errs.NewResourceOccupiedErrorWithCause("crane", cause),
			errs.ErrResourceOccupied,
			"resource is occupied: crane (cause: detail)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.err, tc.sentinel)
			assert.Equal(t, tc.message, tc.err.Error())
		})
	}
}

func TestUnauthorizedError(t *testing.T) {
	err := errs.NewUnauthorizedError("harbour-master\n", "assign berth")

	require.ErrorIs(t, err, errs.ErrUnauthorized)
	assert.Equal(t, "caller is not authorized: harbour-master  may not assign berth", err.Error())
}

func TestDomainErrorsWrapFamilies(t *testing.T) {
	errBerthOccupied := errs.NewResourceOccupiedError("berth")

	wrapped := fmt.Errorf("%w: berth 3 holds vessel 9", errBerthOccupied)

	require.ErrorIs(t, wrapped, errBerthOccupied)
	require.ErrorIs(t, wrapped, errs.ErrResourceOccupied)
	assert.NotErrorIs(t, wrapped, errs.ErrAlreadyAssigned)
}
