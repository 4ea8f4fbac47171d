// Package errs provides the error taxonomy shared by the port engine.
//
// Every failure the engine returns belongs to one family:
//   - ObjectNotFoundError: a referenced vessel, berth, schedule, container or operation is absent
//   - ValueIsInvalidError, ValueIsOutOfRangeError, ValueIsRequiredError: invalid parameters
//   - UnauthorizedError: the caller lacks the role or ownership required
//   - AlreadyExistsError, AlreadyAssignedError: the request conflicts with existing state
//   - ResourceOccupiedError: a berth or equipment unit is held by someone else
//   - InvalidStatusError, InvalidOperationError: the transition or operation kind is not permitted
//   - CapacityExceededError: a value exceeds a hard bound (berth envelope, counters)
//
// Each family follows the same pattern:
//   - A sentinel error variable (e.g., ErrResourceOccupied)
//   - A struct type carrying the parameter name and an optional cause
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Domain packages declare named errors built from these constructors and wrap
// them with fmt.Errorf("%w: ...") to add detail, so errors.Is matches both the
// named domain error and its family sentinel.
package errs
