package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Every typed error in this package unwraps to exactly one of them,
// so callers classify failures with errors.Is.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrUnauthorized      = errors.New("caller is not authorized")
	ErrAlreadyExists     = errors.New("object already exists")
	ErrAlreadyAssigned   = errors.New("object already assigned")
	ErrResourceOccupied  = errors.New("resource is occupied")
	ErrInvalidStatus     = errors.New("status is invalid")
	ErrInvalidOperation  = errors.New("operation is invalid")
	ErrCapacityExceeded  = errors.New("capacity exceeded")
)

// ObjectNotFoundError reports a lookup by identifier that found nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %v)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s %v", ErrObjectNotFound, e.ParamName, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a parameter whose value is outside its domain.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return format(ErrValueIsInvalid, e.ParamName, e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside an inclusive [Min, Max] range.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsOutOfRange, sanitize(e.Value), e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return format(ErrValueIsRequired, e.ParamName, e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// UnauthorizedError reports a caller lacking the role or ownership an action needs.
type UnauthorizedError struct {
	Caller string
	Action string
}

// NewUnauthorizedError creates an UnauthorizedError for caller attempting action.
func NewUnauthorizedError(caller, action string) *UnauthorizedError {
	return &UnauthorizedError{Caller: caller, Action: action}
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("%s: %s may not %s", ErrUnauthorized, sanitize(e.Caller), e.Action)
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// AlreadyExistsError reports a create that collides with an existing record.
type AlreadyExistsError struct {
	ParamName string
	Cause     error
}

// NewAlreadyExistsError creates an AlreadyExistsError without a cause.
func NewAlreadyExistsError(paramName string) *AlreadyExistsError {
	return &AlreadyExistsError{ParamName: paramName}
}

// NewAlreadyExistsErrorWithCause creates an AlreadyExistsError wrapping cause.
func NewAlreadyExistsErrorWithCause(paramName string, cause error) *AlreadyExistsError {
	return &AlreadyExistsError{ParamName: paramName, Cause: cause}
}

func (e *AlreadyExistsError) Error() string {
	return format(ErrAlreadyExists, e.ParamName, e.Cause)
}

func (e *AlreadyExistsError) Unwrap() error {
	return ErrAlreadyExists
}

// AlreadyAssignedError reports an object that is already bound to another one.
type AlreadyAssignedError struct {
	ParamName string
	Cause     error
}

// NewAlreadyAssignedError creates an AlreadyAssignedError without a cause.
func NewAlreadyAssignedError(paramName string) *AlreadyAssignedError {
	return &AlreadyAssignedError{ParamName: paramName}
}

// NewAlreadyAssignedErrorWithCause creates an AlreadyAssignedError wrapping cause.
func NewAlreadyAssignedErrorWithCause(paramName string, cause error) *AlreadyAssignedError {
	return &AlreadyAssignedError{ParamName: paramName, Cause: cause}
}

func (e *AlreadyAssignedError) Error() string {
	return format(ErrAlreadyAssigned, e.ParamName, e.Cause)
}

func (e *AlreadyAssignedError) Unwrap() error {
	return ErrAlreadyAssigned
}

// ResourceOccupiedError reports a berth or equipment unit held by someone else.
type ResourceOccupiedError struct {
	ParamName string
	Cause     error
}

// NewResourceOccupiedError creates a ResourceOccupiedError without a cause.
func NewResourceOccupiedError(paramName string) *ResourceOccupiedError {
	return &ResourceOccupiedError{ParamName: paramName}
}

// NewResourceOccupiedErrorWithCause creates a ResourceOccupiedError wrapping cause.
func NewResourceOccupiedErrorWithCause(paramName string, cause error) *ResourceOccupiedError {
	return &ResourceOccupiedError{ParamName: paramName, Cause: cause}
}

func (e *ResourceOccupiedError) Error() string {
	return format(ErrResourceOccupied, e.ParamName, e.Cause)
}

func (e *ResourceOccupiedError) Unwrap() error {
	return ErrResourceOccupied
}

// InvalidStatusError reports a state transition not permitted from the current status.
type InvalidStatusError struct {
	ParamName string
	Cause     error
}

// NewInvalidStatusError creates an InvalidStatusError without a cause.
func NewInvalidStatusError(paramName string) *InvalidStatusError {
	return &InvalidStatusError{ParamName: paramName}
}

// NewInvalidStatusErrorWithCause creates an InvalidStatusError wrapping cause.
func NewInvalidStatusErrorWithCause(paramName string, cause error) *InvalidStatusError {
	return &InvalidStatusError{ParamName: paramName, Cause: cause}
}

func (e *InvalidStatusError) Error() string {
	return format(ErrInvalidStatus, e.ParamName, e.Cause)
}

func (e *InvalidStatusError) Unwrap() error {
	return ErrInvalidStatus
}

// InvalidOperationError reports an unsupported operation kind.
type InvalidOperationError struct {
	ParamName string
	Cause     error
}

// NewInvalidOperationError creates an InvalidOperationError without a cause.
func NewInvalidOperationError(paramName string) *InvalidOperationError {
	return &InvalidOperationError{ParamName: paramName}
}

// NewInvalidOperationErrorWithCause creates an InvalidOperationError wrapping cause.
func NewInvalidOperationErrorWithCause(paramName string, cause error) *InvalidOperationError {
	return &InvalidOperationError{ParamName: paramName, Cause: cause}
}

func (e *InvalidOperationError) Error() string {
	return format(ErrInvalidOperation, e.ParamName, e.Cause)
}

func (e *InvalidOperationError) Unwrap() error {
	return ErrInvalidOperation
}

// CapacityExceededError reports a value above a hard physical or system bound.
type CapacityExceededError struct {
	ParamName string
	Cause     error
}

// NewCapacityExceededError creates a CapacityExceededError without a cause.
func NewCapacityExceededError(paramName string) *CapacityExceededError {
	return &CapacityExceededError{ParamName: paramName}
}

// NewCapacityExceededErrorWithCause creates a CapacityExceededError wrapping cause.
func NewCapacityExceededErrorWithCause(paramName string, cause error) *CapacityExceededError {
	return &CapacityExceededError{ParamName: paramName, Cause: cause}
}

func (e *CapacityExceededError) Error() string {
	return format(ErrCapacityExceeded, e.ParamName, e.Cause)
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}

func format(sentinel error, paramName string, cause error) string {
	if cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", sentinel, paramName, cause)
	}
	return fmt.Sprintf("%s: %s", sentinel, paramName)
}

// sanitize keeps caller-provided values on a single log line.
func sanitize(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	return strings.NewReplacer("\n", " ", "\r", " ").Replace(s)
}
