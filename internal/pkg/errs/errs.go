package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as the unwrap target of every typed error in this package.
// Callers classify errors with errors.Is against these values.
var (
	ErrObjectNotFound        = errors.New("object not found")
	ErrValueIsInvalid        = errors.New("value is invalid")
	ErrValueIsRequired       = errors.New("value is required")
	ErrInvalidStateForAction = errors.New("state does not permit action")
	ErrConflict              = errors.New("conflict")
	ErrConfiguration         = errors.New("configuration is invalid")
)

// sanitize flattens multi-line values so formatted messages stay single-line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%s", v), "\n", " ")
}

// ObjectNotFoundError indicates that a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an
// underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value fails validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an
// underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an
// underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// InvalidStateForActionError indicates that an operation was attempted against
// an order whose current workflow state does not permit it.
type InvalidStateForActionError struct {
	Action       string
	CurrentState string
	Cause        error
}

// NewInvalidStateForActionError creates an InvalidStateForActionError without a cause.
func NewInvalidStateForActionError(action, currentState string) *InvalidStateForActionError {
	return &InvalidStateForActionError{Action: action, CurrentState: currentState}
}

// NewInvalidStateForActionErrorWithCause creates an InvalidStateForActionError
// wrapping an underlying cause.
func NewInvalidStateForActionErrorWithCause(action, currentState string, cause error) *InvalidStateForActionError {
	return &InvalidStateForActionError{Action: action, CurrentState: currentState, Cause: cause}
}

func (e *InvalidStateForActionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s from state %s (cause: %s)",
			ErrInvalidStateForAction, e.Action, sanitize(e.CurrentState), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s from state %s", ErrInvalidStateForAction, e.Action, sanitize(e.CurrentState))
}

func (e *InvalidStateForActionError) Unwrap() error {
	return ErrInvalidStateForAction
}

// ConflictError indicates that an operation lost a uniqueness race, for
// example exhausting the bounded folio generation retries.
type ConflictError struct {
	ParamName string
	Cause     error
}

// NewConflictError creates a ConflictError without a cause.
func NewConflictError(paramName string) *ConflictError {
	return &ConflictError{ParamName: paramName}
}

// NewConflictErrorWithCause creates a ConflictError wrapping an underlying cause.
func NewConflictErrorWithCause(paramName string, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrConflict, e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrConflict, e.ParamName)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// ConfigurationError indicates that seed or deployment data the system depends
// on is missing or inconsistent. It is never a user fault and should alert
// operators.
type ConfigurationError struct {
	ParamName string
	Cause     error
}

// NewConfigurationError creates a ConfigurationError without a cause.
func NewConfigurationError(paramName string) *ConfigurationError {
	return &ConfigurationError{ParamName: paramName}
}

// NewConfigurationErrorWithCause creates a ConfigurationError wrapping an
// underlying cause.
func NewConfigurationErrorWithCause(paramName string, cause error) *ConfigurationError {
	return &ConfigurationError{ParamName: paramName, Cause: cause}
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrConfiguration, e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrConfiguration, e.ParamName)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}
