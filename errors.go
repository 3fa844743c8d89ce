package devcycle

import (
	"errors"
	"fmt"
)

// Error Variables
type DevCycleError error

var (
	ErrMissingRequiredIdentity DevCycleError = errors.New("missing required user identity")
	ErrTypeMismatch            DevCycleError = errors.New("variable type mismatch")
	ErrCustomDataSerialization DevCycleError = errors.New("failed to serialize custom data")
)

type UserErrorKind string

const (
	MissingUserIdAndIsAnonymousFalse UserErrorKind = "MissingUserIdAndIsAnonymousFalse"
)

type UserError struct {
	Kind UserErrorKind
}

func (e *UserError) Error() string {
	return fmt.Sprintf("Failed to build user (%s): a user id or isAnonymous must be set", e.Kind)
}

func (e *UserError) Is(target error) bool { return target == ErrMissingRequiredIdentity }

type VariableTypeMismatchError struct {
	Key      string
	Expected VariableType
	Actual   VariableType
}

func (e *VariableTypeMismatchError) Error() string {
	if e.Actual == "" {
		return fmt.Sprintf("Variable %s: default value is of type %s but evaluated value has an unsupported type", e.Key, e.Expected)
	} else {
		return fmt.Sprintf("Variable %s: default value is of type %s but evaluated value is of type %s", e.Key, e.Expected, e.Actual)
	}
}

func (e *VariableTypeMismatchError) Is(target error) bool { return target == ErrTypeMismatch }

type CustomDataError struct {
	Err   error
	Field string
}

func (e *CustomDataError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Failed to serialize %s: %s", e.Field, e.Err.Error())
	} else {
		return fmt.Sprintf("Failed to serialize %s", e.Field)
	}
}

func (e *CustomDataError) Unwrap() error { return e.Err }

func (e *CustomDataError) Is(target error) bool { return target == ErrCustomDataSerialization }
