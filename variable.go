package devcycle

import (
	"encoding/json"
)

type VariableType string

const (
	VariableTypeString  VariableType = "String"
	VariableTypeNumber  VariableType = "Number"
	VariableTypeBoolean VariableType = "Boolean"
	VariableTypeJSON    VariableType = "JSON"
)

// The value kinds a Variable can hold. Numbers are always float64, JSON values are objects.
type VariableValue interface {
	string | float64 | bool | map[string]interface{}
}

// An evaluated variable as produced by the evaluation service
type ReadOnlyVariable struct {
	Key        string       `json:"key"`
	Type       VariableType `json:"type"`
	Value      interface{}  `json:"value"`
	EvalReason *string      `json:"evalReason,omitempty"`
}

type VariableValueHandler[T VariableValue] func(value T)

// A typed flag value. Value always has the same kind as DefaultValue.
type Variable[T VariableValue] struct {
	Key          string
	Type         VariableType
	Value        T
	DefaultValue T
	EvalReason   *string

	handler   VariableValueHandler[T]
	defaulted bool
}

// Creates a variable that serves value, or defaultValue when value is nil
func NewVariable[T VariableValue](key string, variableType VariableType, value *T, defaultValue T, evalReason *string) *Variable[T] {
	v := &Variable[T]{
		Key:          key,
		Type:         variableType,
		DefaultValue: defaultValue,
		EvalReason:   evalReason,
	}
	if value != nil {
		v.Value = *value
	} else {
		v.Value = defaultValue
		v.defaulted = true
	}
	return v
}

// Creates a variable from an evaluation result. Fails with a *VariableTypeMismatchError
// when the evaluated value is not of the same kind as defaultValue.
func NewVariableFromEvaluation[T VariableValue](result ReadOnlyVariable, defaultValue T) (*Variable[T], error) {
	value, err := evaluatedValueAs[T](result)
	if err != nil {
		return nil, err
	}
	return &Variable[T]{
		Key:          result.Key,
		Type:         result.Type,
		Value:        value,
		DefaultValue: defaultValue,
		EvalReason:   result.EvalReason,
	}, nil
}

// Registers the handler called when Update replaces the value. Only the last
// registered handler is kept.
func (v *Variable[T]) OnUpdate(handler VariableValueHandler[T]) *Variable[T] {
	v.handler = handler
	return v
}

// Replaces Value, Type and EvalReason with result and notifies the registered
// handler with the new value. On a type mismatch the variable is left unchanged.
func (v *Variable[T]) Update(result ReadOnlyVariable) error {
	value, err := evaluatedValueAs[T](result)
	if err != nil {
		return err
	}
	v.Value = value
	v.Type = result.Type
	v.EvalReason = result.EvalReason
	v.defaulted = false
	if v.handler != nil {
		v.handler(value)
	}
	return nil
}

// Whether the default value is being served because no evaluated value was available
func (v *Variable[T]) IsDefaulted() bool {
	return v.defaulted
}

// Evaluated variables keyed by variable key
type VariableSet map[string]ReadOnlyVariable

// Looks up key in set. Missing keys yield a defaulted variable. A type mismatch also yields
// a defaulted variable, together with the mismatch error, so one misconfigured variable
// cannot break the others.
func GetVariable[T VariableValue](set VariableSet, key string, defaultValue T) (*Variable[T], error) {
	result, ok := set[key]
	if !ok {
		return NewVariable[T](key, variableTypeOf(defaultValue), nil, defaultValue, nil), nil
	}
	v, err := NewVariableFromEvaluation(result, defaultValue)
	if err != nil {
		return NewVariable[T](key, variableTypeOf(defaultValue), nil, defaultValue, nil), err
	}
	return v, nil
}

func evaluatedValueAs[T VariableValue](result ReadOnlyVariable) (T, error) {
	var zero T
	expected := variableTypeOf(zero)
	actual, value, ok := classifyValue(result.Value)
	if !ok || actual != expected {
		err := &VariableTypeMismatchError{Key: result.Key, Expected: expected, Actual: actual}
		Logger().LogDebug("Rejecting evaluated value: ", err)
		Logger().Increment("variable_type_mismatch", 1, map[string]interface{}{
			"expected": string(expected),
			"actual":   string(actual),
		})
		return zero, err
	}
	return value.(T), nil
}

func variableTypeOf[T VariableValue](value T) VariableType {
	t, _, _ := classifyValue(value)
	return t
}

// Maps a decoded JSON value onto a variable kind, normalising numbers to float64
func classifyValue(value interface{}) (VariableType, interface{}, bool) {
	switch v := value.(type) {
	case string:
		return VariableTypeString, v, true
	case bool:
		return VariableTypeBoolean, v, true
	case float64:
		return VariableTypeNumber, v, true
	case float32:
		return VariableTypeNumber, float64(v), true
	case int:
		return VariableTypeNumber, float64(v), true
	case int8:
		return VariableTypeNumber, float64(v), true
	case int16:
		return VariableTypeNumber, float64(v), true
	case int32:
		return VariableTypeNumber, float64(v), true
	case int64:
		return VariableTypeNumber, float64(v), true
	case uint:
		return VariableTypeNumber, float64(v), true
	case uint8:
		return VariableTypeNumber, float64(v), true
	case uint16:
		return VariableTypeNumber, float64(v), true
	case uint32:
		return VariableTypeNumber, float64(v), true
	case uint64:
		return VariableTypeNumber, float64(v), true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return "", nil, false
		}
		return VariableTypeNumber, f, true
	case map[string]interface{}:
		return VariableTypeJSON, v, true
	default:
		return "", nil, false
	}
}
