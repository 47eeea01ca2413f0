// Package validate checks request parameters against an operation's input
// shape before anything is serialized or sent.
package validate

import (
	"sort"

	"github.com/Tim020/botocore/botoerr"
)

// Shape describes the expected form of one parameter.
type Shape struct {
	// Type is one of "structure", "string", "integer", "boolean", "list".
	Type string

	// Required names the members a structure must carry.
	Required []string

	// Members describes a structure's members by name.
	Members map[string]*Shape

	// Member describes a list's element shape.
	Member *Shape

	// Min and Max bound an integer value when set.
	Min *int
	Max *int

	// Enum restricts a string value to the listed choices when non-empty.
	Enum []string
}

// Operation couples an operation name with its input shape.
type Operation struct {
	Name  string
	Input *Shape
}

// Params checks params against the operation's input shape and returns the
// first violation found. Checks run in a deterministic order: unknown
// top-level parameters, then missing required parameters, then per-member
// value checks in sorted name order.
func Params(op Operation, params map[string]any) error {
	if op.Input == nil {
		if len(params) > 0 {
			name := sortedKeys(params)[0]
			return botoerr.NewUnknownParameterError(name, op.Name, nil)
		}
		return nil
	}

	choices := memberNames(op.Input)
	for _, name := range sortedKeys(params) {
		if _, ok := op.Input.Members[name]; !ok {
			return botoerr.NewUnknownParameterError(name, op.Name, choices)
		}
	}

	if missing := missingMembers(op.Input, params); len(missing) > 0 {
		return botoerr.NewMissingParametersError(op.Name, missing)
	}

	for _, name := range sortedKeys(params) {
		if err := checkValue(name, params[name], op.Input.Members[name]); err != nil {
			return err
		}
	}
	return nil
}

func checkValue(param string, value any, shape *Shape) error {
	if shape == nil {
		return nil
	}
	switch shape.Type {
	case "string":
		s, ok := value.(string)
		if !ok {
			return botoerr.NewValidationError(value, param, "string")
		}
		if len(shape.Enum) > 0 && !contains(shape.Enum, s) {
			return botoerr.NewUnknownKeyError(s, param, shape.Enum)
		}
	case "integer":
		n, ok := toInt(value)
		if !ok {
			return botoerr.NewValidationError(value, param, "integer")
		}
		if shape.Min != nil && shape.Max != nil && (n < *shape.Min || n > *shape.Max) {
			return botoerr.NewRangeError(param, n, *shape.Min, *shape.Max)
		}
	case "boolean":
		if _, ok := value.(bool); !ok {
			return botoerr.NewValidationError(value, param, "boolean")
		}
	case "list":
		items, ok := value.([]any)
		if !ok {
			return botoerr.NewValidationError(value, param, "list")
		}
		for _, item := range items {
			if err := checkValue(param, item, shape.Member); err != nil {
				return err
			}
		}
	case "structure":
		m, ok := value.(map[string]any)
		if !ok {
			return botoerr.NewValidationError(value, param, "structure")
		}
		choices := memberNames(shape)
		for _, key := range sortedKeys(m) {
			if _, known := shape.Members[key]; !known {
				return botoerr.NewUnknownKeyError(key, param, choices)
			}
		}
		if missing := missingMembers(shape, m); len(missing) > 0 {
			return botoerr.NewMissingParametersError(param, missing)
		}
		for _, key := range sortedKeys(m) {
			if err := checkValue(key, m[key], shape.Members[key]); err != nil {
				return err
			}
		}
	}
	return nil
}

func missingMembers(shape *Shape, params map[string]any) []string {
	var missing []string
	for _, r := range shape.Required {
		if _, ok := params[r]; !ok {
			missing = append(missing, r)
		}
	}
	return missing
}

func memberNames(shape *Shape) []string {
	names := make([]string, 0, len(shape.Members))
	for name := range shape.Members {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// toInt accepts the integer representations that show up after generic JSON
// decoding as well as native ints.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}
