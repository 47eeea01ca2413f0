package botoerr

import (
	"fmt"
	"strings"
)

// Fields holds the named values supplied when an error is constructed.
// The taxonomy retains them for programmatic inspection so callers can
// branch on structured detail instead of parsing the rendered message.
type Fields map[string]any

// Error is implemented by every error kind in the taxonomy.
type Error interface {
	error

	// Code identifies the concrete kind, e.g. "RangeError".
	Code() string

	// Field returns the named construction field and whether it was supplied.
	Field(name string) (any, bool)

	// Fields returns a copy of all construction fields.
	Fields() Fields
}

// defaultFormat is used when a bare error is constructed without a
// kind-specific template. Preserved verbatim from the original service
// tooling, typo included, since callers match on message text.
const defaultFormat = "An unspecified error occured"

// baseError couples a field-map to a message rendered once at construction.
// It is embedded by every concrete kind and never mutated afterwards.
type baseError struct {
	code   string
	msg    string
	fields Fields
}

// newBase renders the kind template eagerly. The typed constructors supply
// exactly the fields their template names, so a render failure here means
// the kind declaration itself is wrong and panics rather than producing a
// partially rendered message.
func newBase(code, format string, fields Fields) baseError {
	msg, err := render(format, fields)
	if err != nil {
		panic(fmt.Sprintf("botoerr: kind %s: %v", code, err))
	}
	return baseError{code: code, msg: msg, fields: fields.clone()}
}

func (e baseError) Error() string { return e.msg }

func (e baseError) Code() string { return e.code }

func (e baseError) Field(name string) (any, bool) {
	v, ok := e.fields[name]
	return v, ok
}

func (e baseError) Fields() Fields { return e.fields.clone() }

func (f Fields) clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// GenericError is a taxonomy error built from an arbitrary template via New.
// Normal operation constructs concrete kinds instead; this exists for the
// dynamic construction path and for callers extending the taxonomy.
type GenericError struct{ baseError }

// New constructs an error from a template and field-map. Every placeholder
// named by the template must be present in fields; a missing field fails the
// construction itself and no error instance is returned. Fields not named by
// the template are retained for inspection but do not appear in the message.
// An empty format selects the generic unspecified-error template.
func New(code, format string, fields Fields) (*GenericError, error) {
	if format == "" {
		format = defaultFormat
	}
	msg, err := render(format, fields)
	if err != nil {
		return nil, fmt.Errorf("botoerr: constructing %s: %w", code, err)
	}
	return &GenericError{baseError{code: code, msg: msg, fields: fields.clone()}}, nil
}

// render substitutes every {name} placeholder in format with the canonical
// string form of fields[name]. Doubled braces escape literal braces. An
// unresolved placeholder is a hard failure, never a silent blank.
func render(format string, fields Fields) (string, error) {
	var b strings.Builder
	for i := 0; i < len(format); i++ {
		switch c := format[i]; c {
		case '{':
			if i+1 < len(format) && format[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(format[i+1:], '}')
			if end < 0 {
				return "", fmt.Errorf("unterminated placeholder at byte %d", i)
			}
			name := format[i+1 : i+1+end]
			v, ok := fields[name]
			if !ok {
				return "", fmt.Errorf("template references missing field %q", name)
			}
			b.WriteString(formatValue(v))
			i += end + 1
		case '}':
			if i+1 < len(format) && format[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			return "", fmt.Errorf("unmatched '}' at byte %d", i)
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

// formatValue is the canonical string form used in rendered messages.
// Strings render as-is. Lists render bracketed with comma-space separation
// and string elements single-quoted: ['Read', 'Write']. Everything else goes
// through fmt.Sprint. The list convention is fixed; messages are matched
// textually downstream.
func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case []string:
		elems := make([]string, len(x))
		for i, s := range x {
			elems[i] = "'" + s + "'"
		}
		return "[" + strings.Join(elems, ", ") + "]"
	case []any:
		elems := make([]string, len(x))
		for i, e := range x {
			if s, ok := e.(string); ok {
				elems[i] = "'" + s + "'"
			} else {
				elems[i] = fmt.Sprint(e)
			}
		}
		return "[" + strings.Join(elems, ", ") + "]"
	default:
		return fmt.Sprint(v)
	}
}
