// Package search evaluates the dotted-lookup expressions used to pull
// result keys and page tokens out of parsed service responses.
package search

import (
	"strings"

	"github.com/Tim020/botocore/botoerr"
)

// Expression is a compiled dotted lookup such as "Contents.NextToken".
type Expression struct {
	raw  string
	keys []string
}

// Compile parses expr into an Expression. Only chains of identifiers joined
// by dots are supported; indexing, wildcards and anything richer fail with
// an InvalidExpressionError.
func Compile(expr string) (*Expression, error) {
	if expr == "" {
		return nil, botoerr.NewInvalidExpressionError(expr)
	}
	keys := strings.Split(expr, ".")
	for _, k := range keys {
		if !isIdentifier(k) {
			return nil, botoerr.NewInvalidExpressionError(expr)
		}
	}
	return &Expression{raw: expr, keys: keys}, nil
}

// Search evaluates expr against data in one step.
func Search(expr string, data map[string]any) (any, error) {
	e, err := Compile(expr)
	if err != nil {
		return nil, err
	}
	return e.Search(data), nil
}

// Search walks data along the compiled keys. A key absent at any level
// yields nil rather than an error; only malformed expressions fail.
func (e *Expression) Search(data map[string]any) any {
	var cur any = data
	for _, k := range e.keys {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur, ok = m[k]
		if !ok {
			return nil
		}
	}
	return cur
}

// String returns the original expression text.
func (e *Expression) String() string { return e.raw }

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
