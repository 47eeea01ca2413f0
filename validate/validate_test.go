package validate_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tim020/botocore/botoerr"
	"github.com/Tim020/botocore/validate"
)

func intp(n int) *int { return &n }

func putObjectOp() validate.Operation {
	return validate.Operation{
		Name: "PutObject",
		Input: &validate.Shape{
			Type:     "structure",
			Required: []string{"Bucket", "Key"},
			Members: map[string]*validate.Shape{
				"Bucket": {Type: "string"},
				"Key":    {Type: "string"},
				"ACL":    {Type: "string", Enum: []string{"private", "public-read"}},
				"Count":  {Type: "integer", Min: intp(1), Max: intp(10)},
				"Stream": {Type: "boolean"},
				"Tags":   {Type: "list", Member: &validate.Shape{Type: "string"}},
				"Meta": {
					Type:     "structure",
					Required: []string{"Owner"},
					Members: map[string]*validate.Shape{
						"Owner": {Type: "string"},
						"Mode":  {Type: "string"},
					},
				},
			},
		},
	}
}

func TestParamsValid(t *testing.T) {
	err := validate.Params(putObjectOp(), map[string]any{
		"Bucket": "logs",
		"Key":    "2026/08/23.gz",
		"ACL":    "private",
		"Count":  5,
		"Stream": true,
		"Tags":   []any{"a", "b"},
		"Meta":   map[string]any{"Owner": "ops", "Mode": "archive"},
	})
	assert.NoError(t, err)
}

func TestParamsMissingRequired(t *testing.T) {
	err := validate.Params(putObjectOp(), map[string]any{"ACL": "private"})
	require.Error(t, err)

	var mp *botoerr.MissingParametersError
	require.True(t, errors.As(err, &mp))
	assert.Equal(t, "The following required parameters are missing for PutObject: ['Bucket', 'Key']", mp.Error())
	assert.False(t, botoerr.IsValidation(err), "missing parameters is its own kind, not a validation-family member")
}

func TestParamsUnknownParameter(t *testing.T) {
	err := validate.Params(putObjectOp(), map[string]any{
		"Bucket": "logs",
		"Key":    "k",
		"Bukcet": "typo",
	})
	require.Error(t, err)

	var up *botoerr.UnknownParameterError
	require.True(t, errors.As(err, &up))
	name, _ := up.Field("name")
	assert.Equal(t, "Bukcet", name)
	choices, _ := up.Field("choices")
	assert.Equal(t, []string{"ACL", "Bucket", "Count", "Key", "Meta", "Stream", "Tags"}, choices)
	assert.True(t, botoerr.IsValidation(err))
}

func TestParamsRange(t *testing.T) {
	err := validate.Params(putObjectOp(), map[string]any{
		"Bucket": "logs",
		"Key":    "k",
		"Count":  50,
	})
	require.Error(t, err)

	var re *botoerr.RangeError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "Value out of range for param Count: 1 <= 50 <= 10", re.Error())
	assert.True(t, botoerr.IsValidation(err), "range is catchable as the validation category")
}

func TestParamsEnum(t *testing.T) {
	err := validate.Params(putObjectOp(), map[string]any{
		"Bucket": "logs",
		"Key":    "k",
		"ACL":    "world-writable",
	})
	require.Error(t, err)

	var uk *botoerr.UnknownKeyError
	require.True(t, errors.As(err, &uk))
	assert.Equal(t, "Unknown key 'world-writable' for param 'ACL'.  Must be one of: ['private', 'public-read']", uk.Error())
}

func TestParamsTypeMismatch(t *testing.T) {
	tests := []struct {
		name     string
		params   map[string]any
		typeName string
		param    string
	}{
		{
			name:     "string member",
			params:   map[string]any{"Bucket": 12, "Key": "k"},
			typeName: "string",
			param:    "Bucket",
		},
		{
			name:     "integer member",
			params:   map[string]any{"Bucket": "b", "Key": "k", "Count": "five"},
			typeName: "integer",
			param:    "Count",
		},
		{
			name:     "boolean member",
			params:   map[string]any{"Bucket": "b", "Key": "k", "Stream": "yes"},
			typeName: "boolean",
			param:    "Stream",
		},
		{
			name:     "list member",
			params:   map[string]any{"Bucket": "b", "Key": "k", "Tags": "a,b"},
			typeName: "list",
			param:    "Tags",
		},
		{
			name:     "structure member",
			params:   map[string]any{"Bucket": "b", "Key": "k", "Meta": "owner=ops"},
			typeName: "structure",
			param:    "Meta",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Params(putObjectOp(), tt.params)
			require.Error(t, err)

			v, ok := botoerr.AsValidation(err)
			require.True(t, ok)
			assert.Equal(t, "ValidationError", v.Code())
			param, _ := v.Field("param")
			assert.Equal(t, tt.param, param)
			typeName, _ := v.Field("type_name")
			assert.Equal(t, tt.typeName, typeName)
		})
	}
}

func TestParamsNestedStructure(t *testing.T) {
	t.Run("unknown key", func(t *testing.T) {
		err := validate.Params(putObjectOp(), map[string]any{
			"Bucket": "b",
			"Key":    "k",
			"Meta":   map[string]any{"Owner": "ops", "Color": "red"},
		})
		require.Error(t, err)

		var uk *botoerr.UnknownKeyError
		require.True(t, errors.As(err, &uk))
		assert.Equal(t, "Unknown key 'Color' for param 'Meta'.  Must be one of: ['Mode', 'Owner']", uk.Error())
	})

	t.Run("missing required member", func(t *testing.T) {
		err := validate.Params(putObjectOp(), map[string]any{
			"Bucket": "b",
			"Key":    "k",
			"Meta":   map[string]any{"Mode": "archive"},
		})
		require.Error(t, err)

		var mp *botoerr.MissingParametersError
		require.True(t, errors.As(err, &mp))
		assert.Equal(t, "The following required parameters are missing for Meta: ['Owner']", mp.Error())
	})
}

func TestParamsListElements(t *testing.T) {
	err := validate.Params(putObjectOp(), map[string]any{
		"Bucket": "b",
		"Key":    "k",
		"Tags":   []any{"ok", 7},
	})
	require.Error(t, err)
	assert.True(t, botoerr.IsValidation(err))
}

func TestParamsJSONDecodedIntegers(t *testing.T) {
	// Generic JSON decoding produces float64 for whole numbers.
	err := validate.Params(putObjectOp(), map[string]any{
		"Bucket": "b",
		"Key":    "k",
		"Count":  float64(5),
	})
	assert.NoError(t, err)
}

func TestParamsNoInputShape(t *testing.T) {
	op := validate.Operation{Name: "ListBuckets"}

	assert.NoError(t, validate.Params(op, nil))

	err := validate.Params(op, map[string]any{"Extra": 1})
	require.Error(t, err)
	var up *botoerr.UnknownParameterError
	assert.True(t, errors.As(err, &up))
}
