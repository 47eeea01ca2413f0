package hooks_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tim020/botocore/botoerr"
	"github.com/Tim020/botocore/hooks"
)

func testRegistry() *hooks.Registry {
	return hooks.NewRegistry([]string{"before-call", "after-call"})
}

func TestRegisterAndEmit(t *testing.T) {
	r := testRegistry()

	var order []string
	require.NoError(t, r.Register("before-call", "first", func(ctx context.Context, event string, payload map[string]any) error {
		order = append(order, "first")
		assert.Equal(t, "before-call", event)
		assert.Equal(t, "PutObject", payload["operation"])
		return nil
	}))
	require.NoError(t, r.Register("before-call", "second", func(ctx context.Context, event string, payload map[string]any) error {
		order = append(order, "second")
		return nil
	}))

	require.NoError(t, r.Emit(context.Background(), "before-call", map[string]any{"operation": "PutObject"}))
	assert.Equal(t, []string{"first", "second"}, order, "handlers run in registration order")
}

func TestEmitStopsOnHandlerError(t *testing.T) {
	r := testRegistry()
	boom := errors.New("boom")

	require.NoError(t, r.Register("after-call", "failing", func(context.Context, string, map[string]any) error {
		return boom
	}))
	var reached bool
	require.NoError(t, r.Register("after-call", "later", func(context.Context, string, map[string]any) error {
		reached = true
		return nil
	}))

	err := r.Emit(context.Background(), "after-call", nil)
	assert.ErrorIs(t, err, boom)
	assert.False(t, reached)
}

func TestUnregister(t *testing.T) {
	r := testRegistry()
	var calls int

	require.NoError(t, r.Register("before-call", "h", func(context.Context, string, map[string]any) error {
		calls++
		return nil
	}))
	require.NoError(t, r.Unregister("before-call", "h"))
	require.NoError(t, r.Emit(context.Background(), "before-call", nil))
	assert.Zero(t, calls)
}

func TestUnknownEvent(t *testing.T) {
	r := testRegistry()

	tests := []struct {
		name string
		do   func() error
	}{
		{name: "register", do: func() error {
			return r.Register("during-call", "h", func(context.Context, string, map[string]any) error { return nil })
		}},
		{name: "unregister", do: func() error { return r.Unregister("during-call", "h") }},
		{name: "emit", do: func() error { return r.Emit(context.Background(), "during-call", nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.do()
			require.Error(t, err)

			var enf *botoerr.EventNotFoundError
			require.True(t, errors.As(err, &enf))
			assert.Equal(t, "The event (during-call) is not known", enf.Error())
		})
	}
}

func TestEmitEventWithoutHandlers(t *testing.T) {
	assert.NoError(t, testRegistry().Emit(context.Background(), "after-call", nil))
}
