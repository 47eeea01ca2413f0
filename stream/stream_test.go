package stream_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tim020/botocore/botoerr"
	"github.com/Tim020/botocore/stream"
)

func TestRewindSeekable(t *testing.T) {
	r := strings.NewReader("payload")
	_, err := io.ReadAll(r)
	require.NoError(t, err)

	require.NoError(t, stream.Rewind(r))

	again, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(again))
}

func TestRewindUnseekable(t *testing.T) {
	r := bytes.NewBuffer([]byte("payload"))

	err := stream.Rewind(r)
	require.Error(t, err)

	var use *botoerr.UnseekableStreamError
	require.True(t, errors.As(err, &use))
	assert.Contains(t, use.Error(), "but stream is not seekable.")
}

func TestLengthReaderComplete(t *testing.T) {
	lr := stream.NewLengthReader(strings.NewReader("exactly19bytes-long"), 19)

	data, err := io.ReadAll(lr)
	require.NoError(t, err)
	assert.Len(t, data, 19)
	assert.Equal(t, int64(19), lr.BytesRead())
}

func TestLengthReaderShortBody(t *testing.T) {
	lr := stream.NewLengthReader(strings.NewReader("short"), 100)

	_, err := io.ReadAll(lr)
	require.Error(t, err)

	var ire *botoerr.IncompleteReadError
	require.True(t, errors.As(err, &ire))
	assert.Equal(t, "5 read, but total bytes expected is 100.", ire.Error())
	actual, _ := ire.Field("actual_bytes")
	assert.Equal(t, int64(5), actual)
}

func TestLengthReaderOverlongBodyPasses(t *testing.T) {
	// Only short bodies are an error; extra bytes are the caller's problem.
	lr := stream.NewLengthReader(strings.NewReader("longer than declared"), 6)

	_, err := io.ReadAll(lr)
	assert.NoError(t, err)
}
