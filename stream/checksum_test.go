package stream_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tim020/botocore/botoerr"
	"github.com/Tim020/botocore/stream"
)

func TestVerifierMatch(t *testing.T) {
	tests := []struct {
		algorithm string
		expected  string
	}{
		{algorithm: stream.AlgorithmCRC32, expected: "0d4a1185"},
		{algorithm: stream.AlgorithmSHA256, expected: "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"},
		{algorithm: stream.AlgorithmXXH64, expected: "45ab6734b21e6968"},
	}

	for _, tt := range tests {
		t.Run(tt.algorithm, func(t *testing.T) {
			v, err := stream.NewVerifier(tt.algorithm, tt.expected)
			require.NoError(t, err)

			_, err = v.Write([]byte("hello world"))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v.Sum())
			assert.NoError(t, v.Verify())
		})
	}
}

func TestVerifierMismatch(t *testing.T) {
	v, err := stream.NewVerifier(stream.AlgorithmSHA256, "deadbeef")
	require.NoError(t, err)

	_, err = v.Write([]byte("hello world"))
	require.NoError(t, err)

	err = v.Verify()
	require.Error(t, err)

	var ce *botoerr.ChecksumError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t,
		"Checksum sha256 failed, expected checksum deadbeef did not match calculated checksum "+
			"b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9.",
		ce.Error())
	algo, _ := ce.Field("checksum_type")
	assert.Equal(t, "sha256", algo)
}

func TestVerifierUnknownAlgorithm(t *testing.T) {
	_, err := stream.NewVerifier("md5", "")
	require.Error(t, err)

	var uk *botoerr.UnknownKeyError
	require.True(t, errors.As(err, &uk))
	assert.Equal(t, "Unknown key 'md5' for param 'checksum_algorithm'.  Must be one of: ['crc32', 'sha256', 'xxh64']", uk.Error())
	assert.True(t, botoerr.IsValidation(err))
}

func TestVerifyReader(t *testing.T) {
	body := strings.NewReader("hello world")
	assert.NoError(t, stream.VerifyReader(body, stream.AlgorithmXXH64, "45ab6734b21e6968"))

	body = strings.NewReader("hello world!")
	err := stream.VerifyReader(body, stream.AlgorithmXXH64, "45ab6734b21e6968")
	var ce *botoerr.ChecksumError
	assert.True(t, errors.As(err, &ce))
}

func TestSum64Hex(t *testing.T) {
	assert.Equal(t, "45ab6734b21e6968", stream.Sum64Hex([]byte("hello world")))
	assert.Equal(t, "ef46db3751d8e999", stream.Sum64Hex(nil))
}
