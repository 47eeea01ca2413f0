package loader_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tim020/botocore/botoerr"
	"github.com/Tim020/botocore/loader"
)

func writeModel(t *testing.T, root, dataPath, contents string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(dataPath)+".json")
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(contents), 0o600))
}

func TestLoad(t *testing.T) {
	root := t.TempDir()
	writeModel(t, root, "ec2/2014-01-01/service", `{"service_name": "ec2", "operations": ["DescribeInstances"]}`)

	var model struct {
		ServiceName string   `json:"service_name"`
		Operations  []string `json:"operations"`
	}
	ld := loader.New([]string{root})
	require.NoError(t, ld.Load("ec2/2014-01-01/service", &model))
	assert.Equal(t, "ec2", model.ServiceName)
	assert.Equal(t, []string{"DescribeInstances"}, model.Operations)
}

func TestLoadSearchOrder(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeModel(t, first, "s3/service", `{"source": "first"}`)
	writeModel(t, second, "s3/service", `{"source": "second"}`)

	var model struct {
		Source string `json:"source"`
	}
	ld := loader.New([]string{first, second})
	require.NoError(t, ld.Load("s3/service", &model))
	assert.Equal(t, "first", model.Source, "earlier search paths shadow later ones")
}

func TestLoadDataNotFound(t *testing.T) {
	ld := loader.New([]string{t.TempDir(), t.TempDir()})

	var model map[string]any
	err := ld.Load("glacier/2012-06-01/service", &model)
	require.Error(t, err)

	var nf *botoerr.DataNotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "Unable to load data for: glacier/2012-06-01/service", nf.Error())
	p, _ := nf.Field("data_path")
	assert.Equal(t, "glacier/2012-06-01/service", p)
}

func TestLoadBadJSONPropagates(t *testing.T) {
	root := t.TempDir()
	writeModel(t, root, "bad/service", "{not json")

	var model map[string]any
	err := loader.New([]string{root}).Load("bad/service", &model)
	require.Error(t, err)

	var nf *botoerr.DataNotFoundError
	assert.False(t, errors.As(err, &nf), "a corrupt document is not a missing one")
}

func TestExists(t *testing.T) {
	root := t.TempDir()
	writeModel(t, root, "ec2/service", "{}")

	ld := loader.New([]string{root})
	assert.True(t, ld.Exists("ec2/service"))
	assert.False(t, ld.Exists("rds/service"))
}
