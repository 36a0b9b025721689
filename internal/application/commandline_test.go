package application

import (
	"io"
	"testing"

	helpers "github.com/launchdarkly/go-test-helpers/v3"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadOptions(t *testing.T) {
	appName := "jsoncompare"

	t.Run("compare two files", func(t *testing.T) {
		opts, err := ReadOptions([]string{appName, "-expected", "a.json", "-actual", "b.json"}, io.Discard)
		require.NoError(t, err)
		assert.Equal(t, CompareFiles, opts.Mode)
		assert.Equal(t, "a.json", opts.ExpectedFile)
		assert.Equal(t, "b.json", opts.ActualFile)
		assert.Equal(t, "default configuration", opts.DescribeConfigSource())
	})

	t.Run("compare with selection and limit", func(t *testing.T) {
		opts, err := ReadOptions([]string{appName, "-expected", "a.json", "-actual", "b.json",
			"-select", "data.items", "-max-diffs", "5", "-no-color"}, io.Discard)
		require.NoError(t, err)
		assert.Equal(t, "data.items", opts.Select)
		assert.Equal(t, 5, opts.MaxDiffs)
		assert.True(t, opts.NoColor)
	})

	t.Run("manifest", func(t *testing.T) {
		opts, err := ReadOptions([]string{appName, "--manifest", "pairs.json", "--root", "testdata"}, io.Discard)
		require.NoError(t, err)
		assert.Equal(t, CompareManifest, opts.Mode)
		assert.Equal(t, "pairs.json", opts.ManifestFile)
		assert.Equal(t, "testdata", opts.RootDir)
	})

	t.Run("serve", func(t *testing.T) {
		opts, err := ReadOptions([]string{appName, "-serve", "-from-env"}, io.Discard)
		require.NoError(t, err)
		assert.Equal(t, Serve, opts.Mode)
		assert.True(t, opts.UseEnvironment)
		assert.Equal(t, "configuration from environment variables", opts.DescribeConfigSource())
	})

	t.Run("custom config file", func(t *testing.T) {
		helpers.WithTempFile(func(filename string) {
			opts, err := ReadOptions([]string{appName, "--config", filename, "-serve"}, io.Discard)
			require.NoError(t, err)
			assert.Equal(t, filename, opts.ConfigFile)
			assert.False(t, opts.UseEnvironment)
			assert.Equal(t, "configuration file "+filename, opts.DescribeConfigSource())
		})
	})

	t.Run("environment plus config file", func(t *testing.T) {
		helpers.WithTempFile(func(filename string) {
			opts, err := ReadOptions([]string{appName, "--config", filename, "--from-env", "-serve"}, io.Discard)
			require.NoError(t, err)
			assert.Equal(t, "configuration file "+filename+" plus environment variables", opts.DescribeConfigSource())
		})
	})

	t.Run("missing config file", func(t *testing.T) {
		_, err := ReadOptions([]string{appName, "--config", "/no/such/file.conf", "-serve"}, io.Discard)
		require.Error(t, err)
		assert.Equal(t, errConfigFileNotFound("/no/such/file.conf"), err)
	})

	t.Run("allow missing config file", func(t *testing.T) {
		opts, err := ReadOptions([]string{appName, "--config", "/no/such/file.conf", "--allow-missing-file", "-serve"},
			io.Discard)
		require.NoError(t, err)
		assert.Equal(t, "", opts.ConfigFile)
	})

	t.Run("invalid combinations", func(t *testing.T) {
		for _, p := range []struct {
			args []string
			err  error
		}{
			{[]string{}, errNoMode},
			{[]string{"-expected", "a.json"}, errIncompletePair},
			{[]string{"-actual", "b.json"}, errIncompletePair},
			{[]string{"-expected", "a.json", "-actual", "b.json", "-serve"}, errTooManyModes},
			{[]string{"-manifest", "m.json", "-serve"}, errTooManyModes},
			{[]string{"-serve", "-max-diffs", "-1"}, errNegativeMaxDiffs},
			{[]string{"-serve", "-root", "dir"}, errRootWithoutList},
			{[]string{"-serve", "-select", "a.b"}, errSelectWhenServe},
		} {
			_, err := ReadOptions(append([]string{appName}, p.args...), io.Discard)
			assert.Equal(t, p.err, err, "%v", p.args)
		}
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, err := ReadOptions([]string{appName, "--unknown"}, io.Discard)
		assert.Error(t, err)
	})
}

func TestDescribeVersion(t *testing.T) {
	assert.Equal(t, "1.2.3", DescribeVersion("1.2.3"))
	assert.Equal(t, "1.2.3 (build 999)", DescribeVersion("1.2.3+999"))
}
