package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDevelopmentEnv(t *testing.T) {
	testCases := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"0", false},
		{"1", true},
		{"false", false},
		{"yes", true},
	}
	for _, test := range testCases {
		t.Run(test.value, func(t *testing.T) {
			t.Setenv("DEVELOPMENT", test.value)
			assert.Equal(t, test.want, Development())
		})
	}
}

func TestDefaults(t *testing.T) {
	level, err := LogLevel()
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, level)
	assert.Equal(t, " -> ", PathSep())
	assert.Equal(t, "", LogFile())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("BINTREE_LOG_LEVEL", "debug")
	t.Setenv("BINTREE_PATH_SEP", "/")

	level, err := LogLevel()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, level)
	assert.Equal(t, "/", PathSep())

	t.Setenv("BINTREE_LOG_LEVEL", "loud")
	_, err = LogLevel()
	assert.Error(t, err)
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("BINTREE_PATH_SEP", "/")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	require.NoError(t, BindFlags(fs))
	require.NoError(t, fs.Parse([]string{"--sep", " | ", "--dev"}))

	assert.Equal(t, " | ", PathSep())
	assert.True(t, Development())
	assert.Equal(t, true, Fields()["development"])
}
