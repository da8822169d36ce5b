package enginelog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToGivenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.log")

	log, err := New("test", "info", path)
	require.NoError(t, err)

	log.Info("hello")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestNewRejectsUnwritablePath(t *testing.T) {
	_, err := New("test", "info", filepath.Join(t.TempDir(), "missing-dir", "engine.log"))
	assert.Error(t, err)
}

func TestParseLevelFallsBackToInfoForUnknown(t *testing.T) {
	assert.Equal(t, parseLevel("info"), parseLevel("not-a-real-level"))
}

func TestParseLevelRecognisesDebugAndError(t *testing.T) {
	assert.NotEqual(t, parseLevel("debug"), parseLevel("error"))
}
