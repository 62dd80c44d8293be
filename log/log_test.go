package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "congress.log")
	logger, closer, err := Setup("info", path)
	require.NoError(t, err)

	logger.Debug("dropped")
	logger.Info("parsed bill")
	require.NoError(t, closer.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"parsed bill"`)
	assert.NotContains(t, string(content), "dropped")
}

func TestSetup_BadLevel(t *testing.T) {
	_, _, err := Setup("loud", "")
	assert.Error(t, err)
}
