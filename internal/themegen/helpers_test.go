package themegen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// minimalTokens is the smallest valid token set.
var minimalTokens = map[string]string{
	FileColors:    `{"items": []}`,
	FileFonts:     `{"items": []}`,
	FileSpacing:   `{"items": []}`,
	FileLeading:   `{"items": []}`,
	FileSizes:     `{"items": []}`,
	FileWeights:   `{"items": []}`,
	FileViewports: `{"min": 320, "mid": 768, "max": 1440}`,
}

// writeTokenDir writes the minimal token set plus overrides into a temp dir.
func writeTokenDir(t *testing.T, overrides map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range minimalTokens {
		if override, ok := overrides[name]; ok {
			content = override
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}
