package devloop

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventFilter_Relevant(t *testing.T) {
	root := t.TempDir()
	tokens := filepath.Join(root, "tokens")
	require.NoError(t, os.MkdirAll(filepath.Join(tokens, "nested"), 0755))

	ignoreFile := filepath.Join(tokens, ".gitignore")
	require.NoError(t, os.WriteFile(ignoreFile, []byte("*.draft.json\n"), 0644))

	// Output inside the tokens dir with a .json name to exercise the self-event rule
	output := filepath.Join(tokens, "theme.json")

	f, err := NewEventFilter(tokens, output, "**/*.json", ignoreFile)
	require.NoError(t, err)

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"token file", filepath.Join(tokens, "colors.json"), true},
		{"nested token file", filepath.Join(tokens, "nested", "brand.json"), true},
		{"output file", output, false},
		{"not json", filepath.Join(tokens, "notes.md"), false},
		{"editor swap file", filepath.Join(tokens, ".colors.json.swp"), false},
		{"outside tokens dir", filepath.Join(root, "colors.json"), false},
		{"sibling with shared prefix", filepath.Join(root, "tokens-old", "colors.json"), false},
		{"tokens dir itself", tokens, false},
		{"ignored draft", filepath.Join(tokens, "colors.draft.json"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Relevant(tt.path))
		})
	}
}

func TestEventFilter_Glob(t *testing.T) {
	tokens := t.TempDir()

	f, err := NewEventFilter(tokens, filepath.Join(tokens, "..", "theme.css"), "*.json", "")
	require.NoError(t, err)

	assert.True(t, f.Relevant(filepath.Join(tokens, "colors.json")))
	assert.False(t, f.Relevant(filepath.Join(tokens, "nested", "colors.json")))
}

func TestEventFilter_InvalidGlob(t *testing.T) {
	_, err := NewEventFilter(t.TempDir(), "theme.css", "[", "")
	assert.Error(t, err)
}

func TestEventFilter_MissingIgnoreFile(t *testing.T) {
	tokens := t.TempDir()

	f, err := NewEventFilter(tokens, "theme.css", "", filepath.Join(tokens, ".gitignore"))
	require.NoError(t, err)
	assert.True(t, f.Relevant(filepath.Join(tokens, "colors.draft.json")))
}

func TestEventFilter_TokenFiles(t *testing.T) {
	tokens := t.TempDir()
	for _, name := range []string{"colors.json", "fonts.json", "readme.md", "colors.draft.json"} {
		require.NoError(t, os.WriteFile(filepath.Join(tokens, name), []byte("{}"), 0644))
	}
	ignoreFile := filepath.Join(tokens, ".gitignore")
	require.NoError(t, os.WriteFile(ignoreFile, []byte("*.draft.json\n"), 0644))

	f, err := NewEventFilter(tokens, "theme.css", "**/*.json", ignoreFile)
	require.NoError(t, err)

	files, err := f.TokenFiles()
	require.NoError(t, err)

	var names []string
	for _, file := range files {
		names = append(names, filepath.Base(file))
	}
	assert.ElementsMatch(t, []string{"colors.json", "fonts.json"}, names)
}
