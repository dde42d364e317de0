package devloop

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/themegen/internal/themegen"
)

type runResult struct {
	result *themegen.WriteResult
	err    error
}

func writeTokens(t *testing.T, dir string, overrides map[string]string) {
	t.Helper()

	files := map[string]string{
		themegen.FileColors:    `{"items": []}`,
		themegen.FileFonts:     `{"items": []}`,
		themegen.FileSpacing:   `{"items": []}`,
		themegen.FileLeading:   `{"items": []}`,
		themegen.FileSizes:     `{"items": []}`,
		themegen.FileWeights:   `{"items": []}`,
		themegen.FileViewports: `{"min": 320, "mid": 768, "max": 1440}`,
	}
	for name, content := range overrides {
		files[name] = content
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
}

func nextResult(t *testing.T, results <-chan runResult) runResult {
	t.Helper()
	select {
	case r := <-results:
		return r
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for generation run")
		return runResult{}
	}
}

// startWatcher runs a watcher in the background and returns its results
// channel and a stop function that cancels it and waits for Run to return.
func startWatcher(t *testing.T, tokens, output string) (<-chan runResult, func() error) {
	t.Helper()

	results := make(chan runResult, 16)
	w, err := New(Options{
		TokensDir:  tokens,
		OutputPath: output,
		Glob:       "**/*.json",
		Debounce:   10 * time.Millisecond,
		OnResult: func(r *themegen.WriteResult, err error) {
			results <- runResult{result: r, err: err}
		},
	}, log.New(io.Discard))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	var (
		once    sync.Once
		stopErr error
	)
	stop := func() error {
		once.Do(func() {
			cancel()
			select {
			case stopErr = <-done:
			case <-time.After(10 * time.Second):
				stopErr = errors.New("watcher did not stop")
			}
		})
		return stopErr
	}
	t.Cleanup(func() { _ = stop() })
	return results, stop
}

func TestWatcher_RegeneratesOnChange(t *testing.T) {
	tokens := t.TempDir()
	writeTokens(t, tokens, nil)
	output := filepath.Join(t.TempDir(), "theme.css")

	results, stop := startWatcher(t, tokens, output)

	initial := nextResult(t, results)
	require.NoError(t, initial.err)
	assert.True(t, initial.result.Written)
	assert.FileExists(t, output)

	colors := `{"items": [{"name": "ink", "value": "#111"}]}`
	require.NoError(t, os.WriteFile(filepath.Join(tokens, themegen.FileColors), []byte(colors), 0644))

	// Editors may emit several events; wait for the run that picks up the change
	deadline := time.After(10 * time.Second)
	for {
		var r runResult
		select {
		case r = <-results:
		case <-deadline:
			t.Fatal("change was never picked up")
		}
		// A run can race the truncating write and see a partial file
		if r.err == nil && r.result.Written {
			break
		}
	}

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "--color-ink: #111;")

	assert.NoError(t, stop())
}

func TestWatcher_InvalidTokensKeepPreviousTheme(t *testing.T) {
	tokens := t.TempDir()
	writeTokens(t, tokens, nil)
	output := filepath.Join(t.TempDir(), "theme.css")

	results, stop := startWatcher(t, tokens, output)

	initial := nextResult(t, results)
	require.NoError(t, initial.err)
	before, err := os.ReadFile(output)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(tokens, themegen.FileColors), []byte(`{"items": [`), 0644))

	failed := nextResult(t, results)
	require.Error(t, failed.err)
	var loadErr *themegen.LoadError
	assert.ErrorAs(t, failed.err, &loadErr)

	after, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	assert.NoError(t, stop())
}

func TestWatcher_IgnoresUnrelatedFiles(t *testing.T) {
	tokens := t.TempDir()
	writeTokens(t, tokens, nil)
	output := filepath.Join(t.TempDir(), "theme.css")

	results, stop := startWatcher(t, tokens, output)
	require.NoError(t, nextResult(t, results).err)

	require.NoError(t, os.WriteFile(filepath.Join(tokens, "notes.md"), []byte("hello"), 0644))

	select {
	case r := <-results:
		t.Fatalf("unexpected run after unrelated change: %+v", r)
	case <-time.After(200 * time.Millisecond):
	}

	assert.NoError(t, stop())
}

func TestNew_InvalidGlob(t *testing.T) {
	_, err := New(Options{TokensDir: t.TempDir(), OutputPath: "theme.css", Glob: "["}, log.New(io.Discard))
	assert.Error(t, err)
}
