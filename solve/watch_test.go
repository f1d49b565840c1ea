package solve

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_ReportsWrites(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	target := filepath.Join(tempDir, "case.in")
	require.NoError(t, os.WriteFile(target, []byte("1\n1 1\n1\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	seen := make(chan string, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, nil, tempDir, []string{".in"}, func(path string) {
			select {
			case seen <- path:
			default:
			}
		})
	}()

	// The watcher may not be registered yet, so keep writing until it reports.
	deadline := time.After(5 * time.Second)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	var got string
loop:
	for {
		select {
		case got = <-seen:
			break loop
		case <-ticker.C:
			require.NoError(t, os.WriteFile(target, []byte("1\n1 0\n1\n"), 0o644))
			require.NoError(t, os.WriteFile(filepath.Join(tempDir, "notes.txt"), []byte("x"), 0o644))
		case <-deadline:
			t.Fatal("no change reported")
		}
	}
	assert.Equal(t, target, got)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatch_NewSubdirectory(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	seen := make(chan string, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, nil, tempDir, []string{".in"}, func(path string) {
			select {
			case seen <- path:
			default:
			}
		})
	}()

	// Each round creates a fresh directory, so one of them is created after
	// the root watch is live, and then writes an input file into it.
	deadline := time.After(5 * time.Second)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	var (
		got   string
		sub   string
		round int
	)
loop:
	for {
		select {
		case got = <-seen:
			break loop
		case <-ticker.C:
			if sub == "" {
				round++
				sub = filepath.Join(tempDir, fmt.Sprintf("later%d", round))
				require.NoError(t, os.Mkdir(sub, 0o755))
				continue
			}
			require.NoError(t, os.WriteFile(filepath.Join(sub, "case.in"), []byte("1\n1 1\n1\n"), 0o644))
			sub = ""
		case <-deadline:
			t.Fatal("no change reported in new subdirectory")
		}
	}
	assert.Equal(t, "case.in", filepath.Base(got))
	assert.Equal(t, tempDir, filepath.Dir(filepath.Dir(got)))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatch_MissingRoot(t *testing.T) {
	t.Parallel()

	err := Watch(context.Background(), nil, filepath.Join(t.TempDir(), "missing"), nil, func(string) {})
	assert.Error(t, err)
}
