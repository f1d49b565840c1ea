package solve

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/gatetree/scanner"
)

// settleDelay lets an editor finish a burst of writes before the file is re-read.
const settleDelay = 100 * time.Millisecond

// Watch calls handle for every write to an input file under root (or to
// root itself when it is a file) until ctx is done. Directories created
// under root while watching are added as they appear.
func Watch(ctx context.Context, logger *zap.Logger, root string, extensions []string, handle func(path string)) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("error accessing %s: %w", root, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	match := scanner.New(root, extensions...).Match
	if info.IsDir() {
		err = addDirs(watcher, root)
	} else {
		target := filepath.Clean(root)
		match = func(path string) bool { return filepath.Clean(path) == target }
		err = watcher.Add(filepath.Dir(target))
	}
	if err != nil {
		return fmt.Errorf("error adding %s to watcher: %w", root, err)
	}

	logger.Info("watching for changes", zap.String("path", root))
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if event.Has(fsnotify.Create) && info.IsDir() {
				if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
					if err := addDirs(watcher, event.Name); err != nil {
						logger.Warn("failed to watch new directory", zap.String("path", event.Name), zap.Error(err))
					}
					continue
				}
			}
			if !match(event.Name) {
				continue
			}
			time.Sleep(settleDelay)
			handle(event.Name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", zap.Error(err))
		}
	}
}

func addDirs(watcher *fsnotify.Watcher, root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
