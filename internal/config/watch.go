package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch calls fn with the freshly loaded config whenever the file at path is written or
// replaced, until ctx is done. The parent directory is watched so editors that save by
// rename are picked up. Invalid files are logged and skipped.
func Watch(ctx context.Context, path string, log *zap.Logger, fn func(Config)) error {
	if log == nil {
		log = zap.NewNop()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config watcher: %w", err)
	}
	defer w.Close()

	target := filepath.Clean(path)
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			c, err := Load(target)
			if err != nil {
				log.Warn("config reload skipped", zap.Error(err))
				continue
			}
			log.Info("config reloaded", zap.String("path", target))
			fn(c)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("config watcher error", zap.Error(err))
		}
	}
}
