// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"slices"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// watchFiles compares the files and compares them again whenever one of them changes, until ctx is
// done or the process is interrupted. Comparison errors are logged but don't stop watching.
func (a *app) watchFiles(ctx context.Context, cfg Config, logger *zap.Logger, original, modified string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	update := func() {
		x, y, err := a.readInputs(original, modified)
		if err == nil {
			_, err = a.compare(cfg, logger, x, y)
		}
		if err != nil {
			logger.Warn("comparison failed", zap.Error(err))
		}
	}
	update()
	return watch(ctx, logger, []string{original, modified}, update)
}

// watch calls update whenever one of the files is written, created, or replaced.
//
// The directories containing the files are watched instead of the files themselves, because many
// editors save by writing a new file and renaming it over the old one.
func watch(ctx context.Context, logger *zap.Logger, files []string, update func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %v", err)
	}
	defer watcher.Close()

	var paths []string
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return fmt.Errorf("resolving %s: %v", f, err)
		}
		paths = append(paths, abs)
		dir := filepath.Dir(abs)
		if slices.Contains(watcher.WatchList(), dir) {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %v", dir, err)
		}
	}
	logger.Info("watching", zap.Strings("files", paths))

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Absolutely no need to react to chmod.
			if event.Has(fsnotify.Chmod) || !slices.Contains(paths, filepath.Clean(event.Name)) {
				continue
			}
			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				logger.Debug("file moved away, waiting for it to reappear", zap.String("file", event.Name))
				continue
			}
			logger.Info("file changed", zap.String("file", event.Name), zap.Stringer("op", event.Op))
			update()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching: %v", err)
		case <-ctx.Done():
			logger.Info("stopped watching")
			return nil
		}
	}
}
