package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jingkaihe/agentskills/pkg/filesystem"
	"github.com/jingkaihe/agentskills/pkg/logger"
	"github.com/jingkaihe/agentskills/pkg/presenter"
	"github.com/jingkaihe/agentskills/pkg/skills"
	"github.com/pkg/errors"
)

// watchSkill validates dir once and again after every burst of manifest
// changes until ctx is cancelled
func watchSkill(ctx context.Context, fsys filesystem.FileSystem, dir string, delay time.Duration) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create file watcher")
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return errors.Wrapf(err, "failed to watch %s", dir)
	}

	changes := make(chan fsnotify.Event)
	go forwardManifestEvents(ctx, watcher, changes)
	debounced := debounceEvents(ctx, changes, delay)

	validateSkill(ctx, fsys, dir)
	presenter.Info(fmt.Sprintf("Watching %s for changes... Press Ctrl+C to stop", dir))

	for {
		select {
		case event, ok := <-debounced:
			if !ok {
				return nil
			}
			logger.G(ctx).WithFields(map[string]interface{}{
				"file":      event.Name,
				"operation": event.Op.String(),
			}).Info("manifest change detected")
			validateSkill(ctx, fsys, dir)
		case <-ctx.Done():
			return nil
		}
	}
}

// forwardManifestEvents passes manifest events from watcher to out and
// closes out when the watcher or ctx is done
func forwardManifestEvents(ctx context.Context, watcher *fsnotify.Watcher, out chan<- fsnotify.Event) {
	defer close(out)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !isManifestEvent(event) {
				continue
			}
			select {
			case out <- event:
			case <-ctx.Done():
				return
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.G(ctx).WithError(err).Warn("error watching skill directory")
		case <-ctx.Done():
			return
		}
	}
}

func isManifestEvent(event fsnotify.Event) bool {
	if !skills.IsManifestFileName(filepath.Base(event.Name)) {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}

// debounceEvents emits the latest input event once no further event has
// arrived for delay. A pending event is flushed when input closes.
func debounceEvents(ctx context.Context, input <-chan fsnotify.Event, delay time.Duration) <-chan fsnotify.Event {
	output := make(chan fsnotify.Event)

	go func() {
		defer close(output)

		timer := time.NewTimer(delay)
		timer.Stop()
		defer timer.Stop()

		var (
			pending bool
			latest  fsnotify.Event
		)

		emit := func() bool {
			pending = false
			select {
			case output <- latest:
				return true
			case <-ctx.Done():
				return false
			}
		}

		for {
			select {
			case event, ok := <-input:
				if !ok {
					if pending {
						emit()
					}
					return
				}
				latest = event
				pending = true
				timer.Reset(delay)
			case <-timer.C:
				if pending && !emit() {
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return output
}
