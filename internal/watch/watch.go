// Package watch reruns the packing pipeline when the input directory changes.
package watch

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	crunch "github.com/jordi-star/crunch-gd"
)

const relevantOps = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

// Watcher calls Run whenever an image in Dir changes.
type Watcher struct {
	Dir        string
	OutputPath string
	Run        func() error
}

// New creates a Watcher for dir that ignores changes to outputPath.
func New(dir, outputPath string, run func() error) *Watcher {
	return &Watcher{Dir: dir, OutputPath: outputPath, Run: run}
}

// Relevant reports whether ev should trigger a run: it must touch an image
// file that is not the atlas itself.
func (w *Watcher) Relevant(ev fsnotify.Event) bool {
	if ev.Op&relevantOps == 0 {
		return false
	}
	if !crunch.IsImageFile(ev.Name) {
		return false
	}
	return !crunch.SamePath(ev.Name, w.OutputPath)
}

// Watch blocks until ctx is done. The subscription on Dir is dropped while
// Run executes and events queued during the run are discarded, so a run
// never overlaps another one or triggers itself.
func (w *Watcher) Watch(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	dir := filepath.Clean(w.Dir)
	if err := fw.Add(dir); err != nil {
		return err
	}
	log := crunch.Logger()
	log.Info("watching for changes", "dir", dir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", "err", err)
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.Relevant(ev) {
				continue
			}
			log.Debug("change detected", "event", ev.String())

			if err := fw.Remove(dir); err != nil {
				return err
			}
			if err := w.Run(); err != nil {
				log.Error("packing failed", "err", err)
			}
			drain(fw.Events)
			if err := fw.Add(dir); err != nil {
				return err
			}
		}
	}
}

func drain(events <-chan fsnotify.Event) {
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}
