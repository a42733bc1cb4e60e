package main

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"gopkg.in/fsnotify.v1"
)

// ORCA writes its output in many small pieces, so wait for the writes
// to settle before rerunning
var DEBOUNCE = 2 * time.Second

// Watch calls run every time filename is created or written until ctx
// is done. The containing directory is watched so that a report that
// is replaced by a new file is still followed.
func Watch(ctx context.Context, filename string, run func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	target := filepath.Clean(filename)
	if err := w.Add(filepath.Dir(target)); err != nil {
		return err
	}
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				pending = time.After(DEBOUNCE)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch: %v\n", err)
		case <-pending:
			pending = nil
			if err := run(); err != nil {
				log.Printf("rerun failed: %v\n", err)
			}
		}
	}
}
