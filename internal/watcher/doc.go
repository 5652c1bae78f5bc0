// Package watcher reports changes to a fixed set of input files.
//
// The parent directory of every file is watched with fsnotify so editors
// that save by renaming a temporary file are still seen. Events for other
// files in those directories are dropped. Rapid changes to one file are
// coalesced per path over a short window and delivered as batches.
//
// Usage:
//
//	w, err := watcher.New([]string{"notes.txt"}, watcher.WithDebounce(time.Second))
//	if err != nil {
//	    return err
//	}
//	defer w.Stop()
//
//	go func() { _ = w.Start(ctx) }()
//
//	for batch := range w.Events() {
//	    for _, event := range batch {
//	        // re-index event.Path unless event.Operation is OpDelete
//	    }
//	}
package watcher
