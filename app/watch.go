package app

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/mzki/fakedpi/util/log"
)

// WatchConfig reloads file on every write and passes the result to
// apply, which runs on the watcher goroutine. Close the returned
// watcher to stop watching.
//
// The parent directory is watched rather than the file itself so that
// editors replacing the file by rename are still seen.
func WatchConfig(file string, apply func(*Config)) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(file)
	if err != nil {
		watcher.Close()
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Name != abs || !ev.Op.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				conf, err := LoadConfigOrDefault(abs)
				if err != nil {
					log.Infof("config reload failed: %v", err)
					continue
				}
				log.Debugf("config reloaded from %s", abs)
				apply(conf)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Infof("config watch error: %v", err)
			}
		}
	}()
	return watcher, nil
}
