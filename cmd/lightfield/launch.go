package main

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/lightfield/frame"
)

// launcher starts the frame driver off the draw goroutine and records
// the outcome. Draw callbacks poll Driver; a startup failure is kept for
// the caller of app.Run.
type launcher struct {
	once   sync.Once
	driver atomic.Pointer[frame.Driver]
	mu     sync.Mutex
	err    error
	done   chan struct{}
}

func newLauncher() *launcher {
	return &launcher{done: make(chan struct{})}
}

// launch runs start once on a new goroutine. onFailure is called with the
// startup error, typically to quit the application.
func (l *launcher) launch(start func() (*frame.Driver, error), onFailure func(error)) {
	l.once.Do(func() {
		go func() {
			defer close(l.done)
			d, err := start()
			if err != nil {
				l.mu.Lock()
				l.err = err
				l.mu.Unlock()
				onFailure(err)
				return
			}
			l.driver.Store(d)
		}()
	})
}

// Driver returns the running driver, or nil while starting or after a
// failed startup.
func (l *launcher) Driver() *frame.Driver {
	return l.driver.Load()
}

// Err returns the startup error.
func (l *launcher) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}
