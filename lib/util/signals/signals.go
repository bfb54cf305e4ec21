// Package signals runs registered callbacks when the process is asked to
// reload (SIGHUP) or to stop (SIGINT, SIGTERM).
package signals

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
)

// sigChan is buffered so a signal arriving before Handle runs is not lost.
var sigChan = make(chan os.Signal, 1)

// Handler is a function called when a signal is received.
type Handler func()

var (
	mu           sync.Mutex
	reloaders    []Handler
	interrupters []Handler
	stopOnce     sync.Once
)

// RegisterReloadHandler adds f to the SIGHUP handlers. Nil is ignored.
func RegisterReloadHandler(f Handler) {
	register(&reloaders, f)
}

// RegisterInterruptHandler adds f to the shutdown handlers. Nil is ignored.
func RegisterInterruptHandler(f Handler) {
	register(&interrupters, f)
}

func register(list *[]Handler, f Handler) {
	if f == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	*list = append(*list, f)
}

func handleReload() {
	run("reload", &reloaders)
}

func handleInterrupted() {
	run("interrupt", &interrupters)
}

// run calls a snapshot of handlers in registration order. A panicking
// handler does not keep the others from running.
func run(kind string, list *[]Handler) {
	mu.Lock()
	snapshot := append([]Handler(nil), *list...)
	mu.Unlock()

	for _, h := range snapshot {
		func() {
			defer func() {
				if r := recover(); r != nil {
					fmt.Fprintf(os.Stderr, "signals: panic in %s handler: %v\n", kind, r)
				}
			}()
			h()
		}()
	}
}

// StopHandle makes Handle return. Safe to call more than once.
func StopHandle() {
	stopOnce.Do(func() {
		signal.Stop(sigChan)
		close(sigChan)
	})
}
