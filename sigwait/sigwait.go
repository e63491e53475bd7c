// Package sigwait provides the shutdown signal wait cmd/phyctl uses to
// keep a transmit or receive session alive until interrupted.
package sigwait

import (
	"os"
	"os/signal"
	"syscall"
)

// WaitForSignal blocks until a SIGINT or SIGTERM is received.
func WaitForSignal() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
}
