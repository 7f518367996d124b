package app

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/a2hop/dirtree/pkg/logger"
)

var signalCh chan os.Signal

// setupSignalHandling installs an interrupt handler. The walk is
// synchronous with no resources to drain, so a signal simply logs and
// exits with the conventional interrupted status.
func (a *App) setupSignalHandling() {
	signalCh = make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig, ok := <-signalCh
		if !ok {
			return
		}

		a.log.WithFields(logger.Fields{
			"signal": sig.String(),
		}).Warn("Received signal, exiting")

		os.Exit(130)
	}()
}

func (a *App) stopSignalHandling() {
	if signalCh != nil {
		signal.Stop(signalCh)
		close(signalCh)
		signalCh = nil
	}
}
