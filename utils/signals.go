package utils

import (
	"os"
	"os/signal"
	"syscall"
)

// Wait blocks until the process is interrupted or terminated.
func Wait() {
	exitChan := make(chan os.Signal, 1)
	signal.Notify(exitChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(exitChan)
	<-exitChan
}
