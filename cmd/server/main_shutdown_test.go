package main

import (
	"net/http"
	"os"
	osSignal "os/signal"
	"syscall"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
)

func TestShutdownSignals(t *testing.T) {
	t.Cleanup(func() {
		signalNotify = osSignal.Notify
	})

	for _, sig := range []os.Signal{syscall.SIGINT, syscall.SIGTERM} {
		sig := sig
		signalNotify = func(ch chan<- os.Signal, _ ...os.Signal) {
			go func() {
				ch <- sig
			}()
		}

		server := &http.Server{}
		called := make(chan struct{}, 1)
		server.RegisterOnShutdown(func() {
			called <- struct{}{}
		})

		logger := zaptest.NewLogger(t)
		shutdown(server, time.Millisecond, logger)

		select {
		case <-called:
		case <-time.After(time.Second):
			t.Fatalf("expected server shutdown callback to execute for %v", sig)
		}
	}
}
