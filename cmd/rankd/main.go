package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	appName = "rankd"
	appSha  = "populated-at-link-time"
	logger  *logrus.Entry
)

func main() {
	// Values from a .env file never override the real environment.
	_ = godotenv.Load()

	host, _ := os.Hostname()
	rootLogger := logrus.New()
	logger = rootLogger.WithFields(logrus.Fields{
		"app":  appName,
		"sha":  appSha,
		"host": host,
	})

	ctx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGHUP)
		select {
		case s := <-sigCh:
			logger.WithField("signal", s.String()).Info("shutting down due to signal")
			cancelFn()
		case <-ctx.Done():
		}
	}()

	if err := newRootCmd(rootLogger).ExecuteContext(ctx); err != nil {
		logger.WithField("err", err).Error("shutting down due to error")
		cancelFn()
		os.Exit(1)
	}
}
