package main

import (
	"context"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/yumyai/gbprep/cmd"
	"github.com/yumyai/gbprep/logger"
)

func main() {

	// Establish logger; the root command re-initialises it at the configured level.
	if err := logger.InitLogger(zapcore.InfoLevel); err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := cmd.ExecuteContext(ctx)
	stop()
	_ = logger.Sync() // Make sure that the buffered is flushed.

	if err != nil {
		logger.Fatal("gbprep failed", zap.Error(err))
	}
}
