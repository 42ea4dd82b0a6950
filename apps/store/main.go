package main

import (
	"context"
	"fmt"
	"log"
	"os"

	storeapi "github.com/trezcool/matokeo/apps/store/echo"
	"github.com/trezcool/matokeo/core"
	logsvc "github.com/trezcool/matokeo/services/logger"
)

func main() {
	conf := core.NewConfig()

	var logger core.Logger
	std := log.New(os.Stdout, "STORE : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	if conf.Debug {
		logger = logsvc.NewConsoleLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, conf)
	}

	server := storeapi.NewServer(
		&storeapi.Options{
			Address: conf.Server.Address(),
			Debug:   conf.Debug,
			Logger:  logger,
		},
	)

	logger.Info("record store listening on " + conf.Server.Address())
	defer logger.Info("record store stopped")

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err := <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err := server.Stop(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}
