package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/temirov/tema/internal/cli"
	"github.com/temirov/tema/internal/types"
	"github.com/temirov/tema/internal/utils"
)

// main is the entry point for the tema command.
func main() {
	loggerInstance, loggerInitializationError := utils.NewApplicationLogger(utils.DefaultLogLevel)
	if loggerInitializationError != nil {
		panic(fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerInitializationError))
	}
	applicationExecutionError := cli.Execute()
	if applicationExecutionError == nil {
		_ = loggerInstance.Sync()
		return
	}
	var exitError *cli.ExitError
	if errors.As(applicationExecutionError, &exitError) {
		_ = loggerInstance.Sync()
		os.Exit(exitError.Code)
	}
	loggerInstance.Error(utils.ApplicationExecutionFailedMessage + ": " + applicationExecutionError.Error())
	_ = loggerInstance.Sync()
	os.Exit(types.ExitCodeFailure)
}
