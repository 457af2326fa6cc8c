// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/tema/internal/config"
	"github.com/temirov/tema/internal/output"
	"github.com/temirov/tema/internal/presentation"
	"github.com/temirov/tema/internal/processing"
	"github.com/temirov/tema/internal/resolver"
	"github.com/temirov/tema/internal/services/clipboard"
	"github.com/temirov/tema/internal/types"
	"github.com/temirov/tema/internal/utils"
)

const (
	rootUse              = "tema [tool-options] <operation> [modifiers] <content>"
	rootShortDescription = "tema manipulates text from the command line"
	rootLongDescription  = `tema applies a text operation to the content given as its last argument.
Operations are help (h), reverse (r) and flip (f). Modifiers such as --padded (-p) follow the
operation together with their arguments. Use "tema help" or "tema <operation> --help" for details.

Tool options are recognised only before the operation:
  --version                     display application version
  --format raw|json             result format
  --copy[=bool]                 copy the result to the clipboard
  --exit-codes[=bool]           exit with a distinct status for each kind of error
  --config <path>               configuration file to use instead of ./.tema.yaml
  --init-config[=local|global]  write a default configuration file (--force overwrites)`
	rootUsageExample = `  # Reverse text, padded twice with '*' on both sides
  tema reverse -p 2 '*' "hello world"

  # Flip text upside-down and render the result as JSON
  tema --format json flip "hello"`

	versionTemplate              = "tema version: %s\n"
	configurationWrittenTemplate = "configuration written to %s\n"

	loadConfigurationErrorFormat = "load configuration: %w"
	initConfigurationErrorFormat = "initialize configuration: %w"
	loggerErrorFormat            = "create logger: %w"

	resolutionLogMessage       = "resolved arguments"
	processingFailedLogMessage = "processing failed"
	processedLogMessage        = "processed content"
	copiedLogMessage           = "copied result to clipboard"
	argumentsLogField          = "arguments"
	operationLogField          = "operation"
	modifiersLogField          = "modifiers"
	formatLogField             = "format"
)

// Dependencies carries the collaborators of the root command.
type Dependencies struct {
	Copier           clipboard.Copier
	LoggerFactory    func(levelName string) (*zap.Logger, error)
	WorkingDirectory string
	HomeDirectory    string
	// IgnoreEnvironment skips TEMA_* variables when loading configuration.
	IgnoreEnvironment bool
}

// DefaultDependencies returns the collaborators used by the tema binary.
func DefaultDependencies() Dependencies {
	return Dependencies{
		Copier:        clipboard.NewService(),
		LoggerFactory: utils.NewApplicationLogger,
	}
}

// Execute runs the tema application.
func Execute() error {
	return NewRootCommand(DefaultDependencies()).Execute()
}

// NewRootCommand builds the root Cobra command. Flag parsing is disabled so that every
// operation token, including -h and --help, reaches the resolver untouched.
func NewRootCommand(dependencies Dependencies) *cobra.Command {
	if dependencies.Copier == nil {
		dependencies.Copier = clipboard.NewService()
	}
	if dependencies.LoggerFactory == nil {
		dependencies.LoggerFactory = utils.NewApplicationLogger
	}
	runner := &application{dependencies: dependencies}
	return &cobra.Command{
		Use:                rootUse,
		Short:              rootShortDescription,
		Long:               rootLongDescription,
		Example:            rootUsageExample,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE:               runner.run,
	}
}

type application struct {
	dependencies Dependencies
}

func (runner *application) run(command *cobra.Command, arguments []string) error {
	options, operationArguments, parseError := parseToolOptions(arguments)
	if parseError != nil {
		return parseError
	}
	stdout := command.OutOrStdout()

	if options.showVersion {
		fmt.Fprintf(stdout, versionTemplate, utils.GetApplicationVersion())
		return nil
	}
	if options.requestedInit {
		return runner.initializeConfiguration(stdout, options)
	}

	configuration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory:  runner.dependencies.WorkingDirectory,
		HomeDirectory:     runner.dependencies.HomeDirectory,
		ExplicitFilePath:  options.configPath,
		IgnoreEnvironment: runner.dependencies.IgnoreEnvironment,
	})
	if configurationError != nil {
		return fmt.Errorf(loadConfigurationErrorFormat, configurationError)
	}
	configuration = options.applyTo(configuration)
	format := configuration.FormatOrDefault()
	if formatError := output.ValidateFormat(format); formatError != nil {
		return formatError
	}

	logger, loggerError := runner.dependencies.LoggerFactory(configuration.LogLevelOrDefault())
	if loggerError != nil {
		return fmt.Errorf(loggerErrorFormat, loggerError)
	}
	defer func() {
		_ = logger.Sync()
	}()

	return runner.execute(stdout, logger, configuration, format, operationArguments)
}

func (runner *application) initializeConfiguration(stdout io.Writer, options toolOptions) error {
	target, targetError := config.ParseInitTarget(options.initTarget)
	if targetError != nil {
		return fmt.Errorf(initConfigurationErrorFormat, targetError)
	}
	path, initError := config.InitializeConfiguration(config.InitOptions{
		Target:           target,
		Force:            options.forceInit,
		WorkingDirectory: runner.dependencies.WorkingDirectory,
		HomeDirectory:    runner.dependencies.HomeDirectory,
	})
	if initError != nil {
		return fmt.Errorf(initConfigurationErrorFormat, initError)
	}
	fmt.Fprintf(stdout, configurationWrittenTemplate, path)
	return nil
}

// execute resolves the operation tokens, then either prints the page for the resolution
// or processes the content and writes the result.
func (runner *application) execute(stdout io.Writer, logger *zap.Logger, configuration config.ApplicationConfiguration, format string, operationArguments []string) error {
	resolution := resolver.Resolve(operationArguments)
	logger.Debug(resolutionLogMessage, append([]zap.Field{zap.Strings(argumentsLogField, operationArguments)}, resolutionFields(resolution)...)...)

	exitCodesEnabled := configuration.ExitCodesEnabled()
	printer := presentation.NewPrinter(stdout)
	if printer.PrintResolution(resolution) {
		return exitResult(exitCodeForResolution(resolution), exitCodesEnabled)
	}

	resolved, isResolved := resolution.(resolver.Resolved)
	processor, registered := processing.ForCommand(resolved.Command)
	if !isResolved || !registered {
		printer.PrintParsingFailure()
		printer.PrintHelp()
		return exitResult(types.ExitCodeParsingFailure, exitCodesEnabled)
	}

	result, processError := processor.Process(resolved.ModifierValues, resolved.Content)
	if processError != nil {
		logger.Debug(processingFailedLogMessage, zap.Error(processError))
		printer.PrintProcessingError(processError)
		return exitResult(types.ExitCodeProcessingError, exitCodesEnabled)
	}
	logger.Debug(processedLogMessage, zap.String(operationLogField, resolved.Command.LongName()), zap.String(formatLogField, format))

	if writeError := output.Write(stdout, format, output.NewResultOutput(resolved, result)); writeError != nil {
		return writeError
	}
	if configuration.CopyEnabled() {
		if copyError := runner.dependencies.Copier.Copy(result); copyError != nil {
			return copyError
		}
		logger.Debug(copiedLogMessage)
	}
	return nil
}

func resolutionFields(resolution resolver.Resolution) []zap.Field {
	if resolutionError, isError := resolution.(error); isError {
		return []zap.Field{zap.Error(resolutionError)}
	}
	resolved, isResolved := resolution.(resolver.Resolved)
	if !isResolved {
		return nil
	}
	modifiers := resolved.ModifierValues.Modifiers()
	modifierNames := make([]string, 0, len(modifiers))
	for _, modifier := range modifiers {
		modifierNames = append(modifierNames, modifier.LongName())
	}
	return []zap.Field{
		zap.String(operationLogField, resolved.Command.LongName()),
		zap.Strings(modifiersLogField, modifierNames),
	}
}
