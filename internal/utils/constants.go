package utils

// EmptyString represents a reusable empty string constant.
const EmptyString = ""

// Configuration file locations.
const (
	// GlobalConfigDirectoryName is the directory under the user's home holding the global configuration.
	GlobalConfigDirectoryName = ".tema"
	// ConfigFileName is the name of the global configuration file.
	ConfigFileName = "config.yaml"
	// LocalConfigFileName is the name of the configuration file in the working directory.
	LocalConfigFileName = ".tema.yaml"
	// EnvironmentPrefix prefixes every environment variable read by tema.
	EnvironmentPrefix = "TEMA"
)

// GitDirectoryName is the name of the Git repository directory.
const GitDirectoryName = ".git"

// Process-level messages.
const (
	// LoggerInitializationFailedMessageFormat reports a logger that could not be built.
	LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"
	// ApplicationExecutionFailedMessage prefixes a fatal execution failure.
	ApplicationExecutionFailedMessage = "application execution failed"
)
