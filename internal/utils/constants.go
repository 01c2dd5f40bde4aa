package utils

// ConfigFileName is the name of the optional configuration file.
const ConfigFileName = ".dirtree.yaml"

// GlobalConfigDirectoryName is the per-user directory holding the global configuration file.
const GlobalConfigDirectoryName = ".dirtree"

// LoggerInitializationFailedMessageFormat reports a logger construction failure.
const LoggerInitializationFailedMessageFormat = "logger initialization failed: %w"

// ApplicationExecutionFailedMessage prefixes fatal application errors.
const ApplicationExecutionFailedMessage = "application execution failed"
