package main

// Exit codes used across all commands
const (
	ExitSuccess       = 0 // Success
	ExitError         = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError   = 2 // Configuration error (missing config, invalid paths)
	ExitDataError     = 3 // Data error (missing article, validation failure)
	ExitFetchError    = 4 // Metadata server returned an error
	ExitTemplateError = 5 // Format script failed to render
)
