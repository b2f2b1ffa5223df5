package cli

// Exit codes for the formgraph CLI. Stable values support scripting and
// CI integration.
const (
	// ExitSuccess indicates successful command execution.
	ExitSuccess = 0

	// ExitFindings indicates the analysis found problems (cycles, forward
	// references) under --strict.
	ExitFindings = 1

	// ExitInvalidArguments indicates invalid command arguments.
	ExitInvalidArguments = 3

	// ExitInputError indicates the survey document could not be read or
	// failed to build (e.g. duplicate names).
	ExitInputError = 4
)
