package main

type ExitCode int

const (
	// 1 = Other errors, typically some inputs could not be printed
	BadUsage ExitCode = 2 // Incorrect usage
	BadInput ExitCode = 3 // No valid inputs

	BadConfig            ExitCode = 10 // Invaild configuration
	CannotRetrieveConfig ExitCode = 11 // Failed to create or get the config file
)

type ExitCodeError struct {
	Code ExitCode
	Err  error
}

func (e *ExitCodeError) Error() string {
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}
