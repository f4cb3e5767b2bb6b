package env

// ExitCode is a program's exit code.
type ExitCode int

func (c ExitCode) IsSuccess() bool {
	return c == 0
}

func (c ExitCode) IsFailure() bool {
	return !c.IsSuccess()
}

// CommandResult encodes whether a command succeeded or failed.
type CommandResult int

const (
	CommandSuccess CommandResult = iota
	CommandFailure
)

// CommandResultFromSuccess maps a success flag to a CommandResult.
func CommandResultFromSuccess(success bool) CommandResult {
	if success {
		return CommandSuccess
	}
	return CommandFailure
}

func (r CommandResult) IsSuccess() bool {
	return r == CommandSuccess
}

func (r CommandResult) IsFailure() bool {
	return !r.IsSuccess()
}
