package shell

import (
	"errors"

	"github.com/oakwood-commons/zksim/internal/znode"
)

var (
	// ErrUsage is matched by every UsageError.
	ErrUsage = errors.New("usage error")
	// ErrUnknownCommand is returned for an unrecognized first token.
	ErrUnknownCommand = errors.New("unknown command")

	// errExit stops the loop after the current command.
	errExit = errors.New("exit")
)

// UsageError reports a command invoked with too few or malformed arguments.
type UsageError struct {
	Usage string
}

func (e *UsageError) Error() string {
	return "Usage: " + e.Usage
}

// Is reports ErrUsage as a match.
func (e *UsageError) Is(target error) bool {
	return target == ErrUsage
}

// Message maps an error to the single line shown after the error tag.
func Message(err error) string {
	var usage *UsageError
	switch {
	case errors.As(err, &usage):
		return usage.Error()
	case errors.Is(err, znode.ErrRootDelete):
		return "Cannot delete root."
	case errors.Is(err, znode.ErrNodeExists):
		return "Node already exists."
	case errors.Is(err, znode.ErrNotFound):
		return "Path not found."
	case errors.Is(err, ErrUnknownCommand):
		return "Unknown command."
	default:
		return err.Error()
	}
}
