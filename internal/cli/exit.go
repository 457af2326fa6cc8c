package cli

import (
	"fmt"

	"github.com/temirov/tema/internal/resolver"
	"github.com/temirov/tema/internal/types"
)

const exitErrorMessageFormat = "exit status %d"

// ExitError asks the process to terminate with Code. The message for the user has
// already been printed when it is returned.
type ExitError struct {
	Code int
}

func (exitError *ExitError) Error() string {
	return fmt.Sprintf(exitErrorMessageFormat, exitError.Code)
}

// exitCodeForResolution maps an unprocessed resolution to its exit status.
func exitCodeForResolution(resolution resolver.Resolution) int {
	switch resolution.(type) {
	case resolver.UnknownCommandError:
		return types.ExitCodeUnknownCommand
	case resolver.UnknownModifierError:
		return types.ExitCodeUnknownModifier
	case resolver.InvalidModifierArgsError:
		return types.ExitCodeInvalidModifierArgument
	case resolver.NoContentError:
		return types.ExitCodeNoContent
	case resolver.Resolved:
		return types.ExitCodeSuccess
	default:
		return types.ExitCodeParsingFailure
	}
}

// exitResult returns an *ExitError for a non-zero code when exit codes are enabled.
func exitResult(code int, exitCodesEnabled bool) error {
	if !exitCodesEnabled || code == types.ExitCodeSuccess {
		return nil
	}
	return &ExitError{Code: code}
}
