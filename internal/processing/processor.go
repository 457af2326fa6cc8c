// Package processing implements the string transforms behind each command.
package processing

import (
	"errors"
	"fmt"

	"github.com/temirov/tema/internal/vocabulary"
)

var (
	// ErrInvalidArgument reports a modifier argument value that fails semantic validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnsupportedModifier reports a modifier that reached a processor unable to apply it.
	ErrUnsupportedModifier = errors.New("modifier is not supported with this command")
)

const processingErrorFormat = "%s %s: %v"

// Processor transforms content according to the bound modifier values.
type Processor interface {
	Process(modifierValues vocabulary.ModifierValues, content string) (string, error)
}

// ProcessingError ties a failure to the command and modifier that caused it.
type ProcessingError struct {
	Command  vocabulary.Command
	Modifier vocabulary.Modifier
	Err      error
}

func (processingError *ProcessingError) Error() string {
	return fmt.Sprintf(processingErrorFormat, processingError.Command.LongName(), processingError.Modifier.LongName(), processingError.Err)
}

func (processingError *ProcessingError) Unwrap() error {
	return processingError.Err
}

var processors = map[vocabulary.Command]Processor{
	vocabulary.CommandReverse: transformProcessor{command: vocabulary.CommandReverse, transform: Reverse},
	vocabulary.CommandFlip:    transformProcessor{command: vocabulary.CommandFlip, transform: Flip},
}

// ForCommand returns the processor registered for command. Help has none.
func ForCommand(command vocabulary.Command) (Processor, bool) {
	processor, registered := processors[command]
	return processor, registered
}

// transformProcessor applies a content transform followed by every modifier, in order.
type transformProcessor struct {
	command   vocabulary.Command
	transform func(string) string
}

// Process validates every modifier before transforming, so no partial work is done on bad input.
func (processor transformProcessor) Process(modifierValues vocabulary.ModifierValues, content string) (string, error) {
	paddings := make(map[vocabulary.Modifier]PaddingArguments, len(modifierValues))
	for _, entry := range modifierValues {
		switch entry.Modifier {
		case vocabulary.ModifierPadded:
			paddingArguments, validationError := ValidatePaddingArguments(entry.Arguments)
			if validationError != nil {
				return "", &ProcessingError{Command: processor.command, Modifier: entry.Modifier, Err: validationError}
			}
			paddings[entry.Modifier] = paddingArguments
		default:
			return "", &ProcessingError{Command: processor.command, Modifier: entry.Modifier, Err: ErrUnsupportedModifier}
		}
	}

	result := processor.transform(content)
	for _, modifier := range modifierValues.Modifiers() {
		if paddingArguments, padded := paddings[modifier]; padded {
			result = Pad(paddingArguments, result)
		}
	}
	return result, nil
}
