// Package resolver turns raw command line tokens into a structured action.
package resolver

import (
	"fmt"
	"strings"

	"github.com/temirov/tema/internal/vocabulary"
)

const (
	noContentErrorFormat          = "no content provided for operation '%s'"
	invalidModifierArgsFormat     = "invalid arguments for modifier '%s' on operation '%s': [%s]"
	unknownModifierErrorFormat    = "unknown modifier '%s' for operation '%s'"
	unknownCommandErrorFormat     = "unknown command '%s'"
	parsingFailureMessage         = "argument resolution failed"
	allArgumentsSeparator         = ", "
	bestEffortModifierPlaceholder = "?"
)

// Resolution is the single outcome of resolving a token sequence. It is one of
// Resolved, NoContentError, InvalidModifierArgsError, UnknownModifierError,
// UnknownCommandError or ParsingFailure.
type Resolution interface {
	isResolution()
}

// Resolved is a successfully parsed action.
type Resolved struct {
	Command        vocabulary.Command
	ModifierValues vocabulary.ModifierValues
	Content        string
}

// NoContentError reports a command given without any content.
type NoContentError struct {
	Command        vocabulary.Command
	ModifierValues vocabulary.ModifierValues
}

// InvalidModifierArgsError reports a modifier with too few or too many arguments.
// AllArgs holds every argument value collected before the failure.
type InvalidModifierArgsError struct {
	Command  vocabulary.Command
	Modifier vocabulary.Modifier
	AllArgs  []string
}

// UnknownModifierError carries the raw text of an unrecognised modifier.
type UnknownModifierError struct {
	Command  vocabulary.Command
	Modifier string
}

// UnknownCommandError carries the raw text of an unrecognised command.
type UnknownCommandError struct {
	Command string
}

// ParsingFailure signals a resolver defect; correct input handling never produces it.
type ParsingFailure struct{}

func (Resolved) isResolution()                 {}
func (NoContentError) isResolution()           {}
func (InvalidModifierArgsError) isResolution() {}
func (UnknownModifierError) isResolution()     {}
func (UnknownCommandError) isResolution()      {}
func (ParsingFailure) isResolution()           {}

func (resolution NoContentError) Error() string {
	return fmt.Sprintf(noContentErrorFormat, resolution.Command.LongName())
}

func (resolution InvalidModifierArgsError) Error() string {
	return fmt.Sprintf(invalidModifierArgsFormat, resolution.Modifier.LongName(), resolution.Command.LongName(), strings.Join(resolution.AllArgs, allArgumentsSeparator))
}

func (resolution UnknownModifierError) Error() string {
	return fmt.Sprintf(unknownModifierErrorFormat, resolution.Modifier, resolution.Command.LongName())
}

func (resolution UnknownCommandError) Error() string {
	return fmt.Sprintf(unknownCommandErrorFormat, resolution.Command)
}

func (ParsingFailure) Error() string {
	return parsingFailureMessage
}

// RequestsHelp reports whether the resolved action only asks for a help page.
func (resolution Resolved) RequestsHelp() bool {
	return resolution.Command == vocabulary.CommandHelp || resolution.ModifierValues.Has(vocabulary.ModifierHelp)
}
