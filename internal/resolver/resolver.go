package resolver

import (
	"strings"

	"github.com/temirov/tema/internal/vocabulary"
)

// scanState describes what the scanner expects from the next non-final token.
type scanState int

const (
	// stateIdle has no modifier cursor; a value token here has no owner.
	stateIdle scanState = iota
	// stateAwaitingArguments has a cursor modifier that still needs values.
	stateAwaitingArguments
	// stateArgumentless has a cursor modifier that takes no values at all.
	stateArgumentless
)

// Resolve converts the raw process arguments into a Resolution. It never fails:
// malformed input is reported through the error variants of Resolution.
func Resolve(tokens []string) Resolution {
	if len(tokens) == 0 ||
		strings.TrimSpace(tokens[0]) == "" ||
		vocabulary.MatchesCommand(tokens[0], vocabulary.CommandHelp) ||
		vocabulary.MatchesModifier(tokens[0], vocabulary.ModifierHelp) {
		return Resolved{Command: vocabulary.CommandHelp}
	}

	rawCommand := tokens[0]
	command, known := vocabulary.CommandByName(rawCommand)
	if !known {
		return UnknownCommandError{Command: rawCommand}
	}
	rest := tokens[1:]

	switch {
	case len(rest) == 0:
		return NoContentError{Command: command}
	case vocabulary.MatchesModifier(rest[0], vocabulary.ModifierHelp):
		content := ""
		if len(rest) > 1 {
			content = rest[len(rest)-1]
		}
		return Resolved{
			Command:        command,
			ModifierValues: vocabulary.ModifierValues{{Modifier: vocabulary.ModifierHelp, Arguments: vocabulary.ArgumentValues{}}},
			Content:        content,
		}
	case len(rest) == 1:
		return Resolved{Command: command, Content: rest[0]}
	}

	machine := &scanner{command: command, rest: rest}
	return machine.run()
}

// scanner holds the mutable state of a single resolution. Nothing escapes it
// until one of the Resolution variants is built.
type scanner struct {
	command vocabulary.Command
	rest    []string
	state   scanState
	cursor  vocabulary.Modifier
	bound   vocabulary.ModifierValues
}

func (machine *scanner) run() Resolution {
	lastIndex := len(machine.rest) - 1
	for index, token := range machine.rest {
		if index == lastIndex {
			return machine.finish(token)
		}
		var outcome Resolution
		if vocabulary.HasModifierSymbol(token) {
			outcome = machine.acceptModifier(token)
		} else {
			outcome = machine.acceptValue(token)
		}
		if outcome != nil {
			return outcome
		}
	}
	return ParsingFailure{}
}

// finish treats the trailing token as content, whatever state the scan is in.
func (machine *scanner) finish(content string) Resolution {
	switch machine.state {
	case stateIdle, stateArgumentless:
		return Resolved{Command: machine.command, ModifierValues: machine.bound, Content: content}
	case stateAwaitingArguments:
		return InvalidModifierArgsError{Command: machine.command, Modifier: machine.cursor, AllArgs: machine.bound.Flatten()}
	default:
		return UnknownModifierError{Command: machine.command, Modifier: machine.bestEffortModifierName()}
	}
}

// acceptModifier starts a new modifier entry. A modifier cannot interrupt one that still awaits values.
func (machine *scanner) acceptModifier(token string) Resolution {
	modifier, known := vocabulary.ModifierByName(token)
	if !known {
		return UnknownModifierError{Command: machine.command, Modifier: token}
	}
	if machine.state == stateAwaitingArguments {
		return InvalidModifierArgsError{Command: machine.command, Modifier: machine.cursor, AllArgs: machine.bound.Flatten()}
	}
	machine.bound = machine.bound.Set(modifier, vocabulary.ArgumentValues{})
	machine.cursor = modifier
	if modifier.ArgumentCount() == 0 {
		machine.state = stateArgumentless
	} else {
		machine.state = stateAwaitingArguments
	}
	return nil
}

// acceptValue binds token to the next unfilled argument of the cursor modifier.
func (machine *scanner) acceptValue(token string) Resolution {
	switch machine.state {
	case stateIdle:
		return InvalidModifierArgsError{Command: machine.command, Modifier: machine.bestEffortModifier(), AllArgs: append(machine.bound.Flatten(), token)}
	case stateArgumentless:
		return InvalidModifierArgsError{Command: machine.command, Modifier: machine.cursor, AllArgs: append(machine.bound.Flatten(), token)}
	}

	arguments, _ := machine.bound.Get(machine.cursor)
	required := machine.cursor.Arguments()
	if len(arguments) >= len(required) {
		return InvalidModifierArgsError{Command: machine.command, Modifier: machine.cursor, AllArgs: append(machine.bound.Flatten(), token)}
	}
	arguments[required[len(arguments)]] = token
	if len(arguments) == len(required) {
		machine.state = stateIdle
	}
	return nil
}

// bestEffortModifier keeps the legacy fallback order: cursor, first accumulated modifier,
// modifier named by the first raw token after the command, help.
func (machine *scanner) bestEffortModifier() vocabulary.Modifier {
	if machine.state != stateIdle {
		return machine.cursor
	}
	if len(machine.bound) > 0 {
		return machine.bound[0].Modifier
	}
	if len(machine.rest) > 0 {
		if modifier, known := vocabulary.ModifierByName(machine.rest[0]); known {
			return modifier
		}
	}
	return vocabulary.ModifierHelp
}

// bestEffortModifierName keeps the legacy fallback order: cursor, first accumulated
// modifier, first raw token after the command, "?".
func (machine *scanner) bestEffortModifierName() string {
	if machine.state != stateIdle {
		return machine.cursor.LongName()
	}
	if len(machine.bound) > 0 {
		return machine.bound[0].Modifier.LongName()
	}
	if len(machine.rest) > 0 {
		return machine.rest[0]
	}
	return bestEffortModifierPlaceholder
}
