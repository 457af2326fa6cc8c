// Package vocabulary defines the closed catalogs of commands, arguments and modifiers understood by tema.
package vocabulary

import "strings"

// ModifierSymbol prefixes a token that names a modifier. One or more occurrences are accepted.
const ModifierSymbol = "-"

// Command selects the top-level operation.
type Command int

const (
	CommandHelp Command = iota
	CommandReverse
	CommandFlip
)

// Argument is a named scalar parameter required by some modifiers.
type Argument int

const (
	ArgumentTimes Argument = iota
	ArgumentPad
)

// Modifier alters the behaviour of a command and may require positional arguments.
type Modifier int

const (
	ModifierHelp Modifier = iota
	ModifierPadded
)

type commandDefinition struct {
	longName    string
	shortName   string
	description string
}

type argumentDefinition struct {
	longName    string
	description string
}

type modifierDefinition struct {
	longName          string
	shortName         string
	description       string
	supportedCommands []Command
	arguments         []Argument
}

var allCommands = []Command{CommandHelp, CommandReverse, CommandFlip}

var allArguments = []Argument{ArgumentTimes, ArgumentPad}

var allModifiers = []Modifier{ModifierHelp, ModifierPadded}

var commandDefinitions = map[Command]commandDefinition{
	CommandHelp: {
		longName:    "help",
		shortName:   "h",
		description: "Prints this help page",
	},
	CommandReverse: {
		longName:    "reverse",
		shortName:   "r",
		description: "Reverses the given content",
	},
	CommandFlip: {
		longName:    "flip",
		shortName:   "f",
		description: "Flips the given content upside-down",
	},
}

var argumentDefinitions = map[Argument]argumentDefinition{
	ArgumentTimes: {
		longName:    "times",
		description: "How many times to pad the output",
	},
	ArgumentPad: {
		longName:    "pad",
		description: "Text to use for padding (space must be quoted)",
	},
}

var modifierDefinitions = map[Modifier]modifierDefinition{
	ModifierHelp: {
		longName:          "help",
		shortName:         "h",
		description:       "Shows the help page for the given command",
		supportedCommands: allCommands,
		arguments:         nil,
	},
	ModifierPadded: {
		longName:          "padded",
		shortName:         "p",
		description:       "Pads the output from left and right using the given character",
		supportedCommands: allCommands,
		arguments:         []Argument{ArgumentTimes, ArgumentPad},
	},
}

// Commands returns every command in catalog order.
func Commands() []Command {
	return append([]Command(nil), allCommands...)
}

// Arguments returns every argument in catalog order.
func Arguments() []Argument {
	return append([]Argument(nil), allArguments...)
}

// Modifiers returns every modifier in catalog order.
func Modifiers() []Modifier {
	return append([]Modifier(nil), allModifiers...)
}

// CommandByName finds the command whose long or short name equals text.
func CommandByName(text string) (Command, bool) {
	for _, command := range allCommands {
		if command.matches(text) {
			return command, true
		}
	}
	return 0, false
}

// ArgumentByName finds the argument whose long name equals text.
func ArgumentByName(text string) (Argument, bool) {
	for _, argument := range allArguments {
		if argument.LongName() == text {
			return argument, true
		}
	}
	return 0, false
}

// ModifierByName strips leading modifier symbols from text and finds the modifier
// whose long or short name equals the remainder.
func ModifierByName(text string) (Modifier, bool) {
	for _, modifier := range allModifiers {
		if modifier.matches(text) {
			return modifier, true
		}
	}
	return 0, false
}

// ModifiersForCommand returns the modifiers usable with command, in catalog order.
func ModifiersForCommand(command Command) []Modifier {
	var modifiers []Modifier
	for _, modifier := range allModifiers {
		if modifier.SupportsCommand(command) {
			modifiers = append(modifiers, modifier)
		}
	}
	return modifiers
}

// HasModifierSymbol reports whether text starts with the modifier symbol.
func HasModifierSymbol(text string) bool {
	return strings.HasPrefix(text, ModifierSymbol)
}

// StripModifierSymbols removes every leading modifier symbol from text.
func StripModifierSymbols(text string) string {
	return strings.TrimLeft(text, ModifierSymbol)
}

// MatchesCommand reports whether text names command exactly.
func MatchesCommand(text string, command Command) bool {
	return command.matches(text)
}

// MatchesModifier reports whether text names modifier once leading symbols are stripped.
func MatchesModifier(text string, modifier Modifier) bool {
	return modifier.matches(text)
}

// LongName returns the full command name, e.g. "reverse".
func (command Command) LongName() string {
	return commandDefinitions[command].longName
}

// ShortName returns the abbreviated command name, e.g. "r".
func (command Command) ShortName() string {
	return commandDefinitions[command].shortName
}

// Description returns the one-line help text.
func (command Command) Description() string {
	return commandDefinitions[command].description
}

func (command Command) String() string {
	if definition, known := commandDefinitions[command]; known {
		return definition.longName
	}
	return "command(?)"
}

func (command Command) matches(text string) bool {
	definition, known := commandDefinitions[command]
	return known && (definition.shortName == text || definition.longName == text)
}

// LongName returns the argument name used in help pages.
func (argument Argument) LongName() string {
	return argumentDefinitions[argument].longName
}

// Description returns the one-line help text.
func (argument Argument) Description() string {
	return argumentDefinitions[argument].description
}

func (argument Argument) String() string {
	if definition, known := argumentDefinitions[argument]; known {
		return definition.longName
	}
	return "argument(?)"
}

// LongName returns the full modifier name without symbols, e.g. "padded".
func (modifier Modifier) LongName() string {
	return modifierDefinitions[modifier].longName
}

// ShortName returns the abbreviated modifier name without symbols, e.g. "p".
func (modifier Modifier) ShortName() string {
	return modifierDefinitions[modifier].shortName
}

// Description returns the one-line help text.
func (modifier Modifier) Description() string {
	return modifierDefinitions[modifier].description
}

// Arguments returns the ordered arguments the modifier requires. Order defines positional binding.
func (modifier Modifier) Arguments() []Argument {
	return append([]Argument(nil), modifierDefinitions[modifier].arguments...)
}

// ArgumentCount returns how many values the modifier consumes.
func (modifier Modifier) ArgumentCount() int {
	return len(modifierDefinitions[modifier].arguments)
}

// SupportsCommand reports whether the modifier may be used with command.
func (modifier Modifier) SupportsCommand(command Command) bool {
	for _, supported := range modifierDefinitions[modifier].supportedCommands {
		if supported == command {
			return true
		}
	}
	return false
}

func (modifier Modifier) String() string {
	if definition, known := modifierDefinitions[modifier]; known {
		return definition.longName
	}
	return "modifier(?)"
}

func (modifier Modifier) matches(text string) bool {
	definition, known := modifierDefinitions[modifier]
	if !known {
		return false
	}
	clearText := StripModifierSymbols(text)
	return definition.shortName == clearText || definition.longName == clearText
}
