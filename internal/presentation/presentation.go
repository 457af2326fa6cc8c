// Package presentation renders help pages and error messages for tema.
package presentation

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/temirov/tema/internal/resolver"
	"github.com/temirov/tema/internal/vocabulary"
)

const (
	programName          = "tema"
	indentUnit           = "\t"
	operationPlaceholder = "<operation>"
	argumentPlaceholder  = "arg%d"

	helpIntroduction       = "This is the Text Manipulator (TEMA). The basic usage is as follows:"
	helpUsage              = programName + " <operation> [modifiers] <content>"
	helpOperationsHeading  = "Supported operations are:"
	helpOperationsFooter   = "For help about any operation, use the --help modifier after it."
	simpleEntryFormat      = "[%s] %s : %s"
	simpleModifierFormat   = "[%s] %s : %s (%d args)"
	commandUsageHeading    = "Operation '%s' can be used as follows:"
	commandUsageFormat     = programName + " %s [modifiers] <content>"
	alternativeSeparator   = "or"
	descriptionFormat      = "%s."
	modifiersHeading       = "Modifiers usable with this operation are:"
	modifiersFooter        = "For help about any modifier, use it without any arguments."
	modifierUsageHeading   = "Modifier '%s' can be used as follows:"
	modifierUsageFormat    = programName + " %s %s%s %s"
	argumentsHeading       = "Arguments usable with this operation are:"
	argumentEntryFormat    = "%s : %s"
	totalFailureMessage    = "Fatal error, forced to stop."
	noContentMessageFormat = "No content provided for operation '%s'.\n" +
		"Make sure that content is provided as the last parameter, " +
		"and use quotations (\") if your content includes spaces."
	invalidArgumentsFormat = "Invalid arguments for modifier '%s' on operation '%s'.\nArguments provided: [%s]."
	unknownModifierFormat  = "Unknown modifier '%s' for operation '%s'."
	unknownCommandFormat   = "Unknown command '%s'."
	suggestionFormat       = "Did you mean '%s'?"
	processingErrorFormat  = "Could not process the content: %v"
	argumentListSeparator  = ", "
	longModifierRepeat     = 2
)

// Printer writes tema's human-readable pages to a writer. Headings are styled when the
// writer is a colour-capable terminal and plain otherwise.
type Printer struct {
	writer       io.Writer
	headingStyle lipgloss.Style
	errorStyle   lipgloss.Style
}

// NewPrinter constructs a Printer for writer.
func NewPrinter(writer io.Writer) *Printer {
	renderer := lipgloss.NewRenderer(writer)
	return &Printer{
		writer:       writer,
		headingStyle: renderer.NewStyle().Bold(true),
		errorStyle:   renderer.NewStyle().Foreground(lipgloss.Color("#EF4444")),
	}
}

// PrintResolution prints the page appropriate for a resolution that is not processed.
// It reports false for a resolution that should be handed to a processor instead.
func (printer *Printer) PrintResolution(resolution resolver.Resolution) bool {
	switch typed := resolution.(type) {
	case resolver.ParsingFailure:
		printer.PrintParsingFailure()
		printer.PrintHelp()
	case resolver.NoContentError:
		printer.PrintNoContentError(typed)
		printer.PrintHelp()
	case resolver.InvalidModifierArgsError:
		printer.PrintInvalidArgumentsError(typed)
		printer.PrintModifierHelp(typed.Modifier, &typed.Command, 0)
	case resolver.UnknownModifierError:
		printer.PrintUnknownModifierError(typed)
		printer.PrintCommandHelp(typed.Command, 0)
	case resolver.UnknownCommandError:
		printer.PrintUnknownCommandError(typed)
		printer.PrintHelp()
	case resolver.Resolved:
		switch {
		case typed.Command == vocabulary.CommandHelp:
			printer.PrintHelp()
		case typed.ModifierValues.Has(vocabulary.ModifierHelp):
			printer.PrintCommandHelp(typed.Command, 0)
		default:
			return false
		}
	default:
		printer.PrintParsingFailure()
		printer.PrintHelp()
	}
	return true
}

// PrintHelp prints the general usage page.
func (printer *Printer) PrintHelp() {
	printer.heading(0, helpIntroduction+"\n")
	printer.line(1, helpUsage+"\n")
	printer.heading(0, helpOperationsHeading+"\n")
	for _, command := range vocabulary.Commands() {
		printer.printCommandSummary(command, 1)
	}
	printer.blank()
	printer.line(0, helpOperationsFooter)
}

// PrintCommandHelp prints the detailed page of command.
func (printer *Printer) PrintCommandHelp(command vocabulary.Command, indent int) {
	printer.heading(indent, fmt.Sprintf(commandUsageHeading, command.LongName())+"\n")
	printer.line(indent+1, fmt.Sprintf(commandUsageFormat, command.LongName()))
	printer.line(indent, alternativeSeparator)
	printer.line(indent+1, fmt.Sprintf(commandUsageFormat, command.ShortName())+"\n")
	printer.line(indent, fmt.Sprintf(descriptionFormat, command.Description())+"\n")

	modifiers := vocabulary.ModifiersForCommand(command)
	if len(modifiers) == 0 {
		return
	}
	printer.heading(indent, modifiersHeading+"\n")
	for _, modifier := range modifiers {
		printer.printModifierSummary(modifier, indent+1)
	}
	printer.blank()
	printer.line(indent, modifiersFooter)
}

// PrintModifierHelp prints the detailed page of modifier. parentCommand may be nil.
func (printer *Printer) PrintModifierHelp(modifier vocabulary.Modifier, parentCommand *vocabulary.Command, indent int) {
	operation := operationPlaceholder
	if parentCommand != nil {
		operation = parentCommand.LongName()
	}
	placeholders := make([]string, 0, modifier.ArgumentCount())
	for index := 1; index <= modifier.ArgumentCount(); index++ {
		placeholders = append(placeholders, fmt.Sprintf(argumentPlaceholder, index))
	}
	argumentsText := strings.Join(placeholders, " ")

	printer.heading(indent, fmt.Sprintf(modifierUsageHeading, modifier.LongName())+"\n")
	longUsage := fmt.Sprintf(modifierUsageFormat, operation, strings.Repeat(vocabulary.ModifierSymbol, longModifierRepeat), modifier.LongName(), argumentsText)
	shortUsage := fmt.Sprintf(modifierUsageFormat, operation, vocabulary.ModifierSymbol, modifier.ShortName(), argumentsText)
	printer.line(indent+1, strings.TrimRight(longUsage, " "))
	printer.line(indent, alternativeSeparator)
	printer.line(indent+1, strings.TrimRight(shortUsage, " ")+"\n")
	printer.line(indent, fmt.Sprintf(descriptionFormat, modifier.Description())+"\n")

	arguments := modifier.Arguments()
	if len(arguments) == 0 {
		return
	}
	printer.heading(indent, argumentsHeading+"\n")
	for _, argument := range arguments {
		printer.line(indent+1, fmt.Sprintf(argumentEntryFormat, argument.LongName(), argument.Description()))
	}
}

// PrintParsingFailure reports a resolver defect.
func (printer *Printer) PrintParsingFailure() {
	printer.failure("\n" + totalFailureMessage)
}

// PrintNoContentError reports a command given without content.
func (printer *Printer) PrintNoContentError(resolution resolver.NoContentError) {
	printer.failure("\n" + fmt.Sprintf(noContentMessageFormat, resolution.Command.LongName()))
}

// PrintInvalidArgumentsError reports a modifier with the wrong arguments.
func (printer *Printer) PrintInvalidArgumentsError(resolution resolver.InvalidModifierArgsError) {
	printer.failure("\n" + fmt.Sprintf(invalidArgumentsFormat, resolution.Modifier.LongName(), resolution.Command.LongName(), strings.Join(resolution.AllArgs, argumentListSeparator)))
}

// PrintUnknownModifierError reports an unrecognised modifier, suggesting a close match.
func (printer *Printer) PrintUnknownModifierError(resolution resolver.UnknownModifierError) {
	message := "\n" + fmt.Sprintf(unknownModifierFormat, resolution.Modifier, resolution.Command.LongName())
	if suggestion, found := SuggestModifier(resolution.Modifier, resolution.Command); found {
		message += "\n" + fmt.Sprintf(suggestionFormat, strings.Repeat(vocabulary.ModifierSymbol, longModifierRepeat)+suggestion.LongName())
	}
	printer.failure(message)
}

// PrintUnknownCommandError reports an unrecognised command, suggesting a close match.
func (printer *Printer) PrintUnknownCommandError(resolution resolver.UnknownCommandError) {
	message := "\n" + fmt.Sprintf(unknownCommandFormat, resolution.Command)
	if suggestion, found := SuggestCommand(resolution.Command); found {
		message += "\n" + fmt.Sprintf(suggestionFormat, suggestion.LongName())
	}
	printer.failure(message)
}

// PrintProcessingError reports a processor failure as the result of the run.
func (printer *Printer) PrintProcessingError(processingError error) {
	printer.failure("\n" + fmt.Sprintf(processingErrorFormat, processingError))
}

func (printer *Printer) printCommandSummary(command vocabulary.Command, indent int) {
	printer.line(indent, fmt.Sprintf(simpleEntryFormat, command.ShortName(), command.LongName(), command.Description()))
}

func (printer *Printer) printModifierSummary(modifier vocabulary.Modifier, indent int) {
	printer.line(indent, fmt.Sprintf(simpleModifierFormat, modifier.ShortName(), modifier.LongName(), modifier.Description(), modifier.ArgumentCount()))
}

func (printer *Printer) failure(message string) {
	fmt.Fprintln(printer.writer, styleLines(printer.errorStyle, message))
	printer.blank()
}

func (printer *Printer) heading(indent int, text string) {
	printer.line(indent, styleLines(printer.headingStyle, text))
}

func (printer *Printer) line(indent int, text string) {
	fmt.Fprintln(printer.writer, strings.Repeat(indentUnit, indent)+text)
}

func (printer *Printer) blank() {
	fmt.Fprintln(printer.writer)
}

// styleLines renders each non-empty line on its own so lipgloss never pads lines to a common width.
func styleLines(style lipgloss.Style, text string) string {
	lines := strings.Split(text, "\n")
	for index, line := range lines {
		if line != "" {
			lines[index] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
