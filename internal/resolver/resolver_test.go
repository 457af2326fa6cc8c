package resolver

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/mattn/go-shellwords"

	"github.com/temirov/tema/internal/vocabulary"
)

const programName = "tema"

// splitCommandLine turns "tema r -p 4 * abc" into the tokens the program would receive.
func splitCommandLine(t *testing.T, commandLine string) []string {
	t.Helper()
	words, parseErr := shellwords.Parse(commandLine)
	if parseErr != nil {
		t.Fatalf("split %q: %v", commandLine, parseErr)
	}
	if len(words) > 0 && words[0] == programName {
		words = words[1:]
	}
	return words
}

func paddedValues(times, pad string) vocabulary.ModifierValues {
	return vocabulary.ModifierValues{{
		Modifier:  vocabulary.ModifierPadded,
		Arguments: vocabulary.ArgumentValues{vocabulary.ArgumentTimes: times, vocabulary.ArgumentPad: pad},
	}}
}

func helpValues() vocabulary.ModifierValues {
	return vocabulary.ModifierValues{{Modifier: vocabulary.ModifierHelp, Arguments: vocabulary.ArgumentValues{}}}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		commandLine string
		expected    Resolution
	}{
		{name: "no_arguments", commandLine: "tema", expected: Resolved{Command: vocabulary.CommandHelp}},
		{name: "help_command_short", commandLine: "tema h", expected: Resolved{Command: vocabulary.CommandHelp}},
		{name: "help_command_long", commandLine: "tema help", expected: Resolved{Command: vocabulary.CommandHelp}},
		{name: "help_modifier_short", commandLine: "tema -h", expected: Resolved{Command: vocabulary.CommandHelp}},
		{name: "help_modifier_long", commandLine: "tema --help", expected: Resolved{Command: vocabulary.CommandHelp}},
		{name: "help_ignores_trailing_tokens", commandLine: "tema --help reverse abc", expected: Resolved{Command: vocabulary.CommandHelp}},
		{name: "reverse_short", commandLine: "tema r abc", expected: Resolved{Command: vocabulary.CommandReverse, Content: "abc"}},
		{name: "reverse_long", commandLine: "tema reverse abc", expected: Resolved{Command: vocabulary.CommandReverse, Content: "abc"}},
		{name: "flip_short", commandLine: "tema f abc", expected: Resolved{Command: vocabulary.CommandFlip, Content: "abc"}},
		{name: "quoted_content", commandLine: `tema reverse "hello world"`, expected: Resolved{Command: vocabulary.CommandReverse, Content: "hello world"}},
		{
			name:        "reverse_short_help_short",
			commandLine: "tema r -h",
			expected:    Resolved{Command: vocabulary.CommandReverse, ModifierValues: helpValues()},
		},
		{
			name:        "reverse_short_help_long",
			commandLine: "tema r --help",
			expected:    Resolved{Command: vocabulary.CommandReverse, ModifierValues: helpValues()},
		},
		{
			name:        "reverse_long_help_short",
			commandLine: "tema reverse -h",
			expected:    Resolved{Command: vocabulary.CommandReverse, ModifierValues: helpValues()},
		},
		{
			name:        "reverse_long_help_long",
			commandLine: "tema reverse --help",
			expected:    Resolved{Command: vocabulary.CommandReverse, ModifierValues: helpValues()},
		},
		{
			name:        "help_modifier_keeps_trailing_content",
			commandLine: "tema reverse --help extra",
			expected:    Resolved{Command: vocabulary.CommandReverse, ModifierValues: helpValues(), Content: "extra"},
		},
		{
			name:        "help_modifier_uses_last_token_as_content",
			commandLine: "tema reverse --help one two",
			expected:    Resolved{Command: vocabulary.CommandReverse, ModifierValues: helpValues(), Content: "two"},
		},
		{
			name:        "bare_help_name_after_command",
			commandLine: "tema reverse help",
			expected:    Resolved{Command: vocabulary.CommandReverse, ModifierValues: helpValues()},
		},
		{
			name:        "padded_short",
			commandLine: "tema r -p 4 * abc",
			expected:    Resolved{Command: vocabulary.CommandReverse, ModifierValues: paddedValues("4", "*"), Content: "abc"},
		},
		{
			name:        "padded_long",
			commandLine: "tema reverse --padded 4 * abc",
			expected:    Resolved{Command: vocabulary.CommandReverse, ModifierValues: paddedValues("4", "*"), Content: "abc"},
		},
		{
			name:        "padded_then_help",
			commandLine: "tema reverse --padded 4 * --help abc",
			expected: Resolved{
				Command: vocabulary.CommandReverse,
				ModifierValues: vocabulary.ModifierValues{
					{Modifier: vocabulary.ModifierPadded, Arguments: vocabulary.ArgumentValues{vocabulary.ArgumentTimes: "4", vocabulary.ArgumentPad: "*"}},
					{Modifier: vocabulary.ModifierHelp, Arguments: vocabulary.ArgumentValues{}},
				},
				Content: "abc",
			},
		},
		{
			name:        "repeated_modifier_rebinds_in_place",
			commandLine: "tema flip -p 1 * -h -p 2 = abc",
			expected: Resolved{
				Command: vocabulary.CommandFlip,
				ModifierValues: vocabulary.ModifierValues{
					{Modifier: vocabulary.ModifierPadded, Arguments: vocabulary.ArgumentValues{vocabulary.ArgumentTimes: "2", vocabulary.ArgumentPad: "="}},
					{Modifier: vocabulary.ModifierHelp, Arguments: vocabulary.ArgumentValues{}},
				},
				Content: "abc",
			},
		},
		{
			name:        "trailing_symbol_token_is_content",
			commandLine: "tema reverse -p 4 * -h",
			expected:    Resolved{Command: vocabulary.CommandReverse, ModifierValues: paddedValues("4", "*"), Content: "-h"},
		},
		{name: "invalid_command", commandLine: "tema invalid_command abc", expected: UnknownCommandError{Command: "invalid_command"}},
		{name: "symbol_prefixed_command", commandLine: "tema -r abc", expected: UnknownCommandError{Command: "-r"}},
		{
			name:        "invalid_modifier",
			commandLine: "tema reverse --invalid_modifier arg abc",
			expected:    UnknownModifierError{Command: vocabulary.CommandReverse, Modifier: "--invalid_modifier"},
		},
		{name: "no_content_short", commandLine: "tema r", expected: NoContentError{Command: vocabulary.CommandReverse}},
		{name: "no_content_long", commandLine: "tema reverse", expected: NoContentError{Command: vocabulary.CommandReverse}},
		{name: "no_content_flip", commandLine: "tema f", expected: NoContentError{Command: vocabulary.CommandFlip}},
		{
			name:        "too_few_modifier_arguments",
			commandLine: "tema reverse --padded 4 *",
			expected:    InvalidModifierArgsError{Command: vocabulary.CommandReverse, Modifier: vocabulary.ModifierPadded, AllArgs: []string{"4"}},
		},
		{
			name:        "too_many_modifier_arguments",
			commandLine: "tema reverse --padded 4 * x abc",
			expected:    InvalidModifierArgsError{Command: vocabulary.CommandReverse, Modifier: vocabulary.ModifierPadded, AllArgs: []string{"4", "*", "x"}},
		},
		{
			name:        "argument_for_argumentless_modifier",
			commandLine: "tema reverse --padded 4 * --help x abc",
			expected:    InvalidModifierArgsError{Command: vocabulary.CommandReverse, Modifier: vocabulary.ModifierHelp, AllArgs: []string{"4", "*", "x"}},
		},
		{
			name:        "modifier_interrupts_unfinished_modifier",
			commandLine: "tema reverse -p 4 -h abc",
			expected:    InvalidModifierArgsError{Command: vocabulary.CommandReverse, Modifier: vocabulary.ModifierPadded, AllArgs: []string{"4"}},
		},
		{
			name:        "value_without_any_modifier",
			commandLine: "tema reverse abc def",
			expected:    InvalidModifierArgsError{Command: vocabulary.CommandReverse, Modifier: vocabulary.ModifierHelp, AllArgs: []string{"abc"}},
		},
		{
			name:        "modifier_name_without_symbol",
			commandLine: "tema r padded x abc",
			expected:    InvalidModifierArgsError{Command: vocabulary.CommandReverse, Modifier: vocabulary.ModifierPadded, AllArgs: []string{"padded"}},
		},
		{
			name:        "modifier_without_arguments_at_end",
			commandLine: "tema reverse --padded abc",
			expected:    InvalidModifierArgsError{Command: vocabulary.CommandReverse, Modifier: vocabulary.ModifierPadded},
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			actual := Resolve(splitCommandLine(t, testCase.commandLine))
			if diff := cmp.Diff(testCase.expected, actual, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("resolution mismatch for %q (-want +got):\n%s", testCase.commandLine, diff)
			}
		})
	}
}

func TestResolveBlankFirstTokenRequestsHelp(t *testing.T) {
	t.Parallel()

	for _, tokens := range [][]string{nil, {}, {""}, {"   "}, {"", "abc"}} {
		actual := Resolve(tokens)
		if diff := cmp.Diff(Resolution(Resolved{Command: vocabulary.CommandHelp}), actual, cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("resolution mismatch for %q (-want +got):\n%s", tokens, diff)
		}
	}
}

func TestResolveCommandWithoutContentForEveryCommand(t *testing.T) {
	t.Parallel()

	for _, command := range vocabulary.Commands() {
		if command == vocabulary.CommandHelp {
			continue
		}
		for _, name := range []string{command.ShortName(), command.LongName()} {
			actual := Resolve([]string{name})
			expected := Resolution(NoContentError{Command: command})
			if diff := cmp.Diff(expected, actual, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("resolution mismatch for %q (-want +got):\n%s", name, diff)
			}
		}
	}
}

func TestResolveIsDeterministicAndLeavesInputUntouched(t *testing.T) {
	t.Parallel()

	tokens := []string{"reverse", "--padded", "4", "*", "abc"}
	snapshot := append([]string(nil), tokens...)
	first := Resolve(tokens)
	second := Resolve(tokens)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated resolution differs (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(snapshot, tokens); diff != "" {
		t.Fatalf("input tokens mutated (-want +got):\n%s", diff)
	}
}

func TestResolvedRequestsHelp(t *testing.T) {
	t.Parallel()

	if !(Resolved{Command: vocabulary.CommandHelp}).RequestsHelp() {
		t.Fatalf("expected help command to request help")
	}
	if !(Resolved{Command: vocabulary.CommandFlip, ModifierValues: helpValues()}).RequestsHelp() {
		t.Fatalf("expected help modifier to request help")
	}
	if (Resolved{Command: vocabulary.CommandFlip, ModifierValues: paddedValues("1", "-")}).RequestsHelp() {
		t.Fatalf("expected padded flip not to request help")
	}
}

func TestResolutionErrorMessages(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "no_content", err: NoContentError{Command: vocabulary.CommandFlip}, expected: "no content provided for operation 'flip'"},
		{
			name:     "invalid_arguments",
			err:      InvalidModifierArgsError{Command: vocabulary.CommandReverse, Modifier: vocabulary.ModifierPadded, AllArgs: []string{"4", "*", "x"}},
			expected: "invalid arguments for modifier 'padded' on operation 'reverse': [4, *, x]",
		},
		{name: "unknown_modifier", err: UnknownModifierError{Command: vocabulary.CommandReverse, Modifier: "--nope"}, expected: "unknown modifier '--nope' for operation 'reverse'"},
		{name: "unknown_command", err: UnknownCommandError{Command: "nope"}, expected: "unknown command 'nope'"},
		{name: "parsing_failure", err: ParsingFailure{}, expected: "argument resolution failed"},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			if message := testCase.err.Error(); message != testCase.expected {
				t.Fatalf("expected %q, got %q", testCase.expected, message)
			}
		})
	}
}

func TestSplitCommandLineKeepsLiteralGlob(t *testing.T) {
	t.Parallel()

	tokens := splitCommandLine(t, "tema r -p 4 * abc")
	if strings.Join(tokens, " ") != "r -p 4 * abc" {
		t.Fatalf("unexpected tokens %q", tokens)
	}
}
