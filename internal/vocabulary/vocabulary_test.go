package vocabulary

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCommandByName(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		input         string
		expected      Command
		expectedFound bool
	}{
		{name: "help_long", input: "help", expected: CommandHelp, expectedFound: true},
		{name: "help_short", input: "h", expected: CommandHelp, expectedFound: true},
		{name: "reverse_long", input: "reverse", expected: CommandReverse, expectedFound: true},
		{name: "reverse_short", input: "r", expected: CommandReverse, expectedFound: true},
		{name: "flip_long", input: "flip", expected: CommandFlip, expectedFound: true},
		{name: "flip_short", input: "f", expected: CommandFlip, expectedFound: true},
		{name: "symbol_not_stripped", input: "-r", expectedFound: false},
		{name: "case_sensitive", input: "Reverse", expectedFound: false},
		{name: "unknown", input: "invalid_command", expectedFound: false},
		{name: "empty", input: "", expectedFound: false},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			command, found := CommandByName(testCase.input)
			if found != testCase.expectedFound {
				t.Fatalf("expected found %t, got %t", testCase.expectedFound, found)
			}
			if found && command != testCase.expected {
				t.Fatalf("expected command %s, got %s", testCase.expected, command)
			}
		})
	}
}

func TestModifierByNameStripsLeadingSymbols(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		input         string
		expected      Modifier
		expectedFound bool
	}{
		{name: "single_symbol_short", input: "-h", expected: ModifierHelp, expectedFound: true},
		{name: "double_symbol_long", input: "--help", expected: ModifierHelp, expectedFound: true},
		{name: "bare_name", input: "help", expected: ModifierHelp, expectedFound: true},
		{name: "padded_short", input: "-p", expected: ModifierPadded, expectedFound: true},
		{name: "padded_long", input: "--padded", expected: ModifierPadded, expectedFound: true},
		{name: "many_symbols", input: "----padded", expected: ModifierPadded, expectedFound: true},
		{name: "inner_symbol_kept", input: "--pad-ded", expectedFound: false},
		{name: "unknown", input: "--invalid_modifier", expectedFound: false},
		{name: "only_symbols", input: "--", expectedFound: false},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			modifier, found := ModifierByName(testCase.input)
			if found != testCase.expectedFound {
				t.Fatalf("expected found %t, got %t", testCase.expectedFound, found)
			}
			if found && modifier != testCase.expected {
				t.Fatalf("expected modifier %s, got %s", testCase.expected, modifier)
			}
		})
	}
}

func TestStripModifierSymbols(t *testing.T) {
	t.Parallel()

	if stripped := StripModifierSymbols("-help"); stripped != "help" {
		t.Fatalf("expected help, got %q", stripped)
	}
	if stripped := StripModifierSymbols("--help"); stripped != "help" {
		t.Fatalf("expected help, got %q", stripped)
	}
	if stripped := StripModifierSymbols("plain"); stripped != "plain" {
		t.Fatalf("expected plain, got %q", stripped)
	}
}

func TestArgumentByName(t *testing.T) {
	t.Parallel()

	argument, found := ArgumentByName("times")
	if !found || argument != ArgumentTimes {
		t.Fatalf("expected times argument, got %v %t", argument, found)
	}
	if _, found := ArgumentByName("--times"); found {
		t.Fatalf("expected symbol-prefixed argument name to be rejected")
	}
}

func TestModifiersForCommand(t *testing.T) {
	t.Parallel()

	for _, command := range Commands() {
		modifiers := ModifiersForCommand(command)
		if diff := cmp.Diff([]Modifier{ModifierHelp, ModifierPadded}, modifiers); diff != "" {
			t.Fatalf("modifiers for %s mismatch (-want +got):\n%s", command, diff)
		}
	}
}

func TestModifierArgumentsOrder(t *testing.T) {
	t.Parallel()

	if diff := cmp.Diff([]Argument{ArgumentTimes, ArgumentPad}, ModifierPadded.Arguments()); diff != "" {
		t.Fatalf("padded arguments mismatch (-want +got):\n%s", diff)
	}
	if count := ModifierHelp.ArgumentCount(); count != 0 {
		t.Fatalf("expected help modifier to take no arguments, got %d", count)
	}
}

func TestCatalogsAreCopies(t *testing.T) {
	t.Parallel()

	commands := Commands()
	commands[0] = CommandFlip
	if Commands()[0] != CommandHelp {
		t.Fatalf("expected catalog to be unaffected by caller mutation")
	}
}

func TestModifierValuesSetKeepsPosition(t *testing.T) {
	t.Parallel()

	var values ModifierValues
	values = values.Set(ModifierPadded, ArgumentValues{ArgumentTimes: "4", ArgumentPad: "*"})
	values = values.Set(ModifierHelp, ArgumentValues{})
	values = values.Set(ModifierPadded, ArgumentValues{})

	if diff := cmp.Diff([]Modifier{ModifierPadded, ModifierHelp}, values.Modifiers()); diff != "" {
		t.Fatalf("modifier order mismatch (-want +got):\n%s", diff)
	}
	arguments, present := values.Get(ModifierPadded)
	if !present || len(arguments) != 0 {
		t.Fatalf("expected padded arguments to be reset, got %v", arguments)
	}
}

func TestModifierValuesFlatten(t *testing.T) {
	t.Parallel()

	values := ModifierValues{
		{Modifier: ModifierPadded, Arguments: ArgumentValues{ArgumentPad: "*", ArgumentTimes: "4"}},
		{Modifier: ModifierHelp, Arguments: ArgumentValues{}},
	}
	if diff := cmp.Diff([]string{"4", "*"}, values.Flatten()); diff != "" {
		t.Fatalf("flatten mismatch (-want +got):\n%s", diff)
	}
}
