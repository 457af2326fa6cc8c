package cli

import (
	"io"
	"testing"

	"github.com/spf13/pflag"
)

func TestRegisterSwitchFlagParsesValues(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		arguments   []string
		expected    bool
		expectError bool
	}{
		{
			name:      "defaults_to_false",
			arguments: []string{},
			expected:  false,
		},
		{
			name:      "sets_true_without_value",
			arguments: []string{"--feature"},
			expected:  true,
		},
		{
			name:      "sets_true_with_empty_value",
			arguments: []string{"--feature="},
			expected:  true,
		},
		{
			name:      "sets_false_with_equals",
			arguments: []string{"--feature=false"},
			expected:  false,
		},
		{
			name:      "sets_true_with_on_literal",
			arguments: []string{"--feature=ON"},
			expected:  true,
		},
		{
			name:        "rejects_invalid_text",
			arguments:   []string{"--feature=maybe"},
			expectError: true,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			flagValue := true
			flagSet := pflag.NewFlagSet("switch-flag", pflag.ContinueOnError)
			flagSet.SetOutput(io.Discard)
			registerSwitchFlag(flagSet, &flagValue, "feature", "toggle feature behaviour")
			parseErr := flagSet.Parse(testCase.arguments)
			if testCase.expectError {
				if parseErr == nil {
					t.Fatalf("expected parse error for arguments %v", testCase.arguments)
				}
				return
			}
			if parseErr != nil {
				t.Fatalf("unexpected parse error: %v", parseErr)
			}
			if flagValue != testCase.expected {
				t.Fatalf("expected %t, got %t", testCase.expected, flagValue)
			}
		})
	}
}

func TestInterpretBooleanLiteral(t *testing.T) {
	t.Parallel()

	for _, literal := range []string{"true", "YES", " 1 ", "on", "t", "y"} {
		if value, ok := interpretBooleanLiteral(literal); !ok || !value {
			t.Fatalf("expected %q to be true", literal)
		}
	}
	for _, literal := range []string{"false", "No", "0", "off", "f", "n"} {
		if value, ok := interpretBooleanLiteral(literal); !ok || value {
			t.Fatalf("expected %q to be false", literal)
		}
	}
	if _, ok := interpretBooleanLiteral("reverse"); ok {
		t.Fatalf("expected reverse not to be a boolean literal")
	}
}
