// Package types defines every cross‑package data structure used by the tema CLI.
package types

const (
	FormatRaw  = "raw"
	FormatJSON = "json"
)

// Exit codes reported when distinct exit codes are enabled.
const (
	ExitCodeSuccess                 = 0
	ExitCodeFailure                 = 1
	ExitCodeUnknownCommand          = 2
	ExitCodeUnknownModifier         = 3
	ExitCodeInvalidModifierArgument = 4
	ExitCodeNoContent               = 5
	ExitCodeProcessingError         = 6
	ExitCodeParsingFailure          = 70
)

// ArgumentOutput is one bound modifier argument.
type ArgumentOutput struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ModifierOutput is one modifier applied to the content, with its arguments in declared order.
type ModifierOutput struct {
	Name      string           `json:"name"`
	Arguments []ArgumentOutput `json:"arguments,omitempty"`
}

// ResultOutput is the outcome of a processed operation.
type ResultOutput struct {
	Operation string           `json:"operation"`
	Modifiers []ModifierOutput `json:"modifiers,omitempty"`
	Content   string           `json:"content"`
	Result    string           `json:"result"`
}
