// Package output renders the result of a processed operation.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/temirov/tema/internal/resolver"
	"github.com/temirov/tema/internal/types"
)

const (
	indentPrefix = ""
	indentSpacer = "  "

	unsupportedFormatErrorFormat = "unsupported format %q (expected %s or %s)"
	writeResultErrorFormat       = "write %s result: %w"
)

// ValidateFormat reports an error for anything but a known result format.
func ValidateFormat(format string) error {
	switch format {
	case types.FormatRaw, types.FormatJSON:
		return nil
	default:
		return fmt.Errorf(unsupportedFormatErrorFormat, format, types.FormatRaw, types.FormatJSON)
	}
}

// NewResultOutput describes the processed resolution and its result.
func NewResultOutput(resolved resolver.Resolved, result string) *types.ResultOutput {
	modifiers := make([]types.ModifierOutput, 0, len(resolved.ModifierValues))
	for _, modifierValue := range resolved.ModifierValues {
		modifierOutput := types.ModifierOutput{Name: modifierValue.Modifier.LongName()}
		for _, argument := range modifierValue.Modifier.Arguments() {
			value, bound := modifierValue.Arguments[argument]
			if !bound {
				continue
			}
			modifierOutput.Arguments = append(modifierOutput.Arguments, types.ArgumentOutput{Name: argument.LongName(), Value: value})
		}
		modifiers = append(modifiers, modifierOutput)
	}
	return &types.ResultOutput{
		Operation: resolved.Command.LongName(),
		Modifiers: modifiers,
		Content:   resolved.Content,
		Result:    result,
	}
}

// RenderRaw returns the bare result text.
func RenderRaw(data *types.ResultOutput) string {
	return data.Result
}

// RenderJSON marshals the result description as an indented JSON object.
func RenderJSON(data *types.ResultOutput) (string, error) {
	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent(indentPrefix, indentSpacer)
	if encodeError := encoder.Encode(data); encodeError != nil {
		return "", encodeError
	}
	return buffer.String(), nil
}

// Write renders data in format and writes it to writer followed by a newline.
func Write(writer io.Writer, format string, data *types.ResultOutput) error {
	var rendered string
	switch format {
	case types.FormatRaw:
		rendered = RenderRaw(data) + "\n"
	case types.FormatJSON:
		encoded, renderError := RenderJSON(data)
		if renderError != nil {
			return fmt.Errorf(writeResultErrorFormat, format, renderError)
		}
		rendered = encoded
	default:
		return ValidateFormat(format)
	}
	if _, writeError := io.WriteString(writer, rendered); writeError != nil {
		return fmt.Errorf(writeResultErrorFormat, format, writeError)
	}
	return nil
}
