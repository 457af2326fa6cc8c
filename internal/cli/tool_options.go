package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/temirov/tema/internal/config"
	"github.com/temirov/tema/internal/vocabulary"
)

const (
	versionFlagName    = "version"
	copyFlagName       = "copy"
	formatFlagName     = "format"
	configFlagName     = "config"
	exitCodesFlagName  = "exit-codes"
	initConfigFlagName = "init-config"
	forceFlagName      = "force"

	versionFlagDescription    = "display application version"
	copyFlagDescription       = "copy the result to the clipboard"
	formatFlagDescription     = "result format (raw or json)"
	configFlagDescription     = "configuration file to use instead of ./.tema.yaml"
	exitCodesFlagDescription  = "exit with a distinct status for each kind of error"
	initConfigFlagDescription = "write a default configuration file (local or global)"
	forceFlagDescription      = "overwrite an existing configuration file"

	toolFlagSetName         = "tema"
	longFlagPrefix          = "--"
	flagValueSeparator      = "="
	toolArgumentsTerminator = "--"

	parseToolOptionsErrorFormat = "parse tool options: %w"
)

// toolFlagKind describes how a tool option consumes the token following it.
type toolFlagKind int

const (
	// toolFlagSwitch takes an optional boolean literal.
	toolFlagSwitch toolFlagKind = iota
	// toolFlagRequiredValue always takes the next token.
	toolFlagRequiredValue
	// toolFlagOptionalTarget takes the next token only when it names an init target.
	toolFlagOptionalTarget
)

var toolFlagKinds = map[string]toolFlagKind{
	versionFlagName:    toolFlagSwitch,
	copyFlagName:       toolFlagSwitch,
	exitCodesFlagName:  toolFlagSwitch,
	forceFlagName:      toolFlagSwitch,
	formatFlagName:     toolFlagRequiredValue,
	configFlagName:     toolFlagRequiredValue,
	initConfigFlagName: toolFlagOptionalTarget,
}

// toolOptions holds the options that configure tema itself rather than the text operation.
type toolOptions struct {
	showVersion      bool
	copyResult       bool
	format           string
	configPath       string
	exitCodes        bool
	initTarget       string
	forceInit        bool
	changedCopy      bool
	changedFormat    bool
	changedExitCodes bool
	requestedInit    bool
}

func newToolFlagSet(options *toolOptions) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(toolFlagSetName, pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	registerSwitchFlag(flagSet, &options.showVersion, versionFlagName, versionFlagDescription)
	registerSwitchFlag(flagSet, &options.copyResult, copyFlagName, copyFlagDescription)
	registerSwitchFlag(flagSet, &options.exitCodes, exitCodesFlagName, exitCodesFlagDescription)
	registerSwitchFlag(flagSet, &options.forceInit, forceFlagName, forceFlagDescription)
	flagSet.StringVar(&options.format, formatFlagName, "", formatFlagDescription)
	flagSet.StringVar(&options.configPath, configFlagName, "", configFlagDescription)
	flagSet.StringVar(&options.initTarget, initConfigFlagName, "", initConfigFlagDescription)
	if lookup := flagSet.Lookup(initConfigFlagName); lookup != nil {
		lookup.NoOptDefVal = string(config.InitTargetLocal)
	}
	return flagSet
}

// parseToolOptions separates leading tool options from the operation tokens and parses them.
func parseToolOptions(arguments []string) (toolOptions, []string, error) {
	var options toolOptions
	toolArguments, operationArguments := splitToolArguments(arguments)
	flagSet := newToolFlagSet(&options)
	if parseError := flagSet.Parse(toolArguments); parseError != nil {
		return toolOptions{}, nil, fmt.Errorf(parseToolOptionsErrorFormat, parseError)
	}
	options.changedCopy = flagSet.Changed(copyFlagName)
	options.changedFormat = flagSet.Changed(formatFlagName)
	options.changedExitCodes = flagSet.Changed(exitCodesFlagName)
	options.requestedInit = flagSet.Changed(initConfigFlagName)
	return options, operationArguments, nil
}

// applyTo overlays the options given on the command line onto configuration.
func (options toolOptions) applyTo(configuration config.ApplicationConfiguration) config.ApplicationConfiguration {
	var override config.ApplicationConfiguration
	if options.changedFormat {
		override.Format = options.format
	}
	if options.changedCopy {
		copyResult := options.copyResult
		override.Copy = &copyResult
	}
	if options.changedExitCodes {
		exitCodes := options.exitCodes
		override.ExitCodes = &exitCodes
	}
	return configuration.Merge(override)
}

// splitToolArguments returns the leading tool options, each normalised to a single
// "--name" or "--name=value" token, and the remaining operation tokens. Scanning stops at
// the first token that is not a known tool option; a "--" terminator is dropped.
func splitToolArguments(arguments []string) ([]string, []string) {
	var toolArguments []string
	index := 0
	for index < len(arguments) {
		current := arguments[index]
		if current == toolArgumentsTerminator {
			return toolArguments, arguments[index+1:]
		}
		name, hasInlineValue, isLongFlag := splitLongFlag(current)
		kind, known := toolFlagKinds[name]
		if !isLongFlag || !known {
			break
		}
		if hasInlineValue || index+1 >= len(arguments) {
			toolArguments = append(toolArguments, current)
			index++
			continue
		}

		next := arguments[index+1]
		consumeNext := false
		switch kind {
		case toolFlagRequiredValue:
			consumeNext = true
		case toolFlagSwitch:
			_, isLiteral := interpretBooleanLiteral(next)
			_, namesCommand := vocabulary.CommandByName(next)
			consumeNext = isLiteral && !namesCommand
		case toolFlagOptionalTarget:
			_, targetError := config.ParseInitTarget(next)
			consumeNext = strings.TrimSpace(next) != "" && targetError == nil
		}
		if consumeNext {
			toolArguments = append(toolArguments, current+flagValueSeparator+next)
			index += 2
			continue
		}
		toolArguments = append(toolArguments, current)
		index++
	}
	return toolArguments, arguments[index:]
}

// splitLongFlag extracts the name of a "--name" or "--name=value" token.
func splitLongFlag(token string) (name string, hasInlineValue bool, isLongFlag bool) {
	if !strings.HasPrefix(token, longFlagPrefix) || len(token) <= len(longFlagPrefix) {
		return "", false, false
	}
	body := strings.TrimPrefix(token, longFlagPrefix)
	name, _, hasInlineValue = strings.Cut(body, flagValueSeparator)
	return name, hasInlineValue, true
}
