package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

const (
	switchFlagTypeName          = "bool"
	switchFlagImplicitValue     = "true"
	switchFlagAcceptedLiterals  = "true, false, yes, no, on, off, 1, 0"
	switchFlagInvalidValueLabel = "invalid boolean value"
)

var switchFlagLiterals = map[string]bool{
	"true":  true,
	"t":     true,
	"1":     true,
	"yes":   true,
	"y":     true,
	"on":    true,
	"false": false,
	"f":     false,
	"0":     false,
	"no":    false,
	"n":     false,
	"off":   false,
}

// interpretBooleanLiteral reports the value of a recognised boolean literal.
func interpretBooleanLiteral(input string) (bool, bool) {
	parsed, ok := switchFlagLiterals[strings.ToLower(strings.TrimSpace(input))]
	return parsed, ok
}

// switchFlagValue is a boolean pflag.Value that accepts the literals above and treats a bare
// flag or an empty value as true.
type switchFlagValue struct {
	target   *bool
	flagName string
}

func (value *switchFlagValue) Set(input string) error {
	if value == nil || value.target == nil {
		return fmt.Errorf("%s %q", switchFlagInvalidValueLabel, input)
	}
	if strings.TrimSpace(input) == "" {
		input = switchFlagImplicitValue
	}
	parsed, ok := interpretBooleanLiteral(input)
	if !ok {
		return fmt.Errorf("%s %q for --%s; accepted values: %s", switchFlagInvalidValueLabel, input, value.flagName, switchFlagAcceptedLiterals)
	}
	*value.target = parsed
	return nil
}

func (value *switchFlagValue) String() string {
	if value == nil || value.target == nil {
		return strconv.FormatBool(false)
	}
	return strconv.FormatBool(*value.target)
}

func (value *switchFlagValue) Type() string {
	return switchFlagTypeName
}

// registerSwitchFlag adds a switch named name to flagSet, writing into target.
func registerSwitchFlag(flagSet *pflag.FlagSet, target *bool, name string, usage string) {
	if flagSet == nil || target == nil {
		return
	}
	*target = false
	flagSet.Var(&switchFlagValue{target: target, flagName: name}, name, usage)
	if lookup := flagSet.Lookup(name); lookup != nil {
		lookup.DefValue = strconv.FormatBool(false)
		lookup.NoOptDefVal = switchFlagImplicitValue
	}
}
