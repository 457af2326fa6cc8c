package processing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/temirov/tema/internal/vocabulary"
)

const (
	missingArgumentFormat = "missing value for '%s': %w"
	invalidTimesFormat    = "'%s' is not a valid number: %w"
	negativeTimesFormat   = "'%d' must not be negative: %w"
	emptyPadFormat        = "empty pad is not allowed: %w"
	paddingTooLongFormat  = "'%d' times '%s' exceeds %d bytes of padding: %w"
)

// MaximumPaddingLength bounds the bytes added to each side of the content.
const MaximumPaddingLength = 1 << 20

// PaddingArguments are the validated values of the padded modifier.
type PaddingArguments struct {
	Times int
	Pad   string
}

// ValidatePaddingArguments converts raw padded modifier values. Times must be a
// non-negative integer, pad must not be empty and the padding on each side must fit in
// MaximumPaddingLength bytes.
func ValidatePaddingArguments(arguments vocabulary.ArgumentValues) (PaddingArguments, error) {
	rawTimes, timesPresent := arguments[vocabulary.ArgumentTimes]
	if !timesPresent {
		return PaddingArguments{}, fmt.Errorf(missingArgumentFormat, vocabulary.ArgumentTimes.LongName(), ErrInvalidArgument)
	}
	rawPad, padPresent := arguments[vocabulary.ArgumentPad]
	if !padPresent {
		return PaddingArguments{}, fmt.Errorf(missingArgumentFormat, vocabulary.ArgumentPad.LongName(), ErrInvalidArgument)
	}
	times, parseError := strconv.Atoi(rawTimes)
	if parseError != nil {
		return PaddingArguments{}, fmt.Errorf(invalidTimesFormat, rawTimes, ErrInvalidArgument)
	}
	if times < 0 {
		return PaddingArguments{}, fmt.Errorf(negativeTimesFormat, times, ErrInvalidArgument)
	}
	if rawPad == "" {
		return PaddingArguments{}, fmt.Errorf(emptyPadFormat, ErrInvalidArgument)
	}
	if times > MaximumPaddingLength/len(rawPad) {
		return PaddingArguments{}, fmt.Errorf(paddingTooLongFormat, times, rawPad, MaximumPaddingLength, ErrInvalidArgument)
	}
	return PaddingArguments{Times: times, Pad: rawPad}, nil
}

// Pad surrounds content with pad repeated Times on each side.
func Pad(arguments PaddingArguments, content string) string {
	if arguments.Times <= 0 || arguments.Pad == "" {
		return content
	}
	padding := strings.Repeat(arguments.Pad, arguments.Times)
	return padding + content + padding
}
