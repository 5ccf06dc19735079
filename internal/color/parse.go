package color

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse errors.
var (
	ErrEmpty          = errors.New("no color entered")
	ErrInvalidChannel = errors.New("expected three channels between 0 and 255")
	ErrInvalidHex     = errors.New("invalid hex color")
)

// ParseError records the input that failed to parse.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse color %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse converts user-typed text into a color.
//
// Accepted forms are a comma separated triple of 0-255 values (optionally
// wrapped in "rgb(...)"), a "#"-prefixed hex integer, and a bare hex integer.
// Hex values are packed 0xRRGGBB.
func Parse(text string) (Color, error) {
	input := strings.TrimSpace(text)
	if input == "" {
		return Color{}, &ParseError{Input: text, Err: ErrEmpty}
	}

	switch {
	case strings.Contains(input, ","):
		return parseTriple(text, input)
	case strings.Contains(input, "#"):
		return parseHex(text, strings.TrimPrefix(input, "#"))
	default:
		return parseHex(text, input)
	}
}

func parseTriple(raw, input string) (Color, error) {
	input = strings.TrimPrefix(input, "rgb(")
	input = strings.TrimSuffix(input, ")")

	// Parts that are not valid 8-bit values are dropped; only the count of
	// accepted parts decides validity.
	values := make([]uint8, 0, 3)
	for _, part := range strings.Split(input, ",") {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			continue
		}
		values = append(values, uint8(v))
	}
	if len(values) != 3 {
		return Color{}, &ParseError{Input: raw, Err: ErrInvalidChannel}
	}
	return RGB255(values[0], values[1], values[2]), nil
}

func parseHex(raw, digits string) (Color, error) {
	value, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, &ParseError{Input: raw, Err: ErrInvalidHex}
	}
	return FromHex(uint32(value)), nil
}
