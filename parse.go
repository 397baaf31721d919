package hexrange

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const hexPrefix = "0x"

// TrimPrefix strips a single leading "0x" from s, if present.
// Only the lower-case prefix is recognized.
func TrimPrefix(s string) string {
	return strings.TrimPrefix(s, hexPrefix)
}

// ParseHex parses s as an unsigned base-16 number after removing an optional "0x" prefix.
// Digits are case-insensitive. Failures are reported as a *ParseError tagged with field.
func ParseHex(field string, s string) (uint64, error) {
	digits := TrimPrefix(s)
	if digits == "" {
		return 0, &ParseError{Field: field, Input: s, Err: errors.New("empty value")}
	}

	value, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, &ParseError{Field: field, Input: s, Err: err}
	}

	return value, nil
}

// ParseRange parses a "<start>-<end>" string into a Range.
//
// The string is split once, on the first hyphen. Anything after a second hyphen ends up in the end
// token and fails to parse. A start greater than the end is not an error.
func ParseRange(spec string) (Range, error) {
	startToken, endToken, found := strings.Cut(spec, "-")
	if !found {
		return Range{}, ErrMalformedRange
	}

	start, err := ParseHex("start", startToken)
	if err != nil {
		return Range{}, err
	}

	end, err := ParseHex("end", endToken)
	if err != nil {
		return Range{}, err
	}

	return Range{Start: start, End: end}, nil
}

// ParseMapsLine extracts the address range from a /proc/<pid>/maps line,
// e.g. "7ffd76d19000-7ffd76d3a000 rw-p 00000000 00:00 0 [stack]".
func ParseMapsLine(line string) (Range, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Range{}, errors.Wrap(ErrMalformedRange, "failed to parse maps line")
	}

	r, err := ParseRange(fields[0])
	if err != nil {
		return Range{}, errors.Wrap(err, "failed to parse maps line")
	}
	return r, nil
}
