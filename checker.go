package hexrange

import "github.com/pkg/errors"

// IsWithinRange returns whether probe falls within the inclusive range described by spec.
//
// A spec without a hyphen yields false and no error, so a malformed range is indistinguishable from
// a probe outside a valid one. Tokens that are not hexadecimal numbers return a *ParseError.
func IsWithinRange(spec string, probe string) (bool, error) {
	return Checker{}.Check(spec, probe)
}

// Checker performs range containment checks.
// The zero value behaves like IsWithinRange.
type Checker struct {
	// Strict makes a range without a hyphen an ErrMalformedRange error instead of a false result.
	Strict bool
}

// Check returns whether probe falls within the inclusive range described by spec.
func (c Checker) Check(spec string, probe string) (bool, error) {
	r, err := ParseRange(spec)
	if errors.Is(err, ErrMalformedRange) && !c.Strict {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return c.contains(r, probe)
}

// CheckMapsLine returns whether probe falls within the address range of a /proc/<pid>/maps line.
// A line whose first field has no hyphen is handled like a malformed range in Check.
func (c Checker) CheckMapsLine(line string, probe string) (bool, error) {
	r, err := ParseMapsLine(line)
	if errors.Is(err, ErrMalformedRange) && !c.Strict {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return c.contains(r, probe)
}

func (c Checker) contains(r Range, probe string) (bool, error) {
	value, err := ParseHex("probe", probe)
	if err != nil {
		return false, err
	}

	return r.Contains(value), nil
}
