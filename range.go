package hexrange

import "strconv"

// Range represents an end-inclusive address range.
type Range struct {
	// Start is the first address of the range.
	Start uint64

	// End is the last address of the range.
	End uint64
}

// Contains returns whether v lies within the range, bounds included.
func (r Range) Contains(v uint64) bool {
	return r.Start <= v && v <= r.End
}

// Empty reports whether the range contains no address at all.
// A range whose start is past its end is accepted but matches nothing.
func (r Range) Empty() bool {
	return r.Start > r.End
}

func (r Range) String() string {
	return strconv.FormatUint(r.Start, 16) + "-" + strconv.FormatUint(r.End, 16)
}
