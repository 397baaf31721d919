package hexrange_test

import (
	"testing"

	"github.com/hexrange/hexrange-go"
	"github.com/stretchr/testify/assert"
)

func TestRange(t *testing.T) {
	t.Run("contains bounds", func(t *testing.T) {
		r := hexrange.Range{Start: 0x10, End: 0x20}
		assert.True(t, r.Contains(0x10))
		assert.True(t, r.Contains(0x20))
		assert.True(t, r.Contains(0x15))
		assert.False(t, r.Contains(0xf))
		assert.False(t, r.Contains(0x21))
		assert.False(t, r.Empty())
	})

	t.Run("inverted range is empty", func(t *testing.T) {
		r := hexrange.Range{Start: 0x20, End: 0x10}
		assert.True(t, r.Empty())
		for _, v := range []uint64{0, 0x10, 0x15, 0x20, ^uint64(0)} {
			assert.False(t, r.Contains(v))
		}
	})

	t.Run("string", func(t *testing.T) {
		r := hexrange.Range{Start: 0x7ffd76d19000, End: 0x7ffd76d3a000}
		assert.Equal(t, "7ffd76d19000-7ffd76d3a000", r.String())
	})
}
