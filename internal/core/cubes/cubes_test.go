package cubes

import (
	"testing"

	perr "libfj/internal/platform/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCells() []Cube {
	return []Cube{
		{ID: 227177637, X: 0, Y: 0, Z: 0, Orientation: 0, Colour: 4},
		{ID: 227177637, X: 1, Y: 0, Z: 0, Orientation: 3, Colour: 4},
		{ID: 1480567094, X: 1, Y: 1, Z: 0, Orientation: 17, Colour: 9},
	}
}

func TestEncodeParseRoundTrip(t *testing.T) {
	cells := sampleCells()
	cube, colour := Encode(cells)
	assert.Len(t, cube, 4+3*8)
	assert.Len(t, colour, 4+3*4)

	got, err := Parse(cube, colour)
	require.NoError(t, err)
	assert.Equal(t, cells, got)
}

func TestParse_Empty(t *testing.T) {
	cube, colour := Encode(nil)
	got, err := Parse(cube, colour)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParse_KnownBytes(t *testing.T) {
	cube := []byte{
		1, 0, 0, 0, // count
		0x2a, 0x00, 0x00, 0x00, 5, 6, 7, 2, // id 42 at (5,6,7) orientation 2
	}
	colour := []byte{
		1, 0, 0, 0,
		11, 5, 6, 7,
	}
	got, err := Parse(cube, colour)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, Cube{ID: 42, X: 5, Y: 6, Z: 7, Orientation: 2, Colour: 11}, got[0])
}

func TestParse_Malformed(t *testing.T) {
	cube, colour := Encode(sampleCells())

	cases := []struct {
		name         string
		cube, colour []byte
	}{
		{"empty cube stream", nil, colour},
		{"empty colour stream", cube, []byte{1, 0}},
		{"truncated cube body", cube[:len(cube)-1], colour},
		{"truncated colour body", cube, colour[:len(colour)-2]},
		{"count mismatch", cube, func() []byte { _, c := Encode(sampleCells()[:2]); return c }()},
		{"absurd count", []byte{0xff, 0xff, 0xff, 0xff}, colour},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse(c.cube, c.colour)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformed)
			assert.Equal(t, perr.ErrorCodeDecode, perr.CodeOf(err))
		})
	}
}
