// Package cubes decodes and encodes Robocraft robot geometry.
//
// A robot travels as two parallel byte streams. The cube stream is a little-endian
// uint32 count followed by 8 bytes per cube: id (uint32 LE), x, y, z, orientation.
// The colour stream is a little-endian uint32 count followed by 4 bytes per cube:
// the colour index and three position bytes that repeat the cube stream and are ignored
package cubes

import (
	"encoding/binary"

	perr "libfj/internal/platform/errors"
)

const (
	headerLen     = 4
	cubeRecordLen = 8
	colourRecLen  = 4

	// maxCubes bounds allocations for hostile counts; real robots stay far below it
	maxCubes = 1 << 20
)

// Cube is one decoded block of a robot
type Cube struct {
	ID          uint32
	X           uint8 // left to right
	Y           uint8 // bottom to top
	Z           uint8 // back to front
	Orientation uint8
	Colour      uint8
}

// ErrMalformed is returned (wrapped) for truncated or inconsistent streams
var ErrMalformed = perr.New(perr.ErrorCodeDecode, "malformed robot geometry")

// Parse decodes paired cube and colour streams into cubes, in stream order
func Parse(cubeData, colourData []byte) ([]Cube, error) {
	n, err := count(cubeData, cubeRecordLen, "cube")
	if err != nil {
		return nil, err
	}
	cn, err := count(colourData, colourRecLen, "colour")
	if err != nil {
		return nil, err
	}
	if n != cn {
		return nil, perr.Wrapf(ErrMalformed, perr.ErrorCodeDecode, "cube count %d != colour count %d", n, cn)
	}

	out := make([]Cube, n)
	body := cubeData[headerLen:]
	colours := colourData[headerLen:]
	for i := range out {
		rec := body[i*cubeRecordLen : (i+1)*cubeRecordLen]
		out[i] = Cube{
			ID:          binary.LittleEndian.Uint32(rec[0:4]),
			X:           rec[4],
			Y:           rec[5],
			Z:           rec[6],
			Orientation: rec[7],
			Colour:      colours[i*colourRecLen],
		}
	}
	return out, nil
}

// count reads the header of one stream and checks the body is long enough
func count(data []byte, recLen int, stream string) (int, error) {
	if len(data) < headerLen {
		return 0, perr.Wrapf(ErrMalformed, perr.ErrorCodeDecode, "%s stream shorter than header", stream)
	}
	n := binary.LittleEndian.Uint32(data[:headerLen])
	if n > maxCubes {
		return 0, perr.Wrapf(ErrMalformed, perr.ErrorCodeDecode, "%s stream claims %d cubes", stream, n)
	}
	if need := headerLen + int(n)*recLen; len(data) < need {
		return 0, perr.Wrapf(ErrMalformed, perr.ErrorCodeDecode, "%s stream truncated: %d < %d bytes", stream, len(data), need)
	}
	return int(n), nil
}

// Encode produces the cube and colour streams for cells
func Encode(cells []Cube) (cubeData, colourData []byte) {
	cubeData = make([]byte, headerLen, headerLen+len(cells)*cubeRecordLen)
	colourData = make([]byte, headerLen, headerLen+len(cells)*colourRecLen)
	binary.LittleEndian.PutUint32(cubeData, uint32(len(cells)))
	binary.LittleEndian.PutUint32(colourData, uint32(len(cells)))
	for _, c := range cells {
		cubeData = binary.LittleEndian.AppendUint32(cubeData, c.ID)
		cubeData = append(cubeData, c.X, c.Y, c.Z, c.Orientation)
		colourData = append(colourData, c.Colour, c.X, c.Y, c.Z)
	}
	return cubeData, colourData
}
