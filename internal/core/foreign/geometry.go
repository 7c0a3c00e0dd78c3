package foreign

import (
	"encoding/base64"

	"libfj/internal/core/cubes"
	perr "libfj/internal/platform/errors"
)

// DecodeGeometry decodes the base64 cube and colour channels of a robot
func DecodeGeometry(cubeB64, colourB64 string) ([]cubes.Cube, error) {
	cubeRaw, err := base64.StdEncoding.DecodeString(cubeB64)
	if err != nil {
		return nil, perr.WithField(perr.Wrap(err, perr.ErrorCodeDecode, "bad base64"), "cube_data")
	}
	colourRaw, err := base64.StdEncoding.DecodeString(colourB64)
	if err != nil {
		return nil, perr.WithField(perr.Wrap(err, perr.ErrorCodeDecode, "bad base64"), "colour_data")
	}
	return cubes.Parse(cubeRaw, colourRaw)
}

// FillCubes copies up to len(out) cells, in codec order
func FillCubes(out []Cube, cells []cubes.Cube) uint32 {
	return Fill(out, cells,
		func(c cubes.Cube) (Cube, error) { return ConvertCube(c), nil },
		func(cubes.Cube, error) Cube { return Cube{} },
	)
}
