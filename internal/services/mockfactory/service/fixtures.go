package service

import (
	"bytes"
	"context"
	"embed"
	"io"
	"os"

	perr "libfj/internal/platform/errors"
	"libfj/internal/platform/validate"
	"libfj/internal/services/mockfactory/domain"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultFS embed.FS

// DecodeFixtures parses and validates a YAML fixture document. Unknown keys are rejected
func DecodeFixtures(r io.Reader) (domain.Fixtures, error) {
	var fx domain.Fixtures
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fx); err != nil && err != io.EOF {
		return domain.Fixtures{}, perr.Wrap(err, perr.ErrorCodeDecode, "fixtures")
	}
	if err := validate.Struct(fx); err != nil {
		return domain.Fixtures{}, err
	}
	seen := make(map[int64]struct{}, len(fx.Robots))
	for _, rb := range fx.Robots {
		if _, dup := seen[rb.ID]; dup {
			return domain.Fixtures{}, perr.WithField(perr.InvalidArgf("duplicate robot id %d", rb.ID), "id")
		}
		seen[rb.ID] = struct{}{}
	}
	return fx, nil
}

// FileSource reads fixtures from a path; an empty path serves the built in catalogue
type FileSource struct {
	Path string
}

// Load implements domain.Source
func (s FileSource) Load(ctx context.Context) (domain.Fixtures, error) {
	if err := ctx.Err(); err != nil {
		return domain.Fixtures{}, err
	}
	var (
		raw []byte
		err error
	)
	if s.Path == "" {
		raw, err = defaultFS.ReadFile("default.yaml")
	} else {
		raw, err = os.ReadFile(s.Path)
	}
	if err != nil {
		return domain.Fixtures{}, perr.Wrapf(err, perr.ErrorCodeNotFound, "read fixtures %q", s.Path)
	}
	return DecodeFixtures(bytes.NewReader(raw))
}
