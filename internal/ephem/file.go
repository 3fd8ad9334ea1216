package ephem

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/ilbagatto/go-astrologer/internal/astro"
	"github.com/ilbagatto/go-astrologer/internal/mathutil"
)

// bodyRecord is one entry of a positions file.
type bodyRecord struct {
	Lambda float64 `toml:"lambda"`
	Beta   float64 `toml:"beta"`
	Delta  float64 `toml:"delta"`
	Motion float64 `toml:"motion"` // mean daily motion, degrees/day, signed
}

// positionsFile is the TOML layout of a positions file: a table per body
// under [bodies], keyed by the body title, e.g.
//
//	epoch = "1965-02-01T09:46:00Z"
//
//	[bodies.Moon]
//	lambda = 310.2111
//	beta = 1.23
//	motion = 13.176
type positionsFile struct {
	Epoch  string                `toml:"epoch"`
	Bodies map[string]bodyRecord `toml:"bodies"`
}

// FileProvider serves positions loaded from a TOML file. Positions are
// fixed for the epoch recorded in the file; requests one day apart are
// answered by applying the recorded daily motion, so charts can still
// derive motion the usual way.
type FileProvider struct {
	path      string
	epoch     time.Time
	positions map[astro.Body]bodyRecord
}

// LoadFile reads a positions file and returns a provider backed by it.
func LoadFile(path string) (*FileProvider, error) {
	var pf positionsFile
	if _, err := toml.DecodeFile(path, &pf); err != nil {
		return nil, fmt.Errorf("decode positions file: %w", err)
	}

	epoch := time.Time{}
	if pf.Epoch != "" {
		t, err := time.Parse(time.RFC3339, pf.Epoch)
		if err != nil {
			return nil, fmt.Errorf("parse epoch %q: %w", pf.Epoch, err)
		}
		epoch = t
	}

	positions := make(map[astro.Body]bodyRecord, len(pf.Bodies))
	for name, rec := range pf.Bodies {
		body, ok := astro.ParseBody(name)
		if !ok {
			return nil, fmt.Errorf("positions file %s: unknown body %q", path, name)
		}
		positions[body] = rec
	}

	return &FileProvider{path: path, epoch: epoch, positions: positions}, nil
}

// Name returns the provider name for display/logging.
func (p *FileProvider) Name() string {
	return "file:" + p.path
}

// Available returns true if the file carries a record for the body.
func (p *FileProvider) Available(body astro.Body) bool {
	_, ok := p.positions[body]
	return ok
}

// Position returns the recorded position, advanced by the recorded daily
// motion when the requested moment differs from the file epoch.
func (p *FileProvider) Position(body astro.Body, t time.Time) (astro.EclipticPosition, error) {
	rec, ok := p.positions[body]
	if !ok {
		return astro.EclipticPosition{}, &ErrUnknownBody{Body: body, Provider: p.Name()}
	}

	lambda := rec.Lambda
	if !p.epoch.IsZero() {
		days := t.Sub(p.epoch).Hours() / 24
		lambda += rec.Motion * days
	}

	return astro.EclipticPosition{
		Lambda: mathutil.ReduceDeg(lambda),
		Beta:   rec.Beta,
		Delta:  rec.Delta,
	}, nil
}
