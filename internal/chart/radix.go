package chart

import (
	"fmt"
	"sync"
	"time"

	"github.com/ilbagatto/go-astrologer/internal/astro"
	"github.com/ilbagatto/go-astrologer/internal/ephem"
	"github.com/ilbagatto/go-astrologer/internal/mathutil"
)

// Place is a geographic location. Longitude east positive, latitude north
// positive, both in degrees.
type Place struct {
	Name      string
	Latitude  float64
	Longitude float64
}

// Settings select the calculation options of a chart.
type Settings struct {
	Houses      HouseSystem
	Orbs        OrbsMethod
	AspectFlags AspectFlag
	StelliumGap float64 // degrees
}

// DefaultSettings returns the traditional defaults: Placidus houses,
// the combined classic orb method, major aspects, a 10° stellium gap.
func DefaultSettings() Settings {
	return Settings{
		Houses:      Placidus,
		Orbs:        NewClassicWithAspectRatio(),
		AspectFlags: Major,
		StelliumGap: 10,
	}
}

// AspectsTable is the symmetric cross table of detected aspects:
// table[a][b] == table[b][a] for every matched pair, and a body never
// aspects itself.
type AspectsTable map[astro.Body]map[astro.Body]AspectInfo

// Radix is a birth chart: a moment, a place and settings, from which all
// chart data is computed on demand and cached. The zero value is not
// usable; construct with NewRadix.
//
// All computed results are immutable once produced, and every accessor is
// safe for concurrent use.
type Radix struct {
	name     string
	moment   time.Time
	place    Place
	settings Settings
	provider ephem.Provider

	pointsOnce sync.Once
	points     SensitivePoints

	housesOnce sync.Once
	houses     [12]float64
	housesErr  error

	objectsOnce sync.Once
	objects     []Object
	objectsErr  error

	aspectsOnce sync.Once
	aspects     AspectsTable
	aspectsErr  error
}

// NewRadix creates a birth chart for a moment and place. The provider
// supplies body positions; nothing is computed until first requested.
func NewRadix(name string, moment time.Time, place Place, settings Settings, provider ephem.Provider) *Radix {
	return &Radix{
		name:     name,
		moment:   moment.UTC(),
		place:    place,
		settings: settings,
		provider: provider,
	}
}

// Name returns the chart name.
func (r *Radix) Name() string { return r.name }

// Moment returns the chart moment in UTC.
func (r *Radix) Moment() time.Time { return r.moment }

// Place returns the chart place.
func (r *Radix) Place() Place { return r.place }

// Settings returns the chart settings.
func (r *Radix) Settings() Settings { return r.settings }

// SiderealTime returns the local sidereal time of the chart in hours.
func (r *Radix) SiderealTime() float64 {
	return astro.LocalSiderealTime(r.moment, r.place.Longitude) / 15
}

// Obliquity returns the mean obliquity of the ecliptic at the chart
// moment, in degrees.
func (r *Radix) Obliquity() float64 {
	return astro.MeanObliquity(r.moment)
}

// ramc returns the right ascension of the meridian in radians.
func (r *Radix) ramc() float64 {
	return astro.RAMC(r.moment, r.place.Longitude)
}

// Points returns the sensitive points of the chart, in degrees.
func (r *Radix) Points() SensitivePoints {
	r.pointsOnce.Do(func() {
		ramc := r.ramc()
		eps := mathutil.Deg2Rad(r.Obliquity())
		theta := mathutil.Deg2Rad(r.place.Latitude)
		r.points = SensitivePoints{
			Ascendant: mathutil.Rad2Deg(Ascendant(ramc, eps, theta)),
			Midheaven: mathutil.Rad2Deg(Midheaven(ramc, eps)),
			Vertex:    mathutil.Rad2Deg(Vertex(ramc, eps, theta)),
			EastPoint: mathutil.Rad2Deg(EastPoint(ramc, eps)),
		}
	})
	return r.points
}

// Houses returns the 12 house cusp longitudes in degrees under the
// configured system.
func (r *Radix) Houses() ([12]float64, error) {
	r.housesOnce.Do(func() {
		points := r.Points()
		r.houses, r.housesErr = Cusps(
			r.settings.Houses,
			r.ramc(),
			mathutil.Deg2Rad(r.Obliquity()),
			mathutil.Deg2Rad(r.place.Latitude),
			mathutil.Deg2Rad(points.Ascendant),
			mathutil.Deg2Rad(points.Midheaven),
		)
	})
	return r.houses, r.housesErr
}

// Objects returns the chart objects in traditional body order, with
// positions, daily motion and house placement. Bodies the provider
// cannot serve are skipped.
func (r *Radix) Objects() ([]Object, error) {
	r.objectsOnce.Do(func() {
		r.objects, r.objectsErr = r.calculateObjects()
	})
	return r.objects, r.objectsErr
}

func (r *Radix) calculateObjects() ([]Object, error) {
	cusps, err := r.Houses()
	if err != nil {
		return nil, err
	}

	nextDay := r.moment.Add(24 * time.Hour)

	var objects []Object
	for _, body := range astro.Bodies() {
		if !r.provider.Available(body) {
			continue
		}
		pos, err := r.provider.Position(body, r.moment)
		if err != nil {
			return nil, fmt.Errorf("position of %s: %w", body, err)
		}
		next, err := r.provider.Position(body, nextDay)
		if err != nil {
			return nil, fmt.Errorf("next-day position of %s: %w", body, err)
		}
		objects = append(objects, Object{
			Body:        body,
			Position:    pos,
			DailyMotion: mathutil.DiffAngle(pos.Lambda, next.Lambda),
			House:       InHouse(pos.Lambda, cusps),
		})
	}
	return objects, nil
}

// Aspects returns the symmetric aspect cross table of the chart.
func (r *Radix) Aspects() (AspectsTable, error) {
	r.aspectsOnce.Do(func() {
		r.aspects, r.aspectsErr = r.calculateAspects()
	})
	return r.aspects, r.aspectsErr
}

func (r *Radix) calculateAspects() (AspectsTable, error) {
	objects, err := r.Objects()
	if err != nil {
		return nil, err
	}

	table := make(AspectsTable, len(objects))
	for i := 0; i < len(objects)-1; i++ {
		for j := i + 1; j < len(objects); j++ {
			src, dst := objects[i], objects[j]
			info, ok := FindClosestAspect(src, dst, r.settings.Orbs, r.settings.AspectFlags)
			if !ok {
				continue
			}
			if table[src.Body] == nil {
				table[src.Body] = make(map[astro.Body]AspectInfo)
			}
			if table[dst.Body] == nil {
				table[dst.Body] = make(map[astro.Body]AspectInfo)
			}
			table[src.Body][dst.Body] = info
			table[dst.Body][src.Body] = info
		}
	}
	return table, nil
}

// Stelliums partitions the chart objects into stellium groups using the
// configured gap.
func (r *Radix) Stelliums() ([][]Object, error) {
	objects, err := r.Objects()
	if err != nil {
		return nil, err
	}
	return Stelliums(objects, r.settings.StelliumGap), nil
}
