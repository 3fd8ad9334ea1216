package chart

import (
	"sort"

	"github.com/ilbagatto/go-astrologer/internal/mathutil"
)

// Stelliums partitions chart objects into groups of closely spaced
// bodies. gap is the minimal angular distance between groups in degrees.
// Every input object lands in exactly one group; groups are ordered by
// longitude along the rotated circle.
//
// The circle has no natural start, so the objects are first rotated until
// the seam between the last and first object is wider than gap. A plain
// left-to-right scan then closes a group whenever the forward distance to
// the next object exceeds gap.
func Stelliums(objects []Object, gap float64) [][]Object {
	if len(objects) == 0 {
		return nil
	}

	ordered := make([]Object, len(objects))
	copy(ordered, objects)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Position.Lambda < ordered[j].Position.Lambda
	})

	// Rotate so the widest wraparound break becomes the seam. While the
	// first and last objects are within gap of each other they belong to
	// one cluster across 0°/360°: move the last one in front and retry.
	// A single object has no seam to search.
	for i := 0; len(ordered) > 1 && i < len(ordered); i++ {
		first := ordered[0]
		last := ordered[len(ordered)-1]
		if mathutil.ShortestArcDeg(first.Position.Lambda, last.Position.Lambda) > gap {
			break
		}
		rotated := make([]Object, 0, len(ordered))
		rotated = append(rotated, last, first)
		rotated = append(rotated, ordered[1:len(ordered)-1]...)
		ordered = rotated
	}

	var groups [][]Object
	var group []Object
	lastIdx := len(ordered) - 1

	for idx, curr := range ordered {
		group = append(group, curr)
		if idx < lastIdx {
			next := ordered[idx+1]
			if mathutil.DiffAngle(curr.Position.Lambda, next.Position.Lambda) > gap {
				groups = append(groups, group)
				group = nil
			}
		} else {
			groups = append(groups, group)
			group = nil
		}
	}
	return groups
}
