package geo

import (
	"sort"
	"strings"

	"doctorai/pkg"
)

// DefaultLimit is the number of matches returned when the caller does not
// ask for more.
const DefaultLimit = 3

// Rank filters the directory to doctors whose specialization exactly
// matches one of specs (case-insensitive), attaches the distance from the
// caller when coordinates are given, sorts ascending by distance and
// truncates to limit.
//
// A nil distance sorts as 0 km, i.e. doctors at an unknown distance come
// out ahead of every doctor at a known non-zero distance. That comparator
// behavior is relied on by callers and pinned by tests; do not "fix" it
// here without confirming intent.
func Rank(doctors []pkg.Doctor, specs []string, lat, lng *float64, limit int) []pkg.Match {
	if limit <= 0 {
		limit = DefaultLimit
	}

	specSet := make(map[string]struct{}, len(specs))
	for _, s := range specs {
		specSet[strings.ToLower(s)] = struct{}{}
	}

	matches := make([]pkg.Match, 0, len(doctors))
	for _, doc := range doctors {
		if _, ok := specSet[strings.ToLower(doc.Specialization)]; !ok {
			continue
		}
		m := pkg.Match{Doctor: doc}
		if lat != nil && lng != nil {
			d := Haversine(*lat, *lng, doc.Latitude, doc.Longitude)
			m.DistanceKm = &d
		}
		matches = append(matches, m)
	}

	sortMatches(matches)

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// sortMatches orders ascending by distance with nil treated as 0 km.
func sortMatches(matches []pkg.Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		return distanceOrZero(matches[i]) < distanceOrZero(matches[j])
	})
}

func distanceOrZero(m pkg.Match) float64 {
	if m.DistanceKm == nil {
		return 0
	}
	return *m.DistanceKm
}
