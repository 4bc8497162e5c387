package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doctorai/pkg"
)

func ptr(f float64) *float64 { return &f }

func testDoctors() []pkg.Doctor {
	return []pkg.Doctor{
		{Name: "A", Specialization: "CARDIOLOGIST", Latitude: 0, Longitude: 0.5, Hospital: "H1"},
		{Name: "B", Specialization: "cardiologist", Latitude: 0, Longitude: 0.1, Hospital: "H2"},
		{Name: "C", Specialization: "NEUROLOGIST", Latitude: 0, Longitude: 0.2, Hospital: "H3"},
		{Name: "D", Specialization: "CARDIOLOGIST", Latitude: 0, Longitude: 2, Hospital: "H4"},
	}
}

func TestRankEmptySpecSetReturnsNothing(t *testing.T) {
	matches := Rank(testDoctors(), nil, ptr(0), ptr(0), 3)
	assert.Empty(t, matches)
}

func TestRankFilterIsCaseInsensitiveExact(t *testing.T) {
	matches := Rank(testDoctors(), []string{"CARDIOLOGIST"}, nil, nil, 10)
	require.Len(t, matches, 3)
	for _, m := range matches {
		assert.NotEqual(t, "C", m.Doctor.Name)
	}

	// Exact match, not substring: "cardio" matches nothing.
	assert.Empty(t, Rank(testDoctors(), []string{"cardio"}, nil, nil, 10))
}

func TestRankSortsAscendingAndTruncates(t *testing.T) {
	matches := Rank(testDoctors(), []string{"cardiologist"}, ptr(0), ptr(0), 2)
	require.Len(t, matches, 2)
	assert.Equal(t, "B", matches[0].Doctor.Name)
	assert.Equal(t, "A", matches[1].Doctor.Name)
}

func TestRankFewerThanLimit(t *testing.T) {
	matches := Rank(testDoctors(), []string{"NEUROLOGIST"}, ptr(0), ptr(0), 3)
	assert.Len(t, matches, 1)
}

func TestRankNilCoordinatesMeanNilDistance(t *testing.T) {
	matches := Rank(testDoctors(), []string{"NEUROLOGIST"}, nil, nil, 3)
	require.Len(t, matches, 1)
	assert.Nil(t, matches[0].DistanceKm)
}

// Unknown distance sorts as zero, ahead of every known non-zero distance.
// Current comparator behavior, kept deliberately.
func TestRankNullDistanceSortsFirst(t *testing.T) {
	matches := []pkg.Match{
		{Doctor: pkg.Doctor{Name: "far"}, DistanceKm: ptr(12.5)},
		{Doctor: pkg.Doctor{Name: "unknown"}},
		{Doctor: pkg.Doctor{Name: "near"}, DistanceKm: ptr(0.3)},
	}
	sortMatches(matches)
	assert.Equal(t, "unknown", matches[0].Doctor.Name)
	assert.Equal(t, "near", matches[1].Doctor.Name)
	assert.Equal(t, "far", matches[2].Doctor.Name)
}

func TestRankEndToEndSingleMatch(t *testing.T) {
	doctors := []pkg.Doctor{{Name: "A", Specialization: "CARDIOLOGIST", Latitude: 0, Longitude: 0, Hospital: "H1"}}
	matches := Rank(doctors, []string{"CARDIOLOGIST"}, ptr(0), ptr(0.001), 3)
	require.Len(t, matches, 1)
	require.NotNil(t, matches[0].DistanceKm)
	assert.InDelta(t, 0.11, *matches[0].DistanceKm, 0.01)
}
