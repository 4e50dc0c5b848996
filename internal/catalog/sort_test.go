package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bschool-portal/models"
)

func ids(schools []models.School) []string {
	out := make([]string, 0, len(schools))
	for _, s := range schools {
		out = append(out, s.ID)
	}
	return out
}

func TestSortByRankingAscending(t *testing.T) {
	schools := []models.School{
		{ID: "a", NIRFRanking: 12},
		{ID: "b", NIRFRanking: 3},
		{ID: "c", NIRFRanking: 45},
	}
	sortSchools(schools, SortByRanking)
	assert.Equal(t, []string{"b", "a", "c"}, ids(schools))
}

func TestSortByPackageDescendingMissingLast(t *testing.T) {
	schools := []models.School{
		{ID: "a", AvgPackage: 0}, // missing
		{ID: "b", AvgPackage: 3000000},
		{ID: "c", AvgPackage: 1500000},
	}
	sortSchools(schools, SortByPackage)
	assert.Equal(t, []string{"b", "c", "a"}, ids(schools))
}

func TestSortByPlacementDescending(t *testing.T) {
	schools := []models.School{
		{ID: "a", PlacementRate: 92.5},
		{ID: "b", PlacementRate: 100},
		{ID: "c", PlacementRate: 97},
	}
	sortSchools(schools, SortByPlacement)
	assert.Equal(t, []string{"b", "c", "a"}, ids(schools))
}

func TestSortByFeesAscending(t *testing.T) {
	schools := []models.School{
		{ID: "a", FeesMin: 2300000},
		{ID: "b", FeesMin: 200000},
		{ID: "c", FeesMin: 1400000},
	}
	sortSchools(schools, SortByFees)
	assert.Equal(t, []string{"b", "c", "a"}, ids(schools))
}

func TestSortByNameLocaleAware(t *testing.T) {
	schools := []models.School{
		{ID: "x", Name: "XLRI"},
		{ID: "f", Name: "FMS Delhi"},
		{ID: "i", Name: "IIM Bangalore"},
	}
	sortSchools(schools, SortByName)
	assert.Equal(t, []string{"f", "i", "x"}, ids(schools))
}

func TestSortIsStableForEqualKeys(t *testing.T) {
	schools := []models.School{
		{ID: "first", NIRFRanking: 7},
		{ID: "second", NIRFRanking: 7},
		{ID: "third", NIRFRanking: 7},
	}
	sortSchools(schools, SortByRanking)
	assert.Equal(t, []string{"first", "second", "third"}, ids(schools))
}

func TestSortOutputIsPermutation(t *testing.T) {
	schools := sampleSchools()
	for _, key := range []string{SortByRanking, SortByPackage, SortByPlacement, SortByFees, SortByName} {
		spec := DefaultSpec()
		spec.SortKey = key
		result := Apply(schools, spec)
		require.Len(t, result, len(schools), "sort key %s", key)
		assert.ElementsMatch(t, ids(schools), ids(result), "sort key %s", key)
	}
}

func TestUnknownSortKeyFallsBackToRanking(t *testing.T) {
	schools := []models.School{
		{ID: "a", NIRFRanking: 12},
		{ID: "b", NIRFRanking: 3},
	}
	sortSchools(schools, "bogus")
	assert.Equal(t, []string{"b", "a"}, ids(schools))
}
