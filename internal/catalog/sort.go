package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"bschool-portal/models"
)

// Supported sort keys of the directory view.
const (
	SortByRanking   = "ranking"   // NIRF ranking, ascending (default)
	SortByPackage   = "package"   // average package, descending
	SortByPlacement = "placement" // placement rate, descending
	SortByFees      = "fees"      // minimum fees, ascending
	SortByName      = "name"      // name A-Z, locale-aware
)

// sortSchools orders the slice in place. Unknown keys fall back to the
// ranking order. Every comparator is stable relative to input order.
func sortSchools(schools []models.School, key string) {
	switch key {
	case SortByPackage:
		sort.SliceStable(schools, func(i, j int) bool {
			return schools[i].AvgPackage > schools[j].AvgPackage
		})
	case SortByPlacement:
		sort.SliceStable(schools, func(i, j int) bool {
			return schools[i].PlacementRate > schools[j].PlacementRate
		})
	case SortByFees:
		sort.SliceStable(schools, func(i, j int) bool {
			return schools[i].FeesMin < schools[j].FeesMin
		})
	case SortByName:
		// Коллатор не потокобезопасен, поэтому создаётся на каждый вызов.
		c := collate.New(language.English)
		sort.SliceStable(schools, func(i, j int) bool {
			return c.CompareString(schools[i].Name, schools[j].Name) < 0
		})
	default:
		sort.SliceStable(schools, func(i, j int) bool {
			return schools[i].NIRFRanking < schools[j].NIRFRanking
		})
	}
}
