// Package catalog implements the in-memory filtering and ordering of the
// school directory. The full list is fetched once per request; every change
// of a filter input re-applies the whole spec to the whole list.
package catalog

import (
	"sort"
	"strings"

	"bschool-portal/models"
)

// Default range bounds. Matching these exactly means the facet was not
// narrowed by the caller.
const (
	DefaultFeesMin    int64 = 0
	DefaultFeesMax    int64 = 5000000
	DefaultRankingMin       = 1
	DefaultRankingMax       = 100
)

// FilterSpec is the complete declarative filter state of the directory view.
// Empty selections mean "facet off"; ranges are inclusive on both ends.
type FilterSpec struct {
	Search     string
	Types      []string
	State      string
	Exams      []string
	FeesMin    int64
	FeesMax    int64
	RankingMin int
	RankingMax int
	SortKey    string
}

// DefaultSpec returns the cleared filter state: empty search and facets,
// full ranges, default ranking sort.
func DefaultSpec() FilterSpec {
	return FilterSpec{
		FeesMin:    DefaultFeesMin,
		FeesMax:    DefaultFeesMax,
		RankingMin: DefaultRankingMin,
		RankingMax: DefaultRankingMax,
		SortKey:    SortByRanking,
	}
}

// Apply filters the full school list by spec and orders the result by the
// spec's sort key. The input slice is never mutated.
func Apply(schools []models.School, spec FilterSpec) []models.School {
	filtered := make([]models.School, 0, len(schools))
	for _, school := range schools {
		if matches(school, spec) {
			filtered = append(filtered, school)
		}
	}
	sortSchools(filtered, spec.SortKey)
	return filtered
}

// matches is the single composed predicate over all facets. Facets are
// commutative: the outcome must not depend on evaluation order.
func matches(s models.School, spec FilterSpec) bool {
	if spec.Search != "" && !matchesSearch(s, spec.Search) {
		return false
	}
	if len(spec.Types) > 0 && !contains(spec.Types, s.Type) {
		return false
	}
	if spec.State != "" && s.State != spec.State {
		return false
	}
	if len(spec.Exams) > 0 && !intersects(spec.Exams, s.AcceptedExams) {
		return false
	}
	// Missing fee data is stored as zero and therefore always passes the
	// lower bound. See the data-quality note in DESIGN.md.
	if s.FeesMin < spec.FeesMin || s.FeesMax > spec.FeesMax {
		return false
	}
	if s.NIRFRanking < spec.RankingMin || s.NIRFRanking > spec.RankingMax {
		return false
	}
	return true
}

// matchesSearch ищет подстроку без учёта регистра в названии, локации
// или в любом из принимаемых экзаменов.
func matchesSearch(s models.School, term string) bool {
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(s.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(s.Location), term) {
		return true
	}
	for _, exam := range s.AcceptedExams {
		if strings.Contains(strings.ToLower(exam), term) {
			return true
		}
	}
	return false
}

func contains(set []string, value string) bool {
	for _, item := range set {
		if item == value {
			return true
		}
	}
	return false
}

func intersects(selected []string, accepted models.StringList) bool {
	for _, exam := range selected {
		if accepted.Contains(exam) {
			return true
		}
	}
	return false
}

// States returns the sorted distinct states across the full list, for the
// directory's facet sidebar.
func States(schools []models.School) []string {
	return distinct(schools, func(s models.School) []string {
		if s.State == "" {
			return nil
		}
		return []string{s.State}
	})
}

// Exams returns the sorted distinct union of accepted exams.
func Exams(schools []models.School) []string {
	return distinct(schools, func(s models.School) []string {
		return s.AcceptedExams
	})
}

func distinct(schools []models.School, extract func(models.School) []string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, school := range schools {
		for _, v := range extract(school) {
			if v != "" && !seen[v] {
				seen[v] = true
				values = append(values, v)
			}
		}
	}
	sort.Strings(values)
	return values
}
