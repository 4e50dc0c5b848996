// Package compare maintains the bounded side-by-side school selection and
// serializes it into the fixed comparison table used by the web view and
// the downloadable export.
package compare

import "bschool-portal/models"

// MaxSchools - жёсткий предел на количество школ в сравнении.
const MaxSchools = 3

// MinForComparison schools are required before a comparison is meaningful.
const MinForComparison = 2

// Selection is an ordered set of at most MaxSchools schools.
type Selection struct {
	schools []models.School
}

// Add appends a school to the selection. Adding while full or adding an
// already selected school is a no-op; the return value reports whether the
// selection changed.
func (s *Selection) Add(school models.School) bool {
	if len(s.schools) >= MaxSchools {
		return false
	}
	for _, existing := range s.schools {
		if existing.ID == school.ID {
			return false
		}
	}
	s.schools = append(s.schools, school)
	return true
}

// Remove drops the school with the given id, preserving the relative order
// of the remaining schools. Removing an absent id is a no-op.
func (s *Selection) Remove(id string) {
	for i, school := range s.schools {
		if school.ID == id {
			s.schools = append(s.schools[:i], s.schools[i+1:]...)
			return
		}
	}
}

// Schools returns the selected schools in the order they were added.
func (s *Selection) Schools() []models.School {
	return s.schools
}

func (s *Selection) Len() int {
	return len(s.schools)
}

// Ready reports whether the selection holds enough schools to compare.
// Zero or one selected school is the "needs more" display state.
func (s *Selection) Ready() bool {
	return len(s.schools) >= MinForComparison
}

// Resolve builds a selection from school ids resolved against the full
// fetched list, preserving the given id order and skipping unknown ids.
// It must only be called once the full list has been loaded.
func Resolve(ids []string, all []models.School) *Selection {
	byID := make(map[string]models.School, len(all))
	for _, school := range all {
		byID[school.ID] = school
	}

	sel := &Selection{}
	for _, id := range ids {
		if school, ok := byID[id]; ok {
			sel.Add(school)
		}
	}
	return sel
}
