package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bschool-portal/models"
)

func school(id string) models.School {
	return models.School{ID: id, Name: "School " + id}
}

func TestAddRespectsCap(t *testing.T) {
	sel := &Selection{}
	assert.True(t, sel.Add(school("a")))
	assert.True(t, sel.Add(school("b")))
	assert.True(t, sel.Add(school("c")))
	assert.False(t, sel.Add(school("d")), "fourth add must be a no-op")
	assert.Equal(t, MaxSchools, sel.Len())
}

func TestAddDuplicateIsNoOp(t *testing.T) {
	sel := &Selection{}
	sel.Add(school("a"))
	assert.False(t, sel.Add(school("a")))
	assert.Equal(t, 1, sel.Len())
}

func TestCapHoldsUnderManyAdds(t *testing.T) {
	sel := &Selection{}
	for i := 0; i < 50; i++ {
		sel.Add(school(string(rune('a' + i%10))))
	}
	assert.Equal(t, MaxSchools, sel.Len())
}

func TestRemovePreservesOrder(t *testing.T) {
	sel := &Selection{}
	sel.Add(school("a"))
	sel.Add(school("b"))
	sel.Add(school("c"))

	sel.Remove("b")

	schools := sel.Schools()
	require.Len(t, schools, 2)
	assert.Equal(t, "a", schools[0].ID)
	assert.Equal(t, "c", schools[1].ID)
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	sel := &Selection{}
	sel.Add(school("a"))
	sel.Remove("zzz")
	assert.Equal(t, 1, sel.Len())
}

func TestReadyThresholds(t *testing.T) {
	sel := &Selection{}
	assert.False(t, sel.Ready(), "empty selection is not ready")

	sel.Add(school("a"))
	assert.False(t, sel.Ready(), "one school is the needs-more state")

	sel.Add(school("b"))
	assert.True(t, sel.Ready(), "two schools are comparable")

	sel.Add(school("c"))
	assert.True(t, sel.Ready())
}

func TestResolvePreservesGivenOrder(t *testing.T) {
	all := []models.School{school("a"), school("b"), school("c"), school("d")}

	sel := Resolve([]string{"c", "a"}, all)

	schools := sel.Schools()
	require.Len(t, schools, 2)
	assert.Equal(t, "c", schools[0].ID)
	assert.Equal(t, "a", schools[1].ID)
}

func TestResolveSkipsUnknownIDs(t *testing.T) {
	all := []models.School{school("a"), school("b")}

	sel := Resolve([]string{"ghost", "b"}, all)

	schools := sel.Schools()
	require.Len(t, schools, 1)
	assert.Equal(t, "b", schools[0].ID)
}

func TestResolveCapsAndDeduplicates(t *testing.T) {
	all := []models.School{school("a"), school("b"), school("c"), school("d")}

	sel := Resolve([]string{"a", "a", "b", "c", "d"}, all)

	schools := sel.Schools()
	require.Len(t, schools, MaxSchools)
	assert.Equal(t, []string{"a", "b", "c"}, []string{schools[0].ID, schools[1].ID, schools[2].ID})
}
