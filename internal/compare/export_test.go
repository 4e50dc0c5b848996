package compare

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bschool-portal/models"
)

func comparableSchools() []models.School {
	return []models.School{
		{
			ID: "iim-a", Name: "Indian Institute of Management Ahmedabad",
			ShortName: "IIM-A", Location: "Ahmedabad, Gujarat", Type: "Government",
			NIRFRanking: 1, AvgPackage: 3400000, HighestPackage: 11500000,
			PlacementRate: 100, TotalSeats: 395, FeesMin: 2300000, FeesMax: 2500000,
			EstablishedYear: 1961, AcceptedExams: models.StringList{"CAT", "GMAT"},
			Website: "https://www.iima.ac.in",
		},
		{
			ID: "xlri", Name: "XLRI Xavier School of Management",
			ShortName: "XLRI", Location: "Jamshedpur, Jharkhand", Type: "Private",
			NIRFRanking: 9, AvgPackage: 3000000, HighestPackage: 7500000,
			PlacementRate: 98.5, TotalSeats: 360, FeesMin: 1400000, FeesMax: 1500000,
			EstablishedYear: 1949, AcceptedExams: models.StringList{"XAT"},
		},
	}
}

func TestBuildRowsFixedOrder(t *testing.T) {
	rows := BuildRows(comparableSchools())

	labels := make([]string, 0, len(rows))
	for _, row := range rows {
		labels = append(labels, row.Label)
	}
	assert.Equal(t, []string{
		"Full Name", "Location", "Type", "NIRF Ranking", "Average Package",
		"Highest Package", "Placement Rate", "Total Seats", "Fees Range",
		"Established", "Accepted Exams", "Website",
	}, labels)
}

func TestBuildRowsOneValuePerSchoolInAddOrder(t *testing.T) {
	rows := BuildRows(comparableSchools())
	for _, row := range rows {
		require.Len(t, row.Values, 2, "row %s", row.Label)
	}

	// Первая колонка принадлежит первой добавленной школе.
	assert.Equal(t, "Indian Institute of Management Ahmedabad", rows[0].Values[0])
	assert.Equal(t, "XLRI Xavier School of Management", rows[0].Values[1])
	assert.Equal(t, "#1", rows[3].Values[0])
	assert.Equal(t, "#9", rows[3].Values[1])
}

func TestBuildRowsFormatsValues(t *testing.T) {
	rows := BuildRows(comparableSchools())
	byLabel := make(map[string]Row)
	for _, row := range rows {
		byLabel[row.Label] = row
	}

	assert.Equal(t, "₹34.0L", byLabel["Average Package"].Values[0])
	assert.Equal(t, "₹115.0L", byLabel["Highest Package"].Values[0])
	assert.Equal(t, "100%", byLabel["Placement Rate"].Values[0])
	assert.Equal(t, "98.5%", byLabel["Placement Rate"].Values[1])
	assert.Equal(t, "₹23.0L - ₹25.0L", byLabel["Fees Range"].Values[0])
	assert.Equal(t, "CAT, GMAT", byLabel["Accepted Exams"].Values[0])
}

func TestBuildRowsMissingValuesRenderNA(t *testing.T) {
	rows := BuildRows([]models.School{{ID: "empty", Name: "Bare School"}, comparableSchools()[0]})
	byLabel := make(map[string]Row)
	for _, row := range rows {
		byLabel[row.Label] = row
	}

	for _, label := range []string{
		"Location", "Type", "NIRF Ranking", "Average Package", "Highest Package",
		"Placement Rate", "Total Seats", "Fees Range", "Established",
		"Accepted Exams", "Website",
	} {
		assert.Equal(t, NotAvailable, byLabel[label].Values[0], "label %s", label)
	}
}

func TestBuildWorkbookLayout(t *testing.T) {
	schools := comparableSchools()
	generatedAt := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	f, err := BuildWorkbook(schools, generatedAt)
	require.NoError(t, err)

	title, err := f.GetCellValue("Comparison", "A1")
	require.NoError(t, err)
	assert.Equal(t, "B-School Comparison", title)

	stamp, _ := f.GetCellValue("Comparison", "A2")
	assert.Equal(t, "Generated on: 14 Mar 2025", stamp)

	// Заголовок: колонка критериев плюс по колонке на школу в порядке выбора.
	header, _ := f.GetCellValue("Comparison", "A4")
	assert.Equal(t, "Criteria", header)
	first, _ := f.GetCellValue("Comparison", "B4")
	assert.Equal(t, "IIM-A", first)
	second, _ := f.GetCellValue("Comparison", "C4")
	assert.Equal(t, "XLRI", second)
	beyond, _ := f.GetCellValue("Comparison", "D4")
	assert.Empty(t, beyond, "no third data column for two schools")

	// Первая строка данных.
	label, _ := f.GetCellValue("Comparison", "A5")
	assert.Equal(t, "Full Name", label)
	value, _ := f.GetCellValue("Comparison", "B5")
	assert.Equal(t, "Indian Institute of Management Ahmedabad", value)
}
