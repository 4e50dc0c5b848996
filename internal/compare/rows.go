package compare

import (
	"fmt"
	"strings"

	"bschool-portal/models"
)

// NotAvailable заменяет отсутствующие значения в таблице сравнения.
const NotAvailable = "N/A"

// Row is one labeled line of the comparison table, with one value per
// selected school in selection order.
type Row struct {
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

// BuildRows serializes the schools into the fixed ordered row sequence of
// the comparison table.
func BuildRows(schools []models.School) []Row {
	return []Row{
		buildRow("Full Name", schools, func(s models.School) string { return orNA(s.Name) }),
		buildRow("Location", schools, func(s models.School) string { return orNA(s.Location) }),
		buildRow("Type", schools, func(s models.School) string { return orNA(s.Type) }),
		buildRow("NIRF Ranking", schools, func(s models.School) string {
			if s.NIRFRanking <= 0 {
				return NotAvailable
			}
			return fmt.Sprintf("#%d", s.NIRFRanking)
		}),
		buildRow("Average Package", schools, func(s models.School) string { return formatPackage(s.AvgPackage) }),
		buildRow("Highest Package", schools, func(s models.School) string { return formatPackage(s.HighestPackage) }),
		buildRow("Placement Rate", schools, func(s models.School) string {
			if s.PlacementRate <= 0 {
				return NotAvailable
			}
			return fmt.Sprintf("%g%%", s.PlacementRate)
		}),
		buildRow("Total Seats", schools, func(s models.School) string {
			if s.TotalSeats <= 0 {
				return NotAvailable
			}
			return fmt.Sprintf("%d", s.TotalSeats)
		}),
		buildRow("Fees Range", schools, func(s models.School) string {
			if s.FeesMin <= 0 && s.FeesMax <= 0 {
				return NotAvailable
			}
			return fmt.Sprintf("%s - %s", formatFees(s.FeesMin), formatFees(s.FeesMax))
		}),
		buildRow("Established", schools, func(s models.School) string {
			if s.EstablishedYear <= 0 {
				return NotAvailable
			}
			return fmt.Sprintf("%d", s.EstablishedYear)
		}),
		buildRow("Accepted Exams", schools, func(s models.School) string {
			if len(s.AcceptedExams) == 0 {
				return NotAvailable
			}
			return strings.Join(s.AcceptedExams, ", ")
		}),
		buildRow("Website", schools, func(s models.School) string { return orNA(s.Website) }),
	}
}

func buildRow(label string, schools []models.School, value func(models.School) string) Row {
	row := Row{Label: label, Values: make([]string, 0, len(schools))}
	for _, school := range schools {
		row.Values = append(row.Values, value(school))
	}
	return row
}

func orNA(value string) string {
	if value == "" {
		return NotAvailable
	}
	return value
}

// formatPackage renders a salary in lakh rupees, e.g. ₹24.5L.
func formatPackage(amount int64) string {
	if amount <= 0 {
		return NotAvailable
	}
	return fmt.Sprintf("₹%.1fL", float64(amount)/100000)
}

// formatFees renders fees in lakh, switching to crore from ₹1Cr upward.
func formatFees(amount int64) string {
	if amount >= 10000000 {
		return fmt.Sprintf("₹%.1fCr", float64(amount)/10000000)
	}
	return fmt.Sprintf("₹%.1fL", float64(amount)/100000)
}
