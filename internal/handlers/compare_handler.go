package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"bschool-portal/internal/compare"

	"github.com/gin-gonic/gin"
)

// selectionIDs reads the comma-separated school ids from the request.
func selectionIDs(c *gin.Context) []string {
	raw := c.Query("schools")
	if raw == "" {
		return nil
	}
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// CompareSchoolsHandler resolves the requested selection against the full
// list and returns the comparison. Resolution happens strictly after the
// list fetch: stage one loads the snapshot, stage two resolves the ids.
func CompareSchoolsHandler(c *gin.Context) {
	all, err := fetchAllSchools()
	if err != nil {
		slog.Error("Failed to fetch schools for comparison", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch schools"})
		return
	}

	sel := compare.Resolve(selectionIDs(c), all)

	response := gin.H{
		"schools": sel.Schools(),
		"ready":   sel.Ready(),
		"limit":   compare.MaxSchools,
	}
	if sel.Ready() {
		response["rows"] = compare.BuildRows(sel.Schools())
	}
	c.JSON(http.StatusOK, response)
}

// ExportComparisonHandler streams the comparison workbook. At least two
// resolved schools are required.
func ExportComparisonHandler(c *gin.Context) {
	all, err := fetchAllSchools()
	if err != nil {
		slog.Error("Failed to fetch schools for export", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch schools"})
		return
	}

	sel := compare.Resolve(selectionIDs(c), all)
	if !sel.Ready() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Select at least 2 schools to compare"})
		return
	}

	f, err := compare.BuildWorkbook(sel.Schools(), time.Now())
	if err != nil {
		slog.Error("Failed to build comparison workbook", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build export"})
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+compare.ExportFilename)
	if err := f.Write(c.Writer); err != nil {
		slog.Error("Failed to write comparison workbook", "error", err)
	}
}
