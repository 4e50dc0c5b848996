package handlers

import (
	"net/http"

	"bschool-portal/config"
	"bschool-portal/models"

	"github.com/gin-gonic/gin"
)

// CutoffInput defines one exam/year cutoff row for the admin panel.
type CutoffInput struct {
	BSchoolID string  `json:"bschool_id" binding:"required"`
	ExamName  string  `json:"exam_name" binding:"required"`
	Year      int     `json:"year" binding:"required"`
	General   float64 `json:"general"`
	OBC       float64 `json:"obc"`
	SC        float64 `json:"sc"`
	ST        float64 `json:"st"`
	EWS       float64 `json:"ews"`
	PWD       float64 `json:"pwd"`
}

func (in *CutoffInput) apply(cutoff *models.Cutoff) {
	cutoff.BSchoolID = in.BSchoolID
	cutoff.ExamName = in.ExamName
	cutoff.Year = in.Year
	cutoff.General = in.General
	cutoff.OBC = in.OBC
	cutoff.SC = in.SC
	cutoff.ST = in.ST
	cutoff.EWS = in.EWS
	cutoff.PWD = in.PWD
}

// ListCutoffsHandler returns cutoff rows, optionally for a single school,
// latest year first.
func ListCutoffsHandler(c *gin.Context) {
	var cutoffs []models.Cutoff
	query := config.DB.Preload("School").Order("year desc, exam_name")
	if schoolID := c.Query("bschool_id"); schoolID != "" {
		query = query.Where("bschool_id = ?", schoolID)
	}
	if err := query.Find(&cutoffs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch cutoffs"})
		return
	}
	c.JSON(http.StatusOK, cutoffs)
}

// CreateCutoffHandler handles the creation of a new cutoff row.
func CreateCutoffHandler(c *gin.Context) {
	var input CutoffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var school models.School
	if err := config.DB.First(&school, "id = ?", input.BSchoolID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "School not found"})
		return
	}

	var cutoff models.Cutoff
	input.apply(&cutoff)
	if err := config.DB.Create(&cutoff).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cutoff"})
		return
	}
	c.JSON(http.StatusCreated, cutoff)
}

// UpdateCutoffHandler updates an existing cutoff row.
func UpdateCutoffHandler(c *gin.Context) {
	var cutoff models.Cutoff
	if err := config.DB.First(&cutoff, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cutoff not found"})
		return
	}

	var input CutoffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.apply(&cutoff)

	if err := config.DB.Save(&cutoff).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cutoff"})
		return
	}
	c.JSON(http.StatusOK, cutoff)
}

// DeleteCutoffHandler deletes a cutoff row by its ID.
func DeleteCutoffHandler(c *gin.Context) {
	if result := config.DB.Delete(&models.Cutoff{}, "id = ?", c.Param("id")); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cutoff"})
	} else if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cutoff not found"})
	} else {
		c.JSON(http.StatusOK, gin.H{"message": "Cutoff deleted successfully"})
	}
}
