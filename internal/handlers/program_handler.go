package handlers

import (
	"net/http"

	"bschool-portal/config"
	"bschool-portal/models"

	"github.com/gin-gonic/gin"
)

// ProgramInput defines the fields accepted for a program from the admin panel.
type ProgramInput struct {
	BSchoolID       string   `json:"bschool_id" binding:"required"`
	Name            string   `json:"name" binding:"required"`
	Duration        string   `json:"duration"`
	Fees            int64    `json:"fees"`
	Seats           int      `json:"seats"`
	Specializations []string `json:"specializations"`
}

// ListProgramsHandler returns the programs of one school, or all programs
// with their school preloaded for the admin table.
func ListProgramsHandler(c *gin.Context) {
	var programs []models.Program
	query := config.DB.Preload("School").Order("name")
	if schoolID := c.Query("bschool_id"); schoolID != "" {
		query = query.Where("bschool_id = ?", schoolID)
	}
	if err := query.Find(&programs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch programs"})
		return
	}
	c.JSON(http.StatusOK, programs)
}

// CreateProgramHandler handles the creation of a new program.
func CreateProgramHandler(c *gin.Context) {
	var input ProgramInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Программа всегда принадлежит существующей школе.
	var school models.School
	if err := config.DB.First(&school, "id = ?", input.BSchoolID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "School not found"})
		return
	}

	program := models.Program{
		BSchoolID:       input.BSchoolID,
		Name:            input.Name,
		Duration:        input.Duration,
		Fees:            input.Fees,
		Seats:           input.Seats,
		Specializations: input.Specializations,
	}
	if err := config.DB.Create(&program).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create program"})
		return
	}
	c.JSON(http.StatusCreated, program)
}

// UpdateProgramHandler updates an existing program.
func UpdateProgramHandler(c *gin.Context) {
	var program models.Program
	if err := config.DB.First(&program, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Program not found"})
		return
	}

	var input ProgramInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	program.BSchoolID = input.BSchoolID
	program.Name = input.Name
	program.Duration = input.Duration
	program.Fees = input.Fees
	program.Seats = input.Seats
	program.Specializations = input.Specializations

	if err := config.DB.Save(&program).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update program"})
		return
	}
	c.JSON(http.StatusOK, program)
}

// DeleteProgramHandler deletes a program by its ID.
func DeleteProgramHandler(c *gin.Context) {
	if result := config.DB.Delete(&models.Program{}, "id = ?", c.Param("id")); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete program"})
	} else if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Program not found"})
	} else {
		c.JSON(http.StatusOK, gin.H{"message": "Program deleted successfully"})
	}
}
