package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"bschool-portal/config"
	"bschool-portal/internal/deadlines"
	"bschool-portal/models"

	"github.com/gin-gonic/gin"
)

// ListDeadlinesHandler serves the deadline calendar: active deadlines with
// their school, optionally narrowed by type and month, bucketed into the
// upcoming window and the full month grouping.
func ListDeadlinesHandler(c *gin.Context) {
	var list []models.Deadline
	err := config.DB.Preload("School").
		Where("is_active = ?", true).
		Order("deadline_date asc").
		Find(&list).Error
	if err != nil {
		slog.Error("Failed to fetch deadlines", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch deadlines"})
		return
	}

	// Фильтры по типу и месяцу применяются до группировки, как на странице.
	if deadlineType := c.Query("type"); deadlineType != "" {
		filtered := make([]models.Deadline, 0, len(list))
		for _, d := range list {
			if d.Type == deadlineType {
				filtered = append(filtered, d)
			}
		}
		list = filtered
	}
	if monthStr := c.Query("month"); monthStr != "" {
		if month, err := strconv.Atoi(monthStr); err == nil && month >= 1 && month <= 12 {
			filtered := make([]models.Deadline, 0, len(list))
			for _, d := range list {
				if int(d.DeadlineDate.Month()) == month {
					filtered = append(filtered, d)
				}
			}
			list = filtered
		}
	}

	now := time.Now()
	c.JSON(http.StatusOK, gin.H{
		"upcoming": deadlines.Upcoming(list, now),
		"months":   deadlines.GroupByMonth(list),
		"total":    len(list),
	})
}

// DeadlineInput defines the fields accepted for a deadline from the admin
// panel. Dates arrive as YYYY-MM-DD.
type DeadlineInput struct {
	BSchoolID    string `json:"bschool_id" binding:"required"`
	Title        string `json:"title" binding:"required"`
	DeadlineDate string `json:"deadline_date" binding:"required"`
	Description  string `json:"description"`
	Type         string `json:"type"`
	IsActive     *bool  `json:"is_active"`
}

func (in *DeadlineInput) apply(d *models.Deadline) error {
	date, err := time.Parse("2006-01-02", in.DeadlineDate)
	if err != nil {
		return err
	}
	d.BSchoolID = in.BSchoolID
	d.Title = in.Title
	d.DeadlineDate = date
	d.Description = in.Description
	if in.Type != "" {
		d.Type = in.Type
	}
	if in.IsActive != nil {
		d.IsActive = *in.IsActive
	}
	return nil
}

// ListAllDeadlinesHandler returns every deadline, active or not, for the
// admin table.
func ListAllDeadlinesHandler(c *gin.Context) {
	var list []models.Deadline
	if err := config.DB.Preload("School").Order("deadline_date asc").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch deadlines"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// CreateDeadlineHandler handles the creation of a new deadline.
func CreateDeadlineHandler(c *gin.Context) {
	var input DeadlineInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var school models.School
	if err := config.DB.First(&school, "id = ?", input.BSchoolID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "School not found"})
		return
	}

	deadline := models.Deadline{IsActive: true, Type: models.DeadlineTypeApplication}
	if err := input.apply(&deadline); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deadline date, expected YYYY-MM-DD"})
		return
	}

	if err := config.DB.Create(&deadline).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create deadline"})
		return
	}
	c.JSON(http.StatusCreated, deadline)
}

// UpdateDeadlineHandler updates an existing deadline.
func UpdateDeadlineHandler(c *gin.Context) {
	var deadline models.Deadline
	if err := config.DB.First(&deadline, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deadline not found"})
		return
	}

	var input DeadlineInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := input.apply(&deadline); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deadline date, expected YYYY-MM-DD"})
		return
	}

	if err := config.DB.Save(&deadline).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update deadline"})
		return
	}
	c.JSON(http.StatusOK, deadline)
}

// DeleteDeadlineHandler deletes a deadline by its ID.
func DeleteDeadlineHandler(c *gin.Context) {
	if result := config.DB.Delete(&models.Deadline{}, "id = ?", c.Param("id")); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete deadline"})
	} else if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deadline not found"})
	} else {
		c.JSON(http.StatusOK, gin.H{"message": "Deadline deleted successfully"})
	}
}
