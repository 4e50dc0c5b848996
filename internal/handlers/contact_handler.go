package handlers

import (
	"log/slog"
	"net/http"

	"bschool-portal/config"
	"bschool-portal/models"

	"github.com/gin-gonic/gin"
)

// ContactInput defines the public contact form fields. Presence is the
// only validation applied.
type ContactInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// SubmitContactHandler stores a contact form submission.
func SubmitContactHandler(c *gin.Context) {
	var input ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	submission := models.ContactSubmission{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	}
	if err := config.DB.Create(&submission).Error; err != nil {
		slog.Error("Failed to save contact submission", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message. Please try again."})
		return
	}

	EventsHub.Notify("contact_submitted", submission)
	c.JSON(http.StatusCreated, gin.H{"message": "Message sent successfully! We'll get back to you soon."})
}

// ListContactSubmissionsHandler returns the paginated admin inbox, newest
// first, optionally narrowed to unread messages.
func ListContactSubmissionsHandler(c *gin.Context) {
	query := config.DB.Model(&models.ContactSubmission{}).Order("created_at desc")
	if c.Query("unread") == "true" {
		query = query.Where("is_read = ?", false)
	}

	var totalRows int64
	query.Count(&totalRows)

	var submissions []models.ContactSubmission
	if err := query.Scopes(Paginate(c)).Find(&submissions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch contact submissions"})
		return
	}
	if submissions == nil {
		submissions = make([]models.ContactSubmission, 0)
	}

	c.JSON(http.StatusOK, CreatePaginatedResponse(c, submissions, totalRows))
}

// MarkContactReadHandler marks one submission as read.
func MarkContactReadHandler(c *gin.Context) {
	result := config.DB.Model(&models.ContactSubmission{}).
		Where("id = ?", c.Param("id")).
		Update("is_read", true)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update submission"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Marked as read"})
}

// RespondContactHandler stores the admin response and marks the
// submission as read.
func RespondContactHandler(c *gin.Context) {
	var input struct {
		Response string `json:"response" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Response text is required"})
		return
	}

	result := config.DB.Model(&models.ContactSubmission{}).
		Where("id = ?", c.Param("id")).
		Updates(map[string]interface{}{"admin_response": input.Response, "is_read": true})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save response"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Response saved"})
}
