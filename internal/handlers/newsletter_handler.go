package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"bschool-portal/config"
	"bschool-portal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewsletterInput defines the newsletter signup form fields.
type NewsletterInput struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Сообщения формы подписки. Дубликат email отличается от прочих ошибок.
const (
	msgSubscribed        = "Successfully subscribed to our newsletter!"
	msgAlreadySubscribed = "You are already subscribed to our newsletter."
	msgSubscribeFailed   = "Failed to subscribe. Please try again."
)

// subscribeErrorResponse maps an insert error to the HTTP status and the
// user-visible message, distinguishing the duplicate-email condition.
func subscribeErrorResponse(err error) (int, string) {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return http.StatusConflict, msgAlreadySubscribed
	}
	return http.StatusInternalServerError, msgSubscribeFailed
}

// SubscribeNewsletterHandler stores a newsletter signup.
func SubscribeNewsletterHandler(c *gin.Context) {
	var input NewsletterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	subscriber := models.NewsletterSubscriber{
		Email: input.Email,
		Name:  input.Name,
		Phone: input.Phone,
	}
	if err := config.DB.Create(&subscriber).Error; err != nil {
		status, message := subscribeErrorResponse(err)
		if status == http.StatusInternalServerError {
			slog.Error("Failed to save newsletter subscriber", "error", err)
		}
		c.JSON(status, gin.H{"error": message})
		return
	}

	EventsHub.Notify("newsletter_subscribed", subscriber)
	c.JSON(http.StatusCreated, gin.H{"message": msgSubscribed})
}

// ListSubscribersHandler returns the paginated subscriber list, newest
// first.
func ListSubscribersHandler(c *gin.Context) {
	var totalRows int64
	config.DB.Model(&models.NewsletterSubscriber{}).Count(&totalRows)

	var subscribers []models.NewsletterSubscriber
	err := config.DB.Order("subscribed_at desc").
		Scopes(Paginate(c)).
		Find(&subscribers).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch subscribers"})
		return
	}
	if subscribers == nil {
		subscribers = make([]models.NewsletterSubscriber, 0)
	}

	c.JSON(http.StatusOK, CreatePaginatedResponse(c, subscribers, totalRows))
}

// DeactivateSubscriberHandler turns off a subscription without deleting
// the record.
func DeactivateSubscriberHandler(c *gin.Context) {
	result := config.DB.Model(&models.NewsletterSubscriber{}).
		Where("id = ?", c.Param("id")).
		Update("is_active", false)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update subscriber"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subscriber not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subscriber deactivated"})
}
