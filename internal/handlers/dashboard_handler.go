package handlers

import (
	"log/slog"
	"net/http"

	"bschool-portal/config"
	"bschool-portal/models"

	"github.com/gin-gonic/gin"
)

// DashboardHandler returns the admin dashboard data: entity counts and the
// most recent schools, contact submissions and subscribers.
func DashboardHandler(c *gin.Context) {
	var (
		totalSchools     int64
		totalPrograms    int64
		totalDeadlines   int64
		totalSubscribers int64
		totalContacts    int64
		unreadContacts   int64
	)
	config.DB.Model(&models.School{}).Count(&totalSchools)
	config.DB.Model(&models.Program{}).Count(&totalPrograms)
	config.DB.Model(&models.Deadline{}).Count(&totalDeadlines)
	config.DB.Model(&models.NewsletterSubscriber{}).Count(&totalSubscribers)
	config.DB.Model(&models.ContactSubmission{}).Count(&totalContacts)
	config.DB.Model(&models.ContactSubmission{}).Where("is_read = ?", false).Count(&unreadContacts)

	var recentSchools []models.School
	if err := config.DB.Order("created_at desc").Limit(5).Find(&recentSchools).Error; err != nil {
		slog.Error("Failed to fetch recent schools", "error", err)
	}

	var recentContacts []models.ContactSubmission
	if err := config.DB.Order("created_at desc").Limit(5).Find(&recentContacts).Error; err != nil {
		slog.Error("Failed to fetch recent contacts", "error", err)
	}

	var recentSubscribers []models.NewsletterSubscriber
	if err := config.DB.Order("subscribed_at desc").Limit(5).Find(&recentSubscribers).Error; err != nil {
		slog.Error("Failed to fetch recent subscribers", "error", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"totals": gin.H{
			"schools":         totalSchools,
			"programs":        totalPrograms,
			"deadlines":       totalDeadlines,
			"subscribers":     totalSubscribers,
			"contacts":        totalContacts,
			"unread_contacts": unreadContacts,
		},
		"recent_schools":     recentSchools,
		"recent_contacts":    recentContacts,
		"recent_subscribers": recentSubscribers,
	})
}
