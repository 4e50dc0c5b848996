package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"bschool-portal/config"
	"bschool-portal/internal/catalog"
	"bschool-portal/models"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	schoolCacheKey = "bschools:all"
	schoolCacheTTL = 5 * time.Minute
)

// fetchAllSchools returns the full directory snapshot, ranking-ascending,
// through the Redis cache when available.
func fetchAllSchools() ([]models.School, error) {
	if config.RDB != nil {
		cached, err := config.RDB.Get(config.Ctx, schoolCacheKey).Result()
		if err == nil {
			var schools []models.School
			if json.Unmarshal([]byte(cached), &schools) == nil {
				return schools, nil
			}
			slog.Warn("Failed to unmarshal cached school list")
		} else if err != redis.Nil {
			slog.Error("Redis GET command failed", "error", err, "key", schoolCacheKey)
		}
	}

	var schools []models.School
	if err := config.DB.Order("nirf_ranking asc").Find(&schools).Error; err != nil {
		return nil, err
	}

	if config.RDB != nil {
		if jsonData, err := json.Marshal(schools); err == nil {
			if err := config.RDB.Set(config.Ctx, schoolCacheKey, jsonData, schoolCacheTTL).Err(); err != nil {
				slog.Error("Failed to cache school list", "error", err)
			}
		}
	}
	return schools, nil
}

// invalidateSchoolCache сбрасывает снимок каталога после любой мутации.
func invalidateSchoolCache() {
	if config.RDB == nil {
		return
	}
	if err := config.RDB.Del(config.Ctx, schoolCacheKey).Err(); err != nil {
		slog.Warn("Failed to invalidate school cache", "error", err)
	}
}

// filterSpecFromQuery reads the directory filter state from the request.
// Absent parameters keep their cleared defaults.
func filterSpecFromQuery(c *gin.Context) catalog.FilterSpec {
	spec := catalog.DefaultSpec()
	spec.Search = c.Query("search")
	spec.Types = c.QueryArray("type")
	spec.State = c.Query("state")
	spec.Exams = c.QueryArray("exam")
	if v, err := strconv.ParseInt(c.Query("fees_min"), 10, 64); err == nil {
		spec.FeesMin = v
	}
	if v, err := strconv.ParseInt(c.Query("fees_max"), 10, 64); err == nil {
		spec.FeesMax = v
	}
	if v, err := strconv.Atoi(c.Query("ranking_min")); err == nil {
		spec.RankingMin = v
	}
	if v, err := strconv.Atoi(c.Query("ranking_max")); err == nil {
		spec.RankingMax = v
	}
	if sortKey := c.Query("sort"); sortKey != "" {
		spec.SortKey = sortKey
	}
	return spec
}

// ListSchoolsHandler serves the directory: the filtered, ordered view over
// the full snapshot, plus the facet inventories for the sidebar.
func ListSchoolsHandler(c *gin.Context) {
	schools, err := fetchAllSchools()
	if err != nil {
		slog.Error("Failed to fetch schools", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch schools"})
		return
	}

	filtered := catalog.Apply(schools, filterSpecFromQuery(c))

	c.JSON(http.StatusOK, gin.H{
		"data":    filtered,
		"total":   len(schools),
		"showing": len(filtered),
		"states":  catalog.States(schools),
		"exams":   catalog.Exams(schools),
	})
}

// GetSchoolHandler serves the detail view: the school with its programs,
// cutoffs (latest year first) and active deadlines.
func GetSchoolHandler(c *gin.Context) {
	id := c.Param("id")

	var school models.School
	if err := config.DB.First(&school, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "School not found"})
		return
	}

	var programs []models.Program
	config.DB.Where("bschool_id = ?", id).Find(&programs)

	var cutoffs []models.Cutoff
	config.DB.Where("bschool_id = ?", id).Order("year desc").Find(&cutoffs)

	var schoolDeadlines []models.Deadline
	config.DB.Where("bschool_id = ? AND is_active = ?", id, true).
		Order("deadline_date asc").Find(&schoolDeadlines)

	c.JSON(http.StatusOK, gin.H{
		"school":    school,
		"programs":  programs,
		"cutoffs":   cutoffs,
		"deadlines": schoolDeadlines,
	})
}

// SchoolInput defines the fields accepted when creating or updating a
// school from the admin panel.
type SchoolInput struct {
	Name            string   `json:"name" binding:"required"`
	ShortName       string   `json:"short_name"`
	LogoURL         string   `json:"logo_url"`
	Location        string   `json:"location"`
	City            string   `json:"city"`
	State           string   `json:"state"`
	Type            string   `json:"type"`
	Website         string   `json:"website"`
	Description     string   `json:"description"`
	FeesMin         int64    `json:"fees_min"`
	FeesMax         int64    `json:"fees_max"`
	AvgPackage      int64    `json:"avg_package"`
	HighestPackage  int64    `json:"highest_package"`
	PlacementRate   float64  `json:"placement_rate"`
	NIRFRanking     int      `json:"nirf_ranking"`
	AcceptedExams   []string `json:"accepted_exams"`
	TotalSeats      int      `json:"total_seats"`
	EstablishedYear int      `json:"established_year"`
	Accreditation   []string `json:"accreditation"`
	Facilities      []string `json:"facilities"`
}

func (in *SchoolInput) apply(school *models.School) {
	school.Name = in.Name
	school.ShortName = in.ShortName
	school.LogoURL = in.LogoURL
	school.Location = in.Location
	school.City = in.City
	school.State = in.State
	school.Type = in.Type
	school.Website = in.Website
	school.Description = in.Description
	school.FeesMin = in.FeesMin
	school.FeesMax = in.FeesMax
	school.AvgPackage = in.AvgPackage
	school.HighestPackage = in.HighestPackage
	school.PlacementRate = in.PlacementRate
	school.NIRFRanking = in.NIRFRanking
	school.AcceptedExams = in.AcceptedExams
	school.TotalSeats = in.TotalSeats
	school.EstablishedYear = in.EstablishedYear
	school.Accreditation = in.Accreditation
	school.Facilities = in.Facilities
}

// CreateSchoolHandler handles the creation of a new school.
func CreateSchoolHandler(c *gin.Context) {
	var input SchoolInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var school models.School
	input.apply(&school)

	if err := config.DB.Create(&school).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create school: " + err.Error()})
		return
	}

	invalidateSchoolCache()
	EventsHub.Notify("school_created", school)
	c.JSON(http.StatusCreated, school)
}

// UpdateSchoolHandler updates an existing school.
func UpdateSchoolHandler(c *gin.Context) {
	id := c.Param("id")
	var school models.School
	if err := config.DB.First(&school, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "School not found"})
		return
	}

	var input SchoolInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.apply(&school)

	if err := config.DB.Save(&school).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update school"})
		return
	}

	invalidateSchoolCache()
	c.JSON(http.StatusOK, school)
}

// DeleteSchoolHandler deletes a school by its ID.
func DeleteSchoolHandler(c *gin.Context) {
	if result := config.DB.Delete(&models.School{}, "id = ?", c.Param("id")); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete school"})
	} else if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "School not found"})
	} else {
		invalidateSchoolCache()
		c.JSON(http.StatusOK, gin.H{"message": "School deleted successfully"})
	}
}
