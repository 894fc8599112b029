package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/swiftship/parcel-backend/internal/models"
)

// ListPendingRiders returns riders awaiting approval.
func ListPendingRiders(db *gorm.DB) gin.HandlerFunc {
	return listRidersByStatus(db, models.RiderStatusPending)
}

// ListActiveRiders returns riders currently delivering.
func ListActiveRiders(db *gorm.DB) gin.HandlerFunc {
	return listRidersByStatus(db, models.RiderStatusActive)
}

func listRidersByStatus(db *gorm.DB, status string) gin.HandlerFunc {
	return func(c *gin.Context) {
		riders := make([]models.Rider, 0)
		err := db.WithContext(c.Request.Context()).
			Where("status = ?", status).
			Find(&riders).Error
		if err != nil {
			c.JSON(500, gin.H{"message": "failed to load " + status + " riders"})
			return
		}

		c.JSON(200, riders)
	}
}

// CreateRider registers a new rider. Status defaults to "pending" unless the
// payload says otherwise.
func CreateRider(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name     string `json:"name" binding:"required"`
			Email    string `json:"email" binding:"omitempty,email"`
			Contact  string `json:"contact"`
			Region   string `json:"region"`
			District string `json:"district"`
			Status   string `json:"status"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		status := input.Status
		if status == "" {
			status = models.RiderStatusPending
		}

		rider := models.Rider{
			Name:     input.Name,
			Email:    input.Email,
			Contact:  input.Contact,
			Region:   input.Region,
			District: input.District,
			Status:   status,
		}

		if err := db.WithContext(c.Request.Context()).Create(&rider).Error; err != nil {
			c.JSON(500, gin.H{"message": "failed to create rider"})
			return
		}

		c.JSON(201, gin.H{"insertedId": rider.ID})
	}
}

// UpdateRiderStatus sets the rider's status to the provided value. The value
// is free text; no transition rules apply.
func UpdateRiderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "rider")
		if !ok {
			return
		}

		var input struct {
			Status string `json:"status" binding:"required"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		result := db.WithContext(c.Request.Context()).
			Model(&models.Rider{}).
			Where("id = ?", id).
			Update("status", input.Status)
		if result.Error != nil {
			c.JSON(500, gin.H{"message": "failed to update rider status"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(404, gin.H{"message": "rider not found"})
			return
		}

		c.JSON(200, gin.H{"modifiedCount": result.RowsAffected})
	}
}
