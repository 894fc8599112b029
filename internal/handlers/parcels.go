package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/swiftship/parcel-backend/internal/models"
)

// ListParcels returns all parcels, newest first, optionally filtered by the
// creator's email.
func ListParcels(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.WithContext(c.Request.Context()).Order("created_at DESC")
		if email := c.Query("email"); email != "" {
			query = query.Where("created_by_email = ?", email)
		}

		parcels := make([]models.Parcel, 0)
		if err := query.Find(&parcels).Error; err != nil {
			c.JSON(500, gin.H{"message": "failed to get parcels"})
			return
		}

		c.JSON(200, parcels)
	}
}

// GetParcel fetches a single parcel by id.
func GetParcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "parcel")
		if !ok {
			return
		}

		var parcel models.Parcel
		if err := db.WithContext(c.Request.Context()).First(&parcel, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(404, gin.H{"message": "parcel not found"})
				return
			}
			c.JSON(500, gin.H{"message": "failed to fetch parcel"})
			return
		}

		c.JSON(200, parcel)
	}
}

// CreateParcel inserts a new parcel. New parcels always start unpaid.
func CreateParcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			CreatedByEmail  string  `json:"createdByEmail" binding:"required,email"`
			Title           string  `json:"title"`
			Type            string  `json:"type"`
			Weight          float64 `json:"weight" binding:"omitempty,gt=0"`
			ReceiverName    string  `json:"receiverName"`
			ReceiverContact string  `json:"receiverContact"`
			Destination     string  `json:"destination"`
			Cost            int64   `json:"cost" binding:"omitempty,gte=0"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		parcel := models.Parcel{
			CreatedByEmail:  input.CreatedByEmail,
			Title:           input.Title,
			Type:            input.Type,
			Weight:          input.Weight,
			ReceiverName:    input.ReceiverName,
			ReceiverContact: input.ReceiverContact,
			Destination:     input.Destination,
			Cost:            input.Cost,
			PaymentStatus:   models.PaymentStatusUnpaid,
		}

		if err := db.WithContext(c.Request.Context()).Create(&parcel).Error; err != nil {
			c.JSON(500, gin.H{"message": "failed to create parcel"})
			return
		}

		c.JSON(201, gin.H{"insertedId": parcel.ID})
	}
}

// DeleteParcel removes a parcel by id. Deleting an absent id is not an
// error; the count tells the caller what happened.
func DeleteParcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "parcel")
		if !ok {
			return
		}

		result := db.WithContext(c.Request.Context()).Delete(&models.Parcel{}, id)
		if result.Error != nil {
			c.JSON(500, gin.H{"message": "failed to delete parcel"})
			return
		}

		c.JSON(200, gin.H{"deletedCount": result.RowsAffected})
	}
}
