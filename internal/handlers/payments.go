package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/swiftship/parcel-backend/internal/middleware"
	"github.com/swiftship/parcel-backend/internal/models"
	"github.com/swiftship/parcel-backend/internal/services"
)

var errParcelNotPayable = errors.New("parcel not found or already paid")

// ListPayments returns the requester's payment history, newest first. The
// email scope is enforced against the verified token: a filter for someone
// else's email is forbidden, and an omitted filter means the requester's own.
func ListPayments(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		requester := c.GetString(middleware.ContextEmailKey)

		email := c.Query("email")
		if email == "" {
			email = requester
		}
		if email != requester {
			c.JSON(403, gin.H{"message": "forbidden access"})
			return
		}

		payments := make([]models.Payment, 0)
		err := db.WithContext(c.Request.Context()).
			Where("email = ?", email).
			Order("paid_at DESC").
			Find(&payments).Error
		if err != nil {
			c.JSON(500, gin.H{"message": "failed to get payments"})
			return
		}

		c.JSON(200, payments)
	}
}

// RecordPayment marks the parcel paid and inserts the payment record in one
// transaction: either both writes land or neither does. A parcel that is
// missing or already paid rolls back with 404 and no payment row.
func RecordPayment(db *gorm.DB, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			ParcelID      string `json:"parcelId" binding:"required"`
			Email         string `json:"email" binding:"required,email"`
			Amount        int64  `json:"amount" binding:"required,gt=0"`
			PaymentMethod string `json:"paymentMethod"`
			TransactionID string `json:"transactionId" binding:"required"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		// ParcelID is stored opaquely on the payment row, but the parcel
		// update needs a numeric key. A value that cannot name a parcel is
		// indistinguishable from a missing one.
		parcelID, parseErr := strconv.ParseUint(input.ParcelID, 10, 64)
		if parseErr != nil {
			c.JSON(404, gin.H{"message": "parcel not found or already paid"})
			return
		}

		now := time.Now().UTC()
		payment := models.Payment{
			ParcelID:      input.ParcelID,
			Email:         input.Email,
			Amount:        input.Amount,
			PaymentMethod: input.PaymentMethod,
			TransactionID: input.TransactionID,
			PaidAtString:  now.Format(time.RFC3339),
			PaidAt:        now,
		}

		err := db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
			result := tx.Model(&models.Parcel{}).
				Where("id = ? AND payment_status <> ?", parcelID, models.PaymentStatusPaid).
				Update("payment_status", models.PaymentStatusPaid)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return errParcelNotPayable
			}

			return tx.Create(&payment).Error
		})
		if errors.Is(err, errParcelNotPayable) {
			c.JSON(404, gin.H{"message": "parcel not found or already paid"})
			return
		}
		if err != nil {
			log.Error().Err(err).Str("parcelId", input.ParcelID).Msg("payment processing failed")
			c.JSON(500, gin.H{"message": "failed to record payment"})
			return
		}

		c.JSON(201, gin.H{
			"message":    "payment recorded and parcel marked as paid",
			"insertedId": payment.ID,
		})
	}
}

// CreatePaymentIntent forwards the amount to the payment gateway and returns
// the client secret. Gateway rejections surface their message verbatim.
func CreatePaymentIntent(gateway services.PaymentGateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			AmountInCent int64 `json:"amountInCent" binding:"required,gt=0"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		clientSecret, err := gateway.CreatePaymentIntent(c.Request.Context(), input.AmountInCent)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		c.JSON(200, gin.H{"clientSecret": clientSecret})
	}
}
