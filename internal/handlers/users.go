package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/swiftship/parcel-backend/internal/models"
)

// RegisterUser creates the user on first sign-in. The insert is
// insert-if-absent on the unique email, so two concurrent registrations
// cannot both create a row.
func RegisterUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email       string    `json:"email" binding:"required,email"`
			Name        string    `json:"name"`
			PhotoURL    string    `json:"photoURL"`
			Role        string    `json:"role"`
			LastLogInAt time.Time `json:"lastLogInAt"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		role := input.Role
		if role == "" {
			role = "user"
		}

		lastLogIn := input.LastLogInAt
		if lastLogIn.IsZero() {
			lastLogIn = time.Now().UTC()
		}

		user := models.User{
			Email:       input.Email,
			Name:        input.Name,
			PhotoURL:    input.PhotoURL,
			Role:        role,
			LastLogInAt: lastLogIn,
		}

		result := db.WithContext(c.Request.Context()).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "email"}},
				DoNothing: true,
			}).
			Create(&user)
		if result.Error != nil {
			c.JSON(500, gin.H{"message": "failed to register user"})
			return
		}

		if result.RowsAffected == 0 {
			c.JSON(200, gin.H{"message": "user already exists", "inserted": false})
			return
		}

		c.JSON(201, gin.H{"inserted": true, "insertedId": user.ID})
	}
}
