package handlers

import "github.com/gin-gonic/gin"

// Health is the liveness check.
func Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "parcel server is running"})
	}
}
