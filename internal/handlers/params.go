package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// idParam parses the :id path parameter. On a non-numeric value it responds
// 400 and returns false.
func idParam(c *gin.Context, resource string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"message": "invalid " + resource + " id"})
		return 0, false
	}
	return id, true
}
