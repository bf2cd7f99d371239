package utils

import "github.com/gin-gonic/gin"

// RespondError writes the API's error body shape: {"error": "<detail>"}.
func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, gin.H{"error": err.Error()})
}

// RespondMessage writes a confirmation body: {"message": "<text>"}.
func RespondMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}
