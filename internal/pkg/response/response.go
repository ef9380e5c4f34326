package response

import "github.com/gin-gonic/gin"

// Envelope is the shape of every API response body.
type Envelope struct {
	Success bool    `json:"success"`
	Data    any     `json:"data"`
	Error   *string `json:"error"`
}

func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, Envelope{Success: true, Data: data})
}

func Error(c *gin.Context, statusCode int, code string) {
	c.JSON(statusCode, Envelope{Success: false, Error: &code})
}

// Abort writes an error envelope and stops the handler chain.
func Abort(c *gin.Context, statusCode int, code string) {
	c.AbortWithStatusJSON(statusCode, Envelope{Success: false, Error: &code})
}
