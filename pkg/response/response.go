package response

import (
	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/guest-services-api/pkg/errors"
)

// MessageBody is the shape of every error and of bare acknowledgements.
// Error codes and causes stay server side.
type MessageBody struct {
	Message string `json:"message"`
}

// JSON sends a success payload with caching disabled.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, data)
}

// Message responds with {"message": ...}.
func Message(c *gin.Context, status int, message string) {
	JSON(c, status, MessageBody{Message: message})
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.AbortWithStatusJSON(appErr.Status, MessageBody{Message: appErr.Message})
}
