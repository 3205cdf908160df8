package parseErrors

import "github.com/gin-gonic/gin"

const genericMessage = "unexpected error, please try again"

// ErrorResponse shapes an error into the JSON body returned to clients
func ErrorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}

// GenericErrorResponse is the body returned for unrecognized internal failures,
// so store and provider internals never leak to clients.
func GenericErrorResponse() gin.H {
	return gin.H{"error": genericMessage}
}
