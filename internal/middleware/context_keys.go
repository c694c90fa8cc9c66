package middleware

import "github.com/gin-gonic/gin"

// callerIDKey is the key used to store the authenticated caller's id in the
// Gin context.
const callerIDKey = contextKey("callerID")

// GetCallerIDFromContext retrieves the authenticated caller id from the Gin
// context. It returns the caller id and a boolean indicating if it was found.
func GetCallerIDFromContext(c *gin.Context) (string, bool) {
	callerVal, exists := c.Get(string(callerIDKey))
	if !exists {
		// check in the request context as well
		ctxVal := c.Request.Context().Value(callerIDKey)
		if ctxVal != nil {
			if caller, ok := ctxVal.(string); ok {
				return caller, true
			}
		}
		return "", false
	}

	callerID, ok := callerVal.(string)
	if !ok {
		return "", false
	}
	return callerID, true
}
