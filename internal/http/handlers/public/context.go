package public

import (
	"github.com/gin-gonic/gin"

	"github.com/solodko/solodko-api/internal/constants"
)

// currentUserID returns the authenticated user ID, or nil for guests.
func currentUserID(c *gin.Context) *uint {
	value, ok := c.Get(constants.ContextKeyUserID)
	if !ok {
		return nil
	}
	id, ok := value.(uint)
	if !ok || id == 0 {
		return nil
	}
	return &id
}
