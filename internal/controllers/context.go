package controllers

import "github.com/gin-gonic/gin"

// currentUserID reads the identity the auth middleware resolved. Controllers
// never authenticate; they only scope queries and writes to this id.
func currentUserID(c *gin.Context) uint {
	if v, ok := c.Get("user_id"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
