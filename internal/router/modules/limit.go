package modules

import "github.com/gin-gonic/gin"

// orPass lets modules take an optional write limiter.
func orPass(h gin.HandlerFunc) gin.HandlerFunc {
	if h != nil {
		return h
	}
	return func(c *gin.Context) { c.Next() }
}
