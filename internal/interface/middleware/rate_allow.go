package middleware

import (
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AllowPrivateIP bypasses the limiter for loopback and private-range clients.
func AllowPrivateIP() AllowFunc {
	return func(c *gin.Context) bool {
		parsed := net.ParseIP(ipFromCtx(c))
		return parsed != nil && (parsed.IsLoopback() || parsed.IsPrivate())
	}
}

// AllowReads bypasses the limiter for safe methods so only writes are counted.
func AllowReads() AllowFunc {
	return func(c *gin.Context) bool {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			return true
		}
		return false
	}
}

// AnyOf bypasses when any of the given funcs does.
func AnyOf(fns ...AllowFunc) AllowFunc {
	return func(c *gin.Context) bool {
		for _, fn := range fns {
			if fn != nil && fn(c) {
				return true
			}
		}
		return false
	}
}
