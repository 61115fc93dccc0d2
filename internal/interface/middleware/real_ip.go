package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// firstValidIP returns the first parseable address in a comma-separated
// header value.
func firstValidIP(header string) string {
	for _, part := range strings.Split(header, ",") {
		if ip := net.ParseIP(strings.TrimSpace(part)); ip != nil {
			return ip.String()
		}
	}
	return ""
}

// RealIP resolves the client address behind proxies and stores it under
// "real_ip" for the rate limiter. X-Real-IP wins over X-Forwarded-For
// (left-most entry); c.ClientIP() is the fallback.
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := firstValidIP(c.GetHeader("X-Real-IP"))
		if ip == "" {
			ip = firstValidIP(c.GetHeader("X-Forwarded-For"))
		}
		if ip == "" {
			ip = c.ClientIP()
		}
		c.Set("real_ip", ip)
		c.Next()
	}
}
