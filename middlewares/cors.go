package middlewares

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows the origins listed in CORS_ALLOW_ORIGINS (comma
// separated). With no configuration it allows every origin, which also
// forces credentials off.
func CORSMiddleware() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Content-Length", "Accept", "Authorization"},
		MaxAge:       12 * time.Hour,
	}

	if origins := os.Getenv("CORS_ALLOW_ORIGINS"); origins != "" {
		cfg.AllowOrigins = strings.Split(origins, ",")
		cfg.AllowCredentials = true
	} else {
		cfg.AllowAllOrigins = true
	}

	return cors.New(cfg)
}
