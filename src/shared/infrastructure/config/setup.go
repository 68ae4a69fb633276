package config

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/PaulGerman23/motoshopV2/src/shared/infrastructure/middleware"
)

// SharedConfig contiene la configuración de los middlewares compartidos
type SharedConfig struct {
	EnableCORS     bool
	AllowedOrigins []string
	EnableCSRF     bool
}

// DefaultSharedConfig devuelve una configuración por defecto. Los
// orígenes permitidos se pueden pisar con ALLOWED_ORIGINS (separados
// por coma).
func DefaultSharedConfig() SharedConfig {
	origins := []string{"http://localhost:3000", "http://localhost:8080"}
	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	return SharedConfig{
		EnableCORS:     true,
		AllowedOrigins: origins,
		EnableCSRF:     true,
	}
}

// SetupSharedMiddleware configura los middlewares compartidos:
// CORS con credenciales (las cookies de sesión tienen que viajar),
// la sesión por cookie y el chequeo CSRF double-submit.
func SetupSharedMiddleware(router *gin.Engine, config SharedConfig) {
	if config.EnableCORS {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = config.AllowedOrigins
		corsConfig.AllowCredentials = true
		corsConfig.AddAllowHeaders("X-CSRF-Token")
		router.Use(cors.New(corsConfig))
	}

	router.Use(middleware.Session())

	if config.EnableCSRF {
		router.Use(middleware.CSRF())
	}
}
