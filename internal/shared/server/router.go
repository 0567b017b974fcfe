package server

import (
	"github.com/gin-gonic/gin"

	"resume-parser/internal/metrics"
	"resume-parser/internal/resumes"
	"resume-parser/internal/shared/config"
	"resume-parser/internal/shared/server/middleware"
	"resume-parser/internal/shared/server/respond"
)

// Version is reported by the root endpoint.
const Version = "1.0.0"

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config        config.Config
	ResumeHandler *resumes.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		metrics.GinMiddleware(),
	)

	r.GET("/", func(c *gin.Context) {
		respond.OK(c, gin.H{
			"message": "Resume Parser API",
			"version": Version,
			"docs":    "/docs",
		})
	})
	r.GET("/docs", func(c *gin.Context) {
		respond.OK(c, gin.H{
			"GET /health":               "service and database status",
			"POST /parse_resume":        "parse a PDF resume without saving (multipart field: file)",
			"POST /upload_and_save":     "parse and persist a PDF resume (multipart fields: file, userId)",
			"GET /resume/:id":           "fetch a parsed resume by id",
			"GET /resumes/user/:userId": "fetch all parsed resumes for a user",
			"GET /metrics":              "Prometheus metrics",
		})
	})
	r.GET("/metrics", metrics.Handler())

	deps.ResumeHandler.RegisterRoutes(&r.RouterGroup)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
