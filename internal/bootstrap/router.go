package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	httpapi "github.com/nikita-tita/idea-intake/internal/api/http"
	"github.com/nikita-tita/idea-intake/internal/api/http/middleware"
	ideashttp "github.com/nikita-tita/idea-intake/internal/ideas/http"
	"github.com/nikita-tita/idea-intake/internal/observability"
)

type RouterDeps struct {
	LLM       ideashttp.Structurer
	Writer    ideashttp.CanvasWriter
	Logger    *zap.Logger
	StaticDir string
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(middleware.RequestID(dep.Logger))

	if dep.StaticDir != "" {
		r.StaticFile("/", dep.StaticDir+"/index.html")
		r.Static("/static", dep.StaticDir)
	}

	healthHandler := httpapi.NewHealthHandler()
	healthHandler.RegisterRoutes(r)

	r.GET("/metrics", gin.WrapH(observability.Handler()))

	api := r.Group("/api")
	ideasHandler := ideashttp.New(dep.LLM, dep.Writer, dep.Logger)
	ideasHandler.Register(api)

	return r
}
