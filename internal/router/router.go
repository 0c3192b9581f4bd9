package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/collabhub-io/collabhub/docs"
	"github.com/collabhub-io/collabhub/internal/config"
	"github.com/collabhub-io/collabhub/internal/middleware"
	"github.com/collabhub-io/collabhub/internal/modules/handler"
	"github.com/collabhub-io/collabhub/internal/modules/model"
	"github.com/collabhub-io/collabhub/internal/modules/serializer"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	Config               *config.Config
	Log                  *zap.Logger
	Identity             model.Identity
	CollaborationHandler *handler.CollaborationHandler
	DirectoryHandler     *handler.DirectoryHandler
	ToolHandler          *handler.ToolHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	// Initialize logger for serializer package
	serializer.SetLogger(d.Log)

	r := gin.New()
	r.Use(gin.Recovery())

	if d.Config.Telemetry.Enabled && d.Config.Telemetry.OtlpEndpoint != "" {
		r.Use(middleware.OtelTracing(d.Config.App.Name))
		// Add trace ID to response header
		r.Use(middleware.TraceID())
	}

	r.Use(middleware.ZapLogger(d.Log))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "ok"}) })

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		v1.Use(middleware.Identity(d.Identity))

		// ping endpoint
		v1.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "pong"}) })

		collaborations := v1.Group("/collaborations")
		{
			collaborations.GET("", d.CollaborationHandler.ListCollaborations)
			collaborations.POST("", d.CollaborationHandler.CreateCollaboration)
			collaborations.GET("/:project_id", d.CollaborationHandler.GetCollaboration)
			collaborations.POST("/:project_id/close", d.CollaborationHandler.CloseCollaboration)
			collaborations.PUT("/:project_id/status", d.CollaborationHandler.UpdateCollaborationStatus)
		}

		directory := v1.Group("/directory")
		{
			directory.GET("/users", d.DirectoryHandler.SearchUsers)
			directory.GET("/users/:user_id", d.DirectoryHandler.GetUser)
		}

		tools := v1.Group("/tools")
		{
			tools.GET("", d.ToolHandler.ListTools)
			tools.POST("", d.ToolHandler.CreateTool)
			tools.GET("/:tool_id", d.ToolHandler.GetTool)
			tools.PUT("/:tool_id/summary", d.ToolHandler.UpdateToolSummary)
			tools.GET("/:tool_id/insights", d.ToolHandler.ListToolInsights)
			tools.POST("/:tool_id/insights", d.ToolHandler.AddToolInsight)
		}
	}

	return r
}
