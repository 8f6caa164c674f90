package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/mh1-bff/internal/http/handlers"
	httpMW "github.com/yungbote/mh1-bff/internal/http/middleware"
	"github.com/yungbote/mh1-bff/internal/observability"
	"github.com/yungbote/mh1-bff/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	ServiceName    string
	AllowedOrigins []string
	Metrics        *observability.Metrics

	AuthMiddleware *httpMW.AuthMiddleware

	ActivitiesHandler *httpH.ActivitiesHandler
	DietPlansHandler  *httpH.DietPlansHandler
	NewsCardsHandler  *httpH.NewsCardsHandler

	MedicationSchedulesHandler *httpH.MedicationSchedulesHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.AllowedOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
		r.GET("/readyz", cfg.HealthHandler.Ready)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")
	{
		// Activities
		if cfg.ActivitiesHandler != nil {
			api.GET("/activities/mind", cfg.ActivitiesHandler.Mind)
			api.GET("/activities/fitness", cfg.ActivitiesHandler.Fitness)
			api.GET("/activities/pregnancy-coach/:week", cfg.ActivitiesHandler.PregnancyCoach)
		}

		// Diet plans (public content)
		if cfg.DietPlansHandler != nil {
			api.GET("/diet-plans/learn-more", cfg.DietPlansHandler.LearnMore)
			api.GET("/diet-plans/intro-stories/:trimester", cfg.DietPlansHandler.IntroStories)
		}

		// News
		if cfg.NewsCardsHandler != nil {
			api.GET("/news-cards", cfg.NewsCardsHandler.List)
		}
	}

	protected := api.Group("/")
	{
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		} else {
			protected.Use(func(c *gin.Context) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": gin.H{"message": "auth not configured", "code": "unauthorized"},
				})
			})
		}

		if cfg.DietPlansHandler != nil {
			protected.POST("/diet-plans/form", cfg.DietPlansHandler.SubmitForm)
			protected.GET("/diet-plans/form/status", cfg.DietPlansHandler.FormStatus)
		}

		// Medication schedules
		if cfg.MedicationSchedulesHandler != nil {
			protected.GET("/medication-schedules", cfg.MedicationSchedulesHandler.List)
			protected.POST("/medication-schedules", cfg.MedicationSchedulesHandler.Create)
			protected.PUT("/medication-schedules/:id", cfg.MedicationSchedulesHandler.Update)
		}
	}

	return r
}
