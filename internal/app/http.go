package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yungbote/mh1-bff/internal/http"
	httpH "github.com/yungbote/mh1-bff/internal/http/handlers"
	httpMW "github.com/yungbote/mh1-bff/internal/http/middleware"
	"github.com/yungbote/mh1-bff/internal/observability"
	"github.com/yungbote/mh1-bff/internal/platform/logger"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

type Handlers struct {
	Health     *httpH.HealthHandler
	Activities *httpH.ActivitiesHandler
	DietPlans  *httpH.DietPlansHandler
	NewsCards  *httpH.NewsCardsHandler

	MedicationSchedules *httpH.MedicationSchedulesHandler
}

func wireHandlers(log *logger.Logger, db *gorm.DB, clients Clients, services Services) Handlers {
	log.Info("Wiring handlers...")
	checks := map[string]httpH.HealthCheckFunc{
		"database": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if clients.Redis != nil {
		checks["redis"] = func(ctx context.Context) error {
			return clients.Redis.Ping(ctx).Err()
		}
	}
	return Handlers{
		Health:     httpH.NewHealthHandler(checks),
		Activities: httpH.NewActivitiesHandler(log, services.Activities),
		DietPlans:  httpH.NewDietPlansHandler(log, services.DietPlans),
		NewsCards:  httpH.NewNewsCardsHandler(log, services.NewsCards),

		MedicationSchedules: httpH.NewMedicationSchedulesHandler(log, services.MedicationSchedules),
	}
}

func wireMiddleware(log *logger.Logger, services Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, services.Auth),
	}
}

func wireRouter(log *logger.Logger, cfg Config, metrics *observability.Metrics, handlers Handlers, middleware Middleware) *gin.Engine {
	return http.NewRouter(http.RouterConfig{
		Log:               log,
		ServiceName:       cfg.ServiceName,
		AllowedOrigins:    cfg.AllowedOrigins,
		Metrics:           metrics,
		AuthMiddleware:    middleware.Auth,
		ActivitiesHandler: handlers.Activities,
		DietPlansHandler:  handlers.DietPlans,
		NewsCardsHandler:  handlers.NewsCards,
		HealthHandler:     handlers.Health,

		MedicationSchedulesHandler: handlers.MedicationSchedules,
	})
}
