package app

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/mh1-bff/internal/data/aggregates"
	"github.com/yungbote/mh1-bff/internal/data/flags"
	"github.com/yungbote/mh1-bff/internal/normalization"
	"github.com/yungbote/mh1-bff/internal/observability"
	"github.com/yungbote/mh1-bff/internal/platform/clock"
	"github.com/yungbote/mh1-bff/internal/platform/logger"
	"github.com/yungbote/mh1-bff/internal/services"
	"github.com/yungbote/mh1-bff/internal/staticcontent"
)

type Services struct {
	Auth       services.AuthService
	Activities services.ActivitiesService
	DietPlans  services.DietPlansService
	NewsCards  services.NewsCardsService

	MedicationSchedules services.MedicationSchedulesService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, clients Clients, reposet Repos, metrics *observability.Metrics) (Services, error) {
	log.Info("Wiring services...")

	clk, err := clock.New(cfg.Timezone)
	if err != nil {
		return Services{}, fmt.Errorf("init clock: %w", err)
	}
	normalizer := normalization.New(normalization.NewMediaResolver(cfg.MediaBaseURL), clk)

	// Decode the embedded bundle at startup so a broken file fails fast.
	if _, err := staticcontent.PregnancyCoachOverview(normalizer.Media()); err != nil {
		return Services{}, fmt.Errorf("load static content: %w", err)
	}

	var flagStore flags.Store
	if clients.Redis != nil {
		flagStore = flags.NewRedisStore(clients.Redis, log)
	} else {
		flagStore = flags.NewMemoryStore()
	}

	txRunner := aggregates.NewGormTxRunner(db)

	return Services{
		Auth:       services.NewAuthService(log, cfg.JWTSecretKey),
		Activities: services.NewActivitiesService(log, clients.CMS, normalizer, staticcontent.PregnancyCoachOverview),
		DietPlans: services.NewDietPlansService(log, services.DietPlansDeps{
			CMS:         clients.CMS,
			Normalizer:  normalizer,
			Tx:          txRunner,
			Records:     reposet.MedicalRecord,
			Profiles:    reposet.UserProfile,
			Preferences: reposet.UserPreferences,
			Flags:       flagStore,
			Metrics:     metrics,
		}),
		NewsCards: services.NewNewsCardsService(log, clients.CMS, normalizer),

		MedicationSchedules: services.NewMedicationSchedulesService(log, txRunner, reposet.MedicationSchedule),
	}, nil
}
