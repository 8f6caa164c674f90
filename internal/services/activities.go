package services

import (
	"context"

	"github.com/yungbote/mh1-bff/internal/clients/graphql"
	"github.com/yungbote/mh1-bff/internal/normalization"
	"github.com/yungbote/mh1-bff/internal/platform/logger"
	"github.com/yungbote/mh1-bff/internal/staticcontent"
)

type ActivitiesService interface {
	MindActivities(ctx context.Context) (normalization.MindActivitiesOverview, error)
	FitnessActivities(ctx context.Context, weekNumber int) (normalization.FitnessActivities, error)
	PregnancyCoach(ctx context.Context, weekNumber int) (normalization.PregnancyCoachOverview, error)
}

// CoachContentSource supplies the static pregnancy-coach cards.
type CoachContentSource func(media normalization.MediaResolver) (normalization.CoachStaticContent, error)

type activitiesService struct {
	log        *logger.Logger
	cms        graphql.Client
	normalizer *normalization.Normalizer
	static     CoachContentSource
}

func NewActivitiesService(log *logger.Logger, cms graphql.Client, normalizer *normalization.Normalizer, static CoachContentSource) ActivitiesService {
	if static == nil {
		static = staticcontent.PregnancyCoachOverview
	}
	return &activitiesService{
		log:        log.With("service", "ActivitiesService"),
		cms:        cms,
		normalizer: normalizer,
		static:     static,
	}
}

func (s *activitiesService) MindActivities(ctx context.Context) (normalization.MindActivitiesOverview, error) {
	doc, err := s.cms.Query(ctx, mindActivitiesQuery, nil)
	if err != nil {
		return normalization.MindActivitiesOverview{}, contentError(err, "", "fetch_mind_activities_failed")
	}
	s.log.Debug("Mind activities payload", "payload", doc.Raw)
	return s.normalizer.MindActivities(doc), nil
}

func (s *activitiesService) FitnessActivities(ctx context.Context, weekNumber int) (normalization.FitnessActivities, error) {
	doc, err := s.cms.Query(ctx, fitnessActivitiesQuery, map[string]any{"weekNumber": weekNumber})
	if err != nil {
		return normalization.FitnessActivities{}, contentError(err, "", "fetch_fitness_activities_failed")
	}
	s.log.Debug("Fitness activities payload", "week", weekNumber, "payload", doc.Raw)
	return s.normalizer.FitnessActivities(doc), nil
}

func (s *activitiesService) PregnancyCoach(ctx context.Context, weekNumber int) (normalization.PregnancyCoachOverview, error) {
	static, err := s.static(s.normalizer.Media())
	if err != nil {
		s.log.Error("Static coach content unavailable", "error", err)
		return normalization.PregnancyCoachOverview{}, contentError(err, "", "fetch_pregnancy_coach_failed")
	}
	doc, err := s.cms.Query(ctx, pregnancyCoachQuery, map[string]any{"weekNumber": weekNumber})
	if err != nil {
		return normalization.PregnancyCoachOverview{}, contentError(err, "", "fetch_pregnancy_coach_failed")
	}
	out, err := s.normalizer.PregnancyCoach(doc, static)
	if err != nil {
		s.log.Warn("Pregnancy coach not found", "week", weekNumber)
		return normalization.PregnancyCoachOverview{}, contentError(err, "pregnancy_coach_not_found", "fetch_pregnancy_coach_failed")
	}
	return out, nil
}
