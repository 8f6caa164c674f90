// Package staticcontent holds view-model fragments that are shipped with the
// service instead of being authored in the CMS.
package staticcontent

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/mh1-bff/internal/normalization"
)

//go:embed pregnancy_coach.yaml
var pregnancyCoachYAML []byte

type coachBundle struct {
	Divider       []normalization.Divider    `yaml:"divider"`
	WaterCard     normalization.ActivityCard `yaml:"waterCard"`
	NutritionCard normalization.ActivityCard `yaml:"nutritionCard"`
	MindCard      normalization.ActivityCard `yaml:"mindCard"`
	FitnessCard   normalization.ActivityCard `yaml:"fitnessCard"`
}

var (
	coachOnce sync.Once
	coach     coachBundle
	coachErr  error
)

func loadCoach() (coachBundle, error) {
	coachOnce.Do(func() {
		if err := yaml.Unmarshal(pregnancyCoachYAML, &coach); err != nil {
			coachErr = fmt.Errorf("decode pregnancy coach content: %w", err)
		}
	})
	return coach, coachErr
}

// PregnancyCoachOverview returns the static dividers and cards with image paths
// resolved against media. Each call returns fresh copies.
func PregnancyCoachOverview(media normalization.MediaResolver) (normalization.CoachStaticContent, error) {
	b, err := loadCoach()
	if err != nil {
		return normalization.CoachStaticContent{}, err
	}
	resolve := func(c normalization.ActivityCard) normalization.ActivityCard {
		c.Image = media.Resolve(c.Image)
		return c
	}
	divider := make([]normalization.Divider, len(b.Divider))
	copy(divider, b.Divider)
	return normalization.CoachStaticContent{
		Divider:       divider,
		WaterCard:     resolve(b.WaterCard),
		NutritionCard: resolve(b.NutritionCard),
		MindCard:      resolve(b.MindCard),
		FitnessCard:   resolve(b.FitnessCard),
	}, nil
}
