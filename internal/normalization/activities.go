package normalization

import (
	"fmt"
	"sort"

	"github.com/tidwall/gjson"
)

const soulActivityType = "Soul"

func (n *Normalizer) MindActivities(doc gjson.Result) MindActivitiesOverview {
	attrs := doc.Get("mindActivitiesOverview.data.attributes")
	return MindActivitiesOverview{
		Heading:    String(attrs, "heading"),
		SubHeading: String(attrs, "subHeading"),
		MindActivities: EachValid(attrs, "mind_activities.data", func(el gjson.Result) (MindActivity, bool) {
			a := el.Get("attributes")
			if !a.IsObject() {
				return MindActivity{}, false
			}
			return MindActivity{
				Name:        String(a, "name"),
				Duration:    String(a, "duration"),
				Benefits:    String(a, "benefits"),
				Thumbnail:   n.mediaURL(a, "thumbnail"),
				Description: String(a, "description"),
				VideoURL:    String(a, "videoUrl"),
			}, true
		}),
	}
}

// FitnessActivities maps week-tagged activities sorted by week (stable). Entries
// without attributes are dropped. The consent form comes from the first entry
// that carries one.
func (n *Normalizer) FitnessActivities(doc gjson.Result) FitnessActivities {
	var consent gjson.Result
	activities := EachValid(doc, "fitnessActivities.data", func(el gjson.Result) (FitnessActivity, bool) {
		a := el.Get("attributes")
		if !a.IsObject() {
			return FitnessActivity{}, false
		}
		if !consent.Exists() && present(a, "consent_form.data.attributes") {
			consent = a.Get("consent_form.data.attributes")
		}
		return FitnessActivity{
			Week:         Int(a, "week"),
			Name:         String(a, "name"),
			VideoURL:     String(a, "videoUrl"),
			ThumbnailURL: n.mediaURL(a, "thumbnail"),
			SubHeading:   String(a, "subHeading"),
			Description: FitnessDescription{
				Benefits:    String(a, "description.benefits"),
				Precautions: String(a, "description.precautions"),
			},
		}, true
	})
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Week < activities[j].Week
	})
	return FitnessActivities{
		Activities:  activities,
		ConsentForm: n.ConsentForm(consent),
	}
}

// PregnancyCoach merges the week's CMS record with the static cards in the
// fixed order water, nutrition, soul, mind, fitness.
func (n *Normalizer) PregnancyCoach(doc gjson.Result, static CoachStaticContent) (PregnancyCoachOverview, error) {
	records := doc.Get("activities.data")
	if !records.IsArray() || len(records.Array()) == 0 {
		return PregnancyCoachOverview{}, fmt.Errorf("pregnancy coach activities: %w", ErrNotFound)
	}
	attrs := records.Get("0.attributes")

	var soul gjson.Result
	for _, card := range attrs.Get("activityCardDynamic").Array() {
		if String(card, "activityType") == soulActivityType {
			soul = card
			break
		}
	}

	divider := make([]Divider, len(static.Divider))
	copy(divider, static.Divider)

	return PregnancyCoachOverview{
		WeekNumber: Int(attrs, "week"),
		DocInfo:    n.Doctor(attrs.Get("hms_doctor.data.attributes")),
		Divider:    divider,
		Activities: []ActivityCard{
			static.WaterCard,
			static.NutritionCard,
			{
				Label: CardLabel{
					Text:    String(soul, "label.text"),
					BgColor: String(soul, "label.backgroundColor"),
				},
				Heading: String(soul, "title"),
				Image:   n.mediaURL(soul, "image"),
			},
			static.MindCard,
			static.FitnessCard,
		},
	}, nil
}
