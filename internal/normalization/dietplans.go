package normalization

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// LearnMore maps the first learn-more article. Info cards are told apart by
// whether the titleColorList key is present.
func (n *Normalizer) LearnMore(doc gjson.Result) LearnMore {
	attrs := doc.Get("articles.data.0.attributes")
	return LearnMore{
		Info:   Each(attrs, "info", n.infoCard),
		Doctor: n.Doctor(attrs.Get("hms_doctor.data.attributes")),
	}
}

func (n *Normalizer) infoCard(r gjson.Result) InfoCard {
	if r.Get("titleColorList").Exists() {
		return TitleColorListCard{
			ID:    String(r, "id"),
			Title: String(r, "title"),
			TitleColorList: Each(r, "titleColorList", func(tc gjson.Result) TitleColor {
				return TitleColor{Title: String(tc, "title"), Color: String(tc, "color")}
			}),
		}
	}
	return ImageColorCard{
		ID:       String(r, "id"),
		Title:    String(r, "title"),
		ImageURL: n.media.Resolve(String(r, "image.data.0.attributes.url")),
		Color:    String(r, "color"),
	}
}

// IntroStories builds the trimester's story deck: the first card, every middle
// card, then the calorie and nutrients cards. Each card gets a fresh id.
func (n *Normalizer) IntroStories(doc gjson.Result) (DietIntroStories, error) {
	intros := doc.Get("dietIntros.data")
	if !intros.IsArray() || len(intros.Array()) == 0 {
		return DietIntroStories{}, fmt.Errorf("diet intros: %w", ErrNotFound)
	}
	attrs := intros.Get("0.attributes")
	story := attrs.Get("dietIntroStory.data.attributes")
	first := story.Get("firstCard")
	calorie := attrs.Get("calorieCard")
	nutrients := attrs.Get("nutrients")

	cards := []IntroStory{FirstStoryCard{
		ID:          n.newID(),
		Type:        StoryFirst,
		Title:       String(first, "title"),
		Description: String(first, "description"),
		DocInfo:     n.Doctor(first.Get("docInfo.data.attributes")),
		ImageURL:    n.mediaURL(first, "cardImage"),
		FooterText:  String(first, "footerText"),
	}}
	for _, mid := range story.Get("cards").Array() {
		cards = append(cards, MiddleStoryCard{
			ID:          n.newID(),
			Type:        StoryMiddle,
			Title:       String(mid, "title"),
			Description: String(mid, "description"),
			BgColor:     String(mid, "bgColor"),
			Images: Each(mid, "image.data", func(img gjson.Result) StoryImage {
				return StoryImage{URL: n.media.Resolve(String(img, "attributes.url"))}
			}),
			FooterText: String(mid, "footerText"),
		})
	}
	cards = append(cards,
		CalorieStoryCard{
			ID:          n.newID(),
			Type:        StoryCalorie,
			Title:       String(calorie, "title"),
			Description: String(calorie, "description"),
			BgImageURL:  n.mediaURL(calorie, "bgImage"),
			FooterText:  String(calorie, "footerText"),
		},
		NutrientsStoryCard{
			ID:          n.newID(),
			Type:        StoryNutrients,
			Title:       String(nutrients, "title"),
			Description: String(nutrients, "description"),
			ImageURL:    n.mediaURL(nutrients, "image"),
			FooterText:  String(nutrients, "footerText"),
		},
	)

	return DietIntroStories{
		Trimester: Int(attrs, "trimester"),
		Cards:     cards,
	}, nil
}
