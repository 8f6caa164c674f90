package normalization

import "github.com/tidwall/gjson"

// TodayHighlightLabel heads news cards dated today.
const TodayHighlightLabel = "Today’s Highlights"

func (n *Normalizer) NewsCards(doc gjson.Result) []NewsCard {
	today := n.clock.Today()
	return EachValid(doc, "newsCards.data", func(el gjson.Result) (NewsCard, bool) {
		a := el.Get("attributes")
		if !a.IsObject() {
			return NewsCard{}, false
		}
		date := String(a, "date")
		header := ""
		if date != "" && date == today {
			header = TodayHighlightLabel
		}
		return NewsCard{
			ID:         String(el, "id"),
			Title:      String(a, "title"),
			Date:       date,
			Header:     header,
			BgImageURL: n.mediaURL(a, "bgImage"),
			Content:    String(a, "content"),
			Duration:   String(a, "duration"),
			SourceLink: String(a, "externalUrl"),
		}, true
	})
}
