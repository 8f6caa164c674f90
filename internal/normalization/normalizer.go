// Package normalization reshapes raw content-graph documents into the flat,
// fully-defaulted view models served to clients.
package normalization

import (
	"errors"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/yungbote/mh1-bff/internal/platform/clock"
)

// ErrNotFound reports that a required top-level record was absent upstream.
var ErrNotFound = errors.New("content not found")

type Normalizer struct {
	media MediaResolver
	clock clock.Clock
	newID func() string
}

// New builds a Normalizer. A nil clk falls back to the UTC wall clock.
func New(media MediaResolver, clk clock.Clock) *Normalizer {
	if clk == nil {
		clk = clock.UTC()
	}
	return &Normalizer{media: media, clock: clk, newID: uuid.NewString}
}

func (n *Normalizer) Media() MediaResolver { return n.media }

// mediaURL resolves the single-media relation at path (".data.attributes.url").
func (n *Normalizer) mediaURL(r gjson.Result, path string) string {
	return n.media.Resolve(String(r, path+".data.attributes.url"))
}

// Doctor maps an hms_doctor attributes object.
func (n *Normalizer) Doctor(r gjson.Result) Doctor {
	return Doctor{
		Name:            String(r, "name"),
		ImageURL:        n.mediaURL(r, "image"),
		Specialty:       String(r, "specialty.data.attributes.name"),
		ExperienceYears: Int(r, "experienceYears"),
	}
}

func (n *Normalizer) Button(r gjson.Result) Button {
	return Button{
		BtnText:   String(r, "btnText"),
		BgColor:   String(r, "bgColor"),
		TextColor: String(r, "textColor"),
	}
}

// ConsentForm maps a consent-form attributes object. Each step is defaulted on
// its own, so a form with only some steps authored still yields every field.
func (n *Normalizer) ConsentForm(r gjson.Result) ConsentForm {
	return ConsentForm{
		WeekConfirmation: WeekConfirmationStep{
			Heading:     String(r, "weekConfirmation.heading"),
			SubHeading1: String(r, "weekConfirmation.subHeading1"),
			SubHeading2: String(r, "weekConfirmation.subHeading2"),
			Button:      n.Button(r.Get("weekConfirmation.button")),
		},
		DocInfo: DocInfoStep{
			Heading:    String(r, "docInfo.heading"),
			SubHeading: String(r, "docInfo.subHeading"),
			Doctor:     n.Doctor(r.Get("docInfo.hms_doctor.data.attributes")),
			Button:     n.Button(r.Get("docInfo.button")),
		},
		ConsentForm: ConsentTextStep{
			Heading:     String(r, "consentForm.heading"),
			SubHeading:  String(r, "consentForm.subHeading"),
			ConsentText: String(r, "consentForm.consentText"),
			Button:      n.Button(r.Get("consentForm.button")),
		},
		Disclaimer: Each(r, "disclaimer", func(d gjson.Result) Disclaimer {
			return Disclaimer{
				Heading:    String(d, "heading"),
				Heading2:   String(d, "heading2"),
				SubHeading: String(d, "subHeading"),
				Button:     n.Button(d.Get("button")),
			}
		}),
		UnlockActivityCard: UnlockStep{
			Heading:    String(r, "unlockActivityCard.heading"),
			SubHeading: String(r, "unlockActivityCard.subHeading"),
			Button:     n.Button(r.Get("unlockActivityCard.button")),
		},
	}
}
