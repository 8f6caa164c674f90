package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/yungbote/mh1-bff/internal/normalization"
	"github.com/yungbote/mh1-bff/internal/platform/apierr"
	"github.com/yungbote/mh1-bff/internal/platform/logger"
)

func TestActivitiesService_MindActivities(t *testing.T) {
	cms := &fakeCMS{docs: map[string]string{
		"MindActivities": `{"mindActivitiesOverview":{"data":{"attributes":{
			"heading":"Calm","subHeading":"Breathe",
			"mind_activities":{"data":[
				{"id":"1","attributes":{"name":"Box breathing","duration":"5 min","thumbnail":{"data":{"attributes":{"url":"/uploads/box.png"}}}}},
				{"id":"2","attributes":null}
			]}}}}}`,
	}}
	svc := NewActivitiesService(logger.Nop(), cms, newTestNormalizer(), nil)

	got, err := svc.MindActivities(context.Background())
	if err != nil {
		t.Fatalf("MindActivities: %v", err)
	}
	if got.Heading != "Calm" || got.SubHeading != "Breathe" {
		t.Fatalf("headings: want=Calm/Breathe got=%q/%q", got.Heading, got.SubHeading)
	}
	if len(got.MindActivities) != 1 {
		t.Fatalf("activities: want=1 got=%d", len(got.MindActivities))
	}
	if got.MindActivities[0].Thumbnail != "https://cms.test/uploads/box.png" {
		t.Fatalf("thumbnail: want=%q got=%q", "https://cms.test/uploads/box.png", got.MindActivities[0].Thumbnail)
	}
}

func TestActivitiesService_FitnessPassesWeek(t *testing.T) {
	cms := &fakeCMS{docs: map[string]string{
		"FitnessActivities": `{"fitnessActivities":{"data":[
			{"id":"1","attributes":{"week":3,"name":"b"}},
			{"id":"2","attributes":{"week":1,"name":"a"}}
		]}}`,
	}}
	svc := NewActivitiesService(logger.Nop(), cms, newTestNormalizer(), nil)

	got, err := svc.FitnessActivities(context.Background(), 3)
	if err != nil {
		t.Fatalf("FitnessActivities: %v", err)
	}
	if call := cms.lastCall(); call.vars["weekNumber"] != 3 {
		t.Fatalf("weekNumber var: want=3 got=%v", call.vars["weekNumber"])
	}
	if len(got.Activities) != 2 || got.Activities[0].Name != "a" || got.Activities[1].Name != "b" {
		t.Fatalf("order: want=[a b] got=%+v", got.Activities)
	}
}

func TestActivitiesService_PregnancyCoach(t *testing.T) {
	cms := &fakeCMS{docs: map[string]string{
		"PregnancyCoach": `{"activities":{"data":[{"attributes":{"week":12,
			"activityCardDynamic":[
				{"activityType":"Soul","title":"Soul care","label":{"text":"Soul","backgroundColor":"#6750A4"}},
				{"activityType":"Soul","title":"ignored"}
			]}}]}}`,
	}}
	svc := NewActivitiesService(logger.Nop(), cms, newTestNormalizer(), nil)

	got, err := svc.PregnancyCoach(context.Background(), 12)
	if err != nil {
		t.Fatalf("PregnancyCoach: %v", err)
	}
	if got.WeekNumber != 12 {
		t.Fatalf("week: want=12 got=%d", got.WeekNumber)
	}
	if len(got.Activities) != 5 {
		t.Fatalf("activities: want=5 got=%d", len(got.Activities))
	}
	if got.Activities[2].Heading != "Soul care" {
		t.Fatalf("soul card: want=%q got=%q", "Soul care", got.Activities[2].Heading)
	}
	if len(got.Divider) == 0 {
		t.Fatalf("expected static dividers")
	}
}

func TestActivitiesService_PregnancyCoachErrors(t *testing.T) {
	cases := []struct {
		name       string
		cms        *fakeCMS
		static     CoachContentSource
		wantStatus int
		wantCode   string
	}{
		{
			name:       "no activities",
			cms:        &fakeCMS{docs: map[string]string{"PregnancyCoach": `{"activities":{"data":[]}}`}},
			wantStatus: http.StatusNotFound,
			wantCode:   "pregnancy_coach_not_found",
		},
		{
			name:       "transport failure",
			cms:        &fakeCMS{err: errors.New("dial tcp: refused")},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "fetch_pregnancy_coach_failed",
		},
		{
			name: "static content failure",
			cms:  &fakeCMS{},
			static: func(normalization.MediaResolver) (normalization.CoachStaticContent, error) {
				return normalization.CoachStaticContent{}, errors.New("bad bundle")
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "fetch_pregnancy_coach_failed",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewActivitiesService(logger.Nop(), tc.cms, newTestNormalizer(), tc.static)
			_, err := svc.PregnancyCoach(context.Background(), 4)
			if err == nil {
				t.Fatalf("expected error")
			}
			if got := apierr.StatusOf(err); got != tc.wantStatus {
				t.Fatalf("status: want=%d got=%d", tc.wantStatus, got)
			}
			if got := apierr.CodeOf(err); got != tc.wantCode {
				t.Fatalf("code: want=%q got=%q", tc.wantCode, got)
			}
		})
	}
}

func TestActivitiesService_NotFoundIsDistinct(t *testing.T) {
	cms := &fakeCMS{docs: map[string]string{"PregnancyCoach": `{}`}}
	svc := NewActivitiesService(logger.Nop(), cms, newTestNormalizer(), nil)
	_, err := svc.PregnancyCoach(context.Background(), 1)
	if !errors.Is(err, normalization.ErrNotFound) {
		t.Fatalf("want ErrNotFound in chain, got %v", err)
	}
}
