package services

import (
	"context"

	"github.com/yungbote/mh1-bff/internal/clients/graphql"
	"github.com/yungbote/mh1-bff/internal/normalization"
	"github.com/yungbote/mh1-bff/internal/platform/logger"
)

type NewsCardsService interface {
	NewsCards(ctx context.Context) ([]normalization.NewsCard, error)
}

type newsCardsService struct {
	log        *logger.Logger
	cms        graphql.Client
	normalizer *normalization.Normalizer
}

func NewNewsCardsService(log *logger.Logger, cms graphql.Client, normalizer *normalization.Normalizer) NewsCardsService {
	return &newsCardsService{
		log:        log.With("service", "NewsCardsService"),
		cms:        cms,
		normalizer: normalizer,
	}
}

func (s *newsCardsService) NewsCards(ctx context.Context) ([]normalization.NewsCard, error) {
	doc, err := s.cms.Query(ctx, newsCardsQuery, nil)
	if err != nil {
		return nil, contentError(err, "", "fetch_news_cards_failed")
	}
	s.log.Debug("News cards payload", "payload", doc.Raw)
	return s.normalizer.NewsCards(doc), nil
}
