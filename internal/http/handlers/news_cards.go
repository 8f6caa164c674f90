package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/mh1-bff/internal/http/response"
	"github.com/yungbote/mh1-bff/internal/platform/logger"
	"github.com/yungbote/mh1-bff/internal/services"
)

type NewsCardsHandler struct {
	log  *logger.Logger
	news services.NewsCardsService
}

func NewNewsCardsHandler(log *logger.Logger, news services.NewsCardsService) *NewsCardsHandler {
	return &NewsCardsHandler{log: log.With("handler", "NewsCardsHandler"), news: news}
}

// GET /api/news-cards
func (h *NewsCardsHandler) List(c *gin.Context) {
	out, err := h.news.NewsCards(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, out)
}
