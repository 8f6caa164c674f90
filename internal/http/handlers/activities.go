package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/mh1-bff/internal/http/response"
	"github.com/yungbote/mh1-bff/internal/platform/logger"
	"github.com/yungbote/mh1-bff/internal/services"
)

type ActivitiesHandler struct {
	log        *logger.Logger
	activities services.ActivitiesService
}

func NewActivitiesHandler(log *logger.Logger, activities services.ActivitiesService) *ActivitiesHandler {
	return &ActivitiesHandler{log: log.With("handler", "ActivitiesHandler"), activities: activities}
}

// GET /api/activities/mind
func (h *ActivitiesHandler) Mind(c *gin.Context) {
	out, err := h.activities.MindActivities(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, out)
}

// GET /api/activities/fitness?week=N
func (h *ActivitiesHandler) Fitness(c *gin.Context) {
	week, err := positiveInt("week", c.Query("week"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_week", err)
		return
	}
	out, err := h.activities.FitnessActivities(c.Request.Context(), week)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, out)
}

// GET /api/activities/pregnancy-coach/:week
func (h *ActivitiesHandler) PregnancyCoach(c *gin.Context) {
	week, err := positiveInt("week", c.Param("week"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_week", err)
		return
	}
	out, err := h.activities.PregnancyCoach(c.Request.Context(), week)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, out)
}
