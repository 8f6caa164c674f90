package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/mh1-bff/internal/http/response"
	"github.com/yungbote/mh1-bff/internal/platform/ctxutil"
	"github.com/yungbote/mh1-bff/internal/platform/logger"
	"github.com/yungbote/mh1-bff/internal/services"
)

type DietPlansHandler struct {
	log       *logger.Logger
	dietPlans services.DietPlansService
}

func NewDietPlansHandler(log *logger.Logger, dietPlans services.DietPlansService) *DietPlansHandler {
	return &DietPlansHandler{log: log.With("handler", "DietPlansHandler"), dietPlans: dietPlans}
}

// GET /api/diet-plans/learn-more
func (h *DietPlansHandler) LearnMore(c *gin.Context) {
	out, err := h.dietPlans.LearnMore(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, out)
}

// GET /api/diet-plans/intro-stories/:trimester
func (h *DietPlansHandler) IntroStories(c *gin.Context) {
	trimester, err := positiveInt("trimester", c.Param("trimester"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_trimester", err)
		return
	}
	out, err := h.dietPlans.IntroStories(c.Request.Context(), trimester)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, out)
}

// POST /api/diet-plans/form
func (h *DietPlansHandler) SubmitForm(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", errors.New("missing user"))
		return
	}
	var form services.DietPlanInfoForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	out, err := h.dietPlans.SubmitForm(c.Request.Context(), rd.UserID, form)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, out)
}

// GET /api/diet-plans/form/status
func (h *DietPlansHandler) FormStatus(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", errors.New("missing user"))
		return
	}
	out, err := h.dietPlans.FormStatus(c.Request.Context(), rd.UserID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, out)
}
