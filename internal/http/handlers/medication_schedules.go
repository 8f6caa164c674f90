package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/mh1-bff/internal/http/response"
	"github.com/yungbote/mh1-bff/internal/platform/ctxutil"
	"github.com/yungbote/mh1-bff/internal/platform/logger"
	"github.com/yungbote/mh1-bff/internal/services"
)

type MedicationSchedulesHandler struct {
	log       *logger.Logger
	schedules services.MedicationSchedulesService
}

func NewMedicationSchedulesHandler(log *logger.Logger, schedules services.MedicationSchedulesService) *MedicationSchedulesHandler {
	return &MedicationSchedulesHandler{log: log.With("handler", "MedicationSchedulesHandler"), schedules: schedules}
}

// POST /api/medication-schedules
func (h *MedicationSchedulesHandler) Create(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", errors.New("missing user"))
		return
	}
	var form services.MedicationScheduleForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	out, err := h.schedules.Create(c.Request.Context(), rd.UserID, form)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// PUT /api/medication-schedules/:id
func (h *MedicationSchedulesHandler) Update(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", errors.New("missing user"))
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var form services.MedicationScheduleForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	out, err := h.schedules.Update(c.Request.Context(), rd.UserID, id, form)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, out)
}

// GET /api/medication-schedules
func (h *MedicationSchedulesHandler) List(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", errors.New("missing user"))
		return
	}
	out, err := h.schedules.List(c.Request.Context(), rd.UserID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, out)
}
