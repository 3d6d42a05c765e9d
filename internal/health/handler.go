package health

import (
	"net/http"

	"github.com/saulo-duarte/studyquiz-api/internal/config"
	util "github.com/saulo-duarte/studyquiz-api/internal/utils"
)

type Status struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
}

type Handler struct {
	service string
	now     util.Clock
}

func NewHandler(service string, now util.Clock) *Handler {
	if now == nil {
		now = util.SystemClock
	}
	return &Handler{service: service, now: now}
}

// Check godoc
// @Summary  Health check
// @Tags     health
// @Produce  json
// @Success  200  {object}  Status
// @Router   /health [get]
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, Status{
		Status:    "OK",
		Timestamp: util.FormatISO(h.now()),
		Service:   h.service,
	})
}
