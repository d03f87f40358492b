package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const reportEntity = "Report"

type reportHandler struct {
	svc    ReportService
	logger *zap.Logger
}

func (h *reportHandler) deliveries(c *gin.Context) {
	r, err := h.svc.Deliveries(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, reportEntity, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *reportHandler) recipients(c *gin.Context) {
	r, err := h.svc.Recipients(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, reportEntity, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *reportHandler) hampers(c *gin.Context) {
	r, err := h.svc.Hampers(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, reportEntity, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *reportHandler) summary(c *gin.Context) {
	r, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, reportEntity, err)
		return
	}
	c.JSON(http.StatusOK, r)
}
