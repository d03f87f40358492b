package httpserver

import (
	"net/http"

	"assistmenow/internal/domain"
	hampersvc "assistmenow/internal/service/hamper"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const hamperEntity = "Hamper"

type hamperHandler struct {
	svc    HamperService
	logger *zap.Logger
}

func (h *hamperHandler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, hamperEntity, err)
		return
	}
	if items == nil {
		items = []domain.Hamper{}
	}
	c.JSON(http.StatusOK, items)
}

func (h *hamperHandler) create(c *gin.Context) {
	var req hampersvc.CreateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}
	hp, err := h.svc.Create(c.Request.Context(), actor(c), req)
	if err != nil {
		writeError(c, h.logger, hamperEntity, err)
		return
	}
	c.JSON(http.StatusCreated, hp)
}

func (h *hamperHandler) get(c *gin.Context) {
	hp, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, hamperEntity, err)
		return
	}
	c.JSON(http.StatusOK, hp)
}

func (h *hamperHandler) update(c *gin.Context) {
	var patch domain.HamperPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badBody(c)
		return
	}
	hp, err := h.svc.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeError(c, h.logger, hamperEntity, err)
		return
	}
	c.JSON(http.StatusOK, hp)
}

func (h *hamperHandler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.logger, hamperEntity, err)
		return
	}
	deleted(c, hamperEntity)
}
