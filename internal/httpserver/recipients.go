package httpserver

import (
	"net/http"

	"assistmenow/internal/domain"
	recipientsvc "assistmenow/internal/service/recipient"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const recipientEntity = "Recipient"

type recipientHandler struct {
	svc    RecipientService
	logger *zap.Logger
}

func (h *recipientHandler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, recipientEntity, err)
		return
	}
	if items == nil {
		items = []domain.Recipient{}
	}
	c.JSON(http.StatusOK, items)
}

func (h *recipientHandler) create(c *gin.Context) {
	var req recipientsvc.CreateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}
	r, err := h.svc.Create(c.Request.Context(), actor(c), req)
	if err != nil {
		writeError(c, h.logger, recipientEntity, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

func (h *recipientHandler) get(c *gin.Context) {
	r, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, recipientEntity, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *recipientHandler) update(c *gin.Context) {
	var patch domain.RecipientPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badBody(c)
		return
	}
	r, err := h.svc.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeError(c, h.logger, recipientEntity, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *recipientHandler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.logger, recipientEntity, err)
		return
	}
	deleted(c, recipientEntity)
}
