package httpserver

import (
	"net/http"

	"assistmenow/internal/domain"
	deliverysvc "assistmenow/internal/service/delivery"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const deliveryEntity = "Delivery"

type deliveryHandler struct {
	svc    DeliveryService
	logger *zap.Logger
}

type statusRequest struct {
	Status string `json:"status"`
}

type assignRequest struct {
	UserID string `json:"userId"`
}

func (h *deliveryHandler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, deliveryEntity, err)
		return
	}
	if items == nil {
		items = []domain.Delivery{}
	}
	c.JSON(http.StatusOK, items)
}

func (h *deliveryHandler) create(c *gin.Context) {
	var req deliverysvc.CreateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}
	d, err := h.svc.Create(c.Request.Context(), actor(c), req)
	if err != nil {
		writeError(c, h.logger, deliveryEntity, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

func (h *deliveryHandler) get(c *gin.Context) {
	d, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, deliveryEntity, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *deliveryHandler) update(c *gin.Context) {
	var patch domain.DeliveryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badBody(c)
		return
	}
	d, err := h.svc.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeError(c, h.logger, deliveryEntity, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *deliveryHandler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.logger, deliveryEntity, err)
		return
	}
	deleted(c, deliveryEntity)
}

func (h *deliveryHandler) updateStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}
	d, err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		writeError(c, h.logger, deliveryEntity, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *deliveryHandler) assign(c *gin.Context) {
	var req assignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}
	d, err := h.svc.Assign(c.Request.Context(), c.Param("id"), req.UserID)
	if err != nil {
		writeError(c, h.logger, deliveryEntity, err)
		return
	}
	c.JSON(http.StatusOK, d)
}
