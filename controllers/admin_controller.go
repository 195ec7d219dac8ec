package controllers

import (
	"context"

	"storefront/pkg/resp"
	"storefront/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminController serves the admin views of carts and orders. Requests run in
// the admin scope set by the admin middleware.
type AdminController struct {
	Carts  *services.CartService
	Orders *services.OrderService
}

func NewAdminController(carts *services.CartService, orders *services.OrderService) *AdminController {
	return &AdminController{Carts: carts, Orders: orders}
}

// GET /admin/carts/:token
func (h *AdminController) Cart(c *gin.Context) {
	token := c.Param("token")
	if uuid.Validate(token) != nil {
		resp.BadRequest(c, "invalid cart token")
		return
	}
	ctx := c.Request.Context()
	cart, err := h.Carts.Load(ctx, token)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, h.Carts.View(ctx, cart))
}

// GET /admin/orders/:id
func (h *AdminController) Order(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	o, err := h.Orders.DetailForAdmin(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, o)
}

// PATCH /admin/orders/:id/complete
func (h *AdminController) Complete(c *gin.Context) {
	h.transition(c, h.Orders.AdminComplete)
}

// PATCH /admin/orders/:id/cancel
func (h *AdminController) Cancel(c *gin.Context) {
	h.transition(c, h.Orders.AdminCancel)
}

func (h *AdminController) transition(c *gin.Context, move func(ctx context.Context, id uint) error) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := move(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id})
}
