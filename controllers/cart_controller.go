package controllers

import (
	"strconv"

	"storefront/pkg/resp"
	"storefront/services"
	"storefront/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	ctx := c.Request.Context()
	cart, err := h.Svc.Load(ctx, utils.CartToken(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, h.Svc.View(ctx, cart))
}

// POST /cart/items
//
// Accepts JSON or form bodies. productId and qty belong to the cart; the
// rest of the fields are offered to extensions, e.g. wrap_as_gift.
func (h *CartController) Add(c *gin.Context) {
	fields, err := utils.RequestFields(c)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	pid, err := strconv.ParseUint(fields["productId"], 10, 64)
	if err != nil || pid == 0 {
		resp.BadRequest(c, "productId is required")
		return
	}
	qty := 1
	if raw := fields["qty"]; raw != "" {
		if qty, err = strconv.Atoi(raw); err != nil || qty <= 0 {
			resp.BadRequest(c, "invalid qty")
			return
		}
	}

	ctx := c.Request.Context()
	cart, err := h.Svc.Add(ctx, utils.CartToken(c), uint(pid), qty, fields)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, h.Svc.View(ctx, cart))
}

// PATCH /cart/items/qty
func (h *CartController) UpdateQty(c *gin.Context) {
	var body struct {
		Key string `json:"key" binding:"required"`
		Qty int    `json:"qty"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctx := c.Request.Context()
	cart, err := h.Svc.UpdateQty(ctx, utils.CartToken(c), body.Key, body.Qty)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, h.Svc.View(ctx, cart))
}

// DELETE /cart/items
func (h *CartController) RemoveItem(c *gin.Context) {
	var body struct {
		Key string `json:"key" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctx := c.Request.Context()
	cart, err := h.Svc.RemoveItem(ctx, utils.CartToken(c), body.Key)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, h.Svc.View(ctx, cart))
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(c.Request.Context(), utils.CartToken(c)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
