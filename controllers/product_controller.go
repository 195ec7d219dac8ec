package controllers

import (
	"strconv"

	"storefront/pkg/resp"
	"storefront/services"
	"storefront/utils"

	"github.com/gin-gonic/gin"
)

type ProductController struct{ Svc *services.ProductService }

func NewProductController(s *services.ProductService) *ProductController {
	return &ProductController{Svc: s}
}

// GET /products
func (h *ProductController) List(c *gin.Context) {
	rows, err := h.Svc.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rows)
}

// GET /products/:id
func (h *ProductController) Detail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	v, err := h.Svc.Detail(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, v)
}

// GET /admin/products/:id/edit
func (h *ProductController) Edit(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	v, err := h.Svc.EditView(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, v)
}

// POST /admin/products
func (h *ProductController) Create(c *gin.Context) {
	in, ok := productIn(c)
	if !ok {
		return
	}
	p, err := h.Svc.Create(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, p)
}

// PUT /admin/products/:id
func (h *ProductController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	in, ok := productIn(c)
	if !ok {
		return
	}
	p, err := h.Svc.Update(c.Request.Context(), id, in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, p)
}

// productIn reads the edit form; every field is kept for extensions.
func productIn(c *gin.Context) (*services.ProductIn, bool) {
	fields, err := utils.RequestFields(c)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return nil, false
	}
	return &services.ProductIn{
		Name:   fields["name"],
		Type:   fields["type"],
		Price:  fields["price"],
		Fields: fields,
	}, true
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}
