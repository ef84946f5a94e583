package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vimco/vimco-api/internal/modules/schema"
	"github.com/vimco/vimco-api/internal/modules/serializer"
	"github.com/vimco/vimco-api/internal/modules/service"
)

// Resource describes one content collection served by ResourceHandler.
type Resource[M any] struct {
	// Name is used in messages, e.g. "Certificate not found".
	Name        string
	New         func() *M
	CreateInput func() schema.Input[M]
	UpdateInput func() schema.Input[M]
}

// ResourceHandler implements add/get/get-by-id/update/delete for one resource.
type ResourceHandler[M any] struct {
	res Resource[M]
	svc service.CrudService[M]
	val *schema.Validator
}

func NewResourceHandler[M any](res Resource[M], svc service.CrudService[M], val *schema.Validator) *ResourceHandler[M] {
	return &ResourceHandler[M]{res: res, svc: svc, val: val}
}

// Create validates the body and stores a new record. 201 on success.
func (h *ResourceHandler[M]) Create(c *gin.Context) {
	in := h.res.CreateInput()
	present, ok := h.decode(c, in)
	if !ok {
		return
	}

	m := h.res.New()
	in.Apply(m, present)
	if err := h.svc.Create(c.Request.Context(), m); err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr(err))
		return
	}

	c.JSON(http.StatusCreated, serializer.OK(h.res.Name+" created successfully", m))
}

// List returns the whole collection in the resource's sort order.
func (h *ResourceHandler[M]) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr(err))
		return
	}

	c.JSON(http.StatusOK, serializer.List(items))
}

func (h *ResourceHandler[M]) Get(c *gin.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}

	m, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.OK("", m))
}

// Update validates first, so a bad body is a 400 even for an unknown id.
// Only fields present in the body are written.
func (h *ResourceHandler[M]) Update(c *gin.Context) {
	in := h.res.UpdateInput()
	present, ok := h.decode(c, in)
	if !ok {
		return
	}
	id, ok := h.id(c)
	if !ok {
		return
	}

	patch := new(M)
	cols := in.Apply(patch, present)
	m, err := h.svc.Update(c.Request.Context(), id, cols, patch)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.OK(h.res.Name+" updated successfully", m))
}

func (h *ResourceHandler[M]) Delete(c *gin.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.OK(h.res.Name+" deleted successfully", nil))
}

func (h *ResourceHandler[M]) decode(c *gin.Context, in schema.Input[M]) (schema.Fields, bool) {
	body, err := c.GetRawData()
	if err != nil {
		readFailed(c, err)
		return nil, false
	}
	present, err := h.val.Decode(body, in)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr(err))
		return nil, false
	}
	return present, true
}

// id treats a malformed identifier like an unknown one.
func (h *ResourceHandler[M]) id(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, serializer.NotFound(h.res.Name))
		return uuid.Nil, false
	}
	return id, true
}

func (h *ResourceHandler[M]) fail(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, serializer.NotFound(h.res.Name))
		return
	}
	c.JSON(http.StatusInternalServerError, serializer.DBErr(err))
}

// readFailed reports a body that could not be read. A body cut off by the
// size cap is a 413 whether or not it declared its length.
func readFailed(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.JSON(http.StatusRequestEntityTooLarge, serializer.Fail("request entity too large"))
		return
	}
	c.JSON(http.StatusBadRequest, serializer.ParamErr(err))
}
