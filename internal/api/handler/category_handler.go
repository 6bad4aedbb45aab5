package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/amanj01/catalog-admin/internal/core/ports"
)

type CategoryHandler struct {
	service ports.CategoryService
	audit   AuditRecorder
}

func NewCategoryHandler(service ports.CategoryService, audit AuditRecorder) *CategoryHandler {
	return &CategoryHandler{service: service, audit: audit}
}

type createCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type updateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// List handles GET /api/categories.
//
// @Summary      List active categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}  domain.Category
// @Router       /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

// Get handles GET /api/categories/:id.
//
// @Summary      Get a category by id
// @Tags         categories
// @Produce      json
// @Param        id   path      string  true  "Category id"
// @Success      200  {object}  domain.Category
// @Failure      404  {object}  map[string]string
// @Router       /categories/{id} [get]
func (h *CategoryHandler) Get(c echo.Context) error {
	category, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

// Create handles POST /api/categories/add.
//
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCategoryRequest  true  "Category details"
// @Success      201   {object}  domain.Category
// @Failure      400   {object}  map[string]string
// @Router       /categories/add [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	category, err := h.service.Create(c.Request().Context(), req.Name, req.Description)
	if err != nil {
		return err
	}

	h.audit.Record(identity.UserID, "create", "category", category.ID)
	return c.JSON(http.StatusCreated, category)
}

// Update handles PUT /api/categories/update/:id.
//
// @Summary      Update a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Category id"
// @Param        body  body      updateCategoryRequest  true  "Fields to change"
// @Success      200   {object}  domain.Category
// @Failure      404   {object}  map[string]string
// @Router       /categories/update/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	id := c.Param("id")
	category, err := h.service.Update(c.Request().Context(), id, ports.UpdateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	h.audit.Record(identity.UserID, "update", "category", id)
	return c.JSON(http.StatusOK, category)
}

// SoftDelete handles DELETE /api/categories/soft-delete/:id.
//
// @Summary      Soft-delete a category
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Category id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /categories/soft-delete/{id} [delete]
func (h *CategoryHandler) SoftDelete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.service.SoftDelete(c.Request().Context(), id); err != nil {
		return err
	}

	h.audit.Record(identity.UserID, "soft_delete", "category", id)
	return c.JSON(http.StatusOK, map[string]string{"message": "category soft-deleted"})
}

// HardDelete handles DELETE /api/categories/permanent-delete/:id.
//
// @Summary      Permanently delete a category
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Category id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /categories/permanent-delete/{id} [delete]
func (h *CategoryHandler) HardDelete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.service.HardDelete(c.Request().Context(), id); err != nil {
		return err
	}

	h.audit.Record(identity.UserID, "hard_delete", "category", id)
	return c.JSON(http.StatusOK, map[string]string{"message": "category deleted"})
}
