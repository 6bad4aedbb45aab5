package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/amanj01/catalog-admin/internal/core/domain"
	"github.com/amanj01/catalog-admin/internal/core/ports"
)

// UserHandler handles admin account provisioning plus the self-lookup route.
type UserHandler struct {
	service ports.UserService
	audit   AuditRecorder
}

func NewUserHandler(service ports.UserService, audit AuditRecorder) *UserHandler {
	return &UserHandler{service: service, audit: audit}
}

type createUserRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"required,oneof=admin customer"`
}

type meResponse struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

// List handles GET /api/users. Soft-deleted accounts are excluded.
//
// @Summary      List active users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get handles GET /api/users/:id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Create handles POST /api/users/add.
//
// @Summary      Create a user account
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "Account details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /users/add [post]
func (h *UserHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.service.Create(c.Request().Context(), req.Username, req.Password, domain.Role(req.Role))
	if err != nil {
		return err
	}

	h.audit.Record(identity.UserID, "create", "user", user.ID)
	return c.JSON(http.StatusCreated, user)
}

// SoftDelete handles DELETE /api/users/soft-delete/:id.
//
// @Summary      Soft-delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/soft-delete/{id} [delete]
func (h *UserHandler) SoftDelete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.service.SoftDelete(c.Request().Context(), id); err != nil {
		return err
	}

	h.audit.Record(identity.UserID, "soft_delete", "user", id)
	return c.JSON(http.StatusOK, map[string]string{"message": "user soft-deleted"})
}

// HardDelete handles DELETE /api/users/permanent-delete/:id.
//
// @Summary      Permanently delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/permanent-delete/{id} [delete]
func (h *UserHandler) HardDelete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.service.HardDelete(c.Request().Context(), id); err != nil {
		return err
	}

	h.audit.Record(identity.UserID, "hard_delete", "user", id)
	return c.JSON(http.StatusOK, map[string]string{"message": "user deleted"})
}

// Me handles GET /api/users/me. It answers from the verified token alone and
// never touches the store.
//
// @Summary      Current identity
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meResponse
// @Failure      401  {object}  map[string]string
// @Router       /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meResponse{ID: identity.UserID, Role: string(identity.Role)})
}
