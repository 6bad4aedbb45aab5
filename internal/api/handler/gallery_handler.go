package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/amanj01/catalog-admin/internal/api/metrics"
	"github.com/amanj01/catalog-admin/internal/core/ports"
)

const maxGalleryImages = 10

// GalleryHandler handles gallery routes. Create and Update read images from
// multipart forms under the "images" field.
type GalleryHandler struct {
	service ports.GalleryService
	files   FileSaver
	audit   AuditRecorder
}

func NewGalleryHandler(service ports.GalleryService, files FileSaver, audit AuditRecorder) *GalleryHandler {
	return &GalleryHandler{service: service, files: files, audit: audit}
}

// List handles GET /api/galleries.
//
// @Summary      List galleries
// @Tags         galleries
// @Produce      json
// @Success      200  {array}  domain.Gallery
// @Router       /galleries [get]
func (h *GalleryHandler) List(c echo.Context) error {
	galleries, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, galleries)
}

// Get handles GET /api/galleries/:id.
//
// @Summary      Get a gallery by id
// @Tags         galleries
// @Produce      json
// @Param        id   path      string  true  "Gallery id"
// @Success      200  {object}  domain.Gallery
// @Failure      404  {object}  map[string]string
// @Router       /galleries/{id} [get]
func (h *GalleryHandler) Get(c echo.Context) error {
	gallery, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, gallery)
}

// Create handles POST /api/galleries/add (multipart form).
//
// @Summary      Create a gallery
// @Tags         galleries
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        product  formData  string  false  "Product id"
// @Param        images   formData  file    true   "Gallery images (repeatable)"
// @Success      201  {object}  domain.Gallery
// @Failure      400  {object}  map[string]string
// @Router       /galleries/add [post]
func (h *GalleryHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	paths, err := h.saveImages(c)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "no images uploaded"})
	}

	gallery, err := h.service.Create(c.Request().Context(), c.FormValue("product"), paths)
	if err != nil {
		return err
	}

	h.audit.Record(identity.UserID, "create", "gallery", gallery.ID)
	return c.JSON(http.StatusCreated, gallery)
}

// Update handles PUT /api/galleries/update/:id (multipart form). Uploading
// images replaces the stored set; sending none keeps it.
//
// @Summary      Update a gallery
// @Tags         galleries
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Gallery id"
// @Success      200  {object}  domain.Gallery
// @Failure      404  {object}  map[string]string
// @Router       /galleries/update/{id} [put]
func (h *GalleryHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var in ports.UpdateGalleryInput
	if v := c.FormValue("product"); v != "" {
		in.ProductID = &v
	}

	paths, err := h.saveImages(c)
	if err != nil {
		return err
	}
	if len(paths) > 0 {
		in.Images = paths
	}

	id := c.Param("id")
	gallery, err := h.service.Update(c.Request().Context(), id, in)
	if err != nil {
		return err
	}

	h.audit.Record(identity.UserID, "update", "gallery", id)
	return c.JSON(http.StatusOK, gallery)
}

// Delete handles DELETE /api/galleries/delete/:id.
//
// @Summary      Delete a gallery
// @Tags         galleries
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Gallery id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /galleries/delete/{id} [delete]
func (h *GalleryHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	h.audit.Record(identity.UserID, "delete", "gallery", id)
	return c.JSON(http.StatusOK, map[string]string{"message": "gallery deleted"})
}

// saveImages stores every file under the "images" field, capped at
// maxGalleryImages per request.
func (h *GalleryHandler) saveImages(c echo.Context) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}

	files := form.File["images"]
	if len(files) > maxGalleryImages {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "too many images")
	}

	paths := make([]string, 0, len(files))
	for _, fh := range files {
		path, err := h.files.Save(fh)
		if err != nil {
			return nil, err
		}
		metrics.UploadsTotal.WithLabelValues("gallery").Inc()
		paths = append(paths, path)
	}
	return paths, nil
}
