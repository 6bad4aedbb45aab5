package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/amanj01/catalog-admin/internal/api/metrics"
	"github.com/amanj01/catalog-admin/internal/core/ports"
)

// FileSaver persists one uploaded file and returns its serving path.
type FileSaver interface {
	Save(fh *multipart.FileHeader) (string, error)
}

// ProductHandler handles catalog product routes. Create and Update accept
// multipart forms so thumbnails can ride along with the fields.
type ProductHandler struct {
	service ports.ProductService
	files   FileSaver
	audit   AuditRecorder
}

func NewProductHandler(service ports.ProductService, files FileSaver, audit AuditRecorder) *ProductHandler {
	return &ProductHandler{service: service, files: files, audit: audit}
}

// List handles GET /api/products.
//
// @Summary      List active products
// @Tags         products
// @Produce      json
// @Success      200  {array}  domain.Product
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get handles GET /api/products/:id.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  map[string]string
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Create handles POST /api/products/add (multipart form).
//
// @Summary      Create a product
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title             formData  string  true   "Title"
// @Param        shortDescription  formData  string  false  "Short description"
// @Param        description       formData  string  false  "Description"
// @Param        price             formData  number  true   "Price"
// @Param        category          formData  string  false  "Category id"
// @Param        frontThumbnail    formData  file    false  "Front thumbnail image"
// @Param        backThumbnail     formData  file    false  "Back thumbnail image"
// @Success      201  {object}  domain.Product
// @Failure      400  {object}  map[string]string
// @Router       /products/add [post]
func (h *ProductHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	title := c.FormValue("title")
	if title == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "title is required"})
	}
	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil || price < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "price must be a non-negative number"})
	}

	in := ports.CreateProductInput{
		Title:            title,
		ShortDescription: c.FormValue("shortDescription"),
		Description:      c.FormValue("description"),
		Price:            price,
		CategoryID:       c.FormValue("category"),
	}

	front, err := h.saveOptional(c, "frontThumbnail")
	if err != nil {
		return err
	}
	back, err := h.saveOptional(c, "backThumbnail")
	if err != nil {
		return err
	}
	in.FrontThumbnail = front
	in.BackThumbnail = back

	product, err := h.service.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}

	h.audit.Record(identity.UserID, "create", "product", product.ID)
	return c.JSON(http.StatusCreated, product)
}

// Update handles PUT /api/products/update/:id (multipart form). Supplied
// fields overwrite, omitted fields are left untouched.
//
// @Summary      Update a product
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /products/update/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var in ports.UpdateProductInput
	if v := c.FormValue("title"); v != "" {
		in.Title = &v
	}
	if v := c.FormValue("shortDescription"); v != "" {
		in.ShortDescription = &v
	}
	if v := c.FormValue("description"); v != "" {
		in.Description = &v
	}
	if v := c.FormValue("category"); v != "" {
		in.CategoryID = &v
	}
	if v := c.FormValue("price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || price < 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "price must be a non-negative number"})
		}
		in.Price = &price
	}

	front, err := h.saveOptional(c, "frontThumbnail")
	if err != nil {
		return err
	}
	if front != "" {
		in.FrontThumbnail = &front
	}
	back, err := h.saveOptional(c, "backThumbnail")
	if err != nil {
		return err
	}
	if back != "" {
		in.BackThumbnail = &back
	}

	id := c.Param("id")
	product, err := h.service.Update(c.Request().Context(), id, in)
	if err != nil {
		return err
	}

	h.audit.Record(identity.UserID, "update", "product", id)
	return c.JSON(http.StatusOK, product)
}

// SoftDelete handles DELETE /api/products/soft-delete/:id.
//
// @Summary      Soft-delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /products/soft-delete/{id} [delete]
func (h *ProductHandler) SoftDelete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.service.SoftDelete(c.Request().Context(), id); err != nil {
		return err
	}

	h.audit.Record(identity.UserID, "soft_delete", "product", id)
	return c.JSON(http.StatusOK, map[string]string{"message": "product soft-deleted"})
}

// saveOptional stores the named upload when present. A missing file is not an
// error; rejected files bubble up and the error handler maps them to 400.
func (h *ProductHandler) saveOptional(c echo.Context, field string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}

	path, err := h.files.Save(fh)
	if err != nil {
		return "", err
	}

	metrics.UploadsTotal.WithLabelValues("thumbnail").Inc()
	return path, nil
}
