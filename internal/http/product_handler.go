package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-service/internal/catalog"
	"github.com/guttosm/cart-service/internal/domain/dto"
	"github.com/guttosm/cart-service/internal/i18n"
)

// ProductHandler proxies the product catalog so the storefront talks to one
// origin. Responses keep the upstream dummyjson shapes; only errors are
// wrapped in the service error envelope.
type ProductHandler struct {
	catalog catalog.Catalog
}

// NewProductHandler creates a new ProductHandler over the given catalog.
func NewProductHandler(cat catalog.Catalog) *ProductHandler {
	return &ProductHandler{catalog: cat}
}

// RegisterPublicRoutes registers the product routes on the API group.
func (h *ProductHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	products.GET("", h.ListProducts)
	products.GET("/search", h.SearchProducts)
	products.GET("/categories", h.ListCategories)
	products.GET("/category/:category", h.ProductsByCategory)
	products.GET("/:id", h.GetProduct)
}

// ListProducts handles GET /api/products requests.
//
// @Summary      List products
// @Description  Returns one page of catalog products. Supports limit and skip query parameters.
// @Tags         Products
// @Produce      json
// @Param        limit query int false "Page size"
// @Param        skip  query int false "Offset"
// @Success      200 {object} model.ProductsPage "Product page"
// @Failure      502 {object} dto.ErrorResponse "Catalog unavailable"
// @Router       /api/products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))

	page, err := h.catalog.List(c.Request.Context(), limit, skip)
	if err != nil {
		NewResponseBuilder(c).Error(http.StatusBadGateway, dto.ErrCodeInternal, i18n.ErrKeyInternalError, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetProduct handles GET /api/products/:id requests.
//
// @Summary      Get product
// @Description  Returns a single catalog product by id.
// @Tags         Products
// @Produce      json
// @Param        id path int true "Product id"
// @Success      200 {object} model.Product "Product"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid id"
// @Failure      502 {object} dto.ErrorResponse "Catalog unavailable"
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		NewResponseBuilder(c).Error(http.StatusBadRequest, dto.ErrCodeInvalidRequest, i18n.ErrKeyInvalidItemID, err)
		return
	}

	product, err := h.catalog.Get(c.Request.Context(), id)
	if err != nil {
		NewResponseBuilder(c).Error(http.StatusBadGateway, dto.ErrCodeInternal, i18n.ErrKeyInternalError, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// SearchProducts handles GET /api/products/search requests.
//
// @Summary      Search products
// @Description  Returns catalog products matching the q query parameter.
// @Tags         Products
// @Produce      json
// @Param        q query string true "Search query"
// @Success      200 {object} model.ProductsPage "Matching products"
// @Failure      502 {object} dto.ErrorResponse "Catalog unavailable"
// @Router       /api/products/search [get]
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	page, err := h.catalog.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		NewResponseBuilder(c).Error(http.StatusBadGateway, dto.ErrCodeInternal, i18n.ErrKeyInternalError, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// ListCategories handles GET /api/products/categories requests.
//
// @Summary      List categories
// @Description  Returns the catalog category slugs.
// @Tags         Products
// @Produce      json
// @Success      200 {array} string "Category slugs"
// @Failure      502 {object} dto.ErrorResponse "Catalog unavailable"
// @Router       /api/products/categories [get]
func (h *ProductHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalog.Categories(c.Request.Context())
	if err != nil {
		NewResponseBuilder(c).Error(http.StatusBadGateway, dto.ErrCodeInternal, i18n.ErrKeyInternalError, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// ProductsByCategory handles GET /api/products/category/:category requests.
//
// @Summary      Products by category
// @Description  Returns the catalog products in one category.
// @Tags         Products
// @Produce      json
// @Param        category path string true "Category slug"
// @Success      200 {object} model.ProductsPage "Products in category"
// @Failure      502 {object} dto.ErrorResponse "Catalog unavailable"
// @Router       /api/products/category/{category} [get]
func (h *ProductHandler) ProductsByCategory(c *gin.Context) {
	page, err := h.catalog.ByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		NewResponseBuilder(c).Error(http.StatusBadGateway, dto.ErrCodeInternal, i18n.ErrKeyInternalError, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
