package httpserver

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	catalogsvc "shopease/internal/service/catalog"
)

func (h *handlers) listProducts(c *gin.Context) {
	params, err := listParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	products, err := h.deps.CatalogSvc.List(c.Request.Context(), params)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *handlers) getProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	p, err := h.deps.CatalogSvc.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *handlers) listCategories(c *gin.Context) {
	categories, err := h.deps.CatalogSvc.Categories(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *handlers) getCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
		return
	}
	cat, err := h.deps.CatalogSvc.Category(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *handlers) listCategoryProducts(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
		return
	}
	products, err := h.deps.CatalogSvc.ListByCategory(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *handlers) search(c *gin.Context) {
	results, err := h.deps.CatalogSvc.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// listParams parses the optional filter/sort/pagination query params.
func listParams(c *gin.Context) (catalogsvc.Params, error) {
	var params catalogsvc.Params

	if v := c.Query("category"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return params, errInvalidParam("category")
		}
		params.CategoryID = &id
	}
	if v := c.Query("brands"); v != "" {
		for _, b := range strings.Split(v, ",") {
			if trimmed := strings.TrimSpace(b); trimmed != "" {
				params.Brands = append(params.Brands, trimmed)
			}
		}
	}
	if v := c.Query("minPrice"); v != "" {
		min, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return params, errInvalidParam("minPrice")
		}
		params.MinPrice = &min
	}
	if v := c.Query("maxPrice"); v != "" {
		max, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return params, errInvalidParam("maxPrice")
		}
		params.MaxPrice = &max
	}
	params.Sort = c.Query("sort")
	if v := c.Query("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			return params, errInvalidParam("page")
		}
		params.Page = page
	}
	if v := c.Query("pageSize"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return params, errInvalidParam("pageSize")
		}
		params.PageSize = size
	}
	if params.Page > 0 && params.PageSize == 0 {
		params.PageSize = 12
	}
	return params, nil
}

type paramError string

func (e paramError) Error() string { return "Invalid query parameter: " + string(e) }

func errInvalidParam(name string) error { return paramError(name) }
