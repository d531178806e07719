package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/littlelemon/internal/domain/errors"
	"github.com/polkiloo/littlelemon/internal/domain/model"
	"github.com/polkiloo/littlelemon/internal/server/http/dto"
)

// MenuHandler manages menu item and category endpoints.
type MenuHandler struct {
	facade MenuFacade
}

// NewMenuHandler constructs MenuHandler.
func NewMenuHandler(facade MenuFacade) *MenuHandler {
	return &MenuHandler{facade: facade}
}

// List handles GET /api/menu-items.
func (h *MenuHandler) List(c *gin.Context) {
	items, err := h.facade.MenuItems(c.Request.Context(), c.Query("category"))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.MenuItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toMenuItemResponse(item))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/menu-items/:id.
func (h *MenuHandler) Get(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	item, err := h.facade.MenuItem(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrItemNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toMenuItemResponse(*item))
}

// Create handles POST /api/menu-items.
func (h *MenuHandler) Create(c *gin.Context) {
	var req dto.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	item, err := h.facade.CreateMenuItem(c.Request.Context(), CurrentPrincipal(c), req.Title, req.Price, req.Featured, req.Category)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrForbidden):
			c.Status(http.StatusForbidden)
		case errors.Is(err, domainErrors.ErrInvalidInput), errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusBadRequest)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusCreated, toMenuItemResponse(*item))
}

// Update handles PUT /api/menu-items/:id.
func (h *MenuHandler) Update(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	item := &model.MenuItem{ID: id, Title: req.Title, Price: req.Price, Featured: req.Featured, CategoryID: req.Category}
	if err := h.facade.UpdateMenuItem(c.Request.Context(), CurrentPrincipal(c), item); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrForbidden):
			c.Status(http.StatusForbidden)
		case errors.Is(err, domainErrors.ErrItemNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, toMenuItemResponse(*item))
}

// Delete handles DELETE /api/menu-items/:id.
func (h *MenuHandler) Delete(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.DeleteMenuItem(c.Request.Context(), CurrentPrincipal(c), id); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrForbidden):
			c.Status(http.StatusForbidden)
		case errors.Is(err, domainErrors.ErrItemNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// Categories handles GET /api/categories.
func (h *MenuHandler) Categories(c *gin.Context) {
	categories, err := h.facade.Categories(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		response = append(response, dto.CategoryResponse{ID: cat.ID, Slug: cat.Slug, Title: cat.Title})
	}
	c.JSON(http.StatusOK, response)
}

// CreateCategory handles POST /api/categories.
func (h *MenuHandler) CreateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	cat, err := h.facade.CreateCategory(c.Request.Context(), CurrentPrincipal(c), req.Slug, req.Title)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrForbidden):
			c.Status(http.StatusForbidden)
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusCreated, dto.CategoryResponse{ID: cat.ID, Slug: cat.Slug, Title: cat.Title})
}

func toMenuItemResponse(item model.MenuItem) dto.MenuItemResponse {
	return dto.MenuItemResponse{
		ID:       item.ID,
		Title:    item.Title,
		Price:    item.Price,
		Featured: item.Featured,
		Category: item.CategoryID,
	}
}
