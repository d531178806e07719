package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/littlelemon/internal/domain/errors"
	"github.com/polkiloo/littlelemon/internal/domain/model"
	"github.com/polkiloo/littlelemon/internal/server/http/dto"
)

// CartHandler manages the caller's cart endpoints.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// List handles GET /api/cart/menu-items.
func (h *CartHandler) List(c *gin.Context) {
	p := CurrentPrincipal(c)
	lines, err := h.facade.CartItems(c.Request.Context(), p.UserID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.CartLineResponse, 0, len(lines))
	for _, line := range lines {
		response = append(response, toCartLineResponse(line))
	}
	c.JSON(http.StatusOK, response)
}

// Add handles POST /api/cart/menu-items. Adding the same menu item again
// accumulates quantity into the existing line.
func (h *CartHandler) Add(c *gin.Context) {
	p := CurrentPrincipal(c)

	var req dto.CartAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	line, err := h.facade.AddToCart(c.Request.Context(), p.UserID, req.MenuItemID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrItemNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrInvalidQuantity):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusCreated, toCartLineResponse(*line))
}

// Clear handles DELETE /api/cart/menu-items.
func (h *CartHandler) Clear(c *gin.Context) {
	p := CurrentPrincipal(c)
	if err := h.facade.ClearCart(c.Request.Context(), p.UserID); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}

func toCartLineResponse(line model.CartLine) dto.CartLineResponse {
	return dto.CartLineResponse{
		ID:        line.ID,
		User:      line.UserID,
		MenuItem:  line.MenuItemID,
		Quantity:  line.Quantity,
		UnitPrice: line.UnitPrice,
		Price:     line.Price,
	}
}
