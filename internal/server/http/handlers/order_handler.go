package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/littlelemon/internal/domain/errors"
	"github.com/polkiloo/littlelemon/internal/domain/model"
	"github.com/polkiloo/littlelemon/internal/server/http/dto"
)

// OrderHandler manages checkout and order lifecycle endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /api/orders. Visibility depends on the caller's roles.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context(), CurrentPrincipal(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, response)
}

// Place handles POST /api/orders: converts the caller's cart into an order.
func (h *OrderHandler) Place(c *gin.Context) {
	p := CurrentPrincipal(c)

	var req dto.PlaceOrderRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), p.UserID, req.Date)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrEmptyCart):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.Order(c.Request.Context(), CurrentPrincipal(c), id)
	if err != nil {
		h.writeOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Patch handles PATCH /api/orders/:id: either delivery crew assignment by a
// manager or a status step by the assigned crew member.
func (h *OrderHandler) Patch(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.OrderPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	p := CurrentPrincipal(c)
	var (
		order *model.Order
		err   error
	)
	switch {
	case req.DeliveryCrew != nil && req.Status == nil:
		order, err = h.facade.AssignDelivery(c.Request.Context(), p, id, *req.DeliveryCrew)
	case req.Status != nil && req.DeliveryCrew == nil:
		order, err = h.facade.AdvanceOrderStatus(c.Request.Context(), p, id, *req.Status)
	default:
		c.Status(http.StatusBadRequest)
		return
	}
	if err != nil {
		h.writeOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Update handles PUT /api/orders/:id: order content update by the owner while
// the order is still unassigned.
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.OrderDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.UpdateOrderDate(c.Request.Context(), CurrentPrincipal(c), id, req.Date)
	if err != nil {
		h.writeOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Delete handles DELETE /api/orders/:id.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.DeleteOrder(c.Request.Context(), CurrentPrincipal(c), id); err != nil {
		h.writeOrderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) writeOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrOrderNotFound), errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, domainErrors.ErrForbidden):
		c.Status(http.StatusForbidden)
	case errors.Is(err, domainErrors.ErrInvalidStatus):
		c.Status(http.StatusUnprocessableEntity)
	case errors.Is(err, domainErrors.ErrInvalidAssignee):
		c.Status(http.StatusBadRequest)
	default:
		c.Status(http.StatusInternalServerError)
	}
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemResponse{
			ID:        item.ID,
			Order:     item.OrderID,
			MenuItem:  item.MenuItemID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return dto.OrderResponse{
		ID:           order.ID,
		User:         order.UserID,
		DeliveryCrew: order.DeliveryCrewID,
		Status:       string(order.Status),
		Total:        order.Total,
		Date:         order.Date,
		OrderItems:   items,
	}
}
