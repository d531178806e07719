package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/littlelemon/internal/domain/errors"
	"github.com/polkiloo/littlelemon/internal/domain/model"
	"github.com/polkiloo/littlelemon/internal/server/http/dto"
)

// GroupHandler manages manager and delivery crew membership endpoints.
type GroupHandler struct {
	facade GroupFacade
}

// NewGroupHandler constructs GroupHandler.
func NewGroupHandler(facade GroupFacade) *GroupHandler {
	return &GroupHandler{facade: facade}
}

// ListManagers handles GET /api/groups/manager/users.
func (h *GroupHandler) ListManagers(c *gin.Context) {
	users, err := h.facade.Managers(c.Request.Context(), CurrentPrincipal(c))
	h.writeList(c, users, err)
}

// AssignManager handles POST /api/groups/manager/users.
func (h *GroupHandler) AssignManager(c *gin.Context) {
	h.assign(c, h.facade.AssignManager)
}

// RemoveManager handles DELETE /api/groups/manager/users/:id.
func (h *GroupHandler) RemoveManager(c *gin.Context) {
	h.remove(c, h.facade.RemoveManager)
}

// ListDeliveryCrew handles GET /api/groups/delivery-crew/users.
func (h *GroupHandler) ListDeliveryCrew(c *gin.Context) {
	users, err := h.facade.DeliveryCrew(c.Request.Context(), CurrentPrincipal(c))
	h.writeList(c, users, err)
}

// AssignDeliveryCrew handles POST /api/groups/delivery-crew/users.
func (h *GroupHandler) AssignDeliveryCrew(c *gin.Context) {
	h.assign(c, h.facade.AssignDeliveryCrew)
}

// RemoveDeliveryCrew handles DELETE /api/groups/delivery-crew/users/:id.
func (h *GroupHandler) RemoveDeliveryCrew(c *gin.Context) {
	h.remove(c, h.facade.RemoveDeliveryCrew)
}

type membershipFn func(ctx context.Context, p model.Principal, userID int64) error

func (h *GroupHandler) assign(c *gin.Context, fn membershipFn) {
	var req dto.GroupMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := fn(c.Request.Context(), CurrentPrincipal(c), req.UserID); err != nil {
		h.writeMembershipError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (h *GroupHandler) remove(c *gin.Context, fn membershipFn) {
	id, ok := PathID(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := fn(c.Request.Context(), CurrentPrincipal(c), id); err != nil {
		h.writeMembershipError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *GroupHandler) writeList(c *gin.Context, users []model.User, err error) {
	if err != nil {
		if errors.Is(err, domainErrors.ErrForbidden) {
			c.Status(http.StatusForbidden)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		roles := make([]string, 0, len(u.Roles))
		for _, r := range u.Roles {
			roles = append(roles, string(r))
		}
		response = append(response, dto.UserResponse{ID: u.ID, Login: u.Login, Roles: roles})
	}
	c.JSON(http.StatusOK, response)
}

func (h *GroupHandler) writeMembershipError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrForbidden):
		c.Status(http.StatusForbidden)
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	default:
		c.Status(http.StatusInternalServerError)
	}
}
