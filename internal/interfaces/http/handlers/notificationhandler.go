package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spacebook/spacebook/internal/application/notification/dto"
	"github.com/spacebook/spacebook/internal/shared/errors"
	"github.com/spacebook/spacebook/internal/shared/logger"
	"github.com/spacebook/spacebook/internal/shared/utils"
)

type notificationService interface {
	ListNotifications(ctx context.Context, req dto.ListNotificationsRequest) (*dto.ListResponse, error)
	MarkNotificationAsRead(ctx context.Context, id, userID uint) error
}

type NotificationHandler struct {
	service notificationService
	logger  logger.Interface
}

func NewNotificationHandler(service notificationService, logger logger.Interface) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		logger:  logger,
	}
}

// ListNotifications godoc
// @Summary List my notifications
// @Security Bearer
// @Tags notifications
// @Produce json
// @Param unread query bool false "Only unread notifications"
// @Success 200 {object} utils.APIResponse{data=dto.ListResponse}
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	actor, ok := principalOrAbort(c)
	if !ok {
		return
	}

	var req dto.ListNotificationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid query parameters", err.Error()))
		return
	}
	req.UserID = actor.UserID

	result, err := h.service.ListNotifications(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// MarkNotificationAsRead godoc
// @Summary Mark a notification as read
// @Security Bearer
// @Tags notifications
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse "Not your notification"
// @Failure 404 {object} utils.APIResponse "Notification not found"
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkNotificationAsRead(c *gin.Context) {
	actor, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id", "notification")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.MarkNotificationAsRead(c.Request.Context(), id, actor.UserID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notification marked as read", nil)
}
