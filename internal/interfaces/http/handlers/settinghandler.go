package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spacebook/spacebook/internal/application/setting/dto"
	"github.com/spacebook/spacebook/internal/shared/errors"
	"github.com/spacebook/spacebook/internal/shared/logger"
	"github.com/spacebook/spacebook/internal/shared/utils"
)

type settingService interface {
	ListSettings(ctx context.Context) ([]*dto.SettingResponse, error)
	UpsertSetting(ctx context.Context, key string, req dto.UpsertSettingRequest) (*dto.SettingResponse, error)
}

// SettingHandler serves the configuraciones table.
type SettingHandler struct {
	service settingService
	logger  logger.Interface
}

func NewSettingHandler(service settingService, logger logger.Interface) *SettingHandler {
	return &SettingHandler{
		service: service,
		logger:  logger,
	}
}

// ListSettings godoc
// @Summary List configuration entries
// @Security Bearer
// @Tags settings
// @Produce json
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /settings [get]
func (h *SettingHandler) ListSettings(c *gin.Context) {
	result, err := h.service.ListSettings(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result, int64(len(result)))
}

// UpsertSetting godoc
// @Summary Create or replace a configuration entry
// @Security Bearer
// @Tags settings
// @Accept json
// @Produce json
// @Param key path string true "Setting key"
// @Param request body dto.UpsertSettingRequest true "Value"
// @Success 200 {object} utils.APIResponse{data=dto.SettingResponse}
// @Failure 400 {object} utils.APIResponse "Value does not match its type"
// @Router /settings/{key} [put]
func (h *SettingHandler) UpsertSetting(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("setting key is required"))
		return
	}

	var req dto.UpsertSettingRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for upsert setting", "key", key, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.UpsertSetting(c.Request.Context(), key, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Setting saved successfully", result)
}
