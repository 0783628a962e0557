package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spacebook/spacebook/internal/application/space/dto"
	"github.com/spacebook/spacebook/internal/application/space/usecases"
	"github.com/spacebook/spacebook/internal/shared/logger"
	"github.com/spacebook/spacebook/internal/shared/utils"
)

type spaceService interface {
	CreateSpace(ctx context.Context, cmd usecases.CreateSpaceCommand) (*dto.SpaceDTO, error)
	UpdateSpace(ctx context.Context, cmd usecases.UpdateSpaceCommand) (*dto.SpaceDTO, error)
	DeactivateSpace(ctx context.Context, id uint) (*dto.SpaceDTO, error)
	GetSpace(ctx context.Context, id uint) (*dto.SpaceDTO, error)
	ListSpaces(ctx context.Context, includeInactive bool) ([]*dto.SpaceDTO, error)
}

type SpaceHandler struct {
	service spaceService
	logger  logger.Interface
}

func NewSpaceHandler(service spaceService, logger logger.Interface) *SpaceHandler {
	return &SpaceHandler{
		service: service,
		logger:  logger,
	}
}

// ListSpaces godoc
// @Summary List spaces
// @Description Active spaces; staff may pass include_inactive=true
// @Security Bearer
// @Tags spaces
// @Produce json
// @Param include_inactive query bool false "Include deactivated spaces (staff only)"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /spaces [get]
func (h *SpaceHandler) ListSpaces(c *gin.Context) {
	includeInactive := false
	if c.Query("include_inactive") == "true" {
		if p, ok := utils.GetPrincipal(c); ok && p.IsStaff() {
			includeInactive = true
		}
	}

	result, err := h.service.ListSpaces(c.Request.Context(), includeInactive)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result, int64(len(result)))
}

// GetSpace godoc
// @Summary Get a space
// @Security Bearer
// @Tags spaces
// @Produce json
// @Param id path int true "Space ID"
// @Success 200 {object} utils.APIResponse{data=dto.SpaceDTO}
// @Failure 404 {object} utils.APIResponse "Space not found"
// @Router /spaces/{id} [get]
func (h *SpaceHandler) GetSpace(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "space")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.GetSpace(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateSpace godoc
// @Summary Create a space
// @Security Bearer
// @Tags spaces
// @Accept json
// @Produce json
// @Param request body dto.CreateSpaceRequest true "Space data"
// @Success 201 {object} utils.APIResponse{data=dto.SpaceDTO}
// @Failure 400 {object} utils.APIResponse "Bad request"
// @Failure 409 {object} utils.APIResponse "Name already in use"
// @Router /spaces [post]
func (h *SpaceHandler) CreateSpace(c *gin.Context) {
	var req dto.CreateSpaceRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create space", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.CreateSpace(c.Request.Context(), usecases.CreateSpaceCommand{
		Name:        req.Name,
		Location:    req.Location,
		Capacity:    req.Capacity,
		Equipment:   req.Equipment,
		Kind:        req.Kind,
		OpeningTime: req.OpeningTime,
		ClosingTime: req.ClosingTime,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Space created successfully")
}

// UpdateSpace godoc
// @Summary Update a space
// @Security Bearer
// @Tags spaces
// @Accept json
// @Produce json
// @Param id path int true "Space ID"
// @Param request body dto.UpdateSpaceRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=dto.SpaceDTO}
// @Router /spaces/{id} [patch]
func (h *SpaceHandler) UpdateSpace(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "space")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateSpaceRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update space", "space_id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.UpdateSpace(c.Request.Context(), usecases.UpdateSpaceCommand{
		ID:          id,
		Name:        req.Name,
		Location:    req.Location,
		Capacity:    req.Capacity,
		Equipment:   req.Equipment,
		Kind:        req.Kind,
		OpeningTime: req.OpeningTime,
		ClosingTime: req.ClosingTime,
		Status:      req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Space updated successfully", result)
}

// DeactivateSpace godoc
// @Summary Deactivate a space
// @Security Bearer
// @Tags spaces
// @Produce json
// @Param id path int true "Space ID"
// @Success 200 {object} utils.APIResponse{data=dto.SpaceDTO}
// @Router /spaces/{id} [delete]
func (h *SpaceHandler) DeactivateSpace(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "space")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.DeactivateSpace(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Space deactivated successfully", result)
}
