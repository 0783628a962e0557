package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/spacebook/spacebook/internal/application/reservation/dto"
	"github.com/spacebook/spacebook/internal/application/reservation/usecases"
	"github.com/spacebook/spacebook/internal/shared/authorization"
	"github.com/spacebook/spacebook/internal/shared/errors"
	"github.com/spacebook/spacebook/internal/shared/logger"
	"github.com/spacebook/spacebook/internal/shared/utils"
)

type ReservationHandler struct {
	service reservationService
	logger  logger.Interface
}

func NewReservationHandler(service reservationService, logger logger.Interface) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		logger:  logger,
	}
}

func principalOrAbort(c *gin.Context) (authorization.Principal, bool) {
	p, ok := utils.GetPrincipal(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("User not authenticated"))
	}
	return p, ok
}

// bindOptionalJSON binds the body when one was sent.
func bindOptionalJSON(c *gin.Context, target any) error {
	if c.Request.ContentLength == 0 {
		return nil
	}
	return utils.BindJSON(c, target)
}

// CreateReservation godoc
// @Summary Request a reservation
// @Description Runs the admission rules and stores the request as pending
// @Security Bearer
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} utils.APIResponse{data=dto.ReservationDTO} "Reservation created"
// @Failure 400 {object} utils.APIResponse "Admission rule failed"
// @Failure 404 {object} utils.APIResponse "Space or user not found"
// @Failure 409 {object} utils.APIResponse "Slot already booked"
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	actor, ok := principalOrAbort(c)
	if !ok {
		return
	}

	var req dto.CreateReservationRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create reservation", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.CreateReservation(c.Request.Context(), usecases.CreateReservationCommand{
		UserID:    actor.UserID,
		SpaceID:   req.SpaceID,
		Start:     req.Start,
		End:       req.End,
		Category:  req.EventCategory,
		Attendees: req.Attendees,
		Documents: req.Documents,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Reservation requested successfully")
}

// ListReservations godoc
// @Summary List reservations
// @Description Staff listing of active reservations with optional filters
// @Security Bearer
// @Tags reservations
// @Produce json
// @Param space_id query int false "Space ID"
// @Param user_id query int false "Owner ID"
// @Param status query string false "pending, approved or rejected"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Failure 403 {object} utils.APIResponse "Staff only"
// @Router /reservations [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	actor, ok := principalOrAbort(c)
	if !ok {
		return
	}

	spaceID, err := utils.ParseOptionalUintQuery(c, "space_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	userID, err := utils.ParseOptionalUintQuery(c, "user_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.ListReservationsQuery{Status: c.Query("status")}
	if spaceID != nil {
		query.SpaceID = *spaceID
	}
	if userID != nil {
		query.UserID = *userID
	}

	result, err := h.service.ListReservations(c.Request.Context(), actor, query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result, int64(len(result)))
}

// ListMyReservations godoc
// @Summary List my reservations
// @Security Bearer
// @Tags reservations
// @Produce json
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /reservations/mine [get]
func (h *ReservationHandler) ListMyReservations(c *gin.Context) {
	actor, ok := principalOrAbort(c)
	if !ok {
		return
	}

	result, err := h.service.ListMyReservations(c.Request.Context(), actor)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result, int64(len(result)))
}

// GetAvailability godoc
// @Summary Approved bookings of a space in a time window
// @Security Bearer
// @Tags reservations
// @Produce json
// @Param space_id query int true "Space ID"
// @Param from query string true "RFC3339 window start"
// @Param to query string true "RFC3339 window end"
// @Success 200 {object} utils.APIResponse{data=dto.AvailabilityDTO}
// @Failure 400 {object} utils.APIResponse "Invalid window"
// @Failure 404 {object} utils.APIResponse "Space not found"
// @Router /reservations/availability [get]
func (h *ReservationHandler) GetAvailability(c *gin.Context) {
	spaceID, err := utils.ParseOptionalUintQuery(c, "space_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if spaceID == nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("space_id is required"))
		return
	}

	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("from must be an RFC3339 timestamp"))
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("to must be an RFC3339 timestamp"))
		return
	}

	result, err := h.service.GetAvailability(c.Request.Context(), *spaceID, from, to)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetReservation godoc
// @Summary Get a reservation
// @Description Visible to its owner and to staff
// @Security Bearer
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} utils.APIResponse{data=dto.ReservationDTO}
// @Failure 403 {object} utils.APIResponse "Not the owner"
// @Failure 404 {object} utils.APIResponse "Reservation not found"
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	actor, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id", "reservation")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.GetReservation(c.Request.Context(), actor, id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetHistory godoc
// @Summary Audit trail of a reservation, oldest first
// @Security Bearer
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} utils.APIResponse{data=[]dto.HistoryEntryDTO}
// @Router /reservations/{id}/history [get]
func (h *ReservationHandler) GetHistory(c *gin.Context) {
	actor, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id", "reservation")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.GetHistory(c.Request.Context(), actor, id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateReservation godoc
// @Summary Edit a reservation
// @Description Staff only. Changed values go through the admission rules again
// @Security Bearer
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path int true "Reservation ID"
// @Param request body dto.UpdateReservationRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=dto.ReservationDTO}
// @Failure 409 {object} utils.APIResponse "Slot already booked"
// @Router /reservations/{id} [patch]
func (h *ReservationHandler) UpdateReservation(c *gin.Context) {
	actor, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id", "reservation")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateReservationRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update reservation", "reservation_id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.UpdateReservation(c.Request.Context(), actor, id, usecases.UpdateReservationCommand{
		Start:     req.Start,
		End:       req.End,
		Category:  req.EventCategory,
		Attendees: req.Attendees,
		Documents: req.Documents,
		Note:      req.Note,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Reservation updated successfully", result)
}

// ApproveReservation godoc
// @Summary Approve a pending reservation
// @Security Bearer
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path int true "Reservation ID"
// @Param request body dto.TransitionNoteRequest false "Optional note"
// @Success 200 {object} utils.APIResponse{data=dto.ReservationDTO}
// @Failure 400 {object} utils.APIResponse "Reservation is not pending"
// @Failure 403 {object} utils.APIResponse "Staff only"
// @Router /reservations/{id}/approve [post]
func (h *ReservationHandler) ApproveReservation(c *gin.Context) {
	h.noteTransition(c, "Reservation approved successfully", h.service.ApproveReservation)
}

// ReactivateReservation godoc
// @Summary Reactivate a deactivated reservation
// @Security Bearer
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path int true "Reservation ID"
// @Param request body dto.TransitionNoteRequest false "Optional note"
// @Success 200 {object} utils.APIResponse{data=dto.ReservationDTO}
// @Failure 409 {object} utils.APIResponse "Slot taken in the meantime"
// @Router /reservations/{id}/reactivate [post]
func (h *ReservationHandler) ReactivateReservation(c *gin.Context) {
	h.noteTransition(c, "Reservation reactivated successfully", h.service.ReactivateReservation)
}

// DeactivateReservation godoc
// @Summary Deactivate (soft delete) a reservation
// @Description Administrators only.
// @Security Bearer
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} utils.APIResponse{data=dto.ReservationDTO}
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) DeactivateReservation(c *gin.Context) {
	h.noteTransition(c, "Reservation deactivated successfully", h.service.DeactivateReservation)
}

type noteTransitionFunc func(ctx context.Context, actor authorization.Principal, id uint, note string) (*dto.ReservationDTO, error)

func (h *ReservationHandler) noteTransition(c *gin.Context, message string, fn noteTransitionFunc) {
	actor, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id", "reservation")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.TransitionNoteRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := fn(c.Request.Context(), actor, id, req.Note)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, message, result)
}

// RejectReservation godoc
// @Summary Reject a pending reservation
// @Security Bearer
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path int true "Reservation ID"
// @Param request body dto.RejectReservationRequest true "Rejection reason"
// @Success 200 {object} utils.APIResponse{data=dto.ReservationDTO}
// @Failure 400 {object} utils.APIResponse "Missing reason or not pending"
// @Router /reservations/{id}/reject [post]
func (h *ReservationHandler) RejectReservation(c *gin.Context) {
	actor, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id", "reservation")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.RejectReservationRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.RejectReservation(c.Request.Context(), actor, id, req.Reason)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Reservation rejected successfully", result)
}

// CancelReservation godoc
// @Summary Cancel my pending reservation
// @Security Bearer
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} utils.APIResponse{data=dto.ReservationDTO}
// @Failure 400 {object} utils.APIResponse "Only pending reservations can be cancelled"
// @Failure 403 {object} utils.APIResponse "Not the owner"
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	actor, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id", "reservation")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.CancelReservation(c.Request.Context(), actor, id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Reservation cancelled successfully", result)
}
