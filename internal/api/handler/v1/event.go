package v1

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/esprit/eventsproject/internal/api/handler/v1/request"
	"github.com/esprit/eventsproject/internal/api/handler/v1/response"
	"github.com/esprit/eventsproject/internal/domain"
	"github.com/esprit/eventsproject/internal/service"
)

type EventService interface {
	AddParticipant(ctx context.Context, participant domain.Participant) (domain.Participant, error)
	GetParticipant(ctx context.Context, id uint) (domain.Participant, error)
	AffectEventToParticipant(ctx context.Context, event domain.Event, participantID uint) (domain.Event, error)
	AffectEventToParticipants(ctx context.Context, event domain.Event) (domain.Event, error)
	AffectLogistics(ctx context.Context, logistics domain.Logistics, description string) (domain.Logistics, error)
	GetLogisticsDates(ctx context.Context, start, end time.Time) ([]domain.Logistics, error)
	CalculateCost(ctx context.Context, organizer domain.Organizer) error
}

type EventHandler struct {
	svc              EventService
	defaultOrganizer func() domain.Organizer
}

func NewEventHandler(svc EventService, defaultOrganizer func() domain.Organizer) *EventHandler {
	return &EventHandler{
		svc:              svc,
		defaultOrganizer: defaultOrganizer,
	}
}

// HandleAddParticipant godoc
// @Summary      Register a participant
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        request  body      request.AddParticipantRequest  true  "participant"
// @Success      201      {object}  domain.Participant
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /participants [post]
// @Security     BearerAuth
func (h *EventHandler) HandleAddParticipant(ctx *gin.Context) {
	var req request.AddParticipantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	participant, err := h.svc.AddParticipant(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		err = fmt.Errorf("HandleAddParticipant -> h.svc.AddParticipant -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, participant)
}

// HandleGetParticipant godoc
// @Summary      Get a participant
// @Tags         participants
// @Produce      json
// @Param        participantID  path      int  true  "Participant ID"
// @Success      200            {object}  domain.Participant
// @Failure      400            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /participants/{participantID} [get]
func (h *EventHandler) HandleGetParticipant(ctx *gin.Context) {
	participantID, err := strconv.ParseUint(ctx.Param("participantID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid participant ID: %w", err)))
		return
	}

	participant, err := h.svc.GetParticipant(ctx.Request.Context(), uint(participantID))
	if err != nil {
		if errors.Is(err, service.ErrParticipantNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("participant", "ID", participantID))
			return
		}

		err = fmt.Errorf("HandleGetParticipant -> h.svc.GetParticipant -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, participant)
}

// HandleAffectEventToParticipant godoc
// @Summary      Save an event with a participant
// @Description  Saves the event and makes the participant a member of it. An unknown participant is skipped and the event is still saved. With an id, the stored event is updated instead of a new one being created.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        participantID  path      int                   true  "Participant ID"
// @Param        request        body      request.EventRequest  true  "event"
// @Success      201            {object}  domain.Event
// @Failure      400            {object}  response.Err
// @Failure      401            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      409            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /events/participants/{participantID} [post]
// @Security     BearerAuth
func (h *EventHandler) HandleAffectEventToParticipant(ctx *gin.Context) {
	participantID, err := strconv.ParseUint(ctx.Param("participantID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid participant ID: %w", err)))
		return
	}

	req, ok := bindEvent(ctx)
	if !ok {
		return
	}

	event, err := h.svc.AffectEventToParticipant(ctx.Request.Context(), req.ToDomain(), uint(participantID))
	if err != nil {
		renderEventErr(ctx, req.ID, fmt.Errorf("HandleAffectEventToParticipant -> h.svc.AffectEventToParticipant -> %w", err))
		return
	}

	ctx.JSON(http.StatusCreated, event)
}

// HandleAffectEventToParticipants godoc
// @Summary      Save an event with its participants
// @Description  Saves the event with every listed participant that exists. Unknown participant IDs are dropped. With an id, the stored event is updated instead of a new one being created.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        request  body      request.EventRequest  true  "event"
// @Success      201      {object}  domain.Event
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events [post]
// @Security     BearerAuth
func (h *EventHandler) HandleAffectEventToParticipants(ctx *gin.Context) {
	req, ok := bindEvent(ctx)
	if !ok {
		return
	}

	event, err := h.svc.AffectEventToParticipants(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		renderEventErr(ctx, req.ID, fmt.Errorf("HandleAffectEventToParticipants -> h.svc.AffectEventToParticipants -> %w", err))
		return
	}

	ctx.JSON(http.StatusCreated, event)
}

// HandleAffectLogistics godoc
// @Summary      Add logistics to an event
// @Tags         events,logistics
// @Accept       json
// @Produce      json
// @Param        description  path      string                    true  "Event description"
// @Param        request      body      request.LogisticsRequest  true  "logistics"
// @Success      200          {object}  domain.Logistics
// @Failure      400          {object}  response.Err
// @Failure      401          {object}  response.Err
// @Failure      404          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /events/logistics/{description} [put]
// @Security     BearerAuth
func (h *EventHandler) HandleAffectLogistics(ctx *gin.Context) {
	// The route is a catch-all so descriptions may contain slashes.
	description := strings.TrimPrefix(ctx.Param("description"), "/")
	if description == "" {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("missing event description")))
		return
	}

	var req request.LogisticsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	logistics, err := h.svc.AffectLogistics(ctx.Request.Context(), req.ToDomain(), description)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "description", description))
			return
		}

		err = fmt.Errorf("HandleAffectLogistics -> h.svc.AffectLogistics -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, logistics)
}

// HandleGetLogisticsDates godoc
// @Summary      List reserved logistics by event start date
// @Description  Returns the reserved logistics of every event starting between start and end, both inclusive.
// @Tags         logistics
// @Produce      json
// @Param        start  query     string  true  "Start date (YYYY-MM-DD)"
// @Param        end    query     string  true  "End date (YYYY-MM-DD)"
// @Success      200    {array}   domain.Logistics
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /logistics [get]
func (h *EventHandler) HandleGetLogisticsDates(ctx *gin.Context) {
	var query request.DateRangeQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := query.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	start, end, err := query.Range()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	logistics, err := h.svc.GetLogisticsDates(ctx.Request.Context(), start, end)
	if err != nil {
		err = fmt.Errorf("HandleGetLogisticsDates -> h.svc.GetLogisticsDates -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, logistics)
}

// HandleCalculateCost godoc
// @Summary      Recalculate event costs
// @Description  Recomputes the cost of every event of the organizer. Without a body the configured organizer is used.
// @Tags         events
// @Accept       json
// @Param        request  body  request.CalculateCostRequest  false  "organizer"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/costs [post]
// @Security     BearerAuth
func (h *EventHandler) HandleCalculateCost(ctx *gin.Context) {
	var req request.CalculateCostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	organizer := h.defaultOrganizer()
	if !req.IsEmpty() {
		if err := req.Validate(); err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}
		organizer = req.ToDomain()
	}

	if err := h.svc.CalculateCost(ctx.Request.Context(), organizer); err != nil {
		err = fmt.Errorf("HandleCalculateCost -> h.svc.CalculateCost -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

func bindEvent(ctx *gin.Context) (request.EventRequest, bool) {
	var req request.EventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return request.EventRequest{}, false
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return request.EventRequest{}, false
	}

	return req, true
}

func renderEventErr(ctx *gin.Context, eventID uint, err error) {
	if errors.Is(err, service.ErrEventNotFound) {
		response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
		return
	}

	if errors.Is(err, service.ErrEventDescriptionExists) {
		response.RenderErr(ctx, response.ErrConflict(service.ErrEventDescriptionExists))
		return
	}

	response.RenderErr(ctx, response.ErrInternalServerError(err))
}
