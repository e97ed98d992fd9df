package api

import (
	"net/http"

	reqdto "booking-manager/internal/handler/dto/request"
	resdto "booking-manager/internal/handler/dto/response"
	"booking-manager/internal/handler/httperr"
	"booking-manager/internal/usecase/commands"
	"booking-manager/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Create a booking when the requested dates are free of bookings and blocks
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), in)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.Header("Location", "/bookings/"+view.ID.String())
	respondBooking(c, http.StatusCreated, view)
}

// @Summary List bookings
// @Description List bookings in insertion order, optionally filtered by a day, guest details or an overlapping range
// @Tags bookings
// @Produce json
// @Param date query string false "Bookings covering this day (YYYY-MM-DD)"
// @Param guestDetails query string false "Exact guest details"
// @Param start query string false "Range start (YYYY-MM-DD), requires end"
// @Param end query string false "Range end (YYYY-MM-DD), requires start"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var filter reqdto.BookingFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	if filter.Count() > 1 {
		httperr.AbortWithError(c, http.StatusBadRequest, errTooManyFilters, "Only one of date, guestDetails or start/end may be given", nil)
		return
	}

	ctx := c.Request.Context()
	var (
		views []*queries.BookingView
		err   error
	)
	switch {
	case filter.Date != "":
		day, parseErr := filter.Day()
		if parseErr != nil {
			httperr.AbortWithUsecaseError(c, parseErr)
			return
		}
		views, err = h.q.FindByDate(ctx, day)
	case filter.GuestDetails != "":
		views, err = h.q.FindByGuestDetails(ctx, filter.GuestDetails)
	case filter.HasRange():
		r, parseErr := filter.Range()
		if parseErr != nil {
			httperr.AbortWithUsecaseError(c, parseErr)
			return
		}
		views, err = h.q.FindOverlapping(ctx, r)
	default:
		views, err = h.q.ListAll(ctx)
	}
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	res, err := resdto.FromBookingViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get booking
// @Description Get a booking by ID
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	respondBooking(c, http.StatusOK, view)
}

// @Summary Update booking
// @Description Replace the dates and guest details of a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingRequest true "Update booking request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id} [put]
func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	view, err := h.cmds.Update(c.Request.Context(), id, in)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	respondBooking(c, http.StatusOK, view)
}

// @Summary Reschedule booking
// @Description Move a booking to new dates if they are free, ignoring the booking itself
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.RescheduleBookingRequest true "New dates"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/reschedule [patch]
// @Router /bookings/{id}/reschedule [put]
func (h *BookingHandler) Reschedule(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reqdto.RescheduleBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	dates, err := req.ToRange()
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	view, err := h.cmds.Reschedule(c.Request.Context(), id, dates)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	respondBooking(c, http.StatusOK, view)
}

// @Summary Cancel booking
// @Description Cancel a booking, freeing its dates
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/cancel [patch]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.cmds.Cancel(c.Request.Context(), id); err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{ID: id.String(), Message: "booking cancelled"})
}

// @Summary Delete booking
// @Description Delete a booking, freeing its dates
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{ID: id.String(), Message: "booking deleted"})
}

func respondBooking(c *gin.Context, status int, view *queries.BookingView) {
	res, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(status, res)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
