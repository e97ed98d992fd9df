package api

import (
	"net/http"

	reqdto "booking-manager/internal/handler/dto/request"
	resdto "booking-manager/internal/handler/dto/response"
	"booking-manager/internal/handler/httperr"
	"booking-manager/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Check availability
// @Description Report whether start..end is free, listing the bookings and blocks in the way
// @Tags availability
// @Produce json
// @Param start query string true "Range start (YYYY-MM-DD)"
// @Param end query string true "Range end (YYYY-MM-DD)"
// @Param excludeBookingId query string false "Booking to ignore, e.g. the one being rescheduled"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /availability [get]
func (h *AvailabilityHandler) Check(c *gin.Context) {
	var req reqdto.AvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	r, err := req.Range()
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	view, err := h.q.Check(c.Request.Context(), r, req.Exclude())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromAvailabilityView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
