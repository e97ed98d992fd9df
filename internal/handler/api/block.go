package api

import (
	"net/http"

	reqdto "booking-manager/internal/handler/dto/request"
	resdto "booking-manager/internal/handler/dto/response"
	"booking-manager/internal/handler/httperr"
	"booking-manager/internal/usecase/commands"
	"booking-manager/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BlockHandler struct {
	cmds commands.BlockCommands
	q    queries.BlockQueries
}

func NewBlockHandler(cmds commands.BlockCommands, q queries.BlockQueries) *BlockHandler {
	return &BlockHandler{cmds: cmds, q: q}
}

// @Summary Create block
// @Description Block a date range for a non-booking reason such as maintenance
// @Tags blocks
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBlockRequest true "Create block request"
// @Success 201 {object} resdto.BlockResponse
// @Failure 400 {object} httperr.Response
// @Router /blocks [post]
func (h *BlockHandler) Create(c *gin.Context) {
	var req reqdto.CreateBlockRequest
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
	res, err := resdto.FromBlockView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.Header("Location", "/blocks/"+view.ID.String())
	c.JSON(http.StatusCreated, res)
}

// @Summary List blocks
// @Description List blocks in insertion order, optionally only those overlapping start..end
// @Tags blocks
// @Produce json
// @Param start query string false "Range start (YYYY-MM-DD)"
// @Param end query string false "Range end (YYYY-MM-DD)"
// @Success 200 {array} resdto.BlockResponse
// @Failure 400 {object} httperr.Response
// @Router /blocks [get]
func (h *BlockHandler) List(c *gin.Context) {
	var filter reqdto.RangeFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	var (
		views []*queries.BlockView
		err   error
	)
	if filter.IsEmpty() {
		views, err = h.q.ListAll(c.Request.Context())
	} else {
		r, parseErr := filter.Range()
		if parseErr != nil {
			httperr.AbortWithUsecaseError(c, parseErr)
			return
		}
		views, err = h.q.FindInRange(c.Request.Context(), r)
	}
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	res, err := resdto.FromBlockViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Delete block
// @Description Remove a block, freeing its dates
// @Tags blocks
// @Produce json
// @Param id path string true "Block ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /blocks/{id} [delete]
func (h *BlockHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{ID: id.String(), Message: "block deleted"})
}
