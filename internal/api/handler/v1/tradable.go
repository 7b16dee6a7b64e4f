package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/stockboard-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/stockboard-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/stockboard-api/internal/domain"
	"github.com/vietanh2810/stockboard-api/internal/service"
)

type TradableService interface {
	Create(ctx context.Context, t domain.Tradable) (domain.Tradable, error)
	GetByTicker(ctx context.Context, ticker string) (domain.Tradable, error)
	Update(ctx context.Context, id uint, patch domain.TradablePatch) (domain.Tradable, error)
	Delete(ctx context.Context, ticker string) error
	List(ctx context.Context, q domain.ListQuery) ([]domain.Tradable, error)
}

// TradableHandler serves the CRUD routes of one tradable kind. Stakes and stocks each get
// their own instance.
type TradableHandler struct {
	kind domain.Kind
	svc  TradableService
}

func NewTradableHandler(kind domain.Kind, svc TradableService) *TradableHandler {
	return &TradableHandler{
		kind: kind,
		svc:  svc,
	}
}

func (h *TradableHandler) RegisterRoutes(g gin.IRoutes) {
	k := string(h.kind)

	g.POST("/add_"+k, h.HandleCreate)
	g.GET("/get_"+k+"/:ticker", h.HandleGet)
	g.PUT("/update_"+k+"/:id", h.HandleUpdate)
	g.DELETE("/delete_"+k+"/:ticker", h.HandleDelete)
	g.GET("/"+k+"_list/", h.HandleList)
}

// HandleCreate godoc
// @Summary      Add a stake or stock
// @Tags         tradables
// @Accept       json
// @Produce      json
// @Param        kind      path      string                        true  "stake or stock"
// @Param        request   body      request.CreateTradableRequest true  "request body"
// @Success      201       {object}  domain.Tradable
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /add_{kind} [post]
// @Security     BearerAuth
func (h *TradableHandler) HandleCreate(ctx *gin.Context) {
	var req request.CreateTradableRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.Create(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		if errors.Is(err, service.ErrTickerExists) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrTickerExists))
			return
		}

		err = fmt.Errorf("v1.HandleCreate(%s) -> h.svc.Create -> %w", h.kind, err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleGet godoc
// @Summary      Get a stake or stock by ticker
// @Tags         tradables
// @Produce      json
// @Param        kind      path      string  true  "stake or stock"
// @Param        ticker    path      string  true  "ticker"
// @Success      200       {object}  domain.Tradable
// @Failure      401       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /get_{kind}/{ticker} [get]
// @Security     BearerAuth
func (h *TradableHandler) HandleGet(ctx *gin.Context) {
	ticker := ctx.Param("ticker")

	found, err := h.svc.GetByTicker(ctx.Request.Context(), ticker)
	if err != nil {
		if errors.Is(err, service.ErrTradableNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(string(h.kind), "ticker", ticker))
			return
		}

		err = fmt.Errorf("v1.HandleGet(%s) -> h.svc.GetByTicker -> %w", h.kind, err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, found)
}

// HandleUpdate godoc
// @Summary      Partially update a stake or stock
// @Description  Only the fields present in the body are changed.
// @Tags         tradables
// @Accept       json
// @Produce      json
// @Param        kind      path      string                        true  "stake or stock"
// @Param        id        path      int                           true  "record id"
// @Param        request   body      request.UpdateTradableRequest true  "request body"
// @Success      200       {object}  domain.Tradable
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /update_{kind}/{id} [put]
// @Security     BearerAuth
func (h *TradableHandler) HandleUpdate(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid %s ID: %w", h.kind, err)))
		return
	}

	var req request.UpdateTradableRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.Update(ctx.Request.Context(), uint(id), req.ToPatch())
	if err != nil {
		if errors.Is(err, service.ErrTradableNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(string(h.kind), "id", id))
			return
		}
		if errors.Is(err, service.ErrTickerExists) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrTickerExists))
			return
		}

		err = fmt.Errorf("v1.HandleUpdate(%s) -> h.svc.Update -> %w", h.kind, err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDelete godoc
// @Summary      Delete a stake or stock by ticker
// @Tags         tradables
// @Produce      json
// @Param        kind      path      string  true  "stake or stock"
// @Param        ticker    path      string  true  "ticker"
// @Success      200       {object}  response.DeleteResponse
// @Failure      401       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /delete_{kind}/{ticker} [delete]
// @Security     BearerAuth
func (h *TradableHandler) HandleDelete(ctx *gin.Context) {
	ticker := ctx.Param("ticker")

	if err := h.svc.Delete(ctx.Request.Context(), ticker); err != nil {
		if errors.Is(err, service.ErrTradableNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(string(h.kind), "ticker", ticker))
			return
		}

		err = fmt.Errorf("v1.HandleDelete(%s) -> h.svc.Delete -> %w", h.kind, err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.DeleteResponse{
		Message: fmt.Sprintf("%s %s got deleted successfully.", h.kind, ticker),
	})
}

// HandleList godoc
// @Summary      List stakes or stocks
// @Description  Equality filters are ANDed. sort_by is a field name, "-" prefix for descending; unknown values are ignored.
// @Tags         tradables
// @Produce      json
// @Param        kind                  path   string  true   "stake or stock"
// @Param        company_name          query  string  false  "filter by company name"
// @Param        ticker                query  string  false  "filter by ticker"
// @Param        current_price         query  string  false  "filter by current price"
// @Param        daily_change_percent  query  string  false  "filter by daily change percent"
// @Param        stock_turnover        query  string  false  "filter by stock turnover"
// @Param        sort_by               query  string  false  "company_name, ticker, current_price, daily_change_percent or stock_turnover"
// @Success      200  {array}   domain.Tradable
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /{kind}_list/ [get]
// @Security     BearerAuth
func (h *TradableHandler) HandleList(ctx *gin.Context) {
	var req request.ListTradablesRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	found, err := h.svc.List(ctx.Request.Context(), req.ToListQuery())
	if err != nil {
		err = fmt.Errorf("v1.HandleList(%s) -> h.svc.List -> %w", h.kind, err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	if found == nil {
		found = []domain.Tradable{}
	}

	ctx.JSON(http.StatusOK, found)
}
