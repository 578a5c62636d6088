package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/evan-taojiangcb/huangli-programmer/internal/app"
	"github.com/evan-taojiangcb/huangli-programmer/internal/domain"
)

type Handler struct {
	svc    *app.AlmanacService
	ticker *app.TickerService
}

func NewHandler(svc *app.AlmanacService, ticker *app.TickerService) *Handler {
	return &Handler{svc: svc, ticker: ticker}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.GET("/v1/fortune", h.GetFortune)
	e.POST("/v1/fortune", h.PostFortune)
	e.GET("/v1/ticker", h.Ticker)
	e.GET("/v1/pools", h.Pools)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) GetFortune(c echo.Context) error {
	birth := c.QueryParam("birth")
	if birth == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "birth is required (YYYY-MM-DD)"})
	}

	return h.readFortune(c, app.ReadFortuneRequest{
		Name:      c.QueryParam("name"),
		BirthDate: birth,
		Gender:    c.QueryParam("gender"),
		Date:      c.QueryParam("date"),
	})
}

func (h *Handler) PostFortune(c echo.Context) error {
	var body FortuneRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
	}
	if body.BirthDate == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "birth_date is required (YYYY-MM-DD)"})
	}

	return h.readFortune(c, app.ReadFortuneRequest{
		Name:      body.Name,
		BirthDate: body.BirthDate,
		Gender:    body.Gender,
		Date:      body.Date,
	})
}

func (h *Handler) readFortune(c echo.Context, req app.ReadFortuneRequest) error {
	resp, err := h.svc.ReadFortune(c.Request().Context(), req)
	if err != nil {
		return mapError(c, err)
	}

	requestID, _ := c.Get("request_id").(string)

	return c.JSON(http.StatusOK, toResponse(resp, requestID))
}

func (h *Handler) Ticker(c echo.Context) error {
	resp, err := h.ticker.Latest(c.Request().Context())
	if err != nil {
		return mapError(c, err)
	}
	q := resp.Quote
	return c.JSON(http.StatusOK, TickerResponse{
		Symbol:    q.Symbol,
		Price:     q.Price.StringFixed(2),
		Change24h: q.Change24h.StringFixed(2),
		Trend:     string(resp.Trend),
		UpdatedAt: q.UpdatedAt.Format(time.RFC3339),
	})
}

func (h *Handler) Pools(c echo.Context) error {
	return c.JSON(http.StatusOK, PoolsResponse{
		Suitable:       domain.SuitableActivities(),
		Unsuitable:     domain.UnsuitableActivities(),
		MysticMessages: domain.MysticMessages(),
		LuckyLanguages: domain.LuckyLanguages(),
	})
}

func toResponse(r app.ReadFortuneResponse, requestID string) FortuneResponse {
	rd := r.Reading
	f := rd.Fortune
	return FortuneResponse{
		Name:      rd.Name,
		Gender:    rd.Gender,
		BirthDate: rd.Birth.String(),
		Date:      rd.Date.String(),
		CoderDay:  rd.CoderDay,
		Fortune: FortuneResp{
			Suitable:      f.Suitable,
			Unsuitable:    f.Unsuitable,
			CodeQuality:   f.CodeQuality,
			BTCPrediction: f.BTCPrediction,
			BTCLabel:      f.BTCPrediction.Label(),
			MysticMessage: f.MysticMessage,
			LuckyColor: ColorResp{
				Hue:        f.LuckyColor.Hue,
				Saturation: f.LuckyColor.Saturation,
				Lightness:  f.LuckyColor.Lightness,
				CSS:        f.LuckyColor.String(),
				Hex:        f.LuckyColor.Hex(),
			},
			LuckyLanguage: f.LuckyLanguage,
		},
		ShareText: r.ShareText,
		Meta: MetaResp{
			Seed:      rd.Seed,
			RequestID: requestID,
			LatencyMS: r.LatencyMS,
		},
	}
}

func mapError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		slog.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
