package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"launchpool/internal/model"
	"launchpool/internal/pools"
	"launchpool/internal/referral"
)

// ResponseError is the JSON error body.
type ResponseError struct {
	Message string `json:"message"`
}

// ReferralResponse is the shareable referral link of an account.
type ReferralResponse struct {
	Account string `json:"account"`
	Link    string `json:"link"`
	Short   string `json:"short"`
}

// ActiveResponse reports whether a farm accepts stakes.
type ActiveResponse struct {
	PID    uint64 `json:"pid"`
	Active bool   `json:"active"`
}

// Dashboard is the read side the HTTP API serves.
type Dashboard interface {
	Farms() []model.Farm
	Farm(pid uint64) (model.Farm, error)
	LPValue(ctx context.Context, pid uint64) (model.LPValue, error)
	PoolActive(ctx context.Context, pid uint64) bool
	AccountLocked(ctx context.Context, account common.Address) model.AccountLocked
	AccountFarm(ctx context.Context, pid uint64, account common.Address) (model.AccountFarm, error)
	Supply(ctx context.Context) model.Supply
	Home(ctx context.Context, account common.Address) model.Home
	ReferralLink(account common.Address) string
}

// Handler serves the farm and account API over echo.
type Handler struct {
	Dashboard Dashboard
	logger    *zap.Logger
}

// NewHandler registers the API routes on e.
func NewHandler(e *echo.Echo, d Dashboard, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Handler{Dashboard: d, logger: logger}

	e.GET("/farms", h.GetFarms)
	e.GET("/farms/:pid", h.GetFarm)
	e.GET("/farms/:pid/value", h.GetFarmValue)
	e.GET("/farms/:pid/active", h.GetFarmActive)
	e.GET("/accounts/:account/locked", h.GetAccountLocked)
	e.GET("/accounts/:account/farms/:pid", h.GetAccountFarm)
	e.GET("/supply", h.GetSupply)
	e.GET("/home", h.GetHome)
	e.GET("/referral/:account", h.GetReferral)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// NewServer returns an echo instance with the API and instrumentation wired.
func NewServer(d Dashboard, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(InstrumentMiddleware)
	NewHandler(e, d, logger)
	return e
}

func (h *Handler) GetFarms(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Dashboard.Farms())
}

func (h *Handler) GetFarm(c echo.Context) error {
	pid, err := parsePID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	farm, err := h.Dashboard.Farm(pid)
	if err != nil {
		return c.JSON(h.statusCode(err), ResponseError{Message: err.Error()})
	}
	return c.JSON(http.StatusOK, farm)
}

func (h *Handler) GetFarmValue(c echo.Context) error {
	pid, err := parsePID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	value, err := h.Dashboard.LPValue(c.Request().Context(), pid)
	if err != nil {
		return c.JSON(h.statusCode(err), ResponseError{Message: err.Error()})
	}
	return c.JSON(http.StatusOK, value)
}

func (h *Handler) GetFarmActive(c echo.Context) error {
	pid, err := parsePID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	return c.JSON(http.StatusOK, ActiveResponse{PID: pid, Active: h.Dashboard.PoolActive(c.Request().Context(), pid)})
}

func (h *Handler) GetAccountLocked(c echo.Context) error {
	account, err := parseAccount(c.Param("account"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	return c.JSON(http.StatusOK, h.Dashboard.AccountLocked(c.Request().Context(), account))
}

func (h *Handler) GetAccountFarm(c echo.Context) error {
	account, err := parseAccount(c.Param("account"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	pid, err := parsePID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	position, err := h.Dashboard.AccountFarm(c.Request().Context(), pid, account)
	if err != nil {
		return c.JSON(h.statusCode(err), ResponseError{Message: err.Error()})
	}
	return c.JSON(http.StatusOK, position)
}

func (h *Handler) GetSupply(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Dashboard.Supply(c.Request().Context()))
}

// GetHome serves the landing view. The account query parameter is optional.
func (h *Handler) GetHome(c echo.Context) error {
	var account common.Address
	if raw := c.QueryParam("account"); raw != "" {
		parsed, err := parseAccount(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		account = parsed
	}
	return c.JSON(http.StatusOK, h.Dashboard.Home(c.Request().Context(), account))
}

func (h *Handler) GetReferral(c echo.Context) error {
	account, err := parseAccount(c.Param("account"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	return c.JSON(http.StatusOK, ReferralResponse{
		Account: account.Hex(),
		Link:    h.Dashboard.ReferralLink(account),
		Short:   referral.Shorten(account),
	})
}

func parsePID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("pid"), 10, 64)
}

var errInvalidAccount = errors.New("invalid account address")

func parseAccount(raw string) (common.Address, error) {
	if !common.IsHexAddress(raw) {
		return common.Address{}, errInvalidAccount
	}
	return common.HexToAddress(raw), nil
}

func (h *Handler) statusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, pools.ErrPoolNotFound):
		return http.StatusNotFound
	default:
		h.logger.Error("request failed", zap.Error(err))
		return http.StatusInternalServerError
	}
}
