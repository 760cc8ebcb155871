package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"smartkuliner-seller-service/internal/analytics"
	"smartkuliner-seller-service/internal/dto"
	"smartkuliner-seller-service/internal/model"
	"smartkuliner-seller-service/internal/repository"
	"smartkuliner-seller-service/internal/service"
	"smartkuliner-seller-service/internal/status"
)

type OrderController struct {
	Orders    *service.OrderService
	Analytics *service.AnalyticsService
}

func NewOrderController(orders *service.OrderService, analytics *service.AnalyticsService) *OrderController {
	return &OrderController{Orders: orders, Analytics: analytics}
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, status.ErrInvalidTransition),
		errors.Is(err, repository.ErrAlreadyLiked),
		errors.Is(err, repository.ErrNotLiked):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func toOrderView(o model.Order) dto.OrderView {
	view := dto.OrderView{Order: o}
	if cfg, ok := status.Lookup(status.Status(o.Status)); ok {
		view.StatusLabel = cfg.DisplayLabel
		view.NextActionLabel = cfg.NextActionLabel
	}
	return view
}

// GET /seller/orders
func (ctl *OrderController) GetMyOrders(c *gin.Context) {
	sellerID := c.GetString("userID")
	orders, err := ctl.Orders.GetBySeller(c.Request.Context(), sellerID)
	if err != nil {
		respondError(c, err)
		return
	}

	views := make([]dto.OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, toOrderView(o))
	}
	c.JSON(http.StatusOK, views)
}

// GET /seller/orders/:orderId
func (ctl *OrderController) GetOrder(c *gin.Context) {
	sellerID := c.GetString("userID")
	ord, err := ctl.Orders.GetByID(c.Request.Context(), c.Param("orderId"), sellerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderView(*ord))
}

// POST /seller/orders/:orderId/advance performs one forward workflow
// step. The UI keeps at most one transition in flight per order; the
// handler just reports the outcome of this one.
func (ctl *OrderController) AdvanceOrder(c *gin.Context) {
	sellerID := c.GetString("userID")
	ord, err := ctl.Orders.Advance(c.Request.Context(), c.Param("orderId"), sellerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderView(*ord))
}

// POST /seller/orders/:orderId/cancel
func (ctl *OrderController) CancelOrder(c *gin.Context) {
	sellerID := c.GetString("userID")
	ord, err := ctl.Orders.Cancel(c.Request.Context(), c.Param("orderId"), sellerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderView(*ord))
}

// GET /seller/analytics/sales?granularity=&year=&month=
func (ctl *OrderController) GetSalesReport(c *gin.Context) {
	var q dto.SalesReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g := analytics.Granularity(q.Granularity)
	month := 0
	if g != analytics.Monthly {
		if q.Month == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "month is required for daily and weekly reports"})
			return
		}
		month = *q.Month
	}

	sellerID := c.GetString("userID")
	report, err := ctl.Analytics.SalesReport(c.Request.Context(), sellerID, g, q.Year, month)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
