package main

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Him12/web-AR-backend/internal/httpx"
	"github.com/Him12/web-AR-backend/internal/menu"
	"github.com/Him12/web-AR-backend/internal/order"
)

// healthHandler reports liveness and seconds of uptime.
func healthHandler(start time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		httpx.OK(c, gin.H{"uptime": time.Since(start).Seconds()})
	}
}

func getMenuHandler(lg *zap.Logger, repo menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := repo.ListByRestaurant(c.Request.Context(), c.Param("restaurant_number"))
		if err != nil {
			failStore(c, lg, "get_menu", err)
			return
		}
		httpx.OK(c, gin.H{"menu": items})
	}
}

func createOrderHandler(lg *zap.Logger, repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			failClient(c, lg, "create_order", "invalid request body")
			return
		}
		o, err := order.Normalize(req, time.Now().UTC())
		if err != nil {
			failClient(c, lg, "create_order", err.Error())
			return
		}
		if err := repo.Create(c.Request.Context(), o); err != nil {
			failStore(c, lg, "create_order", err)
			return
		}
		httpx.OK(c, gin.H{"orderId": o.ID, "order": o})
	}
}

func listOrdersHandler(lg *zap.Logger, repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurant := c.Param("restaurant_number")
		if restaurant == "" {
			restaurant = c.Query("restaurant_number")
		}
		if restaurant == "" {
			restaurant = c.Query("restaurant") // legacy query alias
		}
		if restaurant == "" {
			failClient(c, lg, "list_orders", order.ErrMissingRestaurant.Error())
			return
		}
		orders, err := repo.List(c.Request.Context(), restaurant, c.Query("status"))
		if err != nil {
			failStore(c, lg, "list_orders", err)
			return
		}
		httpx.OK(c, gin.H{"orders": orders})
	}
}

func updateOrderHandler(lg *zap.Logger, repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			failClient(c, lg, "update_order", "invalid order id")
			return
		}

		// an empty body is treated as an empty patch, not a malformed one
		var body map[string]json.RawMessage
		if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
			failClient(c, lg, "update_order", "invalid request body")
			return
		}

		upd, err := order.BuildUpdate(body, time.Now().UTC())
		if err != nil {
			failClient(c, lg, "update_order", err.Error())
			return
		}

		o, err := repo.Update(c.Request.Context(), id, upd)
		if err != nil {
			failStore(c, lg, "update_order", err)
			return
		}
		// o is nil when no row matched; the envelope carries order: null
		httpx.OK(c, gin.H{"order": o})
	}
}

func failClient(c *gin.Context, lg *zap.Logger, endpoint, msg string) {
	lg.Warn("client error", zap.String("endpoint", endpoint), zap.String("error", msg))
	httpx.Fail(c, http.StatusBadRequest, msg)
}

func failStore(c *gin.Context, lg *zap.Logger, endpoint string, err error) {
	lg.Error("store error", zap.String("endpoint", endpoint), zap.Error(err))
	httpx.Fail(c, http.StatusInternalServerError, err.Error())
}
