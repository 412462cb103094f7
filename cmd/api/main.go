package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Him12/web-AR-backend/internal/config"
	"github.com/Him12/web-AR-backend/internal/db"
	"github.com/Him12/web-AR-backend/internal/httpx"
	"github.com/Him12/web-AR-backend/internal/menu"
	"github.com/Him12/web-AR-backend/internal/order"
)

func main() {
	cfg := config.Load()

	lg, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		lg.Fatal("connect data store", zap.Error(err))
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		lg.Fatal("ping data store", zap.Error(err))
	}

	r := newRouter(lg, cfg.FrontendOrigin, menu.NewPGRepo(pool), order.NewPGRepo(pool), time.Now())

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		lg.Info("backend listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal("serve", zap.Error(err))
		}
	}()

	<-ctx.Done()
	lg.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error("shutdown", zap.Error(err))
	}
}

func newRouter(lg *zap.Logger, frontendOrigin string, menus menu.Repository, orders order.Repository, start time.Time) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(lg), httpx.CORS(frontendOrigin))

	r.GET("/health", healthHandler(start))

	api := r.Group("/api")
	api.GET("/menu/:restaurant_number", getMenuHandler(lg, menus))
	api.POST("/order", createOrderHandler(lg, orders))
	api.GET("/orders", listOrdersHandler(lg, orders))
	api.GET("/orders/:restaurant_number", listOrdersHandler(lg, orders))
	api.PATCH("/orders/:id", updateOrderHandler(lg, orders))

	r.NoRoute(func(c *gin.Context) {
		httpx.Fail(c, http.StatusNotFound, "Not found")
	})
	return r
}
