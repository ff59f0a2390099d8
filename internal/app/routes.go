package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/campus-card-core/internal/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (a *App) RegisterRoutes(t *handlers.TransactionHandler, admin *handlers.AdminHandler) {
	a.Router.POST("/transactions", t.CreateTransaction)
	a.Router.GET("/transactions/recent", admin.GetRecentTransactions)
	a.Router.GET("/operations/log", admin.GetOperationLog)

	cards := a.Router.Group("/cards")
	cards.POST("", t.CreateCard)
	cards.GET("/suspended", admin.GetSuspendedCards)
	cards.GET("/:uid", t.GetCard)
	cards.POST("/:uid/unsuspend", t.UnsuspendCard)

	alerts := a.Router.Group("/alerts")
	alerts.GET("", admin.GetAlerts)
	alerts.POST("/:id/resolve", admin.ResolveAlert)

	a.Router.GET("/stats", admin.GetStats)
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
