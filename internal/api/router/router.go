package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/pushgate/push-dispatcher/internal/api/handlers/device"
	"github.com/pushgate/push-dispatcher/internal/api/handlers/notification"
)

// New wires the HTTP routes.
func New(notifHandler *notification.Handler, deviceHandler *device.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api")

	notifications := api.Group("/notifications")
	notifications.POST("", notifHandler.Create)
	notifications.GET("", notifHandler.List)
	notifications.GET("/:id", notifHandler.Get)
	notifications.GET("/:id/status", notifHandler.GetStatus)
	notifications.PUT("/:id", notifHandler.Update)
	notifications.DELETE("/:id", notifHandler.Delete)
	notifications.POST("/:id/ack", notifHandler.Acknowledge)

	devices := api.Group("/devices")
	devices.POST("", deviceHandler.Register)
	devices.DELETE("/:token", deviceHandler.Unregister)

	api.GET("/recipients/:id/history", notifHandler.RecipientHistory)

	return e
}
