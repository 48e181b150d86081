package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(router gin.IRouter, limits RateLimits) {
	if limits.General != nil {
		router.Use(limits.General)
	}
	authLimit := withOptional(limits.Auth)
	apiKey := APIKeyAuthMiddleware(h.cfg, h.logger)

	api := router.Group("/api")

	// Публичная аутентификация
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", append(authLimit, h.login)...)
		auth.PUT("/change-password", h.changePasswordByEmail)
		auth.POST("/forgot-password", append(authLimit, h.forgotPassword)...)
		auth.POST("/reset-password", append(authLimit, h.resetPassword)...)
	}

	// Жизненный цикл тревог
	alerts := api.Group("/alertas")
	{
		alerts.GET("", apiKey, h.listAlerts)
		alerts.POST("/crear", h.createAlert)
		alerts.GET("/usuario/:id", h.listUserAlerts)
		alerts.GET("/pendientes", h.listPendingAlerts)
		alerts.GET("/atendidas/:policiaId", h.listResolvedAlerts)
		alerts.PUT("/:id/status", h.updateAlertStatus)
		alerts.PUT("/:id/cancelar", h.cancelAlert)
	}

	// Экстренные контакты
	contacts := api.Group("/contactos")
	{
		contacts.GET("/usuario/:id", h.listContacts)
		contacts.POST("/crear", h.createContact)
		contacts.PUT("/:id", h.updateContact)
		contacts.DELETE("/:id", h.deleteContact)
		contacts.PATCH("/:id/notificaciones", h.toggleContactNotifications)
	}

	// Лента уведомлений
	notifications := api.Group("/notification")
	{
		notifications.GET("", h.listNotifications)
		notifications.PATCH("/marcar-leida/:id", h.markNotificationAsRead)
	}

	// Маршрут Health-check
	api.GET("/test", h.healthCheck)

	// Управление пользователями
	users := router.Group("/usuarios")
	{
		users.GET("", apiKey, h.listUsers)
		users.POST("", apiKey, h.createUser)
		users.GET("/:id", h.getUser)
		users.PUT("/:id", apiKey, h.updateUser)
		users.PUT("/:id/cambiar-password", h.changeUserPassword)
		users.PUT("/:id/cambiar-password-admin", apiKey, h.adminResetPassword)
		users.DELETE("/:id", apiKey, h.deleteUser)
		users.DELETE("/:id/eliminar-cuenta", h.deleteAccount)
	}
}

// withOptional возвращает цепочку из одного middleware или пустую
func withOptional(mw gin.HandlerFunc) []gin.HandlerFunc {
	if mw == nil {
		return nil
	}
	return []gin.HandlerFunc{mw}
}
