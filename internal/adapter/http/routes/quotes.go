package routes

import (
	"servicescale/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes    = "/quotes"
	PathTemplates = "/templates"
	PathSettings  = "/settings"
)

func addQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("", h.ListQuotes)
		quotes.POST("", h.CreateQuote)
		quotes.POST("/generate", h.GenerateQuotes)
		quotes.GET("/stats", h.QuoteStats)

		quotes.GET("/:id", h.GetQuote)
		quotes.DELETE("/:id", h.DeleteQuote)
		quotes.PATCH("/:id/status", h.UpdateQuoteStatus)
		quotes.POST("/:id/send", h.MarkQuoteSent)
		quotes.POST("/:id/view", h.TrackQuoteView)
	}
}

func addTemplateRoutes(rg *gin.RouterGroup, h *handlers.TemplateHandler) {
	templates := rg.Group(PathTemplates)
	{
		templates.GET("", h.ListTemplates)
		templates.POST("", h.CreateTemplate)
		templates.GET("/:id", h.GetTemplate)
		templates.PUT("/:id/default", h.SetDefaultTemplate)
	}
}

func addSettingsRoutes(rg *gin.RouterGroup, h *handlers.SettingsHandler) {
	settings := rg.Group(PathSettings)
	{
		settings.GET("/hvac-zone-rules", h.GetZoneRules)
		settings.PATCH("/hvac-zone-rules", h.UpdateZoneRules)
	}
}
