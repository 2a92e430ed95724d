package routes

import (
	"servicescale/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomers = "/customers"
	PathPricebook = "/pricebook"
	PathUploads   = "/uploads"
	PathImports   = "/imports"
)

func addCustomerRoutes(rg *gin.RouterGroup, h *handlers.CustomerHandler) {
	customers := rg.Group(PathCustomers)
	{
		customers.GET("", h.ListCustomers)
		customers.POST("", h.CreateCustomer)
		customers.POST("/enrich", h.EnrichCustomers)

		customers.GET("/batches", h.ListBatches)
		customers.PUT("/batches/selected", h.SelectBatch)
		customers.DELETE("/batches/:batch_id", h.RemoveBatch)

		customers.GET("/:id", h.GetCustomer)
		customers.PATCH("/:id", h.UpdateCustomer)
		customers.DELETE("/:id", h.DeleteCustomer)
		customers.POST("/:id/restore", h.RestoreCustomer)
	}
}

func addPricebookRoutes(rg *gin.RouterGroup, h *handlers.PricebookHandler) {
	pricebook := rg.Group(PathPricebook)
	{
		pricebook.GET("", h.ListEntries)
		pricebook.POST("", h.CreateEntry)

		pricebook.GET("/batches", h.ListBatches)
		pricebook.PUT("/batches/selected", h.SelectBatch)
		pricebook.DELETE("/batches/:batch_id", h.RemoveBatch)

		pricebook.GET("/:id", h.GetEntry)
		pricebook.PATCH("/:id", h.UpdateEntry)
		pricebook.DELETE("/:id", h.DeleteEntry)
		pricebook.POST("/:id/restore", h.RestoreEntry)
	}
}

func addUploadRoutes(rg *gin.RouterGroup, h *handlers.UploadHandler) {
	uploads := rg.Group(PathUploads)
	{
		uploads.GET("", h.ListUploads)
		uploads.DELETE("/:id", h.DeleteUpload)
		uploads.POST("/:id/restore", h.RestoreUpload)
		uploads.DELETE("/:id/records", h.PurgeUpload)
	}
}

func addImportRoutes(rg *gin.RouterGroup, h *handlers.ImportHandler) {
	imports := rg.Group(PathImports)
	{
		imports.POST("", h.SniffImport)
		imports.POST("/:session_id/confirm", h.ConfirmImport)
		imports.DELETE("/:session_id", h.CancelImport)
	}
}
