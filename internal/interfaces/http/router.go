package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Facturas-api/internal/application/billing"
	"github.com/jhoicas/Facturas-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC  *usecase.CompanyUseCase
	IndustryUC *usecase.IndustryUseCase
	InvoiceUC  *billing.InvoiceUseCase
	InvoicePDF *billing.PDFUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Companies
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:code", companyHandler.GetByCode)
	companies.Put("/:code", companyHandler.Update)
	companies.Delete("/:code", companyHandler.Delete)

	// Industries
	industries := api.Group("/industries")
	industryHandler := NewIndustryHandler(deps.IndustryUC)
	industries.Get("/", industryHandler.List)
	industries.Post("/", industryHandler.Create)
	industries.Post("/:code/companies", industryHandler.Associate)

	// Invoices
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.InvoicePDF)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)
}
