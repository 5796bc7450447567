package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Facturas-api/internal/application/dto"
	"github.com/jhoicas/Facturas-api/internal/application/usecase"
	"github.com/jhoicas/Facturas-api/internal/domain"
)

// IndustryHandler maneja las peticiones HTTP para el recurso Industry.
type IndustryHandler struct {
	uc *usecase.IndustryUseCase
}

// NewIndustryHandler construye el handler.
func NewIndustryHandler(uc *usecase.IndustryUseCase) *IndustryHandler {
	return &IndustryHandler{uc: uc}
}

// List godoc
// @Summary      Listar industrias con sus empresas asociadas
// @Tags         industries
// @Produce      json
// @Success      200  {object}  dto.IndustryListResponse
// @Router       /api/industries [get]
func (h *IndustryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear industria (el código se deriva del nombre)
// @Tags         industries
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateIndustryRequest  true  "Datos de la industria"
// @Success      201   {object}  dto.IndustryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/industries [post]
func (h *IndustryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateIndustryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido y debe producir un código válido"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una industria con ese código"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Associate godoc
// @Summary      Asociar una empresa a una industria
// @Tags         industries
// @Accept       json
// @Produce      json
// @Param        code  path  string  true  "Código de la industria"
// @Param        body  body  dto.AssociateCompanyRequest  true  "Empresa a asociar"
// @Success      201   {object}  dto.StatusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/industries/{code}/companies [post]
func (h *IndustryHandler) Associate(c *fiber.Ctx) error {
	indCode := c.Params("code")
	var in dto.AssociateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Associate(indCode, in.CompCode); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "comp_code es requerido"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "industria o empresa no encontrada"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "la asociación ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.StatusResponse{Status: "added"})
}
