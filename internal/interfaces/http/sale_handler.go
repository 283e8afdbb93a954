package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coffee-urbantech/pos-api/internal/application/dto"
	"github.com/coffee-urbantech/pos-api/internal/application/sales"
)

// SaleHandler maneja el carrito por usuario, el commit de ventas y el
// historial (protegido).
type SaleHandler struct {
	uc *sales.SaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *sales.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// GetCart godoc
// @Summary      Ver la venta en curso
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/sales/cart [get]
func (h *SaleHandler) GetCart(c *fiber.Ctx) error {
	out, err := h.uc.GetCart(c.Context(), GetUserID(c))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// AddCartItem godoc
// @Summary      Agregar una unidad de producto al carrito
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCartItemRequest  true  "Producto a agregar"
// @Success      200   {object}  dto.CartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales/cart/items [post]
func (h *SaleHandler) AddCartItem(c *fiber.Ctx) error {
	var in dto.AddCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	out, err := h.uc.AddItem(c.Context(), GetUserID(c), in.ProductID)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// ChangeCartQuantity godoc
// @Summary      Ajustar la cantidad de una línea del carrito
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Param        body       body  dto.ChangeCartQuantityRequest  true  "Delta de cantidad"
// @Success      200        {object}  dto.CartResponse
// @Failure      409        {object}  dto.ErrorResponse
// @Router       /api/sales/cart/items/{productId} [patch]
func (h *SaleHandler) ChangeCartQuantity(c *fiber.Ctx) error {
	productID := c.Params("productId")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "productId es requerido"})
	}
	var in dto.ChangeCartQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ChangeQuantity(c.Context(), GetUserID(c), productID, in.Delta)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// RemoveCartItem godoc
// @Summary      Eliminar una línea del carrito
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200        {object}  dto.CartResponse
// @Router       /api/sales/cart/items/{productId} [delete]
func (h *SaleHandler) RemoveCartItem(c *fiber.Ctx) error {
	productID := c.Params("productId")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "productId es requerido"})
	}
	out, err := h.uc.RemoveItem(c.Context(), GetUserID(c), productID)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// ClearCart godoc
// @Summary      Vaciar la venta en curso
// @Tags         sales
// @Security     Bearer
// @Success      204  "Sin contenido"
// @Router       /api/sales/cart [delete]
func (h *SaleHandler) ClearCart(c *fiber.Ctx) error {
	if err := h.uc.ClearCart(c.Context(), GetUserID(c)); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Commit godoc
// @Summary      Confirmar la venta en curso
// @Description  Descuenta el stock de todas las líneas y crea el registro
// @Description  histórico en una sola transacción. Todo o nada.
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.SaleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Commit(c *fiber.Ctx) error {
	out, err := h.uc.CommitSale(c.Context(), GetUserID(c))
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Historial de ventas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.SaleListResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar una venta del historial
// @Description  Solo elimina el registro; el stock no se revierte (las
// @Description  ventas son finales). Requiere rol admin.
// @Tags         sales
// @Security     Bearer
// @Param        id   path  string  true  "ID de la venta"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [delete]
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
