package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/XDazaiX/La-Habana-Kitchen/internal/checkout"
	"github.com/XDazaiX/La-Habana-Kitchen/internal/dto"
	"github.com/XDazaiX/La-Habana-Kitchen/internal/middleware"
	"github.com/XDazaiX/La-Habana-Kitchen/internal/models"
	"github.com/XDazaiX/La-Habana-Kitchen/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type StorefrontHandler struct {
	store *service.Storefront
	log   *zap.Logger
}

func NewStorefrontHandler(store *service.Storefront, log *zap.Logger) *StorefrontHandler {
	return &StorefrontHandler{store: store, log: log}
}

func (h *StorefrontHandler) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": h.store.Catalog()})
}

func (h *StorefrontHandler) Basket(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Basket(middleware.SessionID(c)))
}

func (h *StorefrontHandler) UpdateItem(c *gin.Context) {
	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid basket update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", nil))
		return
	}
	view := h.store.ApplyDelta(middleware.SessionID(c), req.ProductID, req.Delta)
	c.JSON(http.StatusOK, view)
}

func (h *StorefrontHandler) Recommendations(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	items := h.store.Recommendations(middleware.SessionID(c), limit)
	c.JSON(http.StatusOK, gin.H{"products": items})
}

func (h *StorefrontHandler) OpenCheckout(c *gin.Context) {
	view, err := h.store.OpenCheckout(middleware.SessionID(c))
	if err != nil {
		h.checkoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *StorefrontHandler) SubmitDetails(c *gin.Context) {
	var req dto.DeliveryDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid delivery details request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", nil))
		return
	}
	view, err := h.store.SubmitDetails(middleware.SessionID(c), models.CustomerInfo{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
		Notes:   req.Notes,
	})
	if err != nil {
		h.checkoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *StorefrontHandler) SelectPayment(c *gin.Context) {
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid payment request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", nil))
		return
	}
	view, err := h.store.SelectPayment(middleware.SessionID(c), models.PaymentMethod(req.Method))
	if err != nil {
		h.checkoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *StorefrontHandler) Confirm(c *gin.Context) {
	ord, err := h.store.ConfirmOrder(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		h.checkoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, ord)
}

func (h *StorefrontHandler) CloseCheckout(c *gin.Context) {
	h.store.CloseCheckout(middleware.SessionID(c))
	c.JSON(http.StatusOK, gin.H{"status": "closed"})
}

func (h *StorefrontHandler) checkoutError(c *gin.Context, err error) {
	var verr *checkout.ValidationError
	switch {
	case errors.As(err, &verr):
		fields := make([]dto.FieldError, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			fields = append(fields, dto.FieldError{Field: f.Field, Message: f.Message})
		}
		c.JSON(http.StatusBadRequest, dto.NewValidationError("validation failed", fields))
	case errors.Is(err, service.ErrEmptyBasket):
		c.JSON(http.StatusUnprocessableEntity, dto.NewUnprocessableError("basket is empty"))
	case errors.Is(err, service.ErrCheckoutNotOpen):
		c.JSON(http.StatusConflict, dto.NewConflictError("checkout is not open"))
	case errors.Is(err, checkout.ErrNoPaymentMethod):
		c.JSON(http.StatusConflict, dto.NewConflictError("select a payment method first"))
	case errors.Is(err, checkout.ErrInvalidPaymentMethod):
		c.JSON(http.StatusBadRequest, dto.NewValidationError("unknown payment method", nil))
	case errors.Is(err, checkout.ErrAlreadyConfirmed), errors.Is(err, checkout.ErrInvalidStep):
		c.JSON(http.StatusConflict, dto.NewConflictError(err.Error()))
	default:
		h.log.Error("checkout operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
	}
}
