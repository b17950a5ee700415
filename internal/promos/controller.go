package promos

import (
	"errors"
	"net/http"

	"showtix/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller interface {
	CreatePromo(c *gin.Context)
	GetPromo(c *gin.Context)
	ListPromos(c *gin.Context)
	UpdatePromo(c *gin.Context)
	DeactivatePromo(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreatePromo(c *gin.Context) {
	var req CreatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	promo, err := ctrl.service.CreatePromo(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrPromoCodeTaken) {
			response.Error(c, http.StatusConflict, "Promo code already exists", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to create promo code", nil)
		return
	}

	response.Success(c, http.StatusCreated, "Promo code created successfully", promo)
}

func (ctrl *controller) GetPromo(c *gin.Context) {
	promoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid promo ID", err.Error())
		return
	}

	promo, err := ctrl.service.GetPromo(c.Request.Context(), promoID)
	if err != nil {
		if errors.Is(err, ErrPromoNotFound) {
			response.Error(c, http.StatusNotFound, "Promo code not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to retrieve promo code", nil)
		return
	}

	response.Success(c, http.StatusOK, "Promo code retrieved successfully", promo)
}

func (ctrl *controller) ListPromos(c *gin.Context) {
	promos, err := ctrl.service.ListPromos(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list promo codes", nil)
		return
	}

	response.Success(c, http.StatusOK, "Promo codes retrieved successfully", promos)
}

func (ctrl *controller) UpdatePromo(c *gin.Context) {
	promoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid promo ID", err.Error())
		return
	}

	var req UpdatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	promo, err := ctrl.service.UpdatePromo(c.Request.Context(), promoID, req)
	if err != nil {
		if errors.Is(err, ErrPromoNotFound) {
			response.Error(c, http.StatusNotFound, "Promo code not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to update promo code", nil)
		return
	}

	response.Success(c, http.StatusOK, "Promo code updated successfully", promo)
}

func (ctrl *controller) DeactivatePromo(c *gin.Context) {
	promoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid promo ID", err.Error())
		return
	}

	if err := ctrl.service.DeactivatePromo(c.Request.Context(), promoID); err != nil {
		if errors.Is(err, ErrPromoNotFound) {
			response.Error(c, http.StatusNotFound, "Promo code not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to deactivate promo code", nil)
		return
	}

	response.Success(c, http.StatusOK, "Promo code deactivated successfully", nil)
}
