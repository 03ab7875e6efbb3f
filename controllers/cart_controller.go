package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resort-backend/services"
	"resort-backend/utils"
)

type AddItemPayload struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
}

type SetQuantityPayload struct {
	Quantity *int `json:"quantity" binding:"required,min=0"`
}

type CartController struct {
	Carts *services.CartService
}

func NewCartController(svc *services.CartService) *CartController {
	return &CartController{Carts: svc}
}

func (cc *CartController) CreateCart(c *gin.Context) {
	id := cc.Carts.Create()
	summary, err := cc.Carts.Summary(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, summary)
}

func (cc *CartController) GetCart(c *gin.Context) {
	summary, err := cc.Carts.Summary(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, summary)
}

func (cc *CartController) AddItem(c *gin.Context) {
	var payload AddItemPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := cc.Carts.AddItem(c.Param("id"), payload.MenuItemID); err != nil {
		respondServiceError(c, err)
		return
	}
	cc.GetCart(c)
}

func itemIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("itemId"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "itemId must be a number")
		return 0, false
	}
	return uint(id), true
}

func (cc *CartController) SetQuantity(c *gin.Context) {
	itemID, ok := itemIDParam(c)
	if !ok {
		return
	}
	var payload SetQuantityPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := cc.Carts.SetQuantity(c.Param("id"), itemID, *payload.Quantity); err != nil {
		respondServiceError(c, err)
		return
	}
	cc.GetCart(c)
}

func (cc *CartController) RemoveItem(c *gin.Context) {
	itemID, ok := itemIDParam(c)
	if !ok {
		return
	}
	if err := cc.Carts.RemoveItem(c.Param("id"), itemID); err != nil {
		respondServiceError(c, err)
		return
	}
	cc.GetCart(c)
}

func (cc *CartController) DiscardCart(c *gin.Context) {
	if err := cc.Carts.Discard(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"discarded": true})
}
