package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resort-backend/services"
	"resort-backend/utils"
)

type EventEstimatePayload struct {
	EventOfferingID uint `json:"eventOfferingId" binding:"required"`
	Guests          int  `json:"guests" binding:"required,min=1"`
	Catering        bool `json:"catering"`
}

type CatalogController struct {
	Catalog *services.CatalogService
}

func NewCatalogController(svc *services.CatalogService) *CatalogController {
	return &CatalogController{Catalog: svc}
}

func (cc *CatalogController) GetRoomOfferings(c *gin.Context) {
	offerings, err := cc.Catalog.ListRoomOfferings()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, offerings)
}

func (cc *CatalogController) GetEventOfferings(c *gin.Context) {
	offerings, err := cc.Catalog.ListEventOfferings()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, offerings)
}

func (cc *CatalogController) GetMenuItems(c *gin.Context) {
	items, err := cc.Catalog.ListMenuItems()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, items)
}

// EstimateEvent quotes an event enquiry without creating any draft state.
func (cc *CatalogController) EstimateEvent(c *gin.Context) {
	var payload EventEstimatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	offering, err := cc.Catalog.EventOfferingByID(payload.EventOfferingID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	total := services.EstimateEvent(offering, payload.Guests, payload.Catering)
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"eventOfferingId": offering.ID,
		"guests":          payload.Guests,
		"catering":        payload.Catering,
		"total":           total,
	})
}
