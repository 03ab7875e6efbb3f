// controllers/draft_controller.go
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"resort-backend/services"
	"resort-backend/utils"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

const dateLayout = "2006-01-02"

type SetStayPayload struct {
	CheckIn  string `json:"checkIn" binding:"required"`
	CheckOut string `json:"checkOut" binding:"required"`
}

type SelectRoomPayload struct {
	RoomOfferingID uint `json:"roomOfferingId" binding:"required"`
}

type GuestCountPayload struct {
	GuestCount int `json:"guestCount" binding:"required,min=1"`
}

type ExtraBedPayload struct {
	ExtraBed bool `json:"extraBed"`
}

type ContactPayload struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	SpecialRequests string `json:"specialRequests"`
}

type RosterEntryPayload struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// ---------------------------
// Controller
// ---------------------------

type DraftController struct {
	Drafts *services.DraftService
}

func NewDraftController(svc *services.DraftService) *DraftController {
	return &DraftController{Drafts: svc}
}

func (dc *DraftController) CreateDraft(c *gin.Context) {
	id := dc.Drafts.Create()
	state, err := dc.Drafts.State(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, state)
}

func (dc *DraftController) GetDraft(c *gin.Context) {
	state, err := dc.Drafts.State(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, state)
}

func (dc *DraftController) SetStay(c *gin.Context) {
	var payload SetStayPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	checkIn, err := time.Parse(dateLayout, payload.CheckIn)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "checkIn must be YYYY-MM-DD")
		return
	}
	checkOut, err := time.Parse(dateLayout, payload.CheckOut)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "checkOut must be YYYY-MM-DD")
		return
	}
	if err := dc.Drafts.SetStay(c.Param("id"), checkIn, checkOut); err != nil {
		respondServiceError(c, err)
		return
	}
	dc.GetDraft(c)
}

func (dc *DraftController) SelectRoom(c *gin.Context) {
	var payload SelectRoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := dc.Drafts.SelectRoom(c.Param("id"), payload.RoomOfferingID); err != nil {
		respondServiceError(c, err)
		return
	}
	dc.GetDraft(c)
}

func (dc *DraftController) SetGuestCount(c *gin.Context) {
	var payload GuestCountPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := dc.Drafts.SetGuestCount(c.Param("id"), payload.GuestCount); err != nil {
		respondServiceError(c, err)
		return
	}
	dc.GetDraft(c)
}

func (dc *DraftController) SetExtraBed(c *gin.Context) {
	var payload ExtraBedPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := dc.Drafts.SetExtraBed(c.Param("id"), payload.ExtraBed); err != nil {
		respondServiceError(c, err)
		return
	}
	dc.GetDraft(c)
}

func (dc *DraftController) SetContact(c *gin.Context) {
	var payload ContactPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	contact := services.PrimaryContact{
		Name:  payload.Name,
		Email: payload.Email,
		Phone: payload.Phone,
	}
	if err := dc.Drafts.SetContact(c.Param("id"), contact, payload.SpecialRequests); err != nil {
		respondServiceError(c, err)
		return
	}
	dc.GetDraft(c)
}

func (dc *DraftController) UpdateRosterEntry(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "roster index must be a number")
		return
	}
	var payload RosterEntryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := dc.Drafts.UpdateRosterEntry(c.Param("id"), index, payload.Field, payload.Value); err != nil {
		respondServiceError(c, err)
		return
	}
	dc.GetDraft(c)
}

func (dc *DraftController) Advance(c *gin.Context) {
	step, err := dc.Drafts.Advance(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"step": step})
}

func (dc *DraftController) Retreat(c *gin.Context) {
	step, err := dc.Drafts.Retreat(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"step": step})
}

func (dc *DraftController) Quote(c *gin.Context) {
	breakdown, err := dc.Drafts.Quote(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, breakdown)
}

func (dc *DraftController) Confirm(c *gin.Context) {
	booking, err := dc.Drafts.Confirm(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

func (dc *DraftController) Abandon(c *gin.Context) {
	if err := dc.Drafts.Abandon(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"discarded": true})
}
