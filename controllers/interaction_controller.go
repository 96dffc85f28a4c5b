package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yunseok-map/all-food-map/entity"
	"github.com/yunseok-map/all-food-map/pkg/resp"
	"github.com/yunseok-map/all-food-map/repository"
	"github.com/yunseok-map/all-food-map/services"
	"github.com/yunseok-map/all-food-map/utils"
	"github.com/yunseok-map/all-food-map/ws"
)

type InteractionController struct {
	Interactions *repository.InteractionRepository
	Hub          *ws.EventHub
}

func NewInteractionController(inters *repository.InteractionRepository, hub *ws.EventHub) *InteractionController {
	return &InteractionController{Interactions: inters, Hub: hub}
}

type ToggleRequest struct {
	PlaceID   uint   `json:"placeId" binding:"required"`
	PlaceType string `json:"placeType" binding:"required"`
	Kind      string `json:"kind" binding:"required,oneof=like dislike"`
}

// POST /interactions/toggle (Protected)
// Same kind again removes the vote, the other kind replaces it, no prior
// vote inserts one. Responds with the fresh summary for the place so the
// client swaps state instead of merging.
func (ic *InteractionController) Toggle(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	existing, err := ic.Interactions.FindOne(uid, req.PlaceID, req.PlaceType)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	var action string
	switch {
	case existing == nil:
		record := entity.Interaction{UserID: uid, PlaceID: req.PlaceID, PlaceType: req.PlaceType, Kind: req.Kind}
		if err := ic.Interactions.Create(&record); err != nil {
			resp.ServerError(c, err)
			return
		}
		action = "created"
		ic.Hub.Publish(ws.ChangeEvent{Table: "user_place_interactions", Event: ws.EventInsert, New: record})

	case existing.Kind == req.Kind:
		if err := ic.Interactions.Delete(existing.ID); err != nil {
			resp.ServerError(c, err)
			return
		}
		action = "removed"
		ic.Hub.Publish(ws.ChangeEvent{Table: "user_place_interactions", Event: ws.EventDelete, Old: existing})

	default:
		if err := ic.Interactions.UpdateKind(existing.ID, req.Kind); err != nil {
			resp.ServerError(c, err)
			return
		}
		action = "updated"
		updated := *existing
		updated.Kind = req.Kind
		ic.Hub.Publish(ws.ChangeEvent{Table: "user_place_interactions", Event: ws.EventUpdate, New: updated, Old: existing})
	}

	records, err := ic.Interactions.FindForPlaces([]uint{req.PlaceID}, req.PlaceType)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	summaries := services.AggregateInteractions(records, uid)

	resp.OK(c, gin.H{"action": action, "summary": summaries[req.PlaceID]})
}

// GET /interactions?placeIds=1,2,3&placeType=sikdae
func (ic *InteractionController) List(c *gin.Context) {
	placeType := c.Query("placeType")
	if placeType == "" {
		resp.BadRequest(c, "placeType is required")
		return
	}

	var placeIDs []uint
	for _, part := range strings.Split(c.Query("placeIds"), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			resp.BadRequest(c, "invalid placeIds")
			return
		}
		placeIDs = append(placeIDs, uint(id))
	}

	records, err := ic.Interactions.FindForPlaces(placeIDs, placeType)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{"interactions": services.AggregateInteractions(records, utils.CurrentUserID(c))})
}
