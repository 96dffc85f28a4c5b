package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yunseok-map/all-food-map/entity"
	"github.com/yunseok-map/all-food-map/pkg/resp"
	"github.com/yunseok-map/all-food-map/repository"
	"github.com/yunseok-map/all-food-map/services"
)

type RecommendController struct {
	Restaurants *repository.RestaurantRepository
	Recommender *services.RecommendService
}

func NewRecommendController(rests *repository.RestaurantRepository, rec *services.RecommendService) *RecommendController {
	return &RecommendController{Restaurants: rests, Recommender: rec}
}

type RecommendRequest struct {
	Prompt string `json:"prompt" binding:"required"`
	Tab    string `json:"tab" binding:"required"`
}

// POST /recommendations
// Always answers 200 with HTML; AI failures surface as the fallback text
// inside the result, not as an error status.
func (rc *RecommendController) Recommend(c *gin.Context) {
	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		resp.BadRequest(c, "empty prompt")
		return
	}
	if !entity.ValidTab(req.Tab) {
		resp.BadRequest(c, "unknown tab: "+req.Tab)
		return
	}

	rests, err := rc.Restaurants.FindByTab(req.Tab)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	html := rc.Recommender.Recommend(c.Request.Context(), req.Prompt, rests)
	resp.OK(c, gin.H{"html": html})
}
