package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yunseok-map/all-food-map/entity"
	"github.com/yunseok-map/all-food-map/pkg/resp"
	"github.com/yunseok-map/all-food-map/utils"
	"github.com/yunseok-map/all-food-map/ws"
)

type ReviewController struct {
	DB  *gorm.DB
	Hub *ws.EventHub
}

func NewReviewController(db *gorm.DB, hub *ws.EventHub) *ReviewController {
	return &ReviewController{DB: db, Hub: hub}
}

type CreateReviewRequest struct {
	RestaurantID uint   `json:"restaurantId" binding:"required"`
	Nickname     string `json:"nickname"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
	ReviewText   string `json:"reviewText" binding:"required"`
}

// POST /reviews (Protected)
func (rc *ReviewController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var rest entity.Restaurant
	if err := rc.DB.First(&rest, req.RestaurantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "restaurant not found")
		} else {
			resp.ServerError(c, err)
		}
		return
	}

	nickname := req.Nickname
	if nickname == "" {
		nickname = "익명"
	}

	review := entity.Review{
		RestaurantID: req.RestaurantID,
		Nickname:     nickname,
		Rating:       req.Rating,
		ReviewText:   req.ReviewText,
		UserID:       uid,
	}
	if err := rc.DB.Create(&review).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	rc.Hub.Publish(ws.ChangeEvent{Table: "restaurant_reviews", Event: ws.EventInsert, New: review})
	resp.Created(c, gin.H{"review": review})
}

// GET /restaurants/:id/reviews (Public)
func (rc *ReviewController) ListForRestaurant(c *gin.Context) {
	rid, _ := strconv.Atoi(c.Param("id"))

	var reviews []entity.Review
	if err := rc.DB.Where("restaurant_id = ?", rid).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	type agg struct {
		Avg   float64
		Count int64
	}
	var a agg
	_ = rc.DB.Model(&entity.Review{}).
		Where("restaurant_id = ?", rid).
		Select("AVG(rating) AS avg, COUNT(*) AS count").
		Scan(&a).Error

	resp.OK(c, gin.H{
		"items":     reviews,
		"aggregate": gin.H{"avgRating": a.Avg, "total": a.Count},
	})
}

// GET /reviews (Public) — every review with its restaurant name, for the
// collected-reviews board.
func (rc *ReviewController) ListAll(c *gin.Context) {
	var reviews []entity.Review
	if err := rc.DB.Preload("Restaurant").
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	items := make([]gin.H, 0, len(reviews))
	for _, r := range reviews {
		name := r.Restaurant.Name
		if name == "" {
			name = "삭제된 가게"
		}
		items = append(items, gin.H{
			"id":             r.ID,
			"restaurantId":   r.RestaurantID,
			"restaurantName": name,
			"nickname":       r.Nickname,
			"rating":         r.Rating,
			"reviewText":     r.ReviewText,
			"createdAt":      r.CreatedAt,
		})
	}

	resp.OK(c, gin.H{"items": items})
}

// DELETE /reviews/:id (Protected, owner only)
func (rc *ReviewController) Delete(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	id, _ := strconv.Atoi(c.Param("id"))

	var review entity.Review
	if err := rc.DB.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "review not found")
		} else {
			resp.ServerError(c, err)
		}
		return
	}
	if review.UserID != uid {
		resp.Forbidden(c, "not your review")
		return
	}

	if err := rc.DB.Delete(&review).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	rc.Hub.Publish(ws.ChangeEvent{Table: "restaurant_reviews", Event: ws.EventDelete, Old: review})
	resp.OK(c, gin.H{"deleted": review.ID})
}
