package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yunseok-map/all-food-map/pkg/resp"
	"github.com/yunseok-map/all-food-map/repository"
	"github.com/yunseok-map/all-food-map/services"
)

type SpecialDayController struct {
	Days *repository.SpecialDayRepository
}

func NewSpecialDayController(days *repository.SpecialDayRepository) *SpecialDayController {
	return &SpecialDayController{Days: days}
}

// GET /special-days/next
func (sc *SpecialDayController) Next(c *gin.Context) {
	days, err := sc.Days.FindAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	next, ok := services.NextSpecialDay(days, time.Now())
	if !ok {
		resp.OK(c, gin.H{"day": nil})
		return
	}
	resp.OK(c, gin.H{"day": next})
}
