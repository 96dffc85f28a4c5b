package configs

import (
	"github.com/yunseok-map/all-food-map/entity"
	log "github.com/sirupsen/logrus"
)

// SeedSpecialDays fills the special-day table on first boot so the banner
// has something to show. Skipped once any row exists.
func SeedSpecialDays() error {
	db := DB()

	var count int64
	db.Model(&entity.SpecialDay{}).Count(&count)
	if count > 0 {
		log.Infof("special days already seeded (%d rows)", count)
		return nil
	}

	days := []entity.SpecialDay{
		{DateMD: "03.14", Title: "화이트데이", Description: "사탕 챙기는 날 🍬"},
		{DateMD: "05.05", Title: "어린이날", Description: "점심은 소풍처럼!"},
		{DateMD: "11.11", Title: "빼빼로데이", Description: "디저트 카페 추천 많이 눌러주세요"},
	}
	return db.Create(&days).Error
}
