package entity

import (
	"gorm.io/gorm"
)

// Source tabs partition the restaurant set into the page views.
const (
	TabSikdae    = "sikdae"
	TabGangnam   = "gangnam"
	TabPub       = "pub"
	TabCommunity = "community" // virtual tab for draw results, never stored
)

type Restaurant struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Category string `json:"category"`
	Menu     string `json:"menu"`
	Price    string `json:"price"` // free-text bucket, e.g. "1만원 미만"
	Comment  string `json:"comment"`
	MapLink  string `json:"mapLink"`

	ImageURL1 string `json:"imageUrl1"`
	ImageURL2 string `json:"imageUrl2"`
	ImageURL3 string `json:"imageUrl3"`
	ImageURL4 string `json:"imageUrl4"`
	ImageURL5 string `json:"imageUrl5"`

	SourceTab string `gorm:"index;not null" json:"sourceTab"`

	Reviews []Review `json:"-"`
}

// ImageURLs collects the non-empty image slots in order.
func (r *Restaurant) ImageURLs() []string {
	urls := make([]string, 0, 5)
	for _, u := range []string{r.ImageURL1, r.ImageURL2, r.ImageURL3, r.ImageURL4, r.ImageURL5} {
		if u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

// ValidTab reports whether tab names a stored source tab.
func ValidTab(tab string) bool {
	return tab == TabSikdae || tab == TabGangnam || tab == TabPub
}
