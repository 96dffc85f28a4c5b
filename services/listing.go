package services

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/yunseok-map/all-food-map/entity"
)

// Category display order per source tab. Leftover categories render after
// these, in first-seen order.
var (
	SikdaeCategoryOrder = []string{
		"샐러드 🥗", "한식 🫕", "일식 🍣", "중식 🍜", "양식 🍔",
		"아시안음식 🍲", "분식 🥢", "카페/디저트 ☕", "프랜차이즈 🍔", "편의점 🏪",
	}
	GangnamCategoryOrder = []string{
		"한식 🫕", "일식 🍣", "중식 🍜", "양식 🍔", "아시아 🍲", "샐러드 🥗",
	}
	PubCategoryOrder = []string{
		"소주 🍶", "맥주 🍺", "막걸리 🍻", "칵테일 🍸", "와인 🍷", "느좋 ✨",
	}
)

const fallbackCategory = "기타"

func CategoryOrderForTab(tab string) []string {
	switch tab {
	case entity.TabGangnam:
		return GangnamCategoryOrder
	case entity.TabPub:
		return PubCategoryOrder
	default:
		return SikdaeCategoryOrder
	}
}

const (
	SortCategory = "category"
	SortNameAsc  = "name-asc"
)

type ListQuery struct {
	Search string
	Price  string // "all" / "" or a price bucket label
	Sort   string // SortCategory (insertion order) or SortNameAsc
}

type CategoryGroup struct {
	Category    string              `json:"category"`
	Restaurants []entity.Restaurant `json:"restaurants"`
}

// FilterSortGroup runs the list pipeline: substring filter over name+menu,
// price containment filter, optional locale-aware name sort, then grouping
// in the fixed category order with leftovers appended. Empty groups are
// dropped; a zero-group result is the caller's "no results" state.
func FilterSortGroup(list []entity.Restaurant, categoryOrder []string, q ListQuery) []CategoryGroup {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	priceActive := q.Price != "" && q.Price != "all"
	var priceFilter PriceRange
	if priceActive {
		priceFilter = ParsePriceRange(q.Price)
	}

	filtered := make([]entity.Restaurant, 0, len(list))
	for _, r := range list {
		if search != "" &&
			!strings.Contains(strings.ToLower(r.Name), search) &&
			!strings.Contains(strings.ToLower(r.Menu), search) {
			continue
		}
		if priceActive {
			if r.Price == "" {
				continue
			}
			if !ParsePriceRange(r.Price).Within(priceFilter) {
				continue
			}
		}
		filtered = append(filtered, r)
	}

	if q.Sort == SortNameAsc {
		coll := collate.New(language.Korean)
		sort.SliceStable(filtered, func(i, j int) bool {
			return coll.CompareString(filtered[i].Name, filtered[j].Name) < 0
		})
	}

	grouped := make(map[string][]entity.Restaurant)
	known := make(map[string]bool, len(categoryOrder))
	for _, cat := range categoryOrder {
		known[cat] = true
	}
	var leftover []string
	for _, r := range filtered {
		cat := r.Category
		if cat == "" {
			cat = fallbackCategory
		}
		if !known[cat] && len(grouped[cat]) == 0 {
			leftover = append(leftover, cat)
		}
		grouped[cat] = append(grouped[cat], r)
	}

	groups := make([]CategoryGroup, 0, len(grouped))
	for _, cat := range append(append([]string{}, categoryOrder...), leftover...) {
		if rs := grouped[cat]; len(rs) > 0 {
			groups = append(groups, CategoryGroup{Category: cat, Restaurants: rs})
		}
	}
	return groups
}
