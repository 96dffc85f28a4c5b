package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yunseok-map/all-food-map/entity"
)

func sampleRestaurants() []entity.Restaurant {
	return []entity.Restaurant{
		{Name: "김밥천국", Category: "분식 🥢", Menu: "김밥, 라면", Price: "8,000"},
		{Name: "스시오마카세", Category: "일식 🍣", Menu: "초밥", Price: "12,000"},
		{Name: "할머니순두부", Category: "한식 🫕", Menu: "순두부찌개", Price: "1만원 미만"},
		{Name: "뒷골목포차", Category: "길거리", Menu: "어묵", Price: ""},
	}
}

func TestFilterSortGroupSearch(t *testing.T) {
	groups := FilterSortGroup(sampleRestaurants(), SikdaeCategoryOrder, ListQuery{Search: "라면"})

	require.Len(t, groups, 1)
	assert.Equal(t, "분식 🥢", groups[0].Category)
	require.Len(t, groups[0].Restaurants, 1)
	assert.Equal(t, "김밥천국", groups[0].Restaurants[0].Name)
}

func TestFilterSortGroupPriceFilter(t *testing.T) {
	groups := FilterSortGroup(sampleRestaurants(), SikdaeCategoryOrder, ListQuery{Price: "10,000 미만"})

	var names []string
	for _, g := range groups {
		for _, r := range g.Restaurants {
			names = append(names, r.Name)
		}
	}
	// 12,000 is over the cap; the missing price is excluded while a price
	// filter is active; "1만원 미만" fits {0..9999}.
	assert.ElementsMatch(t, []string{"김밥천국", "할머니순두부"}, names)
}

func TestFilterSortGroupCategoryOrder(t *testing.T) {
	groups := FilterSortGroup(sampleRestaurants(), SikdaeCategoryOrder, ListQuery{})

	var cats []string
	for _, g := range groups {
		cats = append(cats, g.Category)
	}
	// fixed order first, unknown categories appended, empty groups dropped
	assert.Equal(t, []string{"한식 🫕", "일식 🍣", "분식 🥢", "길거리"}, cats)
}

func TestFilterSortGroupFallbackCategory(t *testing.T) {
	groups := FilterSortGroup([]entity.Restaurant{{Name: "무명집"}}, SikdaeCategoryOrder, ListQuery{})

	require.Len(t, groups, 1)
	assert.Equal(t, "기타", groups[0].Category)
}

func TestFilterSortGroupNameSort(t *testing.T) {
	groups := FilterSortGroup(sampleRestaurants(), nil, ListQuery{Sort: SortNameAsc})

	var names []string
	for _, g := range groups {
		for _, r := range g.Restaurants {
			names = append(names, r.Name)
		}
	}
	// groups still apply, but within the flat collation order the first
	// name must be the collation minimum
	assert.Equal(t, "김밥천국", names[0])
}

func TestFilterSortGroupNoResults(t *testing.T) {
	groups := FilterSortGroup(sampleRestaurants(), SikdaeCategoryOrder, ListQuery{Search: "없는 가게"})
	assert.Empty(t, groups)
}
