package controllers

import (
	"math/rand"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yunseok-map/all-food-map/entity"
	"github.com/yunseok-map/all-food-map/pkg/resp"
	"github.com/yunseok-map/all-food-map/repository"
	"github.com/yunseok-map/all-food-map/services"
	"github.com/yunseok-map/all-food-map/utils"
)

type RestaurantController struct {
	Restaurants  *repository.RestaurantRepository
	Interactions *repository.InteractionRepository
}

func NewRestaurantController(rests *repository.RestaurantRepository, inters *repository.InteractionRepository) *RestaurantController {
	return &RestaurantController{Restaurants: rests, Interactions: inters}
}

// GET /restaurants?tab=&search=&price=&sort=
// Returns the grouped view model for one tab plus per-place interaction
// badges keyed for the current viewer.
func (rc *RestaurantController) List(c *gin.Context) {
	tab := c.DefaultQuery("tab", entity.TabSikdae)
	if !entity.ValidTab(tab) {
		resp.BadRequest(c, "unknown tab: "+tab)
		return
	}

	rests, err := rc.Restaurants.FindByTab(tab)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	groups := services.FilterSortGroup(rests, services.CategoryOrderForTab(tab), services.ListQuery{
		Search: c.Query("search"),
		Price:  c.DefaultQuery("price", "all"),
		Sort:   c.DefaultQuery("sort", services.SortCategory),
	})

	summaries, err := rc.loadSummaries(c, groups, tab)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"tab":          tab,
		"groups":       groups,
		"interactions": summaries,
		"empty":        len(groups) == 0,
	})
}

// GET /restaurants/:id
func (rc *RestaurantController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	rest, err := rc.Restaurants.FindByID(uint(id))
	if err != nil {
		resp.NotFound(c, "restaurant not found")
		return
	}

	records, err := rc.Interactions.FindForPlaces([]uint{rest.ID}, rest.SourceTab)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	summaries := services.AggregateInteractions(records, utils.CurrentUserID(c))

	resp.OK(c, gin.H{
		"restaurant":  rest,
		"images":      rest.ImageURLs(),
		"interaction": summaries[rest.ID],
	})
}

// GET /restaurants/draw
// The daily menu draw: two random non-pub restaurants with their badges,
// tagged with the virtual community place type.
func (rc *RestaurantController) Draw(c *gin.Context) {
	pool, err := rc.Restaurants.FindDrawPool()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if len(pool) < 2 {
		resp.OK(c, gin.H{"restaurants": []entity.Restaurant{}, "empty": true})
		return
	}

	rand.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	selected := pool[:2]

	records, err := rc.Interactions.FindForPlaces([]uint{selected[0].ID, selected[1].ID}, entity.TabCommunity)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	summaries := services.AggregateInteractions(records, utils.CurrentUserID(c))

	resp.OK(c, gin.H{
		"restaurants":  selected,
		"placeType":    entity.TabCommunity,
		"interactions": summaries,
		"empty":        false,
	})
}

func (rc *RestaurantController) loadSummaries(c *gin.Context, groups []services.CategoryGroup, placeType string) (map[uint]services.InteractionSummary, error) {
	var placeIDs []uint
	for _, g := range groups {
		for _, r := range g.Restaurants {
			placeIDs = append(placeIDs, r.ID)
		}
	}
	records, err := rc.Interactions.FindForPlaces(placeIDs, placeType)
	if err != nil {
		return nil, err
	}
	return services.AggregateInteractions(records, utils.CurrentUserID(c)), nil
}
