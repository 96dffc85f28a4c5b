package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yunseok-map/all-food-map/controllers"
	"github.com/yunseok-map/all-food-map/entity"
	"github.com/yunseok-map/all-food-map/middlewares"
	"github.com/yunseok-map/all-food-map/repository"
	"github.com/yunseok-map/all-food-map/utils"
)

const testSecret = "test-secret"

func setupEnv(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Restaurant{}, &entity.Interaction{},
		&entity.Review{}, &entity.Comment{}, &entity.SpecialDay{},
	))

	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	interRepo := repository.NewInteractionRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	authCtrl := controllers.NewAuthController(userRepo, testSecret, time.Hour)
	restCtrl := controllers.NewRestaurantController(restRepo, interRepo)
	interCtrl := controllers.NewInteractionController(interRepo, nil)
	reviewCtrl := controllers.NewReviewController(db, nil)
	commentCtrl := controllers.NewCommentController(commentRepo, nil)

	r := gin.New()
	r.POST("/auth/anonymous", authCtrl.Anonymous)

	read := r.Group("/", middlewares.OptionalAuthMiddleware(testSecret))
	read.GET("/restaurants", restCtrl.List)
	read.GET("/restaurants/:id/reviews", reviewCtrl.ListForRestaurant)
	read.GET("/comments", commentCtrl.List)

	write := r.Group("/", middlewares.AuthMiddleware(testSecret))
	write.POST("/interactions/toggle", interCtrl.Toggle)
	write.POST("/reviews", reviewCtrl.Create)
	write.DELETE("/reviews/:id", reviewCtrl.Delete)
	write.POST("/comments", commentCtrl.Create)

	return r, db
}

func newUser(t *testing.T, db *gorm.DB) (entity.User, string) {
	t.Helper()
	user := entity.User{DeviceID: fmt.Sprintf("dev-%d", time.Now().UnixNano()), SecretHash: "x", Role: "anon"}
	require.NoError(t, db.Create(&user).Error)
	token, err := utils.GenerateToken(user.ID, user.Role, testSecret, time.Hour)
	require.NoError(t, err)
	return user, token
}

func doJSON(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out struct {
		OK   bool           `json:"ok"`
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.True(t, out.OK)
	return out.Data
}

func TestAnonymousAuthGetOrCreate(t *testing.T) {
	r, _ := setupEnv(t)

	w := doJSON(r, http.MethodPost, "/auth/anonymous", "", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	require.NotEmpty(t, data["token"])
	secret := data["deviceSecret"].(string)
	deviceID := data["user"].(map[string]any)["deviceId"].(string)

	// same device comes back as the same user
	w = doJSON(r, http.MethodPost, "/auth/anonymous", "", gin.H{"deviceId": deviceID, "deviceSecret": secret})
	require.Equal(t, http.StatusOK, w.Code)
	data2 := decodeData(t, w)
	assert.Equal(t, data["user"].(map[string]any)["id"], data2["user"].(map[string]any)["id"])

	// wrong secret is rejected
	w = doJSON(r, http.MethodPost, "/auth/anonymous", "", gin.H{"deviceId": deviceID, "deviceSecret": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestInteractionToggleLifecycle(t *testing.T) {
	r, db := setupEnv(t)
	_, token := newUser(t, db)

	body := gin.H{"placeId": 1, "placeType": "sikdae", "kind": "like"}

	// no prior interaction: insert
	data := decodeData(t, doJSON(r, http.MethodPost, "/interactions/toggle", token, body))
	assert.Equal(t, "created", data["action"])

	// same kind again: delete
	data = decodeData(t, doJSON(r, http.MethodPost, "/interactions/toggle", token, body))
	assert.Equal(t, "removed", data["action"])

	var count int64
	db.Model(&entity.Interaction{}).Count(&count)
	assert.Zero(t, count)

	// like then dislike: the record flips in place
	decodeData(t, doJSON(r, http.MethodPost, "/interactions/toggle", token, body))
	body["kind"] = "dislike"
	data = decodeData(t, doJSON(r, http.MethodPost, "/interactions/toggle", token, body))
	assert.Equal(t, "updated", data["action"])

	db.Model(&entity.Interaction{}).Count(&count)
	assert.Equal(t, int64(1), count)

	summary := data["summary"].(map[string]any)
	assert.Equal(t, float64(1), summary["dislikes"])
	assert.Equal(t, "dislike", summary["currentUserInteraction"])
}

func TestInteractionToggleRequiresAuth(t *testing.T) {
	r, _ := setupEnv(t)

	w := doJSON(r, http.MethodPost, "/interactions/toggle", "", gin.H{"placeId": 1, "placeType": "sikdae", "kind": "like"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestReviewValidationAndOwnership(t *testing.T) {
	r, db := setupEnv(t)
	_, token := newUser(t, db)
	_, otherToken := newUser(t, db)

	rest := entity.Restaurant{Name: "김밥천국", SourceTab: entity.TabSikdae}
	require.NoError(t, db.Create(&rest).Error)

	// zero rating never reaches the database
	w := doJSON(r, http.MethodPost, "/reviews", token, gin.H{"restaurantId": rest.ID, "rating": 0, "reviewText": "별로"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// empty text is rejected as well
	w = doJSON(r, http.MethodPost, "/reviews", token, gin.H{"restaurantId": rest.ID, "rating": 3})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/reviews", token, gin.H{"restaurantId": rest.ID, "rating": 5, "reviewText": "최고"})
	require.Equal(t, http.StatusCreated, w.Code)
	review := decodeData(t, w)["review"].(map[string]any)
	assert.Equal(t, "익명", review["nickname"])
	reviewID := uint(review["ID"].(float64))

	// only the author may delete
	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/reviews/%d", reviewID), otherToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/reviews/%d", reviewID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReviewUnknownRestaurant(t *testing.T) {
	r, db := setupEnv(t)
	_, token := newUser(t, db)

	w := doJSON(r, http.MethodPost, "/reviews", token, gin.H{"restaurantId": 999, "rating": 4, "reviewText": "유령"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCommentThreadingAndDepthCap(t *testing.T) {
	r, db := setupEnv(t)
	_, token := newUser(t, db)

	w := doJSON(r, http.MethodPost, "/comments", token, gin.H{"boardType": "general_comments", "text": "루트"})
	require.Equal(t, http.StatusCreated, w.Code)
	root := decodeData(t, w)["comment"].(map[string]any)
	rootID := uint(root["ID"].(float64))

	w = doJSON(r, http.MethodPost, "/comments", token, gin.H{"boardType": "general_comments", "parentId": rootID, "text": "답글"})
	require.Equal(t, http.StatusCreated, w.Code)
	reply := decodeData(t, w)["comment"].(map[string]any)
	replyID := uint(reply["ID"].(float64))

	// a reply can never be a parent
	w = doJSON(r, http.MethodPost, "/comments", token, gin.H{"boardType": "general_comments", "parentId": replyID, "text": "대댓글"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// unknown parent is a 404
	w = doJSON(r, http.MethodPost, "/comments", token, gin.H{"boardType": "general_comments", "parentId": 9999, "text": "고아"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	data := decodeData(t, doJSON(r, http.MethodGet, "/comments?board=general_comments&page=1", "", nil))
	threads := data["threads"].([]any)
	require.Len(t, threads, 1)
	thread := threads[0].(map[string]any)
	assert.Equal(t, float64(1), thread["replyCount"])
	assert.Equal(t, float64(1), data["totalPages"].(float64))
	assert.Nil(t, data["pages"])
}

func TestCommentListStablePaging(t *testing.T) {
	r, db := setupEnv(t)
	_, token := newUser(t, db)

	for i := 0; i < 12; i++ {
		w := doJSON(r, http.MethodPost, "/comments", token, gin.H{"boardType": "restaurant_comments", "text": fmt.Sprintf("댓글 %d", i)})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	first := decodeData(t, doJSON(r, http.MethodGet, "/comments?board=restaurant_comments&page=2", "", nil))
	second := decodeData(t, doJSON(r, http.MethodGet, "/comments?board=restaurant_comments&page=2", "", nil))

	// same page twice with no writes in between is identical
	assert.Equal(t, first, second)
	assert.Equal(t, float64(2), first["totalPages"].(float64))
	assert.Len(t, first["threads"].([]any), 2)
}

func TestRestaurantListGroupedWithBadges(t *testing.T) {
	r, db := setupEnv(t)
	user, token := newUser(t, db)

	rests := []entity.Restaurant{
		{Name: "스시집", Category: "일식 🍣", Menu: "초밥", SourceTab: entity.TabSikdae},
		{Name: "포차", Category: "소주 🍶", Menu: "어묵탕", SourceTab: entity.TabPub},
	}
	require.NoError(t, db.Create(&rests).Error)
	require.NoError(t, db.Create(&entity.Interaction{
		UserID: user.ID, PlaceID: rests[0].ID, PlaceType: entity.TabSikdae, Kind: entity.InteractionLike,
	}).Error)

	data := decodeData(t, doJSON(r, http.MethodGet, "/restaurants?tab=sikdae", token, nil))

	groups := data["groups"].([]any)
	require.Len(t, groups, 1) // pub row lives on another tab
	assert.Equal(t, "일식 🍣", groups[0].(map[string]any)["category"])
	assert.Equal(t, false, data["empty"])

	inter := data["interactions"].(map[string]any)[fmt.Sprintf("%d", rests[0].ID)].(map[string]any)
	assert.Equal(t, float64(1), inter["likes"])
	assert.Equal(t, "like", inter["currentUserInteraction"])
}

func TestRestaurantListNoResults(t *testing.T) {
	r, _ := setupEnv(t)

	data := decodeData(t, doJSON(r, http.MethodGet, "/restaurants?tab=sikdae&search=없는집", "", nil))
	assert.Equal(t, true, data["empty"])

	w := doJSON(r, http.MethodGet, "/restaurants?tab=bogus", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
