package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/yunseok-map/all-food-map/entity"
)

const (
	// Graceful degradations the client renders as-is; a failing AI call is
	// never an error response.
	RecommendEmptyText = "<p>추천 맛집을 찾지 못했어요. 다른 키워드로 시도해보세요.</p>"
	RecommendErrorText = "<p>오류가 발생했어요. 잠시 후 다시 시도해주세요.</p>"
)

// RecommendService talks to the generative-language REST API.
type RecommendService struct {
	APIKey  string
	Model   string
	BaseURL string
	Client  *http.Client
}

func NewRecommendService(apiKey, model string) *RecommendService {
	return &RecommendService{
		APIKey:  apiKey,
		Model:   model,
		BaseURL: "https://generativelanguage.googleapis.com",
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type simplifiedRestaurant struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Menu     string `json:"menu"`
	Comment  string `json:"comment"`
}

type generateRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateContent struct {
	Role  string         `json:"role"`
	Parts []generatePart `json:"parts"`
}

type generatePart struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []generatePart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Recommend asks for up to three picks from the given restaurants as an
// HTML <ul>. Network trouble, non-2xx statuses, and empty candidates all
// degrade to a fixed Korean message.
func (s *RecommendService) Recommend(ctx context.Context, prompt string, restaurants []entity.Restaurant) string {
	simplified := make([]simplifiedRestaurant, 0, len(restaurants))
	for _, r := range restaurants {
		category := r.Category
		if i := strings.IndexByte(category, ' '); i >= 0 {
			category = category[:i] // drop the emoji suffix
		}
		simplified = append(simplified, simplifiedRestaurant{
			Name: r.Name, Category: category, Menu: r.Menu, Comment: r.Comment,
		})
	}
	listJSON, err := json.Marshal(simplified)
	if err != nil {
		return RecommendErrorText
	}

	apiPrompt := fmt.Sprintf(
		"당신은 서울 강남의 직장인들을 위한 맛집 추천 AI입니다. 사용자의 요청에 가장 적합한 식당을 아래 리스트에서 최대 3개까지 추천해주세요. "+
			"각 식당을 추천하는 창의적이고 설득력 있는 이유를 함께 제시해야 합니다. 응답은 반드시 HTML <ul> 리스트 형식으로 작성해주세요.\n\n"+
			"사용자 요청: %q\n\n맛집 리스트:\n%s\n\n"+
			"HTML 응답 예시:\n<ul>\n  <li><strong>식당 이름 1:</strong> 이 식당을 추천하는 재치 있는 이유.</li>\n"+
			"  <li><strong>식당 이름 2:</strong> 이 식당을 추천하는 또 다른 재치 있는 이유.</li>\n</ul>",
		prompt, listJSON,
	)

	body, _ := json.Marshal(generateRequest{
		Contents: []generateContent{{Role: "user", Parts: []generatePart{{Text: apiPrompt}}}},
	})

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", s.BaseURL, s.Model, s.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return RecommendErrorText
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := s.Client.Do(req)
	if err != nil {
		log.Errorf("recommendation request failed: %v", err)
		return RecommendErrorText
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		log.Errorf("recommendation API returned status %d", res.StatusCode)
		return RecommendErrorText
	}

	var parsed generateResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		log.Errorf("recommendation response decode failed: %v", err)
		return RecommendErrorText
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return RecommendEmptyText
	}

	text := parsed.Candidates[0].Content.Parts[0].Text
	text = strings.ReplaceAll(text, "```html", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}
