package services

import (
	"github.com/yunseok-map/all-food-map/entity"
)

// InteractionSummary is the per-place badge state: tallies plus the
// viewer's own vote ("" when the viewer has none).
type InteractionSummary struct {
	Likes      int    `json:"likes"`
	Dislikes   int    `json:"dislikes"`
	ViewerKind string `json:"currentUserInteraction,omitempty"`
}

// AggregateInteractions folds a flat record set into per-place summaries.
// At most one record per place can belong to the viewer (unique index on
// user+place+type), so the last-writer concern does not arise.
func AggregateInteractions(records []entity.Interaction, viewerID uint) map[uint]InteractionSummary {
	out := make(map[uint]InteractionSummary, len(records))
	for _, in := range records {
		s := out[in.PlaceID]
		switch in.Kind {
		case entity.InteractionLike:
			s.Likes++
		case entity.InteractionDislike:
			s.Dislikes++
		}
		if viewerID != 0 && in.UserID == viewerID {
			s.ViewerKind = in.Kind
		}
		out[in.PlaceID] = s
	}
	return out
}
