package services

import (
	"github.com/yunseok-map/all-food-map/entity"
)

// CommentsPerPage matches the board page size of the web client.
const CommentsPerPage = 10

// CommentThread is a root comment with its full reply list. The domain
// caps depth at one level, so the tree is modeled flat rather than
// recursively.
type CommentThread struct {
	entity.Comment
	Replies    []entity.Comment `json:"replies"`
	ReplyCount int              `json:"replyCount"`
}

// BuildThreads attaches replies (already sorted oldest-first) to their
// roots by parent id. Roots keep their incoming (newest-first) order.
func BuildThreads(roots []entity.Comment, replies []entity.Comment) []CommentThread {
	byParent := make(map[uint][]entity.Comment, len(roots))
	for _, r := range replies {
		if r.ParentID == nil {
			continue
		}
		byParent[*r.ParentID] = append(byParent[*r.ParentID], r)
	}

	threads := make([]CommentThread, 0, len(roots))
	for _, root := range roots {
		rs := byParent[root.ID]
		if rs == nil {
			rs = []entity.Comment{}
		}
		threads = append(threads, CommentThread{Comment: root, Replies: rs, ReplyCount: len(rs)})
	}
	return threads
}

// TotalPages is ceil(total/pageSize); zero for an empty board.
func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

// PageWindow converts a 1-indexed page into an offset/limit pair.
func PageWindow(page, pageSize int) (offset, limit int) {
	if page < 1 {
		page = 1
	}
	return (page - 1) * pageSize, pageSize
}

// PageNumbers lists the page buttons to render. A single page renders no
// controls at all.
func PageNumbers(total int64, pageSize int) []int {
	tp := TotalPages(total, pageSize)
	if tp <= 1 {
		return nil
	}
	pages := make([]int, tp)
	for i := range pages {
		pages[i] = i + 1
	}
	return pages
}
