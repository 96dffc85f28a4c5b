package controllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yunseok-map/all-food-map/entity"
	"github.com/yunseok-map/all-food-map/pkg/resp"
	"github.com/yunseok-map/all-food-map/repository"
	"github.com/yunseok-map/all-food-map/services"
	"github.com/yunseok-map/all-food-map/utils"
	"github.com/yunseok-map/all-food-map/ws"
)

type CommentController struct {
	Comments *repository.CommentRepository
	Hub      *ws.EventHub
}

func NewCommentController(comments *repository.CommentRepository, hub *ws.EventHub) *CommentController {
	return &CommentController{Comments: comments, Hub: hub}
}

// GET /comments?board=&page=
// One page of root comments newest-first with every reply attached, plus
// pagination metadata. Replies are never paginated.
func (cc *CommentController) List(c *gin.Context) {
	board := c.DefaultQuery("board", entity.BoardGeneral)
	if !entity.ValidBoard(board) {
		resp.BadRequest(c, "unknown board: "+board)
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		resp.BadRequest(c, "invalid page")
		return
	}

	offset, limit := services.PageWindow(page, services.CommentsPerPage)
	roots, total, err := cc.Comments.FindRootsPage(board, offset, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	rootIDs := make([]uint, 0, len(roots))
	for _, r := range roots {
		rootIDs = append(rootIDs, r.ID)
	}
	replies, err := cc.Comments.FindReplies(rootIDs)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"board":      board,
		"threads":    services.BuildThreads(roots, replies),
		"page":       page,
		"total":      total,
		"totalPages": services.TotalPages(total, services.CommentsPerPage),
		"pages":      services.PageNumbers(total, services.CommentsPerPage),
	})
}

type CreateCommentRequest struct {
	BoardType string `json:"boardType" binding:"required,oneof=general_comments restaurant_comments"`
	ParentID  *uint  `json:"parentId"`
	Nickname  string `json:"nickname"`
	Text      string `json:"text" binding:"required"`
}

// POST /comments (Protected)
// ParentID nil creates a root; otherwise a reply whose parent must be an
// existing root on the same board (depth is capped at one level).
func (cc *CommentController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		resp.BadRequest(c, "empty comment text")
		return
	}

	if req.ParentID != nil {
		parent, err := cc.Comments.FindByID(*req.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				resp.NotFound(c, "parent comment not found")
			} else {
				resp.ServerError(c, err)
			}
			return
		}
		if parent.ParentID != nil {
			resp.BadRequest(c, "replies to replies are not allowed")
			return
		}
		if parent.BoardType != req.BoardType {
			resp.BadRequest(c, "parent belongs to another board")
			return
		}
	}

	nickname := req.Nickname
	if nickname == "" {
		nickname = "익명"
	}

	comment := entity.Comment{
		BoardType: req.BoardType,
		ParentID:  req.ParentID,
		Nickname:  nickname,
		Text:      req.Text,
		UserID:    uid,
	}
	if err := cc.Comments.Create(&comment); err != nil {
		resp.ServerError(c, err)
		return
	}

	cc.Hub.Publish(ws.ChangeEvent{Table: "comments", Event: ws.EventInsert, New: comment})
	resp.Created(c, gin.H{"comment": comment})
}

// DELETE /comments/:id (Protected, owner only). Deleting a root takes its
// replies with it.
func (cc *CommentController) Delete(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	id, _ := strconv.Atoi(c.Param("id"))

	comment, err := cc.Comments.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "comment not found")
		} else {
			resp.ServerError(c, err)
		}
		return
	}
	if comment.UserID != uid {
		resp.Forbidden(c, "not your comment")
		return
	}

	if err := cc.Comments.DeleteWithReplies(comment.ID); err != nil {
		resp.ServerError(c, err)
		return
	}

	cc.Hub.Publish(ws.ChangeEvent{Table: "comments", Event: ws.EventDelete, Old: comment})
	resp.OK(c, gin.H{"deleted": comment.ID})
}
