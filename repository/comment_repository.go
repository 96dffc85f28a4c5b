package repository

import (
	"github.com/yunseok-map/all-food-map/entity"
	"gorm.io/gorm"
)

type CommentRepository struct {
	DB *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{DB: db}
}

// FindRootsPage returns one page of root comments, newest first, with the
// total root count for pagination.
func (r *CommentRepository) FindRootsPage(board string, offset, limit int) ([]entity.Comment, int64, error) {
	var total int64
	if err := r.DB.Model(&entity.Comment{}).
		Where("board_type = ? AND parent_id IS NULL", board).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var roots []entity.Comment
	err := r.DB.Where("board_type = ? AND parent_id IS NULL", board).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&roots).Error
	return roots, total, err
}

// FindReplies returns all replies under the given roots, oldest first.
// Replies are never paginated.
func (r *CommentRepository) FindReplies(rootIDs []uint) ([]entity.Comment, error) {
	if len(rootIDs) == 0 {
		return []entity.Comment{}, nil
	}
	var replies []entity.Comment
	err := r.DB.Where("parent_id IN ?", rootIDs).
		Order("created_at ASC").
		Find(&replies).Error
	return replies, err
}

func (r *CommentRepository) FindByID(id uint) (*entity.Comment, error) {
	var c entity.Comment
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommentRepository) Create(c *entity.Comment) error {
	return r.DB.Create(c).Error
}

// DeleteWithReplies removes a comment and, for a root, its reply subtree
// in one transaction.
func (r *CommentRepository) DeleteWithReplies(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parent_id = ?", id).Delete(&entity.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Comment{}, id).Error
	})
}
