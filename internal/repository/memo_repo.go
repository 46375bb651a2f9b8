package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Emmanu-hec2a/formManagement/internal/model"
)

// MemoRepository is the internal-memo data access interface.
type MemoRepository interface {
	Create(ctx context.Context, memo *model.Memo) error
	// CountByYear counts memos whose issue date begins with the given year
	// string. Used only for memo numbering.
	CountByYear(ctx context.Context, year string) (int64, error)
}

type memoRepo struct {
	db *gorm.DB
}

// NewMemoRepo creates a MemoRepository.
func NewMemoRepo(db *gorm.DB) MemoRepository {
	return &memoRepo{db: db}
}

func (r *memoRepo) Create(ctx context.Context, memo *model.Memo) error {
	return r.db.WithContext(ctx).Create(memo).Error
}

func (r *memoRepo) CountByYear(ctx context.Context, year string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Memo{}).
		Where("date_issued LIKE ?", year+"%").
		Count(&count).Error
	return count, err
}
