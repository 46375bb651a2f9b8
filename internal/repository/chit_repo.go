package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Emmanu-hec2a/formManagement/internal/model"
)

// ChitRepository is the leave-out chit data access interface.
// The table is append-only, so Create is the only write.
type ChitRepository interface {
	Create(ctx context.Context, chit *model.LeaveChit) error
}

type chitRepo struct {
	db *gorm.DB
}

// NewChitRepo creates a ChitRepository.
func NewChitRepo(db *gorm.DB) ChitRepository {
	return &chitRepo{db: db}
}

func (r *chitRepo) Create(ctx context.Context, chit *model.LeaveChit) error {
	return r.db.WithContext(ctx).Create(chit).Error
}
