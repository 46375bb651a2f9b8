package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Emmanu-hec2a/formManagement/internal/model"
)

// DutyRepository is the teacher-duty form data access interface.
type DutyRepository interface {
	Create(ctx context.Context, form *model.DutyForm) error
}

type dutyRepo struct {
	db *gorm.DB
}

// NewDutyRepo creates a DutyRepository.
func NewDutyRepo(db *gorm.DB) DutyRepository {
	return &dutyRepo{db: db}
}

func (r *dutyRepo) Create(ctx context.Context, form *model.DutyForm) error {
	return r.db.WithContext(ctx).Create(form).Error
}
