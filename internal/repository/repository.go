package repository

import "gorm.io/gorm"

// Repository aggregates all repositories.
type Repository struct {
	Chit ChitRepository
	Memo MemoRepository
	Duty DutyRepository
}

// NewRepository creates the repository aggregate.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Chit: NewChitRepo(db),
		Memo: NewMemoRepo(db),
		Duty: NewDutyRepo(db),
	}
}
