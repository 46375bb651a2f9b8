package service

import (
	"context"
	"errors"

	"github.com/Emmanu-hec2a/formManagement/internal/model"
	"github.com/Emmanu-hec2a/formManagement/internal/repository"
)

var errDatabase = errors.New("database unavailable")

// In-memory repository fakes. They record created rows so tests can assert on
// what the services persisted.

type mockChitRepo struct {
	created []*model.LeaveChit
	err     error
}

func (m *mockChitRepo) Create(ctx context.Context, chit *model.LeaveChit) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, chit)
	return nil
}

type mockMemoRepo struct {
	created []*model.Memo
	count   int64
	err     error
}

func (m *mockMemoRepo) Create(ctx context.Context, memo *model.Memo) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, memo)
	return nil
}

func (m *mockMemoRepo) CountByYear(ctx context.Context, year string) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.count, nil
}

type mockDutyRepo struct {
	created []*model.DutyForm
	err     error
}

func (m *mockDutyRepo) Create(ctx context.Context, form *model.DutyForm) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, form)
	return nil
}

func newMockRepository(chit *mockChitRepo, memo *mockMemoRepo, duty *mockDutyRepo) *repository.Repository {
	if chit == nil {
		chit = &mockChitRepo{}
	}
	if memo == nil {
		memo = &mockMemoRepo{}
	}
	if duty == nil {
		duty = &mockDutyRepo{}
	}
	return &repository.Repository{Chit: chit, Memo: memo, Duty: duty}
}
