package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Emmanu-hec2a/formManagement/config"
	"github.com/Emmanu-hec2a/formManagement/internal/dto"
	"github.com/Emmanu-hec2a/formManagement/internal/model"
	"github.com/Emmanu-hec2a/formManagement/internal/pdf"
	"github.com/Emmanu-hec2a/formManagement/internal/repository"
)

// Output formats for the duty form download.
const (
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
)

// ErrUnsupportedFormat is returned for a format other than pdf or xlsx.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// ContentTypePDF and ContentTypeXLSX are the download MIME types.
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// DutyService handles teacher-duty form submissions.
type DutyService interface {
	// Generate saves the submission and renders it in the requested format
	// (pdf when empty). Returns bytes, filename and content type.
	Generate(ctx context.Context, req *dto.DutyFormRequest, format string) (*bytes.Buffer, string, string, error)
}

type dutyService struct {
	school   config.SchoolConfig
	repo     *repository.Repository
	renderer *pdf.Renderer
	logger   *zap.Logger
}

// NewDutyService creates a DutyService.
func NewDutyService(cfg *config.Config, repo *repository.Repository, renderer *pdf.Renderer, logger *zap.Logger) DutyService {
	return &dutyService{
		school:   cfg.School,
		repo:     repo,
		renderer: renderer,
		logger:   logger,
	}
}

func (s *dutyService) Generate(ctx context.Context, req *dto.DutyFormRequest, format string) (*bytes.Buffer, string, string, error) {
	if format == "" {
		format = FormatPDF
	}
	if format != FormatPDF && format != FormatXLSX {
		return nil, "", "", ErrUnsupportedFormat
	}

	form := &model.DutyForm{
		TeacherName:         req.TeacherName,
		DutyDate:            req.DutyDate,
		Periods:             req.Periods,
		Subjects:            req.Subjects,
		Classes:             req.Classes,
		SpecialInstructions: req.SpecialInstructions,
	}
	if err := s.repo.Duty.Create(ctx, form); err != nil {
		s.logger.Error("save duty form failed", zap.Error(err))
		return nil, "", "", err
	}

	base := "teacher_duty_" + underscored(req.TeacherName)

	if format == FormatXLSX {
		buf, err := s.renderExcel(req)
		if err != nil {
			s.logger.Error("render duty form xlsx failed", zap.Uint("id", form.ID), zap.Error(err))
			return nil, "", "", ErrRenderFailed
		}
		return buf, base + ".xlsx", ContentTypeXLSX, nil
	}

	buf, err := s.renderer.RenderDutyForm(req)
	if err != nil {
		s.logger.Error("render duty form failed", zap.Uint("id", form.ID), zap.Error(err))
		return nil, "", "", ErrRenderFailed
	}
	return buf, base + ".pdf", ContentTypePDF, nil
}

// renderExcel writes the duty form as a single worksheet: school banner and
// title rows, one bordered label/value row per field, then the three
// signature rows.
func (s *dutyService) renderExcel(req *dto.DutyFormRequest) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Duty Form"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheet, "A", "A", 26)
	f.SetColWidth(sheet, "B", "B", 56)

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 13},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	labelStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		Border: border,
	})
	valueStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 11},
		Border:    border,
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})

	f.SetCellValue(sheet, "A1", s.school.Name)
	f.MergeCell(sheet, "A1", "B1")
	f.SetCellStyle(sheet, "A1", "B1", titleStyle)
	f.SetCellValue(sheet, "A2", "TEACHER ON DUTY FORM")
	f.MergeCell(sheet, "A2", "B2")
	f.SetCellStyle(sheet, "A2", "B2", titleStyle)

	rows := [][2]string{
		{"Teacher Name:", req.TeacherName},
		{"Duty Date:", req.DutyDate},
		{"Periods:", req.Periods},
		{"Subjects:", req.Subjects},
		{"Classes:", req.Classes},
		{"Special Instructions:", req.SpecialInstructions},
	}
	row := 4
	for _, r := range rows {
		labelCell := fmt.Sprintf("A%d", row)
		valueCell := fmt.Sprintf("B%d", row)
		f.SetCellValue(sheet, labelCell, r[0])
		f.SetCellStyle(sheet, labelCell, labelCell, labelStyle)
		f.SetCellValue(sheet, valueCell, r[1])
		f.SetCellStyle(sheet, valueCell, valueCell, valueStyle)
		row++
	}

	row += 2
	for _, sig := range []string{"Teacher Signature:", "HOD Signature:", "Principal Signature:"} {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), sig)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), "______________________    Date: ____________")
		row += 2
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf, nil
}
