// Package pdf renders submitted form data into paginated A4 documents.
// Every page carries the school banner; the three body layouts are fixed
// templates with no conditional structure beyond skipping empty lines.
package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/Emmanu-hec2a/formManagement/config"
	"github.com/Emmanu-hec2a/formManagement/internal/dto"
)

const (
	marginLeft  = 18.0
	marginRight = 18.0
	marginTop   = 46.0 // body starts below the banner
	bodyFont    = "Helvetica"
)

// Renderer turns validated form data into PDF byte streams. It holds only
// immutable school identity and is safe for concurrent use.
//
// Output is deterministic: identical input fields produce identical bytes.
// The document creation date is pinned for that reason.
type Renderer struct {
	school config.SchoolConfig
}

// pinnedDate keeps repeated renders of the same input byte-identical.
var pinnedDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// NewRenderer creates a Renderer for the given school identity.
func NewRenderer(school config.SchoolConfig) *Renderer {
	return &Renderer{school: school}
}

// newDoc builds a page template with the banner header installed.
func (r *Renderer) newDoc() *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(pinnedDate)
	pdf.SetModificationDate(pinnedDate)
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, 20)

	pdf.SetHeaderFunc(func() {
		pageW, _ := pdf.GetPageSize()

		pdf.SetY(12)
		pdf.SetFont(bodyFont, "B", 16)
		pdf.CellFormat(0, 8, r.school.Name, "", 1, "C", false, 0, "")

		pdf.SetFont(bodyFont, "", 10)
		pdf.CellFormat(0, 5, r.school.POBox+", "+r.school.Location, "", 1, "C", false, 0, "")
		pdf.CellFormat(0, 5, r.school.Tel+" | "+r.school.Email, "", 1, "C", false, 0, "")
		pdf.CellFormat(0, 5, "Motto: "+r.school.Motto, "", 1, "C", false, 0, "")

		pdf.SetDrawColor(0, 0, 0)
		pdf.Line(marginLeft, 39, pageW-marginRight, 39)

		pdf.SetY(marginTop)
	})

	return pdf
}

// ── shared layout helpers ──

func title(pdf *fpdf.Fpdf, text string, size float64) {
	pdf.SetFont(bodyFont, "B", size)
	pdf.SetTextColor(0, 0, 139) // dark blue
	pdf.CellFormat(0, 10, text, "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)
}

// labeledLine writes a bold label followed by regular text on one line.
func labeledLine(pdf *fpdf.Fpdf, label, value string) {
	pdf.SetFont(bodyFont, "B", 12)
	pdf.CellFormat(pdf.GetStringWidth(label)+1, 7, label, "", 0, "L", false, 0, "")
	pdf.SetFont(bodyFont, "", 12)
	pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
}

func separator(pdf *fpdf.Fpdf) {
	pageW, _ := pdf.GetPageSize()
	y := pdf.GetY() + 2
	pdf.Line(marginLeft, y, pageW-marginRight, y)
	pdf.SetY(y + 5)
}

func paragraph(pdf *fpdf.Fpdf, text string, indent float64) {
	pageW, _ := pdf.GetPageSize()
	pdf.SetFont(bodyFont, "", 11)
	pdf.SetX(marginLeft + indent)
	pdf.MultiCell(pageW-marginLeft-marginRight-2*indent, 6, text, "", "J", false)
	pdf.Ln(3)
}

func output(pdf *fpdf.Fpdf) (*bytes.Buffer, error) {
	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf, nil
}

// ── Leave Out Chit ──

// RenderLeaveChit produces the permission chit in memo format.
func (r *Renderer) RenderLeaveChit(req *dto.LeaveChitRequest) (*bytes.Buffer, error) {
	pdf := r.newDoc()
	pdf.AddPage()

	title(pdf, "LEAVE OUT CHIT", 16)

	labeledLine(pdf, "Date:", req.LeaveDate)
	labeledLine(pdf, "To:", "The Principal")
	labeledLine(pdf, "From:", "Class Teacher")
	labeledLine(pdf, "Subject:", "Permission to Leave School Premises")
	pdf.Ln(4)

	separator(pdf)

	const indent = 7.0
	paragraph(pdf, "I hereby request permission for the following student to leave the school premises during school hours:", indent)

	pdf.SetX(marginLeft + indent)
	labeledLine(pdf, "Student Name:", req.StudentName)
	pdf.SetX(marginLeft + indent)
	labeledLine(pdf, "Class:", req.StudentClass)
	pdf.SetX(marginLeft + indent)
	labeledLine(pdf, "Admission Number:", req.AdmissionNo)
	pdf.Ln(3)

	pdf.SetX(marginLeft + indent)
	labeledLine(pdf, "Time of Departure:", req.LeaveTime)
	pdf.SetX(marginLeft + indent)
	labeledLine(pdf, "Expected Return Time:", req.ReturnTime)
	pdf.Ln(3)

	pdf.SetX(marginLeft + indent)
	pdf.SetFont(bodyFont, "B", 12)
	pdf.CellFormat(0, 7, "Reason for Leave:", "", 1, "L", false, 0, "")
	paragraph(pdf, req.Reason, indent)

	paragraph(pdf, "The student is expected to return to school at the specified time and report to the class teacher upon return.", indent)
	paragraph(pdf, "Thank you for your consideration.", indent)
	pdf.Ln(10)

	const sigIndent = 18.0
	signatureBlock(pdf, sigIndent, "Class Teacher")
	pdf.Ln(6)
	signatureBlock(pdf, sigIndent, "Principal's Approval")
	pdf.SetX(marginLeft + sigIndent)
	pdf.SetFont(bodyFont, "", 11)
	pdf.CellFormat(0, 7, "Status: [ ] Approved   [ ] Denied", "", 1, "L", false, 0, "")

	return output(pdf)
}

func signatureBlock(pdf *fpdf.Fpdf, indent float64, heading string) {
	pdf.SetX(marginLeft + indent)
	pdf.SetFont(bodyFont, "B", 11)
	pdf.CellFormat(0, 7, heading, "", 1, "L", false, 0, "")
	pdf.SetX(marginLeft + indent)
	pdf.SetFont(bodyFont, "", 11)
	pdf.CellFormat(0, 10, "Signature: ________________________    Date: ________________", "", 1, "L", false, 0, "")
}

// ── Internal Memorandum ──

// RenderMemo produces the internal memorandum. The body is split on line
// breaks; each non-empty line becomes its own justified paragraph, so the
// author's paragraph breaks survive and blank lines are dropped.
func (r *Renderer) RenderMemo(req *dto.MemoRequest) (*bytes.Buffer, error) {
	pdf := r.newDoc()
	pdf.AddPage()

	title(pdf, "INTERNAL MEMORANDUM", 16)

	labeledLine(pdf, "MEMO NO:", req.MemoNo)
	labeledLine(pdf, "DATE:", req.DateIssued)
	labeledLine(pdf, "TO:", req.Recipient)
	labeledLine(pdf, "FROM:", req.Sender)
	labeledLine(pdf, "SUBJECT:", req.Subject)
	pdf.Ln(3)

	separator(pdf)

	for _, line := range strings.Split(req.Content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		paragraph(pdf, line, 0)
	}
	pdf.Ln(10)

	pdf.SetFont(bodyFont, "", 11)
	pdf.CellFormat(0, 7, "Regards,", "", 1, "L", false, 0, "")
	pdf.Ln(3)
	pdf.SetFont(bodyFont, "B", 11)
	pdf.CellFormat(0, 7, req.Sender, "", 1, "L", false, 0, "")
	pdf.SetFont(bodyFont, "", 11)
	pdf.CellFormat(0, 7, "Signature", "", 1, "L", false, 0, "")

	return output(pdf)
}

// ── Teacher On Duty Form ──

const (
	dutyLabelW = 52.0
	dutyValueW = 110.0
)

// RenderDutyForm produces the duty form: a bordered two-column field table
// followed by a borderless acknowledgment table.
func (r *Renderer) RenderDutyForm(req *dto.DutyFormRequest) (*bytes.Buffer, error) {
	pdf := r.newDoc()
	pdf.AddPage()

	title(pdf, "TEACHER ON DUTY FORM", 14)

	dutyRow(pdf, "Teacher Name:", req.TeacherName)
	dutyRow(pdf, "Duty Date:", req.DutyDate)
	dutyRow(pdf, "Periods:", req.Periods)
	dutyRow(pdf, "Subjects:", req.Subjects)
	dutyRow(pdf, "Classes:", req.Classes)
	dutyRow(pdf, "Special Instructions:", req.SpecialInstructions)
	pdf.Ln(14)

	ackRow(pdf, "Teacher Signature:")
	pdf.Ln(6)
	ackRow(pdf, "HOD Signature:")
	pdf.Ln(6)
	ackRow(pdf, "Principal Signature:")

	return output(pdf)
}

// dutyRow draws one bordered label/value row, sized to the wrapped value.
func dutyRow(pdf *fpdf.Fpdf, label, value string) {
	pdf.SetFont(bodyFont, "", 11)
	lines := pdf.SplitText(value, dutyValueW-6)
	rowH := float64(len(lines))*6 + 5
	if rowH < 11 {
		rowH = 11
	}

	x, y := pdf.GetXY()
	pdf.Rect(x, y, dutyLabelW, rowH, "D")
	pdf.Rect(x+dutyLabelW, y, dutyValueW, rowH, "D")

	pdf.SetXY(x+3, y+2.5)
	pdf.SetFont(bodyFont, "B", 11)
	pdf.CellFormat(dutyLabelW-6, 6, label, "", 0, "L", false, 0, "")

	pdf.SetXY(x+dutyLabelW+3, y+2.5)
	pdf.SetFont(bodyFont, "", 11)
	pdf.MultiCell(dutyValueW-6, 6, value, "", "L", false)

	pdf.SetXY(x, y+rowH)
}

// ackRow draws one borderless signature/date row with fixed-width blanks.
func ackRow(pdf *fpdf.Fpdf, label string) {
	pdf.SetFont(bodyFont, "", 10)
	pdf.CellFormat(40, 7, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(52, 7, strings.Repeat("_", 30), "", 0, "L", false, 0, "")
	pdf.CellFormat(18, 7, "Date:", "", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, strings.Repeat("_", 20), "", 1, "L", false, 0, "")
}
