package dto

// MemoRequest is the POST /generate-memo body.
// MemoNo is optional: when empty the service assigns the next number for the
// current year.
type MemoRequest struct {
	MemoNo     string `json:"memo_no"     form:"memo_no"`
	Recipient  string `json:"recipient"   form:"recipient"   binding:"required"`
	Sender     string `json:"sender"      form:"sender"      binding:"required"`
	Subject    string `json:"subject"     form:"subject"     binding:"required"`
	Content    string `json:"content"     form:"content"     binding:"required"`
	DateIssued string `json:"date_issued" form:"date_issued" binding:"required"`
}
