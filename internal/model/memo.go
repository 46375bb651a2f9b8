package model

import "time"

// Memo is one issued internal memorandum (table internal_memos).
// Append-only. MemoNo is unique in practice but not enforced by the schema:
// auto-generated numbers come from a count-then-insert sequence that can
// race under concurrent submissions.
type Memo struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"           json:"id"`
	MemoNo     string    `gorm:"type:text"                          json:"memo_no"`
	Recipient  string    `gorm:"type:text"                          json:"recipient"`
	Sender     string    `gorm:"type:text"                          json:"sender"`
	Subject    string    `gorm:"type:text"                          json:"subject"`
	Content    string    `gorm:"type:text"                          json:"content"`
	DateIssued string    `gorm:"type:text"                          json:"date_issued"`
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName pins the table name.
func (Memo) TableName() string { return "internal_memos" }
