package model

import "time"

// LeaveChit is one submitted leave-out chit (table leave_out_chits).
// Rows are written once at submission time and never updated or deleted;
// the table is an audit log.
type LeaveChit struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"              json:"id"`
	StudentName  string    `gorm:"type:text"                             json:"student_name"`
	StudentClass string    `gorm:"type:text"                             json:"student_class"`
	AdmissionNo  string    `gorm:"type:text"                             json:"admission_no"`
	LeaveDate    string    `gorm:"type:text"                             json:"leave_date"`
	LeaveTime    string    `gorm:"type:text"                             json:"leave_time"`
	ReturnTime   string    `gorm:"type:text"                             json:"return_time"`
	Reason       string    `gorm:"type:text"                             json:"reason"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"    json:"created_at"`
}

// TableName pins the table name.
func (LeaveChit) TableName() string { return "leave_out_chits" }
