package model

import "time"

// DutyForm is one submitted teacher-on-duty form (table teacher_duty_forms).
// Append-only.
type DutyForm struct {
	ID                  uint      `gorm:"primaryKey;autoIncrement"           json:"id"`
	TeacherName         string    `gorm:"type:text"                          json:"teacher_name"`
	DutyDate            string    `gorm:"type:text"                          json:"duty_date"`
	Periods             string    `gorm:"type:text"                          json:"periods"`
	Subjects            string    `gorm:"type:text"                          json:"subjects"`
	Classes             string    `gorm:"type:text"                          json:"classes"`
	SpecialInstructions string    `gorm:"type:text"                          json:"special_instructions"`
	CreatedAt           time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName pins the table name.
func (DutyForm) TableName() string { return "teacher_duty_forms" }
