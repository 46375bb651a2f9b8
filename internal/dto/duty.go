package dto

// DutyFormRequest is the POST /generate-duty-form body.
type DutyFormRequest struct {
	TeacherName         string `json:"teacher_name"         form:"teacher_name"         binding:"required"`
	DutyDate            string `json:"duty_date"            form:"duty_date"            binding:"required"`
	Periods             string `json:"periods"              form:"periods"              binding:"required"`
	Subjects            string `json:"subjects"             form:"subjects"             binding:"required"`
	Classes             string `json:"classes"              form:"classes"              binding:"required"`
	SpecialInstructions string `json:"special_instructions" form:"special_instructions" binding:"required"`
}
