package dto

// LeaveChitRequest is the POST /generate-leave-chit body. The pages submit
// form-encoded; JSON is accepted too.
type LeaveChitRequest struct {
	StudentName  string `json:"student_name"  form:"student_name"  binding:"required"`
	StudentClass string `json:"student_class" form:"student_class" binding:"required"`
	AdmissionNo  string `json:"admission_no"  form:"admission_no"  binding:"required"`
	LeaveDate    string `json:"leave_date"    form:"leave_date"    binding:"required"`
	LeaveTime    string `json:"leave_time"    form:"leave_time"    binding:"required"`
	ReturnTime   string `json:"return_time"   form:"return_time"   binding:"required"`
	Reason       string `json:"reason"        form:"reason"        binding:"required"`
}
