package model

// Approval statuses shared by leave requests and outing permissions.
const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

// IsValidApprovalStatus reports whether s is a known approval status.
func IsValidApprovalStatus(s string) bool {
	return s == ApprovalPending || s == ApprovalApproved || s == ApprovalRejected
}

// LeaveRequest is a student/staff leave application. Never hard-deleted;
// only its approval status changes.
type LeaveRequest struct {
	Meta
	ApplicantName string `json:"applicant_name" validate:"required"`
	LeaveType     string `json:"leave_type"`
	StartDate     string `json:"start_date" validate:"required"`
	EndDate       string `json:"end_date" validate:"required"`
	Reason        string `json:"reason" validate:"required"`
	Status        string `json:"status"`
}

// OutingPermission records a student's request to leave the premises.
type OutingPermission struct {
	Meta
	StudentName    string `json:"student_name" validate:"required"`
	Branch         string `json:"branch" validate:"required"`
	Destination    string `json:"destination" validate:"required"`
	Reason         string `json:"reason"`
	DepartureTime  string `json:"departure_time" validate:"required"`
	ReturnTime     string `json:"return_time"`
	ParentNotified string `json:"parent_notified"`
	ParentResponse string `json:"parent_response"`
	Status         string `json:"status"`
}
