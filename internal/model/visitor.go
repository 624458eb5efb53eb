package model

// VisitorEntry is a reception log row. ExitTime stays empty until the
// visitor is checked out.
type VisitorEntry struct {
	Meta
	Name                 string `json:"name" validate:"required"`
	Phone                string `json:"phone" validate:"required"`
	Address              string `json:"address"`
	Purpose              string `json:"purpose" validate:"required"`
	RelatedStudentName   string `json:"related_student_name"`
	RelatedStudentBranch string `json:"related_student_branch"`
	EntryTime            string `json:"entry_time"`
	ExitTime             string `json:"exit_time,omitempty"`
}
