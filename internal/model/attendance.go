package model

// Attendance mark values.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
)

// AttendanceSheet maps student_id to a mark for one (branch, date) pair.
// Stored as a single KV document per sheet; a re-submitted sheet replaces
// the marks it names and leaves the rest untouched (last write wins).
type AttendanceSheet struct {
	Branch string            `json:"branch"`
	Date   string            `json:"date"`
	Marks  map[string]string `json:"marks"`
}
