package model

// HealthRecord logs a student health incident and the care provided.
type HealthRecord struct {
	Meta
	StudentName            string `json:"student_name" validate:"required"`
	Branch                 string `json:"branch" validate:"required"`
	Floor                  string `json:"floor"`
	IllnessReason          string `json:"illness_reason" validate:"required"`
	MedicationsTaken       string `json:"medications_taken"`
	SentToHospital         string `json:"sent_to_hospital"`
	HospitalDetails        string `json:"hospital_details"`
	Expenses               string `json:"expenses"`
	FloorInchargeNotified  string `json:"floor_incharge_notified"`
	CareProvided           string `json:"care_provided"`
}
