package model

// Vehicle statuses, log entry types, and driver attendance marks.
const (
	VehicleActive   = "active"
	VehicleInactive = "inactive"

	LogMileage     = "mileage"
	LogRefuel      = "refuel"
	LogMaintenance = "maintenance"

	DriverPresent = "present"
	DriverAbsent  = "absent"
	DriverOnLeave = "leave"
)

// Vehicle is an institution vehicle. Status toggles between active and
// inactive; vehicles are never hard-deleted.
type Vehicle struct {
	Meta
	Number string `json:"number" validate:"required"`
	Driver string `json:"driver" validate:"required"`
	Route  string `json:"route" validate:"required"`
	Status string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// DriverAttendance is one mark for one driver on one date. Drivers are
// named, not keyed: the selectable set is the Driver column of the
// vehicle list.
type DriverAttendance struct {
	Meta
	Driver string `json:"driver" validate:"required"`
	Date   string `json:"date" validate:"required"`
	Status string `json:"status" validate:"required,oneof=present absent leave"`
}

// VehicleLog is one log book entry. The required fields depend on Type:
// mileage needs Reading, refuel needs FuelAmount and Cost, maintenance
// needs Notes.
type VehicleLog struct {
	Meta
	VehicleNumber string `json:"vehicle_number" validate:"required"`
	Type          string `json:"type" validate:"required,oneof=mileage refuel maintenance"`
	Reading       string `json:"reading"`
	Date          string `json:"date" validate:"required"`
	Notes         string `json:"notes"`
	FuelAmount    string `json:"fuel_amount"`
	Cost          string `json:"cost"`
}
