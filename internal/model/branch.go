package model

// Branch is a named organizational subdivision of the institution (a hostel
// wing or block). Aggregate counts are computed by querying the record
// collections, never stored here.
type Branch struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
}

// DefaultBranches is the fixed branch list for this deployment, seeded on
// first boot.
var DefaultBranches = []Branch{
	{Name: "GODAVARI"},
	{Name: "SARAYU"},
	{Name: "GANGA"},
	{Name: "KRISHNA"},
	{Name: "BHRAMAPUTRA"},
	{Name: "SARASWATHI"},
	{Name: "Science Block"},
	{Name: "Arts Block"},
	{Name: "Technology Wing"},
	{Name: "Sports Complex"},
	{Name: "Medical Wing"},
	{Name: "Research Block"},
	{Name: "Library Block"},
	{Name: "Innovation Hub"},
	{Name: "Skill Center"},
	{Name: "Business Block"},
	{Name: "Design Wing"},
	{Name: "Media Center"},
	{Name: "Language Block"},
	{Name: "Cultural Center"},
	{Name: "International Block"},
	{Name: "Entrepreneurship Hub"},
}

// Floors within a branch, used by health log and food feedback forms.
var Floors = []string{"Ground Floor", "1st Floor", "2nd Floor", "3rd Floor", "4th Floor", "5th Floor"}
