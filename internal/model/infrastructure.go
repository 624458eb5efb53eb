package model

// Infrastructure holds per-branch inventory counts, one KV document per
// branch. Counts are edited in place; there is no create/delete lifecycle.
type Infrastructure struct {
	Rooms             int `json:"rooms"`
	ACRooms           int `json:"ac_rooms"`
	Beds              int `json:"beds"`
	Fans              int `json:"fans"`
	Lights            int `json:"lights"`
	Chairs            int `json:"chairs"`
	DigitalBoards     int `json:"digital_boards"`
	Planks            int `json:"planks"`
	ReceptionTables   int `json:"reception_tables"`
	ReceptionChairs   int `json:"reception_chairs"`
	ROPlants          int `json:"ro_plants"`
	LabEquipments     int `json:"lab_equipments"`
	MosquitoMeshes    int `json:"mosquito_meshes"`
	Doors             int `json:"doors"`
	Cameras           int `json:"cameras"`
	CCCameras         int `json:"cc_cameras"`
	KitchenEquipments int `json:"kitchen_equipments"`
	BathroomHangers   int `json:"bathroom_hangers"`
	StudentCapacity   int `json:"student_capacity"`
	RoomCapacity      int `json:"room_capacity"`
}
