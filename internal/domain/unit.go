package domain

// Unit 单元/房号记录（归一化后）
type Unit struct {
	UnitID       string `json:"unit_id"`
	UnitName     string `json:"unit_name"`
	Wing         string `json:"wing"`
	Floor        string `json:"floor"`
	UnitType     string `json:"unit_type"`
	AreaSqft     int    `json:"area_sqft"`
	OwnerName    string `json:"owner_name"`
	IsOccupied   bool   `json:"is_occupied"`
	ParkingSlots int    `json:"parking_slots"`
}
