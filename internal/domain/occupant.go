package domain

// Occupant 住户记录（归一化后，字段默认值同 Visitor 的不变式）
type Occupant struct {
	OccupantID  string `json:"occupant_id"`
	DisplayName string `json:"display_name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	UnitName    string `json:"unit_name"`
	IsOwner     bool   `json:"is_owner"`
	MoveInDate  string `json:"move_in_date"`
	MemberCount int    `json:"member_count"`
}
