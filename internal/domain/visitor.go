package domain

// VisitorStatus 访客状态（由签入/签出日期推导，每次归一化都重新计算，不落库）
type VisitorStatus string

const (
	// VisitorCheckedIn 签入写操作的确认状态；列表侧的推导表
	// 把"有签入日期"直接视为 still-in，不会产出这个值
	VisitorCheckedIn  VisitorStatus = "checked-in"
	VisitorStillIn    VisitorStatus = "still-in"
	VisitorCheckedOut VisitorStatus = "checked-out"
)

// Visitor 访客记录（归一化后）
// 不变式：所有字段始终存在；无法解析的来源字段取哨兵默认值
// （字符串 "N/A"，数值 0，布尔 false），展示层不需要判空
type Visitor struct {
	VisitorID   string        `json:"visitor_id"`
	DisplayName string        `json:"display_name"`
	Phone       string        `json:"phone"`
	Purpose     string        `json:"purpose"`
	UnitName    string        `json:"unit_name"`
	State       string        `json:"state"`
	VehicleNo   string        `json:"vehicle_no"`
	CheckInAt   string        `json:"check_in_at"`
	CheckOutAt  string        `json:"check_out_at"`
	Status      VisitorStatus `json:"status"`
	IsExpected  bool          `json:"is_expected"`
	GuestCount  int           `json:"guest_count"`
	PhotoFile   string        `json:"photo_file"`
	// PhotoURL 异步补全；未解析到时保持空串，前端回退为首字母占位图
	PhotoURL string `json:"photo_url"`
}
