package normalize

import (
	"fmt"
	"strings"

	"societylink-data/internal/domain"
)

// NormalizeVisitor 把网关返回的一行访客数据归一化为稳定结构
// 每个目标字段按优先级尝试一组候选键名（同一语义字段在不同存储过程里
// 出现过不同键名/大小写），第一个有效值获胜
func NormalizeVisitor(raw RawRecord) (*domain.Visitor, error) {
	if raw == nil {
		return nil, fmt.Errorf("nil record")
	}

	checkInDate := raw.PickRaw("Check_In_Date", "CheckInDate", "Visit_Date")
	checkInTime := raw.PickRaw("Check_In_Time", "CheckInTime", "Visit_Time")
	checkOutDate := raw.PickRaw("Check_Out_Date", "CheckOutDate")
	checkOutTime := raw.PickRaw("Check_Out_Time", "CheckOutTime")

	v := &domain.Visitor{
		VisitorID:   raw.PickString("Visitor_Id", "VisitorId", "Id", "ID"),
		DisplayName: resolveDisplayName(raw),
		Phone:       raw.PickString("Mobile_No", "MobileNo", "Contact_No", "Phone"),
		Purpose:     raw.PickString("Purpose", "Visit_Purpose", "PurposeOfVisit"),
		UnitName:    raw.PickString("Unit_Name", "UnitName", "Flat_No"),
		State:       raw.PickString("VisitorState", "Visitor_State", "State"),
		VehicleNo:   raw.PickString("Vehicle_No", "VehicleNo"),
		CheckInAt:   FormatDateTime(checkInDate, checkInTime),
		CheckOutAt:  FormatDateTime(checkOutDate, checkOutTime),
		Status:      DeriveVisitorStatus(checkInDate, checkOutDate),
		IsExpected:  raw.PickBool("Is_Expected", "IsExpected", "Expected"),
		GuestCount:  raw.PickInt("Guest_Count", "GuestCount", "No_Of_Guests"),
		PhotoFile:   raw.PickRaw("Photo", "Visitor_Photo", "Photo_File_Name", "Image_Name"),
	}
	return v, nil
}

// DeriveVisitorStatus 由签入/签出日期的有无推导访客状态
//
//	签入 签出  →  状态
//	 无   无     checked-out（兜底默认）
//	 有   无     still-in
//	 有   有     checked-out
//
// 只有签出没有签入属于后端不一致数据，保持落回 checked-out 的既有行为
func DeriveVisitorStatus(checkIn, checkOut string) domain.VisitorStatus {
	in := !IsAbsent(checkIn)
	out := !IsAbsent(checkOut)
	if in && !out {
		return domain.VisitorStillIn
	}
	return domain.VisitorCheckedOut
}

// resolveDisplayName 优先取整字段姓名，没有时由各部分拼接
func resolveDisplayName(raw RawRecord) string {
	if name := raw.PickRaw("Visitor_Name", "VisitorName", "Name"); name != "" {
		return strings.TrimSpace(name)
	}
	return JoinNameParts(
		raw.PickString("First_Name", "FirstName"),
		raw.PickString("Middle_Name", "MiddleName"),
		raw.PickString("Last_Name", "LastName"),
	)
}
