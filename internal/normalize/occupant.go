package normalize

import (
	"fmt"

	"societylink-data/internal/domain"
)

// NormalizeOccupant 归一化一行住户数据
func NormalizeOccupant(raw RawRecord) (*domain.Occupant, error) {
	if raw == nil {
		return nil, fmt.Errorf("nil record")
	}

	name := raw.PickRaw("Occupant_Name", "OccupantName", "Name")
	if name == "" {
		name = JoinNameParts(
			raw.PickString("First_Name", "FirstName"),
			raw.PickString("Middle_Name", "MiddleName"),
			raw.PickString("Last_Name", "LastName"),
		)
	}

	o := &domain.Occupant{
		OccupantID:  raw.PickString("Occupant_Id", "OccupantId", "Id", "ID"),
		DisplayName: name,
		Phone:       raw.PickString("Mobile_No", "MobileNo", "Contact_No", "Phone"),
		Email:       raw.PickString("Email_Id", "EmailId", "Email"),
		UnitName:    raw.PickString("Unit_Name", "UnitName", "Flat_No"),
		IsOwner:     raw.PickBool("Is_Owner", "IsOwner", "Owner_Flag"),
		MoveInDate:  FormatDateTime(raw.PickRaw("Move_In_Date", "MoveInDate"), ""),
		MemberCount: raw.PickInt("Member_Count", "MemberCount", "No_Of_Members"),
	}
	return o, nil
}
