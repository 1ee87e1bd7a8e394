package normalize

import (
	"fmt"

	"societylink-data/internal/domain"
)

// NormalizeUnit 归一化一行单元数据
func NormalizeUnit(raw RawRecord) (*domain.Unit, error) {
	if raw == nil {
		return nil, fmt.Errorf("nil record")
	}

	u := &domain.Unit{
		UnitID:       raw.PickString("Unit_Id", "UnitId", "Id", "ID"),
		UnitName:     raw.PickString("Unit_Name", "UnitName", "Flat_No"),
		Wing:         raw.PickString("Wing", "Wing_Name", "Block"),
		Floor:        raw.PickString("Floor", "Floor_No"),
		UnitType:     raw.PickString("Unit_Type", "UnitType", "Flat_Type"),
		AreaSqft:     raw.PickInt("Area_Sqft", "AreaSqft", "Carpet_Area"),
		OwnerName:    raw.PickString("Owner_Name", "OwnerName"),
		IsOccupied:   raw.PickBool("Is_Occupied", "IsOccupied", "Occupied_Flag"),
		ParkingSlots: raw.PickInt("Parking_Slots", "ParkingSlots", "No_Of_Parkings"),
	}
	return u, nil
}
