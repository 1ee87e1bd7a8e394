package normalize

import (
	"fmt"

	"societylink-data/internal/domain"
)

// NormalizeTenant 归一化一行租客数据
func NormalizeTenant(raw RawRecord) (*domain.Tenant, error) {
	if raw == nil {
		return nil, fmt.Errorf("nil record")
	}

	name := raw.PickRaw("Tenant_Name", "TenantName", "Name")
	if name == "" {
		name = JoinNameParts(
			raw.PickString("First_Name", "FirstName"),
			raw.PickString("Middle_Name", "MiddleName"),
			raw.PickString("Last_Name", "LastName"),
		)
	}

	t := &domain.Tenant{
		TenantID:    raw.PickString("Tenant_Id", "TenantId", "Id", "ID"),
		DisplayName: name,
		Phone:       raw.PickString("Mobile_No", "MobileNo", "Contact_No", "Phone"),
		Email:       raw.PickString("Email_Id", "EmailId", "Email"),
		UnitName:    raw.PickString("Unit_Name", "UnitName", "Flat_No"),
		AgreementNo: raw.PickString("Agreement_No", "AgreementNo"),
		LeaseStart:  FormatDateTime(raw.PickRaw("Lease_Start_Date", "LeaseStartDate", "Agreement_Start_Date"), ""),
		LeaseEnd:    FormatDateTime(raw.PickRaw("Lease_End_Date", "LeaseEndDate", "Agreement_End_Date"), ""),
		RentAmount:  raw.PickInt("Rent_Amount", "RentAmount", "Monthly_Rent"),
		IsActive:    raw.PickBool("Is_Active", "IsActive", "Active_Flag"),
	}
	return t, nil
}
