package normalize

import (
	"fmt"

	"societylink-data/internal/domain"
)

// NormalizeHelpTicket 归一化工单创建后网关回传的确认行
func NormalizeHelpTicket(raw RawRecord) (*domain.HelpTicket, error) {
	if raw == nil {
		return nil, fmt.Errorf("nil record")
	}

	t := &domain.HelpTicket{
		TicketID:    raw.PickString("Ticket_Id", "TicketId", "Id", "ID"),
		TicketNo:    raw.PickString("Ticket_No", "TicketNo", "Complaint_No"),
		UnitName:    raw.PickString("Unit_Name", "UnitName", "Flat_No"),
		Subject:     raw.PickString("Subject", "Ticket_Subject", "Title"),
		Category:    raw.PickString("Category", "Ticket_Category"),
		Priority:    raw.PickString("Priority", "Ticket_Priority"),
		Description: raw.PickString("Description", "Ticket_Description", "Remarks"),
		CreatedAt:   FormatDateTime(raw.PickRaw("Created_Date", "CreatedDate"), raw.PickRaw("Created_Time", "CreatedTime")),
	}
	return t, nil
}
