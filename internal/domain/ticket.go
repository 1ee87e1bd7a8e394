package domain

// HelpTicket 帮助工单（创建成功后网关回传的确认信息）
type HelpTicket struct {
	TicketID    string `json:"ticket_id"`
	UnitName    string `json:"unit_name"`
	Subject     string `json:"subject"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	CreatedAt   string `json:"created_at"`
	TicketNo    string `json:"ticket_no"`
	Description string `json:"description"`
}
