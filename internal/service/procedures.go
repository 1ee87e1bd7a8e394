package service

// 网关侧存储过程名（Object 字段取值）
const (
	procVisitorGet      = "VIM_SP_Visitor_Get"
	procVisitorInsert   = "VIM_SP_Visitor_Insert"
	procVisitorCheckOut = "VIM_SP_Visitor_CheckOut"

	procOccupantGet = "VIM_SP_Occupant_Get"
	procTenantGet   = "VIM_SP_Tenant_Get"
	procUnitGet     = "VIM_SP_Unit_Get"

	procCommonListGet    = "VIM_SP_CommonList_Get"
	procHelpTicketInsert = "VIM_SP_HelpTicket_Insert"
)
