package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"societylink-data/internal/domain"
)

// VisitorLogHeader 访客记录导出表头
var VisitorLogHeader = []string{
	"Visitor Name",
	"Phone",
	"Unit",
	"Purpose",
	"Check In",
	"Check Out",
	"Status",
	"Guests",
	"Vehicle No",
}

// OccupantRosterHeader 住户名册导出表头
var OccupantRosterHeader = []string{
	"Occupant Name",
	"Phone",
	"Email",
	"Unit",
	"Owner",
	"Move In Date",
	"Members",
}

// GenerateVisitorLog 生成访客记录 Excel 文件
func GenerateVisitorLog(items []*domain.Visitor) ([]byte, error) {
	rows := make([][]any, 0, len(items))
	for _, v := range items {
		rows = append(rows, []any{
			v.DisplayName,
			v.Phone,
			v.UnitName,
			v.Purpose,
			v.CheckInAt,
			v.CheckOutAt,
			string(v.Status),
			v.GuestCount,
			v.VehicleNo,
		})
	}
	return generateRosterExcel("Visitor Log", VisitorLogHeader, rows)
}

// GenerateOccupantRoster 生成住户名册 Excel 文件
func GenerateOccupantRoster(items []*domain.Occupant) ([]byte, error) {
	rows := make([][]any, 0, len(items))
	for _, o := range items {
		owner := "No"
		if o.IsOwner {
			owner = "Yes"
		}
		rows = append(rows, []any{
			o.DisplayName,
			o.Phone,
			o.Email,
			o.UnitName,
			owner,
			o.MoveInDate,
			o.MemberCount,
		})
	}
	return generateRosterExcel("Occupant Roster", OccupantRosterHeader, rows)
}

// generateRosterExcel 生成名册类 Excel 文件的通用函数
// headers: 表头列表
// rows: 数据行，为空时只生成表头
func generateRosterExcel(sheetName string, headers []string, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	// Note: Don't defer Close() here, Write needs the file to be open

	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	// 删除默认的 Sheet1
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	// 表头样式
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
	})
	if err == nil {
		_ = f.SetRowStyle(sheetName, 1, 1, headerStyle)
	}

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to compute header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for rIdx := range rows {
		cell, err := excelize.CoordinatesToCellName(1, rIdx+2)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to compute row cell: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &rows[rIdx]); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write row: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write excel: %w", err)
	}
	_ = f.Close()
	return buf.Bytes(), nil
}
