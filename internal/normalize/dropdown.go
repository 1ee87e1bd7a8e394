package normalize

import (
	"fmt"

	"societylink-data/internal/domain"
)

// NormalizeDropdownOption 归一化一行引用列表数据为下拉选项
func NormalizeDropdownOption(raw RawRecord) (*domain.DropdownOption, error) {
	if raw == nil {
		return nil, fmt.Errorf("nil record")
	}

	label := raw.PickRaw("List_Name", "ListName", "Label", "Text", "Name")
	value := raw.PickRaw("List_Id", "ListId", "Value", "Id", "ID")
	if label == "" && value == "" {
		return nil, fmt.Errorf("record has neither label nor value")
	}
	// 只有一边有值时互相兜底，下拉项两个字段都不能为空
	if label == "" {
		label = value
	}
	if value == "" {
		value = label
	}
	return &domain.DropdownOption{Label: label, Value: value}, nil
}
