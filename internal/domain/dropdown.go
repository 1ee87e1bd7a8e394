package domain

// DropdownOption 下拉选项
// 静态字典（州/国家）和网关按 group id 查的引用列表统一用这个形状
type DropdownOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}
