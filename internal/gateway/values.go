package gateway

import (
	"strconv"
	"strings"
)

// Values 存储过程参数表
// 网关不收 JSON，收一个逗号连接的 @name=value 串：字符串单引号包裹
// （内部单引号双写转义），数值裸写，缺省参数传字面 NULL
type Values struct {
	pairs []valuePair
}

type valuePair struct {
	name  string
	value string
}

func NewValues() *Values {
	return &Values{}
}

// AddString 追加字符串参数（单引号包裹，内部引号双写）
func (v *Values) AddString(name, value string) *Values {
	escaped := strings.ReplaceAll(value, "'", "''")
	v.pairs = append(v.pairs, valuePair{name, "'" + escaped + "'"})
	return v
}

// AddOptString 空串按 NULL 传递
func (v *Values) AddOptString(name, value string) *Values {
	if strings.TrimSpace(value) == "" {
		return v.AddNull(name)
	}
	return v.AddString(name, value)
}

// AddInt 追加整数参数（裸写，不加引号）
func (v *Values) AddInt(name string, value int) *Values {
	v.pairs = append(v.pairs, valuePair{name, strconv.Itoa(value)})
	return v
}

// AddNull 追加字面 NULL
func (v *Values) AddNull(name string) *Values {
	v.pairs = append(v.pairs, valuePair{name, "NULL"})
	return v
}

// String 序列化为逗号连接的 @name=value 串（保持追加顺序）
func (v *Values) String() string {
	parts := make([]string, 0, len(v.pairs))
	for _, p := range v.pairs {
		parts = append(parts, "@"+p.name+"="+p.value)
	}
	return strings.Join(parts, ",")
}
