package gateway_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"societylink-data/internal/gateway"
)

func parseJSON(t *testing.T, s string) any {
	var v any
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	return v
}

func TestResolveRecordList_BareArray(t *testing.T) {
	v := parseJSON(t, `[{"Visitor_Name":"A"},{"Visitor_Name":"B"}]`)
	records := gateway.ResolveRecordList(v)
	require.Len(t, records, 2)
	require.Equal(t, "A", records[0]["Visitor_Name"])
}

func TestResolveRecordList_ContainerKeys(t *testing.T) {
	// 每个历史容器键都能命中
	for _, key := range []string{"Data", "data", "Result", "Results", "results", "Records", "records"} {
		v := parseJSON(t, `{"`+key+`":[{"Id":1}]}`)
		records := gateway.ResolveRecordList(v)
		require.Len(t, records, 1, "container key %s", key)
	}
}

func TestResolveRecordList_ContainerPriority(t *testing.T) {
	// Data 优先于 Result
	v := parseJSON(t, `{"Result":[{"Id":"r"}],"Data":[{"Id":"d"}]}`)
	records := gateway.ResolveRecordList(v)
	require.Len(t, records, 1)
	require.Equal(t, "d", records[0]["Id"])
}

func TestResolveRecordList_ContainerKeyNotArray(t *testing.T) {
	// 容器键的值不是数组时跳过，继续找下一个
	v := parseJSON(t, `{"Data":"oops","Result":[{"Id":"r"}]}`)
	records := gateway.ResolveRecordList(v)
	require.Len(t, records, 1)
	require.Equal(t, "r", records[0]["Id"])
}

func TestResolveRecordList_BareObjectIsSingleRecord(t *testing.T) {
	v := parseJSON(t, `{"Visitor_Name":"Solo","Id":7}`)
	records := gateway.ResolveRecordList(v)
	require.Len(t, records, 1)
	require.Equal(t, "Solo", records[0]["Visitor_Name"])
}

func TestResolveRecordList_EmptyShapes(t *testing.T) {
	require.Empty(t, gateway.ResolveRecordList(parseJSON(t, `{}`)))
	require.Empty(t, gateway.ResolveRecordList(parseJSON(t, `null`)))
	require.Empty(t, gateway.ResolveRecordList(parseJSON(t, `"just a string"`)))
	require.Empty(t, gateway.ResolveRecordList(parseJSON(t, `42`)))
	require.Empty(t, gateway.ResolveRecordList(parseJSON(t, `[]`)))
}

func TestResolveRecordList_SkipsNonObjectElements(t *testing.T) {
	v := parseJSON(t, `[{"Id":1},"noise",2,{"Id":3}]`)
	records := gateway.ResolveRecordList(v)
	require.Len(t, records, 2)
}
