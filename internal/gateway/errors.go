package gateway

import "fmt"

// TransportError 传输层失败：网络错误、超时、非 2xx 状态
// 属于硬失败，向上抛给 handler 展示重试入口
type TransportError struct {
	Object     string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("gateway transport error calling %s: status %d", e.Object, e.StatusCode)
	}
	return fmt.Sprintf("gateway transport error calling %s: %v", e.Object, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// MalformedResponseError 2xx 响应但 JSON 解析失败
// 与传输错误分开建类，诊断时能区分链路问题和载荷问题
type MalformedResponseError struct {
	Object string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("gateway returned malformed response for %s: %v", e.Object, e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }
