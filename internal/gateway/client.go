package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"societylink-data/internal/normalize"
)

// Client 存储过程网关客户端
// 所有实体共用同一个调用端点，按 Object（过程名）分发；
// 请求体是 form-urlencoded 的 AuthKey/HostKey/Object/Values 四元组
type Client struct {
	httpClient *resty.Client
	url        string
	authKey    string
	hostKey    string
	logger     *zap.Logger
}

// NewClient 创建网关客户端
func NewClient(url, authKey, hostKey string, timeout time.Duration, logger *zap.Logger) *Client {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Client{
		httpClient: client,
		url:        url,
		authKey:    authKey,
		hostKey:    hostKey,
		logger:     logger,
	}
}

// Invoke 调用指定存储过程，返回已做完形状归一的行列表
// 空结果返回空列表不报错；传输失败返回 *TransportError，
// 2xx 但 JSON 坏掉返回 *MalformedResponseError
func (c *Client) Invoke(ctx context.Context, object string, values *Values) ([]normalize.RawRecord, error) {
	requestID := uuid.NewString()
	c.logger.Debug("invoking gateway procedure",
		zap.String("request_id", requestID),
		zap.String("object", object),
	)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"AuthKey": c.authKey,
			"HostKey": c.hostKey,
			"Object":  object,
			"Values":  values.String(),
		}).
		Post(c.url)

	if err != nil {
		c.logger.Error("gateway call failed",
			zap.String("request_id", requestID),
			zap.String("object", object),
			zap.Error(err),
		)
		return nil, &TransportError{Object: object, Err: err}
	}
	if !resp.IsSuccess() {
		c.logger.Error("gateway returned non-2xx status",
			zap.String("request_id", requestID),
			zap.String("object", object),
			zap.Int("status_code", resp.StatusCode()),
		)
		return nil, &TransportError{
			Object:     object,
			StatusCode: resp.StatusCode(),
			Err:        fmt.Errorf("unexpected status %d", resp.StatusCode()),
		}
	}

	var parsed any
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		c.logger.Error("gateway response is not valid JSON",
			zap.String("request_id", requestID),
			zap.String("object", object),
			zap.Error(err),
		)
		return nil, &MalformedResponseError{Object: object, Err: err}
	}

	records := ResolveRecordList(parsed)
	c.logger.Debug("gateway procedure resolved",
		zap.String("request_id", requestID),
		zap.String("object", object),
		zap.Int("record_count", len(records)),
	)
	return records, nil
}
