package photos

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Resolver 图片解析服务客户端：按文件名 + 文件夹换取可访问的 URL
// 任何失败（网络/超时/非 2xx/解析失败）都按"无图"处理，从不向上抛，
// 受影响的记录保持空照片字段，前端回退为首字母占位图
type Resolver struct {
	httpClient *resty.Client
	url        string
	folders    []string // 备选文件夹，主文件夹 miss 后按顺序探测
	logger     *zap.Logger
}

// NewResolver 创建图片解析客户端
// timeout 是单次查找的固定上限，到点即取消并按失败处理，
// 整批最坏延迟被 (1+备选文件夹数)×timeout 封顶
func NewResolver(url string, timeout time.Duration, fallbackFolders []string, logger *zap.Logger) *Resolver {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Resolver{
		httpClient: client,
		url:        url,
		folders:    fallbackFolders,
		logger:     logger,
	}
}

type lookupResponse struct {
	URL string `json:"Url"`
}

// Resolve 在单个文件夹内查找；没查到返回空串
func (r *Resolver) Resolve(ctx context.Context, fileName, folder string) string {
	resp, err := r.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"fileName":        fileName,
			"imageFolderName": folder,
		}).
		Get(r.url)

	if err != nil {
		r.logger.Debug("photo lookup failed",
			zap.String("file_name", fileName),
			zap.String("folder", folder),
			zap.Error(err),
		)
		return ""
	}
	if !resp.IsSuccess() {
		return ""
	}

	var out lookupResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return ""
	}
	return strings.TrimSpace(out.URL)
}

// ResolveWithFallback 先查主文件夹，miss 后按备选文件夹顺序重试，命中即停
// 全部失败返回空串
func (r *Resolver) ResolveWithFallback(ctx context.Context, fileName, primaryFolder string) string {
	if !UsableFileName(fileName) {
		return ""
	}

	folders := make([]string, 0, 1+len(r.folders))
	if primaryFolder != "" {
		folders = append(folders, primaryFolder)
	}
	for _, f := range r.folders {
		if f != primaryFolder {
			folders = append(folders, f)
		}
	}

	for _, folder := range folders {
		if url := r.Resolve(ctx, fileName, folder); url != "" {
			return url
		}
	}
	return ""
}

// UsableFileName 过滤空值、字面 NULL、以及网关偶发塞进文件名字段的 HTML 错误页
func UsableFileName(name string) bool {
	n := strings.TrimSpace(name)
	if n == "" || n == "NULL" || n == "null" {
		return false
	}
	low := strings.ToLower(n)
	if strings.HasPrefix(low, "<") || strings.Contains(low, "<html") || strings.Contains(low, "<!doctype") {
		return false
	}
	return true
}
