package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"societylink-data/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func readBodyJSON(r *http.Request, maxBytes int64, out any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBytes))
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

// paginate 按 page/size 截取列表；size<=0 时不分页，整表返回
// Count 始终是过滤后的总数
func paginate[T any](items []T, page, size int) ([]T, models.Pagination) {
	total := len(items)
	p := models.Pagination{Page: page, Size: size, Count: total}
	if size <= 0 {
		p.Page = 1
		p.Size = total
		return items, p
	}
	if page < 1 {
		page = 1
		p.Page = 1
	}
	start := (page - 1) * size
	if start >= total {
		return []T{}, p
	}
	end := start + size
	if end > total {
		end = total
	}
	return items[start:end], p
}
