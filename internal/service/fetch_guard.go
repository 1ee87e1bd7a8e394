package service

import (
	"errors"
	"sync"
)

// ErrStaleFetch 结果返回时同范围已有更新的请求在跑，按过期丢弃
var ErrStaleFetch = errors.New("fetch superseded by a newer request")

// FetchGuard 按范围自增代号实现"最新请求获胜"
// 同一范围（如某个单元的访客列表）的新请求开始后，旧请求
// 等到的结果视为过期丢弃，防止快速连刷时旧数据覆盖新数据
type FetchGuard struct {
	mu   sync.Mutex
	gens map[string]uint64
}

func NewFetchGuard() *FetchGuard {
	return &FetchGuard{gens: make(map[string]uint64)}
}

// Begin 登记一次新请求，返回其代号
func (g *FetchGuard) Begin(scope string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gens[scope]++
	return g.gens[scope]
}

// Current 判断代号是否仍是该范围的最新请求
func (g *FetchGuard) Current(scope string, gen uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gens[scope] == gen
}
