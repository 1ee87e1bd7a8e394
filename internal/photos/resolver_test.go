package photos_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"societylink-data/internal/domain"
	"societylink-data/internal/photos"
)

// fakeImageService 按 folder 配置返回结果，并记录调用顺序
type fakeImageService struct {
	mu     sync.Mutex
	urls   map[string]string // folder -> url（缺省 404）
	probes []string          // 收到的 folder 顺序
}

func (f *fakeImageService) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		folder := r.URL.Query().Get("imageFolderName")
		f.mu.Lock()
		f.probes = append(f.probes, folder)
		url, ok := f.urls[folder]
		f.mu.Unlock()
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"Url": url})
	}
}

func newTestResolver(t *testing.T, fake *fakeImageService, folders []string) *photos.Resolver {
	t.Helper()
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)
	return photos.NewResolver(srv.URL, 2*time.Second, folders, zap.NewNop())
}

func TestResolveWithFallback_SecondFolderWinsAndStops(t *testing.T) {
	fake := &fakeImageService{urls: map[string]string{
		"Visitor_Photos": "https://cdn.example/v/p.jpg",
		"Images":         "https://cdn.example/i/p.jpg",
	}}
	r := newTestResolver(t, fake, []string{"Profile_Image", "Visitor_Photos", "Images"})

	url := r.ResolveWithFallback(context.Background(), "p.jpg", "Profile_Image")
	require.Equal(t, "https://cdn.example/v/p.jpg", url)
	// 命中后不再继续探测
	require.Equal(t, []string{"Profile_Image", "Visitor_Photos"}, fake.probes)
}

func TestResolveWithFallback_AllMiss(t *testing.T) {
	fake := &fakeImageService{urls: map[string]string{}}
	r := newTestResolver(t, fake, []string{"Profile_Image", "Visitor_Photos"})

	url := r.ResolveWithFallback(context.Background(), "p.jpg", "Profile_Image")
	require.Equal(t, "", url)
	require.Len(t, fake.probes, 2)
}

func TestResolveWithFallback_PrimaryDeduplicated(t *testing.T) {
	fake := &fakeImageService{urls: map[string]string{}}
	r := newTestResolver(t, fake, []string{"Profile_Image", "Images"})

	_ = r.ResolveWithFallback(context.Background(), "p.jpg", "Profile_Image")
	// 主文件夹在备选表里时不重复探测
	require.Equal(t, []string{"Profile_Image", "Images"}, fake.probes)
}

func TestResolveWithFallback_UnusableFileNameMakesNoCalls(t *testing.T) {
	fake := &fakeImageService{urls: map[string]string{}}
	r := newTestResolver(t, fake, []string{"Images"})

	for _, name := range []string{"", "NULL", "null", "<html><body>error</body></html>", "<!DOCTYPE html>"} {
		require.Equal(t, "", r.ResolveWithFallback(context.Background(), name, "Images"))
	}
	require.Empty(t, fake.probes)
}

func TestUsableFileName(t *testing.T) {
	require.True(t, photos.UsableFileName("visitor_42.jpg"))
	require.False(t, photos.UsableFileName(""))
	require.False(t, photos.UsableFileName("  "))
	require.False(t, photos.UsableFileName("NULL"))
	require.False(t, photos.UsableFileName("<html>oops</html>"))
}

func TestEnrichVisitors_PreservesOrderUnderConcurrency(t *testing.T) {
	fake := &fakeImageService{urls: map[string]string{
		"Profile_Image": "https://cdn.example/p",
	}}
	r := newTestResolver(t, fake, nil)

	visitors := make([]*domain.Visitor, 10)
	for i := range visitors {
		visitors[i] = &domain.Visitor{
			VisitorID: string(rune('a' + i)),
			PhotoFile: "photo.jpg",
		}
	}
	// 第 3 条没有可用文件名，保持空 URL
	visitors[3].PhotoFile = "NULL"

	r.EnrichVisitors(context.Background(), visitors, "Profile_Image", 4)

	for i, v := range visitors {
		if i == 3 {
			require.Equal(t, "", v.PhotoURL)
			continue
		}
		require.Equal(t, "https://cdn.example/p", v.PhotoURL, "index %d", i)
	}
	// 列表顺序没有被打乱
	for i, v := range visitors {
		require.Equal(t, string(rune('a'+i)), v.VisitorID)
	}
}
