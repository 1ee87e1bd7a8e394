package gateway_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"societylink-data/internal/gateway"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*gateway.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := gateway.NewClient(srv.URL, "test-auth", "test-host", 5*time.Second, zap.NewNop())
	return client, srv
}

func TestClient_Invoke_SendsFormFields(t *testing.T) {
	var gotForm map[string]string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{
			"AuthKey": r.PostFormValue("AuthKey"),
			"HostKey": r.PostFormValue("HostKey"),
			"Object":  r.PostFormValue("Object"),
			"Values":  r.PostFormValue("Values"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Data":[{"Id":1}]}`))
	})

	values := gateway.NewValues().AddString("Unit_Id", "A-101")
	records, err := client.Invoke(context.Background(), "VIM_SP_Visitor_Get", values)
	require.NoError(t, err)
	require.Len(t, records, 1)

	require.Equal(t, "test-auth", gotForm["AuthKey"])
	require.Equal(t, "test-host", gotForm["HostKey"])
	require.Equal(t, "VIM_SP_Visitor_Get", gotForm["Object"])
	require.Equal(t, "@Unit_Id='A-101'", gotForm["Values"])
}

func TestClient_Invoke_EmptyObjectIsNotAnError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})

	records, err := client.Invoke(context.Background(), "VIM_SP_Visitor_Get", gateway.NewValues())
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestClient_Invoke_Non2xxIsTransportError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.Invoke(context.Background(), "VIM_SP_Visitor_Get", gateway.NewValues())
	require.Error(t, err)

	var te *gateway.TransportError
	require.ErrorAs(t, err, &te)
	require.Equal(t, http.StatusInternalServerError, te.StatusCode)
}

func TestClient_Invoke_BadJSONIsMalformedResponse(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Data": [truncated`))
	})

	_, err := client.Invoke(context.Background(), "VIM_SP_Visitor_Get", gateway.NewValues())
	require.Error(t, err)

	var me *gateway.MalformedResponseError
	require.ErrorAs(t, err, &me)

	// 与传输错误属于不同类别
	var te *gateway.TransportError
	require.NotErrorAs(t, err, &te)
}

func TestClient_Invoke_ConnectionRefusedIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close() // 立即关掉，连接必然失败

	client := gateway.NewClient(url, "a", "h", 2*time.Second, zap.NewNop())
	_, err := client.Invoke(context.Background(), "VIM_SP_Unit_Get", gateway.NewValues())
	require.Error(t, err)

	var te *gateway.TransportError
	require.ErrorAs(t, err, &te)
}
