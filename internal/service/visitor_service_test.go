package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"societylink-data/internal/domain"
	"societylink-data/internal/gateway"
	"societylink-data/internal/photos"
)

// fakeGateway 按 Object 返回预置 JSON，并记录收到的 Values 串
type fakeGateway struct {
	responses map[string]string
	gotValues map[string]string
}

func (f *fakeGateway) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		object := r.PostFormValue("Object")
		f.gotValues[object] = r.PostFormValue("Values")
		body, ok := f.responses[object]
		if !ok {
			http.Error(w, "unknown procedure", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func newTestVisitorService(t *testing.T, fake *fakeGateway, photoURLs map[string]string) VisitorService {
	t.Helper()
	if fake.gotValues == nil {
		fake.gotValues = make(map[string]string)
	}
	gwSrv := httptest.NewServer(fake.handler(t))
	t.Cleanup(gwSrv.Close)
	gw := gateway.NewClient(gwSrv.URL, "auth", "host", 5*time.Second, zap.NewNop())

	imgSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		url, ok := photoURLs[r.URL.Query().Get("fileName")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"Url": url})
	}))
	t.Cleanup(imgSrv.Close)
	resolver := photos.NewResolver(imgSrv.URL, 2*time.Second, []string{"Visitor_Photos"}, zap.NewNop())

	svc := NewVisitorService(gw, resolver, 4, "Profile_Image", zap.NewNop())
	svc.(*visitorService).now = func() time.Time {
		return time.Date(2024, 12, 25, 14, 30, 0, 0, time.UTC)
	}
	return svc
}

func TestListVisitors_NormalizesAndEnriches(t *testing.T) {
	fake := &fakeGateway{responses: map[string]string{
		procVisitorGet: `{"Data":[
			{"Visitor_Id":1,"Visitor_Name":"Ramesh Patil","Check_In_Date":"25/12/2024","Check_In_Time":"14:30","Photo":"r1.jpg"},
			{"Visitor_Id":2,"First_Name":"Asha","Last_Name":"Rao","Check_In_Date":"25/12/2024","Check_Out_Date":"25/12/2024"}
		]}`,
	}}
	svc := newTestVisitorService(t, fake, map[string]string{"r1.jpg": "https://cdn.example/r1.jpg"})

	resp, err := svc.ListVisitors(context.Background(), ListVisitorsRequest{UnitID: "A-101"})
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)

	require.Equal(t, "Ramesh Patil", resp.Items[0].DisplayName)
	require.Equal(t, domain.VisitorStillIn, resp.Items[0].Status)
	require.Equal(t, "https://cdn.example/r1.jpg", resp.Items[0].PhotoURL)

	require.Equal(t, "Asha Rao", resp.Items[1].DisplayName)
	require.Equal(t, domain.VisitorCheckedOut, resp.Items[1].Status)
	require.Equal(t, "", resp.Items[1].PhotoURL)

	require.Equal(t, "@Unit_Id='A-101',@From_Date=NULL,@To_Date=NULL", fake.gotValues[procVisitorGet])
}

func TestListVisitors_EmptyResultIsNotAnError(t *testing.T) {
	fake := &fakeGateway{responses: map[string]string{procVisitorGet: `{}`}}
	svc := newTestVisitorService(t, fake, nil)

	resp, err := svc.ListVisitors(context.Background(), ListVisitorsRequest{UnitID: "A-101"})
	require.NoError(t, err)
	require.Empty(t, resp.Items)
}

func TestListVisitors_RequiresUnitID(t *testing.T) {
	fake := &fakeGateway{responses: map[string]string{}}
	svc := newTestVisitorService(t, fake, nil)

	_, err := svc.ListVisitors(context.Background(), ListVisitorsRequest{})
	require.Error(t, err)
}

func TestListVisitors_TransportErrorPropagates(t *testing.T) {
	// responses 为空 → fake 回 400
	fake := &fakeGateway{responses: map[string]string{}}
	svc := newTestVisitorService(t, fake, nil)

	_, err := svc.ListVisitors(context.Background(), ListVisitorsRequest{UnitID: "A-101"})
	require.Error(t, err)

	var te *gateway.TransportError
	require.ErrorAs(t, err, &te)
}

func TestCheckInVisitor_SerializesFormValues(t *testing.T) {
	fake := &fakeGateway{responses: map[string]string{
		procVisitorInsert: `{"Data":[{"Visitor_Id":99}]}`,
	}}
	svc := newTestVisitorService(t, fake, nil)

	resp, err := svc.CheckInVisitor(context.Background(), CheckInVisitorRequest{
		UnitID:     "A-101",
		FirstName:  "Ramesh",
		LastName:   "D'Souza",
		GuestCount: 2,
	})
	require.NoError(t, err)
	require.Equal(t, "99", resp.VisitorID)
	require.Equal(t, domain.VisitorCheckedIn, resp.Status)

	values := fake.gotValues[procVisitorInsert]
	require.Contains(t, values, "@First_Name='Ramesh'")
	require.Contains(t, values, "@Last_Name='D''Souza'") // 引号双写
	require.Contains(t, values, "@Middle_Name=NULL")
	require.Contains(t, values, "@Guest_Count=2")
	require.Contains(t, values, "@Check_In_Date='25/12/2024'")
	require.Contains(t, values, "@Check_In_Time='14:30'")
}

func TestCheckOutVisitor(t *testing.T) {
	fake := &fakeGateway{responses: map[string]string{
		procVisitorCheckOut: `{"Data":[]}`,
	}}
	svc := newTestVisitorService(t, fake, nil)

	resp, err := svc.CheckOutVisitor(context.Background(), CheckOutVisitorRequest{VisitorID: "42"})
	require.NoError(t, err)
	require.Equal(t, "42", resp.VisitorID)
	require.Contains(t, fake.gotValues[procVisitorCheckOut], "@Visitor_Id='42'")
	require.Contains(t, fake.gotValues[procVisitorCheckOut], "@Check_Out_Date='25/12/2024'")
}
