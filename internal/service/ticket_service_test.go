package service

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"societylink-data/internal/gateway"
)

func newTestTicketService(t *testing.T, fake *fakeGateway) TicketService {
	t.Helper()
	if fake.gotValues == nil {
		fake.gotValues = make(map[string]string)
	}
	srv := httptest.NewServer(fake.handler(t))
	t.Cleanup(srv.Close)
	gw := gateway.NewClient(srv.URL, "auth", "host", 5*time.Second, zap.NewNop())
	return NewTicketService(gw, zap.NewNop())
}

func TestCreateTicket_UsesConfirmationRow(t *testing.T) {
	fake := &fakeGateway{responses: map[string]string{
		procHelpTicketInsert: `{"Data":[
			{"Ticket_Id":301,"Ticket_No":"HT-2024-301","Subject":"Water leakage","Created_Date":"25/12/2024","Created_Time":"10:15"}
		]}`,
	}}
	svc := newTestTicketService(t, fake)

	resp, err := svc.CreateTicket(context.Background(), CreateTicketRequest{
		UnitID:      "A-101",
		Subject:     "Water leakage",
		Description: "Leak under the kitchen sink",
		Category:    "Plumbing",
	})
	require.NoError(t, err)
	require.Equal(t, "301", resp.Ticket.TicketID)
	require.Equal(t, "HT-2024-301", resp.Ticket.TicketNo)
	require.Equal(t, "25 Dec 2024, 10:15 AM", resp.Ticket.CreatedAt)

	values := fake.gotValues[procHelpTicketInsert]
	require.Contains(t, values, "@Unit_Id='A-101'")
	require.Contains(t, values, "@Subject='Water leakage'")
	require.Contains(t, values, "@Priority=NULL")
}

func TestCreateTicket_NoConfirmationRowStillSucceeds(t *testing.T) {
	// 有的部署插入过程什么都不回
	fake := &fakeGateway{responses: map[string]string{procHelpTicketInsert: `{}`}}
	svc := newTestTicketService(t, fake)

	resp, err := svc.CreateTicket(context.Background(), CreateTicketRequest{
		UnitID:  "A-101",
		Subject: "Lift stuck",
	})
	require.NoError(t, err)
	require.Equal(t, "Lift stuck", resp.Ticket.Subject)
}

func TestCreateTicket_Validation(t *testing.T) {
	svc := newTestTicketService(t, &fakeGateway{responses: map[string]string{}})

	_, err := svc.CreateTicket(context.Background(), CreateTicketRequest{Subject: "x"})
	require.Error(t, err)
	_, err = svc.CreateTicket(context.Background(), CreateTicketRequest{UnitID: "A-101"})
	require.Error(t, err)
}
