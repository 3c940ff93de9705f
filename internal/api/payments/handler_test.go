package payments

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"parqueo-pagos/internal/domain/billing"
	"parqueo-pagos/internal/domain/cards"
	"parqueo-pagos/internal/domain/parking"
	"parqueo-pagos/internal/infra/charge"
	"parqueo-pagos/internal/infra/notify"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// mockStore implements Store in memory for workflow tests.
type mockStore struct {
	ticket      *parking.Ticket
	cardsByID   map[uint]*cards.Card
	defaultCard *cards.Card
	payments    []*billing.Payment
	invoices    []*billing.Invoice
}

func (m *mockStore) TicketWithClient(id uint) (*parking.Ticket, error) {
	if m.ticket == nil || m.ticket.IDTicket != id {
		return nil, gorm.ErrRecordNotFound
	}
	return m.ticket, nil
}

func (m *mockStore) CardByID(id uint) (*cards.Card, error) {
	if card, ok := m.cardsByID[id]; ok {
		return card, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStore) DefaultCard(clientID uint) (*cards.Card, error) {
	if m.defaultCard != nil && m.defaultCard.UserID != nil && *m.defaultCard.UserID == clientID {
		return m.defaultCard, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStore) CreatePayment(p *billing.Payment) error {
	p.ID = uint(len(m.payments) + 1)
	m.payments = append(m.payments, p)
	return nil
}

func (m *mockStore) CreateInvoice(inv *billing.Invoice) error {
	inv.ID = uint(len(m.invoices) + 1)
	m.invoices = append(m.invoices, inv)
	return nil
}

func (m *mockStore) FinalizeTicket(id uint) (bool, error) {
	if m.ticket != nil && m.ticket.IDTicket == id && m.ticket.Estado == parking.TicketActivo {
		m.ticket.Estado = parking.TicketFinalizado
		return true, nil
	}
	return false, nil
}

func strPtr(s string) *string { return &s }

func activeTicket(amount string) *parking.Ticket {
	clientID := uint(1)
	return &parking.Ticket{
		IDTicket:   5,
		IDCliente:  clientID,
		MontoTotal: strPtr(amount),
		Estado:     parking.TicketActivo,
		Cliente: &parking.Cliente{
			IDCliente: clientID,
			Nombre:    "Ana",
			Email:     "a@b.com",
			Telefono:  "+50212345678",
		},
	}
}

func newTestHandler(t *testing.T, store Store) (*Handler, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := &Handler{
		Store:      store,
		Charger:    charge.Simulated{},
		Notifier:   notify.New(notify.Config{}),
		InvoiceDir: t.TempDir(),
	}

	r := gin.New()
	r.POST("/payments/close-ticket", h.CloseTicket)
	return h, r
}

func closeTicket(r *gin.Engine, body map[string]interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/payments/close-ticket", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCloseTicketRequiresTicketID(t *testing.T) {
	_, r := newTestHandler(t, &mockStore{})
	w := closeTicket(r, map[string]interface{}{"cardToken": "tok_ok"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestCloseTicketNotFound(t *testing.T) {
	_, r := newTestHandler(t, &mockStore{})
	w := closeTicket(r, map[string]interface{}{"ticketId": 99, "cardToken": "tok_ok"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestCloseTicketRejectsUnpricedTicket(t *testing.T) {
	for _, monto := range []*string{nil, strPtr(""), strPtr("not-a-number")} {
		store := &mockStore{ticket: activeTicket("x")}
		store.ticket.MontoTotal = monto
		_, r := newTestHandler(t, store)

		w := closeTicket(r, map[string]interface{}{"ticketId": 5, "cardToken": "tok_ok"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("monto=%v: status = %d, want 400", monto, w.Code)
		}
		if len(store.payments) != 0 {
			t.Errorf("monto=%v: unpriced ticket must not create payments", monto)
		}
	}
}

func TestCloseTicketZeroAmount(t *testing.T) {
	store := &mockStore{ticket: activeTicket("0.00")}
	_, r := newTestHandler(t, store)

	w := closeTicket(r, map[string]interface{}{"ticketId": 5})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	if len(store.payments) != 0 || len(store.invoices) != 0 {
		t.Errorf("zero amount must not create billing artifacts: %d payments, %d invoices",
			len(store.payments), len(store.invoices))
	}
	if store.ticket.Estado != parking.TicketFinalizado {
		t.Errorf("estado = %q, want Finalizado", store.ticket.Estado)
	}
}

func TestCloseTicketDeclinedCharge(t *testing.T) {
	store := &mockStore{ticket: activeTicket("35.00")}
	_, r := newTestHandler(t, store)

	w := closeTicket(r, map[string]interface{}{"ticketId": 5, "cardToken": "tok_fail"})
	if w.Code != http.StatusPaymentRequired {
		t.Fatalf("status = %d, want 402 (body %s)", w.Code, w.Body.String())
	}
	if len(store.payments) != 1 {
		t.Fatalf("payments = %d, want exactly 1 failed payment", len(store.payments))
	}
	if store.payments[0].Status != billing.PaymentFailed {
		t.Errorf("payment status = %q, want Failed", store.payments[0].Status)
	}
	if len(store.invoices) != 0 {
		t.Errorf("declined charge must not create an invoice")
	}
	if store.ticket.Estado != parking.TicketActivo {
		t.Errorf("estado = %q, want still Activo", store.ticket.Estado)
	}
}

func TestCloseTicketSuccess(t *testing.T) {
	store := &mockStore{ticket: activeTicket("35.00")}
	_, r := newTestHandler(t, store)

	w := closeTicket(r, map[string]interface{}{"ticketId": 5, "cardToken": "tok_ok"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}

	if len(store.payments) != 1 {
		t.Fatalf("payments = %d, want 1", len(store.payments))
	}
	p := store.payments[0]
	if p.Status != billing.PaymentSucceeded {
		t.Errorf("payment status = %q, want Succeeded", p.Status)
	}
	if p.Amount != "35.00" {
		t.Errorf("amount = %q, want 35.00", p.Amount)
	}
	if p.CardToken != "tok_ok" {
		t.Errorf("cardToken = %q, want tok_ok", p.CardToken)
	}
	if p.UserID != nil {
		t.Errorf("payment userId must stay null, got %v", *p.UserID)
	}

	if len(store.invoices) != 1 {
		t.Fatalf("invoices = %d, want 1", len(store.invoices))
	}
	if store.invoices[0].PaymentID != p.ID {
		t.Errorf("invoice paymentId = %d, want %d", store.invoices[0].PaymentID, p.ID)
	}
	if store.ticket.Estado != parking.TicketFinalizado {
		t.Errorf("estado = %q, want Finalizado", store.ticket.Estado)
	}

	var resp struct {
		PDFPath string `json:"pdfPath"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	data, err := os.ReadFile(resp.PDFPath)
	if err != nil {
		t.Fatalf("read invoice pdf %q: %v", resp.PDFPath, err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("invoice at %q is not a pdf", resp.PDFPath)
	}
}

func TestCloseTicketAlreadyFinalized(t *testing.T) {
	store := &mockStore{ticket: activeTicket("35.00")}
	store.ticket.Estado = parking.TicketFinalizado
	_, r := newTestHandler(t, store)

	w := closeTicket(r, map[string]interface{}{"ticketId": 5, "cardToken": "tok_ok"})
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
	if len(store.payments) != 0 {
		t.Errorf("closed ticket must not be charged again")
	}
}

func TestCloseTicketCardSelection(t *testing.T) {
	clientID := uint(1)

	t.Run("card id not found", func(t *testing.T) {
		store := &mockStore{ticket: activeTicket("35.00")}
		_, r := newTestHandler(t, store)
		w := closeTicket(r, map[string]interface{}{"ticketId": 5, "cardId": 42})
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
	})

	t.Run("card id resolves", func(t *testing.T) {
		store := &mockStore{
			ticket: activeTicket("35.00"),
			cardsByID: map[uint]*cards.Card{
				42: {ID: 42, UserID: &clientID, Token: "tok_card42", Last4: "4242"},
			},
		}
		_, r := newTestHandler(t, store)
		w := closeTicket(r, map[string]interface{}{"ticketId": 5, "cardId": 42})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
		}
		if store.payments[0].CardToken != "tok_card42" {
			t.Errorf("charged token = %q, want tok_card42", store.payments[0].CardToken)
		}
	})

	t.Run("default card fallback", func(t *testing.T) {
		store := &mockStore{
			ticket:      activeTicket("35.00"),
			defaultCard: &cards.Card{ID: 7, UserID: &clientID, Token: "tok_default", Last4: "1111", IsDefault: true},
		}
		_, r := newTestHandler(t, store)
		w := closeTicket(r, map[string]interface{}{"ticketId": 5})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
		}
		if store.payments[0].CardToken != "tok_default" {
			t.Errorf("charged token = %q, want tok_default", store.payments[0].CardToken)
		}
	})

	t.Run("no card available", func(t *testing.T) {
		store := &mockStore{ticket: activeTicket("35.00")}
		_, r := newTestHandler(t, store)
		w := closeTicket(r, map[string]interface{}{"ticketId": 5})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("explicit token wins over card id", func(t *testing.T) {
		store := &mockStore{
			ticket: activeTicket("35.00"),
			cardsByID: map[uint]*cards.Card{
				42: {ID: 42, UserID: &clientID, Token: "tok_card42", Last4: "4242"},
			},
		}
		_, r := newTestHandler(t, store)
		w := closeTicket(r, map[string]interface{}{"ticketId": 5, "cardId": 42, "cardToken": "tok_adhoc"})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if store.payments[0].CardToken != "tok_adhoc" {
			t.Errorf("charged token = %q, want tok_adhoc", store.payments[0].CardToken)
		}
	})
}

func TestConcurrentCloseChargesOnce(t *testing.T) {
	store := &mockStore{ticket: activeTicket("35.00")}
	_, r := newTestHandler(t, store)

	const n = 4
	codes := make([]int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w := closeTicket(r, map[string]interface{}{"ticketId": 5, "cardToken": "tok_ok"})
			codes[i] = w.Code
		}(i)
	}
	wg.Wait()

	var ok, conflict int
	for _, code := range codes {
		switch code {
		case http.StatusOK:
			ok++
		case http.StatusConflict:
			conflict++
		default:
			t.Errorf("unexpected status %d", code)
		}
	}
	if ok != 1 || conflict != n-1 {
		t.Errorf("got %d successes and %d conflicts, want exactly 1 success", ok, conflict)
	}
	if len(store.payments) != 1 {
		t.Errorf("payments = %d, want exactly 1 for concurrent closes", len(store.payments))
	}
}
