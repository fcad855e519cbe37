package stripe

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/stripe/stripe-go/v72"
	"github.com/zeroshade/ferryapi/internal"
	"github.com/zeroshade/ferryapi/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}

	gdb, err := gorm.Open("postgres", db)
	if err != nil {
		t.Fatalf("gorm open error: %v", err)
	}
	gdb.LogMode(false)
	return gdb, mock
}

func stripeRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	AddStripeRoutes(router.Group("/api/:operatorid"), db)
	return router
}

func bookingRows(status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"code", "operator_id", "trip_id", "name", "email", "seats", "status", "amount"}).
		AddRow("fgCODE1", "op1", 7, "Aisha Rasheed", "aisha@example.mv", 2, status, 75.0)
}

func expectConfirmQueries(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "bookings"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT (.+) FROM "trips"`).WillReturnRows(
		sqlmock.NewRows([]string{"id", "operator_id", "route_id", "vessel_id", "travel_date", "departure", "arrival", "status", "fare_mult"}).
			AddRow(7, "op1", 3, 5, time.Now(), "07:30", "08:00", types.TripScheduled, 1.5))
	mock.ExpectQuery(`SELECT (.+) FROM "routes"`).WillReturnRows(
		sqlmock.NewRows([]string{"id", "operator_id", "name", "base_fare", "status"}).
			AddRow(3, "op1", "Lagoon Express", 25.0, types.RouteActive))
	mock.ExpectQuery(`SELECT (.+) FROM "operator_configs"`).WillReturnRows(
		sqlmock.NewRows([]string{"id", "email_from", "email_name", "send_sms"}).
			AddRow("op1", "bookings@atollferries.mv", "Atoll Ferries", false))
}

func captureMail(t *testing.T) (client *string, notify *string) {
	t.Helper()
	var gotClient, gotNotify string

	clientMail = func(apiKey, host, email string, b *types.Booking, conf *types.OperatorConfig) (string, error) {
		gotClient = email + ":" + b.Code
		return "", nil
	}
	notifyMail = func(apiKey string, conf *types.OperatorConfig, b *types.Booking, desc string) error {
		gotNotify = desc
		return nil
	}
	t.Cleanup(func() {
		clientMail = internal.SendClientMail
		notifyMail = internal.SendNotifyEmail
	})
	return &gotClient, &gotNotify
}

func TestWebhookPaymentConfirmsAndEmailsPassenger(t *testing.T) {
	gdb, mock := setupMockDB(t)
	defer gdb.Close()

	mock.ExpectQuery(`SELECT (.+) FROM "bookings"`).WillReturnRows(bookingRows(types.BookingPending))
	expectConfirmQueries(mock)

	gotClient, gotNotify := captureMail(t)

	body := `{"type": "payment_intent.succeeded", "data": {"object": {"id": "pi_123", "metadata": {"booking": "fgCODE1"}}}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/op1/stripe/webhook", strings.NewReader(body))
	stripeRouter(gdb).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if *gotClient != "aisha@example.mv:fgCODE1" {
		t.Fatalf("passenger email not sent, got %q", *gotClient)
	}
	if !strings.Contains(*gotNotify, "Lagoon Express") {
		t.Fatalf("operator notify missing trip description, got %q", *gotNotify)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestWebhookCheckoutSessionCompleted(t *testing.T) {
	gdb, mock := setupMockDB(t)
	defer gdb.Close()

	mock.ExpectQuery(`SELECT (.+) FROM "bookings"`).WillReturnRows(bookingRows(types.BookingPending))
	expectConfirmQueries(mock)

	gotClient, _ := captureMail(t)

	body := `{"type": "checkout.session.completed", "data": {"object": {"id": "cs_1", "payment_intent": "pi_123"}}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/op1/stripe/webhook", strings.NewReader(body))
	stripeRouter(gdb).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if *gotClient != "aisha@example.mv:fgCODE1" {
		t.Fatalf("passenger email not sent, got %q", *gotClient)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestWebhookSkipsAlreadyConfirmed(t *testing.T) {
	gdb, mock := setupMockDB(t)
	defer gdb.Close()

	mock.ExpectQuery(`SELECT (.+) FROM "bookings"`).WillReturnRows(bookingRows(types.BookingConfirmed))

	gotClient, _ := captureMail(t)

	body := `{"type": "payment_intent.succeeded", "data": {"object": {"id": "pi_123", "metadata": {"booking": "fgCODE1"}}}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/op1/stripe/webhook", strings.NewReader(body))
	stripeRouter(gdb).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if *gotClient != "" {
		t.Fatalf("duplicate event should not re-send email, got %q", *gotClient)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateSessionCustomerCreateFails(t *testing.T) {
	gdb, mock := setupMockDB(t)
	defer gdb.Close()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"type": "invalid_request_error", "message": "bad key"}}`))
	}))
	defer srv.Close()

	stripe.Key = "sk_test_123"
	stripe.SetBackend(stripe.APIBackend,
		stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{URL: stripe.String(srv.URL)}))

	mock.ExpectQuery(`SELECT (.+) FROM "bookings"`).WillReturnRows(bookingRows(types.BookingPending))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/op1/stripe", strings.NewReader(`{"bookingCode": "fgCODE1"}`))
	stripeRouter(gdb).ServeHTTP(w, req)

	if w.Code != http.StatusFailedDependency {
		t.Fatalf("expected 424 when the customer cannot be created, got %d: %s", w.Code, w.Body.String())
	}
}
