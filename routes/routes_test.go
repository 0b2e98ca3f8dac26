package routes

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	memoryRepo "hotelier/database/repository/memory"
	"hotelier/handlers"
	"hotelier/middleware"
	"hotelier/models"
	"hotelier/services/billing"
	"hotelier/services/booking"
	"hotelier/services/payment"
	"hotelier/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/suite"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

const (
	jwtSecret     = "routes-test-jwt"
	webhookSecret = "whsec_routes_test"
)

type stubIntents struct{ calls int }

func (s *stubIntents) New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	s.calls++
	return &stripe.PaymentIntent{ID: fmt.Sprintf("pi_%d", s.calls), ClientSecret: "cs_secret"}, nil
}

type stubHealth struct{ ok bool }

func (s stubHealth) Check(context.Context) utils.HealthStatus {
	return utils.HealthStatus{Mongo: s.ok, CheckedAt: time.Now()}
}

type APISuite struct {
	suite.Suite
	router   *gin.Engine
	payments *memoryRepo.PaymentRepo
	intents  *stubIntents
	user     string
	admin    string
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}

func (s *APISuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	bookingStore := memoryRepo.NewBookingRepo()
	billStore := memoryRepo.NewBillRepo()
	s.payments = memoryRepo.NewPaymentRepo()
	s.intents = &stubIntents{}

	bookingSvc := booking.NewBookingService(bookingStore, logger)
	billSvc := billing.NewBillService(billStore, bookingStore, "usd", logger)
	gateway := &payment.StripeGateway{Intents: s.intents, Bills: billSvc, Logger: logger}
	listener := &payment.WebhookListener{
		Payments:  s.payments,
		Bills:     billSvc,
		Secret:    webhookSecret,
		Tolerance: 5 * time.Minute,
		Logger:    logger,
	}

	bookingHandler := handlers.NewBookingHandler(bookingSvc, logger)
	billHandler := handlers.NewBillHandler(billSvc, logger)
	paymentHandler := handlers.NewPaymentHandler(gateway, payment.NewRecords(s.payments), logger)
	webhookHandler := handlers.NewWebhookHandler(listener, logger)

	hb := &handlers.HandlerBundle{
		AuthMiddleware:             middleware.JWTAuthMiddleware(jwtSecret, logger),
		HealthHandler:              handlers.HealthHandler(stubHealth{ok: true}),
		QuoteHandler:               bookingHandler.QuoteHandler,
		CreateBookingHandler:       bookingHandler.CreateBookingHandler,
		ListBookingsHandler:        bookingHandler.ListBookingsHandler,
		GetBookingHandler:          bookingHandler.GetBookingHandler,
		UpdateBookingHandler:       bookingHandler.UpdateBookingHandler,
		DeleteBookingHandler:       bookingHandler.DeleteBookingHandler,
		CreateBillHandler:          billHandler.CreateBillHandler,
		ListBillsHandler:           billHandler.ListBillsHandler,
		GetBillHandler:             billHandler.GetBillHandler,
		UpdateBillHandler:          billHandler.UpdateBillHandler,
		DeleteBillHandler:          billHandler.DeleteBillHandler,
		BillReceiptHandler:         billHandler.ReceiptHandler,
		CreatePaymentIntentHandler: paymentHandler.CreatePaymentIntentHandler,
		ListPaymentsHandler:        paymentHandler.ListPaymentsHandler,
		GetPaymentHandler:          paymentHandler.GetPaymentHandler,
		StripeWebhookHandler:       webhookHandler.StripeWebhookHandler,
	}

	s.router = gin.New()
	RegisterRoutes(s.router, hb)

	s.user = s.token("user-1", "user")
	s.admin = s.token("admin-1", "admin")
}

func (s *APISuite) token(sub, role string) string {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": sub, "role": role}).SignedString([]byte(jwtSecret))
	s.Require().NoError(err)
	return signed
}

func (s *APISuite) request(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *APISuite) decode(w *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), v))
}

func (s *APISuite) createBooking() models.Booking {
	checkIn := time.Date(2026, 7, 1, 14, 0, 0, 0, time.UTC)
	w := s.request(http.MethodPost, "/api/bookings", s.user, gin.H{
		"guestName":    "Ada Lovelace",
		"nationalId":   "NID-42",
		"roomId":       "room-101",
		"checkIn":      checkIn,
		"checkOut":     checkIn.Add(48 * time.Hour),
		"extraCharges": 100,
		"discount":     50,
		"rooms": []gin.H{
			{"name": "Deluxe", "stayLength": "2 nights", "roomRate": 300, "taxes": 45, "resortFee": 25, "total": 1},
			{"name": "Standard", "stayLength": "2 nights", "roomRate": 350, "taxes": 50, "resortFee": 25},
		},
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var b models.Booking
	s.decode(w, &b)
	return b
}

func signWebhook(payload []byte) string {
	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(webhookSecret))
	mac.Write([]byte(fmt.Sprintf("%d.", ts)))
	mac.Write(payload)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func (s *APISuite) webhook(payload []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/stripe", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", signature)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *APISuite) TestHealth() {
	w := s.request(http.MethodGet, "/health", "", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *APISuite) TestRoutesRequireAuth() {
	s.Equal(http.StatusUnauthorized, s.request(http.MethodGet, "/api/bookings", "", nil).Code)
	s.Equal(http.StatusUnauthorized, s.request(http.MethodGet, "/api/bills", "", nil).Code)
	s.Equal(http.StatusUnauthorized, s.request(http.MethodPost, "/api/payments/intent", "", nil).Code)
}

func (s *APISuite) TestQuote() {
	w := s.request(http.MethodPost, "/api/bookings/quote", s.user, gin.H{
		"rooms": []gin.H{{"name": "Deluxe", "stayLength": "2 nights", "roomRate": 300, "taxes": 45, "resortFee": 25}},
	})
	s.Require().Equal(http.StatusOK, w.Code)
	var priced models.PricedReservation
	s.decode(w, &priced)
	s.Equal(370.0, priced.GrandTotal)
}

func (s *APISuite) TestBookingValidationIsFieldSpecific() {
	w := s.request(http.MethodPost, "/api/bookings", s.user, gin.H{"roomId": "room-1"})
	s.Equal(http.StatusBadRequest, w.Code)
	var body utils.ErrorResponse
	s.decode(w, &body)
	s.Equal("guestName", body.Field)
}

func (s *APISuite) TestBookingOwnership() {
	b := s.createBooking()
	s.Equal(845.0, b.GrandTotal)

	other := s.token("user-2", "user")
	s.Equal(http.StatusNotFound, s.request(http.MethodGet, "/api/bookings/"+b.ID, other, nil).Code)
	s.Equal(http.StatusOK, s.request(http.MethodGet, "/api/bookings/"+b.ID, s.admin, nil).Code)
	s.Equal(http.StatusForbidden, s.request(http.MethodDelete, "/api/bookings/"+b.ID, s.user, nil).Code)
	s.Equal(http.StatusOK, s.request(http.MethodDelete, "/api/bookings/"+b.ID, s.admin, nil).Code)
}

func (s *APISuite) TestBillLifecycle() {
	b := s.createBooking()

	w := s.request(http.MethodPost, "/api/bills", s.user, gin.H{"bookingId": b.ID})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var bill models.Bill
	s.decode(w, &bill)
	s.Equal(845.0, bill.TotalAmount)

	s.Equal(http.StatusForbidden, s.request(http.MethodPatch, "/api/bills/"+bill.ID, s.user, gin.H{"guestName": "x"}).Code)

	w = s.request(http.MethodPatch, "/api/bills/"+bill.ID, s.admin, gin.H{"guestName": "A. Lovelace", "version": 1})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	w = s.request(http.MethodPatch, "/api/bills/"+bill.ID, s.admin, gin.H{"guestName": "Late", "version": 1})
	s.Equal(http.StatusConflict, w.Code)

	s.Equal(http.StatusOK, s.request(http.MethodDelete, "/api/bills/"+bill.ID, s.admin, nil).Code)
	s.Equal(http.StatusNotFound, s.request(http.MethodGet, "/api/bills/"+bill.ID, s.user, nil).Code)
	s.Equal(http.StatusNotFound, s.request(http.MethodDelete, "/api/bills/"+bill.ID, s.admin, nil).Code)
}

func (s *APISuite) TestBillReceipt() {
	b := s.createBooking()
	w := s.request(http.MethodPost, "/api/bills", s.user, gin.H{"bookingId": b.ID})
	s.Require().Equal(http.StatusCreated, w.Code)
	var bill models.Bill
	s.decode(w, &bill)

	w = s.request(http.MethodGet, "/api/bills/"+bill.ID+"/receipt", s.user, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("application/pdf", w.Header().Get("Content-Type"))
	s.True(bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))

	s.Equal(http.StatusNotFound, s.request(http.MethodGet, "/api/bills/missing/receipt", s.user, nil).Code)
}

func (s *APISuite) TestBillsAreScopedToTheBookingOwner() {
	b := s.createBooking()
	other := s.token("user-2", "user")

	s.Equal(http.StatusNotFound, s.request(http.MethodPost, "/api/bills", other, gin.H{"bookingId": b.ID}).Code)

	w := s.request(http.MethodPost, "/api/bills", s.user, gin.H{"bookingId": b.ID})
	s.Require().Equal(http.StatusCreated, w.Code)
	var bill models.Bill
	s.decode(w, &bill)
	s.Equal("user-1", bill.UserID)

	s.Equal(http.StatusNotFound, s.request(http.MethodGet, "/api/bills/"+bill.ID, other, nil).Code)
	s.Equal(http.StatusNotFound, s.request(http.MethodGet, "/api/bills/"+bill.ID+"/receipt", other, nil).Code)
	s.Equal(http.StatusNotFound, s.request(http.MethodPost, "/api/payments/intent", other, gin.H{"billId": bill.ID}).Code)
	s.Zero(s.intents.calls)

	var listed []models.Bill
	s.decode(s.request(http.MethodGet, "/api/bills", other, nil), &listed)
	s.Empty(listed)
	s.decode(s.request(http.MethodGet, "/api/bills", s.user, nil), &listed)
	s.Len(listed, 1)
	s.decode(s.request(http.MethodGet, "/api/bills", s.admin, nil), &listed)
	s.Len(listed, 1)

	s.Equal(http.StatusOK, s.request(http.MethodGet, "/api/bills/"+bill.ID, s.admin, nil).Code)
}

func (s *APISuite) TestBillForMissingBooking() {
	w := s.request(http.MethodPost, "/api/bills", s.user, gin.H{"bookingId": "nope"})
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *APISuite) TestPaymentFlow() {
	b := s.createBooking()
	w := s.request(http.MethodPost, "/api/bills", s.user, gin.H{"bookingId": b.ID})
	s.Require().Equal(http.StatusCreated, w.Code)
	var bill models.Bill
	s.decode(w, &bill)

	w = s.request(http.MethodPost, "/api/payments/intent", s.user, gin.H{"billId": bill.ID})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var intent models.PaymentIntentResult
	s.decode(w, &intent)
	s.Equal(int64(84500), intent.Amount)
	s.Equal("cs_secret", intent.ClientSecret)

	payload := []byte(fmt.Sprintf(`{"id":"evt_1","type":"payment_intent.succeeded","data":{"object":{"id":%q,"amount":84500,"amount_received":84500,"currency":"usd","status":"succeeded","metadata":{"billId":%q,"nationalId":"NID-42"}}}}`, intent.PaymentIntentID, bill.ID))
	s.Equal(http.StatusOK, s.webhook(payload, signWebhook(payload)).Code)
	s.Equal(http.StatusOK, s.webhook(payload, signWebhook(payload)).Code)
	s.Equal(1, s.payments.Len())

	w = s.request(http.MethodGet, "/api/bills/"+bill.ID, s.user, nil)
	s.decode(w, &bill)
	s.Equal(models.BillPaid, bill.Status)

	s.Equal(http.StatusForbidden, s.request(http.MethodGet, "/api/payments", s.user, nil).Code)
	w = s.request(http.MethodGet, "/api/payments/"+intent.PaymentIntentID, s.admin, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var p models.Payment
	s.decode(w, &p)
	s.Equal("NID-42", p.NationalID)

	s.Equal(http.StatusNotFound, s.request(http.MethodGet, "/api/payments/pi_missing", s.admin, nil).Code)

	// A second intent for a settled bill is refused.
	s.Equal(http.StatusConflict, s.request(http.MethodPost, "/api/payments/intent", s.user, gin.H{"billId": bill.ID}).Code)
}

func (s *APISuite) TestIntentWithZeroAmount() {
	w := s.request(http.MethodPost, "/api/payments/intent", s.user, gin.H{"amount": 0, "currency": "usd"})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Zero(s.intents.calls)
}

func (s *APISuite) TestWebhookRejectsBadSignature() {
	payload := []byte(`{"id":"evt_1","type":"payment_intent.succeeded","data":{"object":{"id":"pi_1","amount":100}}}`)
	w := s.webhook(payload, "t=1,v1=deadbeef")
	s.Equal(http.StatusBadRequest, w.Code)
	s.Zero(s.payments.Len())

	var body utils.ErrorResponse
	s.decode(w, &body)
	s.Equal("invalid webhook payload", body.Message)
}

func (s *APISuite) TestWebhookStorageFailureIsRetried() {
	s.payments.Broken = true
	payload := []byte(`{"id":"evt_1","type":"payment_intent.succeeded","data":{"object":{"id":"pi_1","amount":100,"currency":"usd"}}}`)
	w := s.webhook(payload, signWebhook(payload))
	s.Equal(http.StatusInternalServerError, w.Code)
}
