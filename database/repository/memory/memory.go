// Package memoryRepo holds mutex-guarded in-memory repositories. They mirror
// the mongo implementations closely enough to back service and handler tests.
package memoryRepo

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	billRepo "hotelier/database/repository/bill"
	"hotelier/models"
	"hotelier/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrUnavailable is returned by every call on a repository marked Broken.
var ErrUnavailable = errors.New("storage unavailable")

type BookingRepo struct {
	mu       sync.Mutex
	bookings map[string]models.Booking
	Broken   bool
}

func NewBookingRepo() *BookingRepo {
	return &BookingRepo{bookings: make(map[string]models.Booking)}
}

func (r *BookingRepo) Create(_ context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Broken {
		return ErrUnavailable
	}
	r.bookings[booking.ID] = cloneBooking(*booking)
	return nil
}

func (r *BookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Broken {
		return nil, ErrUnavailable
	}
	b, ok := r.bookings[id]
	if !ok {
		return nil, utils.NewNotFound("booking", id)
	}
	b = cloneBooking(b)
	return &b, nil
}

func (r *BookingRepo) List(_ context.Context, userID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Broken {
		return nil, ErrUnavailable
	}
	out := []models.Booking{}
	for _, b := range r.bookings {
		if userID == "" || b.UserID == userID {
			out = append(out, cloneBooking(b))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *BookingRepo) Update(_ context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Broken {
		return ErrUnavailable
	}
	if _, ok := r.bookings[booking.ID]; !ok {
		return utils.NewNotFound("booking", booking.ID)
	}
	r.bookings[booking.ID] = cloneBooking(*booking)
	return nil
}

func (r *BookingRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Broken {
		return ErrUnavailable
	}
	if _, ok := r.bookings[id]; !ok {
		return utils.NewNotFound("booking", id)
	}
	delete(r.bookings, id)
	return nil
}

func cloneBooking(b models.Booking) models.Booking {
	b.Rooms = append([]models.RoomStayLineItem(nil), b.Rooms...)
	return b
}

type BillRepo struct {
	mu     sync.Mutex
	bills  map[string]models.Bill
	Broken bool
}

func NewBillRepo() *BillRepo {
	return &BillRepo{bills: make(map[string]models.Bill)}
}

func (r *BillRepo) Create(_ context.Context, bill *models.Bill) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Broken {
		return ErrUnavailable
	}
	r.bills[bill.ID] = *bill
	return nil
}

func (r *BillRepo) GetByID(_ context.Context, id string) (*models.Bill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Broken {
		return nil, ErrUnavailable
	}
	b, ok := r.bills[id]
	if !ok {
		return nil, utils.NewNotFound("bill", id)
	}
	return &b, nil
}

func (r *BillRepo) List(_ context.Context, criteria billRepo.BillSearchCriteria) ([]models.Bill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Broken {
		return nil, ErrUnavailable
	}
	out := []models.Bill{}
	for _, b := range r.bills {
		if criteria.BookingID != "" && b.BookingID != criteria.BookingID {
			continue
		}
		if criteria.UserID != "" && b.UserID != criteria.UserID {
			continue
		}
		out = append(out, b)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// UpdateFields applies fields by bson name, the same way the $set in the
// mongo repository does.
func (r *BillRepo) UpdateFields(_ context.Context, id string, fields bson.M, expectedVersion *int64) (*models.Bill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Broken {
		return nil, ErrUnavailable
	}
	current, ok := r.bills[id]
	if !ok {
		return nil, utils.NewNotFound("bill", id)
	}
	if expectedVersion != nil && current.Version != *expectedVersion {
		return nil, utils.NewConflict("bill " + id + " was modified concurrently")
	}

	raw, err := bson.Marshal(current)
	if err != nil {
		return nil, err
	}
	doc := bson.M{}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	for k, v := range fields {
		doc[k] = v
	}
	doc["updatedAt"] = time.Now().UTC()
	doc["version"] = current.Version + 1

	raw, err = bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var updated models.Bill
	if err := bson.Unmarshal(raw, &updated); err != nil {
		return nil, err
	}
	r.bills[id] = updated
	return &updated, nil
}

func (r *BillRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Broken {
		return ErrUnavailable
	}
	if _, ok := r.bills[id]; !ok {
		return utils.NewNotFound("bill", id)
	}
	delete(r.bills, id)
	return nil
}

// Len reports how many bills are stored.
func (r *BillRepo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bills)
}

type PaymentRepo struct {
	mu       sync.Mutex
	payments map[string]models.Payment
	Broken   bool
}

func NewPaymentRepo() *PaymentRepo {
	return &PaymentRepo{payments: make(map[string]models.Payment)}
}

func (r *PaymentRepo) InsertIfAbsent(_ context.Context, payment *models.Payment) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Broken {
		return false, ErrUnavailable
	}
	if _, ok := r.payments[payment.PaymentIntentID]; ok {
		return false, nil
	}
	r.payments[payment.PaymentIntentID] = *payment
	return true, nil
}

func (r *PaymentRepo) GetByIntentID(_ context.Context, intentID string) (*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Broken {
		return nil, ErrUnavailable
	}
	p, ok := r.payments[intentID]
	if !ok {
		return nil, utils.NewNotFound("payment", intentID)
	}
	return &p, nil
}

func (r *PaymentRepo) List(_ context.Context) ([]models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Broken {
		return nil, ErrUnavailable
	}
	out := []models.Payment{}
	for _, p := range r.payments {
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// Len reports how many payments are stored.
func (r *PaymentRepo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.payments)
}
