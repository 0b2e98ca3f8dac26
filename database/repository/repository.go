package repository

import (
	billRepo "hotelier/database/repository/bill"
	bookingRepo "hotelier/database/repository/booking"
	paymentRepo "hotelier/database/repository/payment"
)

// Re-export the BookingRepository interface and constructor.
type BookingRepository = bookingRepo.BookingRepository

var NewMongoBookingRepo = bookingRepo.NewMongoBookingRepo

// Re-export the BillRepository interface and constructor.
type BillRepository = billRepo.BillRepository

type BillSearchCriteria = billRepo.BillSearchCriteria

var NewMongoBillRepo = billRepo.NewMongoBillRepo

// Re-export the PaymentRepository interface and constructor.
type PaymentRepository = paymentRepo.PaymentRepository

var NewMongoPaymentRepo = paymentRepo.NewMongoPaymentRepo
