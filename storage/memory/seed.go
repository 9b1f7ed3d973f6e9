package memory

import (
	"context"
	"time"

	"github.com/dealerdesk/dealerdesk.go/db/models"
	"github.com/dealerdesk/dealerdesk.go/lib/security"
)

// Seed loads the static fixtures served in degraded mode. Passwords are
// hashed here so the login path behaves exactly as it does against Postgres.
func (s *Store) Seed(ctx context.Context) error {
	users := []models.User{
		{Name: "Rajesh Kumar", Role: "Owner", Email: "rajesh@example.com", Mobile: "9876543210", Status: models.UserStatusActive},
		{Name: "Sunil Sharma", Role: "Manager", Email: "sunil@example.com", Status: models.UserStatusActive},
		{Name: "Priya Patel", Role: "Cashier", Email: "priya@example.com", Status: models.UserStatusActive},
	}
	hashed, err := security.HashPassword("password123")
	if err != nil {
		return err
	}
	for i := range users {
		users[i].Password = hashed
		if err := s.CreateUser(ctx, &users[i]); err != nil {
			return err
		}
	}

	vehicles := []models.Vehicle{
		{Name: "Hero Splendor+", Price: 75000, Description: "India's most popular motorcycle"},
		{Name: "Hero HF Deluxe", Price: 65000, Description: "Economical and reliable commuter"},
		{Name: "Hero Glamour", Price: 85000, Description: "Stylish and feature-rich"},
	}
	for i := range vehicles {
		if err := s.CreateVehicle(ctx, &vehicles[i]); err != nil {
			return err
		}
	}

	now := time.Now()
	tickets := []models.WorkshopTicket{
		{Vehicle: "Hero Splendor+ #8745", Customer: "Ramesh Kumar", Service: "Oil Change, Brake Adjustment", Status: models.TicketStatusInProgress, Date: now, EstimatedCompletion: now.Add(48 * time.Hour), Cost: 1500},
		{Vehicle: "Hero HF Deluxe #6532", Customer: "Sunil Sharma", Service: "Engine Tuning", Status: models.TicketStatusPending, Date: now, EstimatedCompletion: now.Add(72 * time.Hour), Cost: 2200},
	}
	for i := range tickets {
		if err := s.CreateTicket(ctx, &tickets[i]); err != nil {
			return err
		}
	}

	entries := []models.LedgerEntry{
		{Date: "23-03-25", Customer: "SUNIL 22 3 25", ReceiptNo: "11992", Model: "HF DELUXE", Content: "BIKE SALE", ChassisNo: "11897", Payment: "CASH", Cash: 65000, Total: 65000, Sale: 65000},
		{Date: "24-03-25", Customer: "RAMESH 23 3 25", ReceiptNo: "11991", Model: "SPL+", Content: "BIKE SALE", ChassisNo: "11896", Payment: "NAGAURA", Cash: 5000, IciciUpi: 10000, Total: 15000, Sale: 75000},
	}
	for i := range entries {
		if err := s.CreateLedgerEntry(ctx, &entries[i]); err != nil {
			return err
		}
	}
	return nil
}
