package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dealerdesk/dealerdesk.go/db/models"
	"github.com/dealerdesk/dealerdesk.go/storage"
)

// Store is the fixture-backed fallback used when Postgres is unreachable and
// by the test suites. Writes are kept in process memory and lost on restart,
// which is acceptable for the degraded mode it exists for.
type Store struct {
	mu sync.Mutex

	nextID   int64
	users    map[int64]*models.User
	otps     map[int64]*models.OTP
	vehicles map[int64]*models.Vehicle
	tickets  map[int64]*models.WorkshopTicket
	entries  map[int64]*models.LedgerEntry
}

var _ storage.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		users:    map[int64]*models.User{},
		otps:     map[int64]*models.OTP{},
		vehicles: map[int64]*models.Vehicle{},
		tickets:  map[int64]*models.WorkshopTicket{},
		entries:  map[int64]*models.LedgerEntry{},
	}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

// Users

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// email and non-empty mobile are unique, mirroring the Postgres indexes
	for _, u := range s.users {
		if u.Email == user.Email {
			return storage.ErrDuplicate
		}
		if user.Mobile != "" && u.Mobile == user.Mobile {
			return storage.ErrDuplicate
		}
	}
	user.ID = s.id()
	user.CreatedAt = time.Now()
	clone := *user
	s.users[user.ID] = &clone
	return nil
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (s *Store) GetUser(ctx context.Context, id int64) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (s *Store) findUser(match func(*models.User) bool) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if match(u) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findUser(func(u *models.User) bool { return u.Email == email })
}

func (s *Store) GetUserByMobile(ctx context.Context, mobile string) (*models.User, error) {
	return s.findUser(func(u *models.User) bool { return u.Mobile != "" && u.Mobile == mobile })
}

func (s *Store) GetUserByResetTokenHash(ctx context.Context, hash string) (*models.User, error) {
	return s.findUser(func(u *models.User) bool { return u.ResetTokenHash != "" && u.ResetTokenHash == hash })
}

func (s *Store) UpdateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.ID]; !ok {
		return storage.ErrNotFound
	}
	clone := *user
	s.users[user.ID] = &clone
	return nil
}

func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.users, id)
	return nil
}

// OTPs

func (s *Store) ReplaceOTP(ctx context.Context, otp *models.OTP) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, o := range s.otps {
		if o.Mobile == otp.Mobile {
			delete(s.otps, id)
		}
	}
	otp.ID = s.id()
	otp.CreatedAt = time.Now()
	clone := *otp
	s.otps[otp.ID] = &clone
	return nil
}

func (s *Store) GetOTP(ctx context.Context, mobile, code string) (*models.OTP, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.otps {
		if o.Mobile == mobile && o.Code == code {
			clone := *o
			return &clone, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *Store) DeleteOTP(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.otps[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.otps, id)
	return nil
}

// Vehicles

func (s *Store) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	vehicle.ID = s.id()
	vehicle.CreatedAt = time.Now()
	clone := *vehicle
	s.vehicles[vehicle.ID] = &clone
	return nil
}

func (s *Store) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	vehicles := make([]models.Vehicle, 0, len(s.vehicles))
	for _, v := range s.vehicles {
		vehicles = append(vehicles, *v)
	}
	sort.Slice(vehicles, func(i, j int) bool { return vehicles[i].ID < vehicles[j].ID })
	return vehicles, nil
}

func (s *Store) GetVehicle(ctx context.Context, id int64) (*models.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.vehicles[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	clone := *v
	return &clone, nil
}

func (s *Store) UpdateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.vehicles[vehicle.ID]; !ok {
		return storage.ErrNotFound
	}
	clone := *vehicle
	s.vehicles[vehicle.ID] = &clone
	return nil
}

func (s *Store) DeleteVehicle(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.vehicles[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.vehicles, id)
	return nil
}

// Workshop tickets

func (s *Store) CreateTicket(ctx context.Context, ticket *models.WorkshopTicket) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ticket.ID = s.id()
	ticket.CreatedAt = time.Now()
	if ticket.Date.IsZero() {
		ticket.Date = time.Now()
	}
	clone := *ticket
	s.tickets[ticket.ID] = &clone
	return nil
}

func (s *Store) ListTickets(ctx context.Context) ([]models.WorkshopTicket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tickets := make([]models.WorkshopTicket, 0, len(s.tickets))
	for _, t := range s.tickets {
		tickets = append(tickets, *t)
	}
	sort.Slice(tickets, func(i, j int) bool { return tickets[i].Date.After(tickets[j].Date) })
	return tickets, nil
}

func (s *Store) GetTicket(ctx context.Context, id int64) (*models.WorkshopTicket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tickets[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	clone := *t
	return &clone, nil
}

func (s *Store) UpdateTicket(ctx context.Context, ticket *models.WorkshopTicket) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tickets[ticket.ID]; !ok {
		return storage.ErrNotFound
	}
	clone := *ticket
	s.tickets[ticket.ID] = &clone
	return nil
}

func (s *Store) DeleteTicket(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tickets[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.tickets, id)
	return nil
}

// Ledger

func (s *Store) CreateLedgerEntry(ctx context.Context, entry *models.LedgerEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry.ID = s.id()
	entry.CreatedAt = time.Now()
	clone := *entry
	s.entries[entry.ID] = &clone
	return nil
}

func (s *Store) ListLedgerEntries(ctx context.Context) ([]models.LedgerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := make([]models.LedgerEntry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, *e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].ID > entries[j].ID
		}
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries, nil
}

func (s *Store) GetLedgerEntry(ctx context.Context, id int64) (*models.LedgerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	clone := *e
	return &clone, nil
}

func (s *Store) LatestLedgerEntry(ctx context.Context) (*models.LedgerEntry, error) {
	entries, err := s.ListLedgerEntries(ctx)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, storage.ErrNotFound
	}
	latest := entries[0]
	return &latest, nil
}

func (s *Store) UpdateLedgerEntry(ctx context.Context, entry *models.LedgerEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[entry.ID]; !ok {
		return storage.ErrNotFound
	}
	clone := *entry
	s.entries[entry.ID] = &clone
	return nil
}

func (s *Store) DeleteLedgerEntry(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.entries, id)
	return nil
}
