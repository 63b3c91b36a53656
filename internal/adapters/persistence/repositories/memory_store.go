package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"parkhub-backend/internal/adapters/persistence/models"
	"parkhub-backend/internal/core/domain"
)

// MemoryStore is an in-memory implementation of every repository
// interface: ordered collections plus per-entity auto-increment
// counters. It backs the service tests and the STORE_DRIVER=memory mode
// so the server can run without a database. Reads return copies, so a
// caller always works against a consistent snapshot.
type MemoryStore struct {
	mu sync.RWMutex

	owners        []models.Owner
	vehicles      []models.Vehicle
	passes        []models.ParkingPass
	transactions  []models.ParkingTransaction
	notifications []models.Notification
	users         []models.User
	refreshTokens []models.RefreshToken

	nextOwnerID        uint
	nextVehicleID      uint
	nextPassID         uint
	nextTransactionID  uint
	nextNotificationID uint
	nextUserID         uint
	nextTokenID        uint
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextOwnerID:        1,
		nextVehicleID:      1,
		nextPassID:         1,
		nextTransactionID:  1,
		nextNotificationID: 1,
		nextUserID:         1,
		nextTokenID:        1,
	}
}

// ============================================================
// OwnerRepository
// ============================================================

func (s *MemoryStore) Create(ctx context.Context, owner *models.Owner) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	owner.ID = s.nextOwnerID
	s.nextOwnerID++
	if owner.CreatedAt.IsZero() {
		owner.CreatedAt = time.Now()
	}
	s.owners = append(s.owners, *owner)
	return nil
}

func (s *MemoryStore) GetByName(ctx context.Context, name string) (*models.Owner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.owners {
		if strings.EqualFold(s.owners[i].Name, name) {
			owner := s.owners[i]
			return &owner, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *MemoryStore) List(ctx context.Context) ([]models.Owner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	owners := append([]models.Owner(nil), s.owners...)
	sort.SliceStable(owners, func(i, j int) bool { return owners[i].Name < owners[j].Name })
	return owners, nil
}

// ============================================================
// VehicleRepository (method names prefixed to avoid clashing with the
// owner collection, wired through the vehicles() view below)
// ============================================================

// Vehicles returns the store as a VehicleRepository
func (s *MemoryStore) Vehicles() VehicleRepository { return (*memoryVehicles)(s) }

// Owners returns the store as an OwnerRepository
func (s *MemoryStore) Owners() OwnerRepository { return s }

// Passes returns the store as a PassRepository
func (s *MemoryStore) Passes() PassRepository { return (*memoryPasses)(s) }

// Transactions returns the store as a TransactionRepository
func (s *MemoryStore) Transactions() TransactionRepository { return (*memoryTransactions)(s) }

// Notifications returns the store as a NotificationRepository
func (s *MemoryStore) Notifications() NotificationRepository { return (*memoryNotifications)(s) }

// Users returns the store as a UserRepository
func (s *MemoryStore) Users() UserRepository { return (*memoryUsers)(s) }

// RefreshTokens returns the store as a RefreshTokenRepository
func (s *MemoryStore) RefreshTokens() RefreshTokenRepository { return (*memoryRefreshTokens)(s) }

type memoryVehicles MemoryStore

func (s *memoryVehicles) Create(ctx context.Context, vehicle *models.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	vehicle.ID = s.nextVehicleID
	s.nextVehicleID++
	if vehicle.CreatedAt.IsZero() {
		vehicle.CreatedAt = time.Now()
	}
	stored := *vehicle
	stored.Owner = nil
	s.vehicles = append(s.vehicles, stored)
	return nil
}

func (s *memoryVehicles) GetByNumber(ctx context.Context, number string) (*models.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.vehicles {
		if s.vehicles[i].VehicleNumber == number {
			vehicle := s.vehicles[i]
			vehicle.Owner = (*MemoryStore)(s).ownerByID(vehicle.OwnerID)
			return &vehicle, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *memoryVehicles) List(ctx context.Context) ([]models.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	vehicles := make([]models.Vehicle, len(s.vehicles))
	for i := range s.vehicles {
		vehicles[i] = s.vehicles[i]
		vehicles[i].Owner = (*MemoryStore)(s).ownerByID(vehicles[i].OwnerID)
	}
	sort.SliceStable(vehicles, func(i, j int) bool {
		return vehicles[i].VehicleNumber < vehicles[j].VehicleNumber
	})
	return vehicles, nil
}

// ownerByID must be called with the lock held
func (s *MemoryStore) ownerByID(id uint) *models.Owner {
	for i := range s.owners {
		if s.owners[i].ID == id {
			owner := s.owners[i]
			return &owner
		}
	}
	return nil
}

// vehicleByID must be called with the lock held
func (s *MemoryStore) vehicleByID(id uint) *models.Vehicle {
	for i := range s.vehicles {
		if s.vehicles[i].ID == id {
			vehicle := s.vehicles[i]
			vehicle.Owner = s.ownerByID(vehicle.OwnerID)
			return &vehicle
		}
	}
	return nil
}

// ============================================================
// PassRepository
// ============================================================

type memoryPasses MemoryStore

func (s *memoryPasses) Create(ctx context.Context, pass *models.ParkingPass) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	pass.ID = s.nextPassID
	s.nextPassID++
	if pass.CreatedAt.IsZero() {
		pass.CreatedAt = time.Now()
	}
	stored := *pass
	stored.Vehicle = nil
	s.passes = append(s.passes, stored)
	return nil
}

func (s *memoryPasses) HasActive(ctx context.Context, vehicleID uint, now time.Time) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.passes {
		if s.passes[i].VehicleID == vehicleID && s.passes[i].ExpiryDate.After(now) {
			return true, nil
		}
	}
	return false, nil
}

func (s *memoryPasses) CountActive(ctx context.Context, now time.Time) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var count int64
	for i := range s.passes {
		if s.passes[i].ExpiryDate.After(now) {
			count++
		}
	}
	return count, nil
}

func (s *memoryPasses) List(ctx context.Context) ([]models.ParkingPass, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	passes := (*MemoryStore)(s).passSnapshot(func(p *models.ParkingPass) bool { return true })
	sort.SliceStable(passes, func(i, j int) bool {
		return passes[i].IssueDate.After(passes[j].IssueDate)
	})
	return passes, nil
}

func (s *memoryPasses) ListExpiringBetween(ctx context.Context, from, to time.Time) ([]models.ParkingPass, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return (*MemoryStore)(s).passSnapshot(func(p *models.ParkingPass) bool {
		return p.ExpiryDate.After(from) && !p.ExpiryDate.After(to)
	}), nil
}

func (s *memoryPasses) ListActiveExpiredBefore(ctx context.Context, now time.Time) ([]models.ParkingPass, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return (*MemoryStore)(s).passSnapshot(func(p *models.ParkingPass) bool {
		return p.IsActive && p.ExpiryDate.Before(now)
	}), nil
}

func (s *memoryPasses) Deactivate(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.passes {
		if s.passes[i].ID == id {
			s.passes[i].IsActive = false
			return nil
		}
	}
	return domain.ErrNotFound
}

// passSnapshot copies matching passes with vehicles attached, in
// insertion order. Must be called with the lock held.
func (s *MemoryStore) passSnapshot(match func(*models.ParkingPass) bool) []models.ParkingPass {
	passes := make([]models.ParkingPass, 0)
	for i := range s.passes {
		if match(&s.passes[i]) {
			pass := s.passes[i]
			pass.Vehicle = s.vehicleByID(pass.VehicleID)
			passes = append(passes, pass)
		}
	}
	return passes
}

// ============================================================
// TransactionRepository
// ============================================================

type memoryTransactions MemoryStore

func (s *memoryTransactions) Create(ctx context.Context, tx *models.ParkingTransaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx.ID = s.nextTransactionID
	s.nextTransactionID++
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now()
	}
	stored := *tx
	stored.Vehicle = nil
	s.transactions = append(s.transactions, stored)
	return nil
}

func (s *memoryTransactions) Update(ctx context.Context, tx *models.ParkingTransaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.transactions {
		if s.transactions[i].ID == tx.ID {
			s.transactions[i].ExitTime = tx.ExitTime
			s.transactions[i].FeesPaid = tx.FeesPaid
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *memoryTransactions) GetOpenByVehicle(ctx context.Context, vehicleID uint) (*models.ParkingTransaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.transactions {
		if s.transactions[i].VehicleID == vehicleID && s.transactions[i].ExitTime == nil {
			tx := s.transactions[i]
			tx.Vehicle = (*MemoryStore)(s).vehicleByID(tx.VehicleID)
			return &tx, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *memoryTransactions) List(ctx context.Context, limit int) ([]models.ParkingTransaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	txs := make([]models.ParkingTransaction, len(s.transactions))
	for i := range s.transactions {
		txs[i] = s.transactions[i]
		txs[i].Vehicle = (*MemoryStore)(s).vehicleByID(txs[i].VehicleID)
	}
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].EntryTime.After(txs[j].EntryTime)
	})
	if limit > 0 && limit < len(txs) {
		txs = txs[:limit]
	}
	return txs, nil
}

func (s *memoryTransactions) CountOpen(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var count int64
	for i := range s.transactions {
		if s.transactions[i].ExitTime == nil {
			count++
		}
	}
	return count, nil
}

func (s *memoryTransactions) CountOpenBikes(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var count int64
	for i := range s.transactions {
		if s.transactions[i].ExitTime != nil {
			continue
		}
		if v := (*MemoryStore)(s).vehicleByID(s.transactions[i].VehicleID); v != nil &&
			v.VehicleType == string(domain.VehicleTypeBike) {
			count++
		}
	}
	return count, nil
}

func (s *memoryTransactions) CountDistinctVehiclesOnDate(ctx context.Context, day time.Time) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[string]struct{})
	for i := range s.transactions {
		if !domain.SameLocalDay(day, s.transactions[i].EntryTime) {
			continue
		}
		if v := (*MemoryStore)(s).vehicleByID(s.transactions[i].VehicleID); v != nil {
			seen[v.VehicleNumber] = struct{}{}
		}
	}
	return int64(len(seen)), nil
}

func (s *memoryTransactions) SumFeesOnDate(ctx context.Context, day time.Time) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total float64
	for i := range s.transactions {
		if !domain.SameLocalDay(day, s.transactions[i].EntryTime) {
			continue
		}
		if fees := s.transactions[i].FeesPaid; fees != nil {
			total += *fees
		}
	}
	return total, nil
}

// ============================================================
// NotificationRepository
// ============================================================

type memoryNotifications MemoryStore

func (s *memoryNotifications) Create(ctx context.Context, n *models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n.ID = s.nextNotificationID
	s.nextNotificationID++
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	stored := *n
	stored.Recipient = nil
	stored.Pass = nil
	s.notifications = append(s.notifications, stored)
	return nil
}

func (s *memoryNotifications) ExistsForPass(ctx context.Context, passID uint, messagePrefix string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.notifications {
		if s.notifications[i].PassID == passID &&
			strings.HasPrefix(s.notifications[i].Message, messagePrefix) {
			return true, nil
		}
	}
	return false, nil
}

func (s *memoryNotifications) List(ctx context.Context, limit int) ([]models.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	notifications := append([]models.Notification(nil), s.notifications...)
	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	if limit > 0 && limit < len(notifications) {
		notifications = notifications[:limit]
	}
	return notifications, nil
}

// ============================================================
// UserRepository
// ============================================================

type memoryUsers MemoryStore

func (s *memoryUsers) Create(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.ID = s.nextUserID
	s.nextUserID++
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	s.users = append(s.users, *user)
	return nil
}

func (s *memoryUsers) GetByID(ctx context.Context, id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].ID == id {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *memoryUsers) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].Username == username {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *memoryUsers) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := s.GetByUsername(ctx, username)
	if err == domain.ErrNotFound {
		return false, nil
	}
	return err == nil, err
}

func (s *memoryUsers) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].Email == email {
			return true, nil
		}
	}
	return false, nil
}

// ============================================================
// RefreshTokenRepository
// ============================================================

type memoryRefreshTokens MemoryStore

func (s *memoryRefreshTokens) Create(ctx context.Context, token *models.RefreshToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	token.ID = s.nextTokenID
	s.nextTokenID++
	if token.CreatedAt.IsZero() {
		token.CreatedAt = time.Now()
	}
	s.refreshTokens = append(s.refreshTokens, *token)
	return nil
}

func (s *memoryRefreshTokens) GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.refreshTokens {
		if s.refreshTokens[i].TokenHash == tokenHash {
			token := s.refreshTokens[i]
			return &token, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *memoryRefreshTokens) RevokeByTokenHash(ctx context.Context, tokenHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for i := range s.refreshTokens {
		if s.refreshTokens[i].TokenHash == tokenHash && s.refreshTokens[i].RevokedAt == nil {
			s.refreshTokens[i].RevokedAt = &now
		}
	}
	return nil
}

func (s *memoryRefreshTokens) RevokeAllByUserID(ctx context.Context, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for i := range s.refreshTokens {
		if s.refreshTokens[i].UserID == userID && s.refreshTokens[i].RevokedAt == nil {
			s.refreshTokens[i].RevokedAt = &now
		}
	}
	return nil
}

func (s *memoryRefreshTokens) DeleteExpired(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	kept := s.refreshTokens[:0]
	for i := range s.refreshTokens {
		if s.refreshTokens[i].ExpiresAt.After(now) {
			kept = append(kept, s.refreshTokens[i])
		}
	}
	s.refreshTokens = kept
	return nil
}
