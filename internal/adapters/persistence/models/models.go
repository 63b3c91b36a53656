package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Auth Tables
// ============================================================

// User represents users table
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Role      string         `gorm:"size:20;default:'STAFF'" json:"role"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Parking Tables
// ============================================================

// Owner represents owners table
type Owner struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:100;not null;index" json:"name"`
	ContactNumber string    `gorm:"size:15" json:"contact_number,omitempty"`
	Email         string    `gorm:"size:100" json:"email,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Owner) TableName() string {
	return "owners"
}

// Vehicle represents vehicles table
type Vehicle struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	OwnerID       uint      `gorm:"not null;index" json:"owner_id"`
	VehicleNumber string    `gorm:"uniqueIndex;size:20;not null" json:"vehicle_number"`
	VehicleType   string    `gorm:"size:10;not null;default:'car'" json:"vehicle_type"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	Owner *Owner `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

// VehicleResponse DTO with the owner nested
type VehicleResponse struct {
	ID            uint   `json:"id"`
	VehicleNumber string `json:"vehicle_number"`
	VehicleType   string `json:"vehicle_type"`
	OwnerName     string `json:"owner_name,omitempty"`
}

func (v *Vehicle) ToResponse() *VehicleResponse {
	resp := &VehicleResponse{
		ID:            v.ID,
		VehicleNumber: v.VehicleNumber,
		VehicleType:   v.VehicleType,
	}
	if v.Owner != nil {
		resp.OwnerName = v.Owner.Name
	}
	return resp
}

// ParkingPass represents parking_passes table. A pass is never mutated
// after creation except for the IsActive flag cleared by the expiry
// sweep, and never deleted.
type ParkingPass struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	VehicleID  uint      `gorm:"not null;index" json:"vehicle_id"`
	PassType   string    `gorm:"size:10;not null" json:"pass_type"`
	IssueDate  time.Time `gorm:"not null" json:"issue_date"`
	ExpiryDate time.Time `gorm:"not null;index" json:"expiry_date"`
	IsActive   bool      `gorm:"default:true" json:"is_active"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	Vehicle *Vehicle `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
}

func (ParkingPass) TableName() string {
	return "parking_passes"
}

// IsExpired reports whether the pass has passed its expiry date
func (p *ParkingPass) IsExpired(now time.Time) bool {
	return !p.ExpiryDate.After(now)
}

// PassResponse DTO
type PassResponse struct {
	ID            uint      `json:"id"`
	VehicleNumber string    `json:"vehicle_number"`
	VehicleType   string    `json:"vehicle_type"`
	OwnerName     string    `json:"owner_name,omitempty"`
	PassType      string    `json:"pass_type"`
	IssueDate     time.Time `json:"issue_date"`
	ExpiryDate    time.Time `json:"expiry_date"`
}

func (p *ParkingPass) ToResponse() *PassResponse {
	resp := &PassResponse{
		ID:         p.ID,
		PassType:   p.PassType,
		IssueDate:  p.IssueDate,
		ExpiryDate: p.ExpiryDate,
	}
	if p.Vehicle != nil {
		resp.VehicleNumber = p.Vehicle.VehicleNumber
		resp.VehicleType = p.Vehicle.VehicleType
		if p.Vehicle.Owner != nil {
			resp.OwnerName = p.Vehicle.Owner.Name
		}
	}
	return resp
}

// ParkingTransaction represents parking_transactions table. A nil
// ExitTime means the vehicle is currently inside the lot; FeesPaid stays
// nil until computed at exit, or forever if an active pass covered the
// stay.
type ParkingTransaction struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	VehicleID uint       `gorm:"not null;index" json:"vehicle_id"`
	EntryTime time.Time  `gorm:"not null;index" json:"entry_time"`
	ExitTime  *time.Time `gorm:"index" json:"exit_time"`
	FeesPaid  *float64   `gorm:"type:decimal(8,2)" json:"fees_paid"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`

	Vehicle *Vehicle `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
}

func (ParkingTransaction) TableName() string {
	return "parking_transactions"
}

// IsOpen reports whether the vehicle is still inside the lot
func (t *ParkingTransaction) IsOpen() bool {
	return t.ExitTime == nil
}

// Transaction status labels
const (
	TxStatusParked = "Parked"
	TxStatusExited = "Exited"
)

// TransactionResponse DTO with the vehicle nested
type TransactionResponse struct {
	ID        uint             `json:"id"`
	Vehicle   *VehicleResponse `json:"vehicle,omitempty"`
	EntryTime time.Time        `json:"entry_time"`
	ExitTime  *time.Time       `json:"exit_time"`
	FeesPaid  *float64         `json:"fees_paid"`
	Status    string           `json:"status"`
}

func (t *ParkingTransaction) ToResponse() *TransactionResponse {
	status := TxStatusParked
	if t.ExitTime != nil {
		status = TxStatusExited
	}
	resp := &TransactionResponse{
		ID:        t.ID,
		EntryTime: t.EntryTime,
		ExitTime:  t.ExitTime,
		FeesPaid:  t.FeesPaid,
		Status:    status,
	}
	if t.Vehicle != nil {
		resp.Vehicle = t.Vehicle.ToResponse()
	}
	return resp
}

// Notification types
const (
	NotificationPassExpiry = "pass_expiry"
)

// Notification represents notifications table, written by the expiry
// sweep
type Notification struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	RecipientID uint      `gorm:"not null;index" json:"recipient_id"`
	PassID      uint      `gorm:"not null;index" json:"pass_id"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	Type        string    `gorm:"size:20;not null;default:'pass_expiry'" json:"notification_type"`
	IsRead      bool      `gorm:"default:false" json:"is_read"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	Recipient *Owner       `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`
	Pass      *ParkingPass `gorm:"foreignKey:PassID" json:"pass,omitempty"`
}

func (Notification) TableName() string {
	return "notifications"
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate creates tables if they do not exist
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&RefreshToken{},
		&Owner{},
		&Vehicle{},
		&ParkingPass{},
		&ParkingTransaction{},
		&Notification{},
	)
}
