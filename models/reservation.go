package models

import "time"

const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)

// Reservation merepresentasikan permintaan meja dari tamu.
// Status hanya diubah oleh admin; tidak ada penjagaan transisi
// (any -> any), mengikuti perilaku sistem yang berjalan.
type Reservation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(50);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);not null" json:"email"`
	Phone     string    `gorm:"type:varchar(20);not null" json:"phone"`
	Message   string    `gorm:"type:varchar(500)" json:"message,omitempty"`
	Time      time.Time `gorm:"not null;index" json:"time"`
	Guests    int       `gorm:"not null;default:1" json:"guests"`
	Status    string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
