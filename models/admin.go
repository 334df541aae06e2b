package models

import "time"

const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super-admin"
)

// Admin adalah akun pengelola reservasi. Password disimpan sebagai
// bcrypt hash dan tidak pernah ikut di-serialize ke response.
type Admin struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"type:varchar(50);not null" json:"name"`
	Email     string `gorm:"type:varchar(255);unique;not null" json:"email"`
	Password  string `gorm:"type:varchar(255);not null" json:"-"`
	Role      string `gorm:"type:varchar(20);not null;default:'admin'" json:"role"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
