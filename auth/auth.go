package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dapoer-roso/reservation-app/models"
)

var (
	ErrAdminExists = errors.New("admin already exists")
	// ErrInvalidCredentials dikembalikan baik untuk email yang tidak
	// terdaftar maupun password yang salah, supaya response tidak
	// membocorkan bagian mana yang gagal.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

type Claims struct {
	AdminID uint   `json:"admin_id"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// Service menangani registrasi admin, login, dan verifikasi token.
// Secret dan TTL di-inject lewat constructor, bukan dibaca dari env
// di dalam package.
type Service struct {
	db     *gorm.DB
	secret []byte
	ttl    time.Duration
}

func NewService(db *gorm.DB, secret string, ttl time.Duration) *Service {
	return &Service{
		db:     db,
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Register membuat admin baru dengan role "admin".
// Password di-hash dengan bcrypt sebelum disimpan.
func (s *Service) Register(name, email, password string) (*models.Admin, error) {
	var count int64
	if err := s.db.Model(&models.Admin{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAdminExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := models.Admin{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}
	if err := s.db.Create(&admin).Error; err != nil {
		return nil, err
	}

	return &admin, nil
}

// Login memverifikasi kredensial dan mengembalikan token bearer.
func (s *Service) Login(email, password string) (string, error) {
	var admin models.Admin
	if err := s.db.Where("email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.Token(&admin)
}

// Token menerbitkan JWT HS256 yang mengikat id dan role admin.
func (s *Service) Token(admin *models.Admin) (string, error) {
	now := time.Now()
	claims := &Claims{
		AdminID: admin.ID,
		Role:    admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "reservation-app",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify memvalidasi token string. Token yang malformed, expired,
// atau signature-nya tidak cocok semuanya menghasilkan ErrInvalidToken.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.AdminID == 0 {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// AdminByID mengambil identitas admin untuk request yang sudah lolos gate.
func (s *Service) AdminByID(id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := s.db.First(&admin, id).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}
