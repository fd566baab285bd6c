package db

import (
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(dsn string) (*Repository, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	return &Repository{db: db}, nil
}

func (r *Repository) DB() *gorm.DB {
	return r.db
}

func (r *Repository) AutoMigrate() error {
	return r.db.AutoMigrate(
		&User{},
		&BankCard{},
		&Wallet{},
		&Sanse{},
	)
}

// EnsureWallet seeds the single wallet row with a zero balance. Safe
// to call on every start.
func (r *Repository) EnsureWallet() error {
	wallet := Wallet{ID: 1, Balance: 0}
	return r.db.FirstOrCreate(&wallet, "id = ?", 1).Error
}

// EnsureAdmin creates the bootstrap admin account from config. A blank
// username or password disables seeding; an existing row is left
// untouched.
func (r *Repository) EnsureAdmin(username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	admin := User{
		Username:     username,
		Password:     password,
		Birthdate:    "1970-01-01",
		RegisteredAt: time.Now().Format(TimestampLayout),
		Tier:         TierSilver,
		SubExpiresAt: NoSubscriptionSentinel,
		Role:         RoleAdmin,
	}
	return r.db.FirstOrCreate(&admin, "username = ?", username).Error
}
