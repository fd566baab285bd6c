package db

// Tier - subscription level
type Tier string

const (
	TierSilver Tier = "Silver"
	TierGolden Tier = "Golden"
)

// Role - actor role
type Role string

const (
	RoleUser  Role = "User"
	RoleAdmin Role = "Admin"
)

// Dates and timestamps are stored as TEXT in these layouts.
const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"
)

// NoSubscriptionSentinel is stored in SubExpiresAt while the user has
// never bought (or has lost) a paid tier. It is not a parseable date.
const NoSubscriptionSentinel = "no active subscription"

// User - registered accounts
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"`
	Password     string `gorm:"not null"`
	Birthdate    string `gorm:"not null"`
	Phone        string
	RegisteredAt string `gorm:"not null"`
	Tier         Tier   `gorm:"not null;default:'Silver';check:tier IN ('Silver','Golden')"`
	SubExpiresAt string `gorm:"not null;default:'no active subscription'"`
	Role         Role   `gorm:"not null;default:'User';check:role IN ('User','Admin')"`
}

// BankCard - cards attached to a user account. Number stays TEXT so
// leading zeros survive; ExpireDate is "YY/MM". Card ids are
// renumbered after every delete, so they must not be cached across
// DeleteCard calls.
type BankCard struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     uint   `gorm:"not null;index"`
	Name       string `gorm:"not null"`
	Number     string `gorm:"not null"`
	ExpireDate string `gorm:"not null"`
	Balance    int    `gorm:"not null"`
	CVV        string `gorm:"not null"`

	// Relations
	User User `gorm:"foreignKey:UserID"`
}

// Wallet - a single global row holding the wallet balance.
type Wallet struct {
	ID      uint `gorm:"primaryKey"`
	Balance int  `gorm:"not null;default:0"`
}

func (Wallet) TableName() string {
	return "wallet_balance"
}

// Sanse - a scheduled screening, managed by admins
type Sanse struct {
	ID           uint   `gorm:"primaryKey"`
	MovieName    string `gorm:"not null"`
	ReleaseDate  string `gorm:"not null"`
	HallCapacity int    `gorm:"not null"`
	AgeLimit     int    `gorm:"not null"`
}
