package db

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Register inserts a new account. The caller has already validated the
// birthdate as an ISO date and the password length; the unique index on
// username is the only constraint enforced here.
func (r *Repository) Register(username, password, birthdate string, role Role, phone string) (uint, error) {
	user := User{
		Username:     username,
		Password:     password,
		Birthdate:    birthdate,
		Phone:        phone,
		RegisteredAt: time.Now().Format(TimestampLayout),
		Tier:         TierSilver,
		SubExpiresAt: NoSubscriptionSentinel,
		Role:         role,
	}

	if err := r.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, ErrDuplicateUsername
		}
		return 0, err
	}

	return user.ID, nil
}

// Authenticate reports whether a row matches both credentials exactly.
func (r *Repository) Authenticate(username, password string) (bool, error) {
	var count int64
	err := r.db.Model(&User{}).
		Where("username = ? AND password = ?", username, password).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FetchUser returns the full row for the first credential match. It is
// a separate read from Authenticate; a row deleted between the two
// calls surfaces here as ErrUserNotFound.
func (r *Repository) FetchUser(username, password string) (*User, error) {
	var user User
	err := r.db.Where("username = ? AND password = ?", username, password).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile merges the non-blank fields over the stored row inside
// one transaction. A blank argument keeps the previous value.
func (r *Repository) UpdateProfile(id uint, newUsername, newPhone string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var user User
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		if newUsername != "" {
			user.Username = newUsername
		}
		if newPhone != "" {
			user.Phone = newPhone
		}

		if err := tx.Save(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateUsername
			}
			return err
		}
		return nil
	})
}

// ChangePassword writes confirmPassword as the stored password. The
// new/confirm equality check belongs to the caller. If either argument
// is blank the stored password is re-read and rewritten unchanged.
func (r *Repository) ChangePassword(id uint, newPassword, confirmPassword string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var user User
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		stored := confirmPassword
		if newPassword == "" || confirmPassword == "" {
			stored = user.Password
		}

		return tx.Model(&user).Update("password", stored).Error
	})
}

// UserRole returns the stored role for the account.
func (r *Repository) UserRole(id uint) (Role, error) {
	var user User
	if err := r.db.Select("role").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}
	return user.Role, nil
}
