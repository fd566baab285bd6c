package db

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

const subscriptionDays = 30

// PurchaseSubscription puts the user on the paid tier with a fresh
// 30-day window. Re-purchasing while already paid resets the window
// from now.
func (r *Repository) PurchaseSubscription(tier Tier, userID uint) error {
	expiry := time.Now().AddDate(0, 0, subscriptionDays).Format(TimestampLayout)

	res := r.db.Model(&User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"tier":           tier,
		"sub_expires_at": expiry,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// CheckSubscription reports the whole days remaining on the user's
// paid window. Three outcomes:
//   - never subscribed (sentinel stored): days 0 and a notice, no date
//     parse attempted;
//   - expired: the stored tier is demoted to Silver as part of the
//     check and a notice is returned;
//   - active: non-negative day count and an empty notice.
//
// The expired branch mutates persisted state on what looks like a
// read; callers must not assume the tier survives a check.
func (r *Repository) CheckSubscription(userID uint) (int, string, error) {
	var user User
	if err := r.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, "", ErrUserNotFound
		}
		return 0, "", err
	}

	if user.SubExpiresAt == NoSubscriptionSentinel {
		return 0, "You have no active paid subscription. Current tier: Silver.", nil
	}

	expiry, err := time.Parse(TimestampLayout, user.SubExpiresAt)
	if err != nil {
		return 0, "", fmt.Errorf("stored expiry %q is not a timestamp: %w", user.SubExpiresAt, err)
	}

	now := time.Now()
	if now.After(expiry) {
		err := r.db.Model(&user).Updates(map[string]interface{}{
			"tier":           TierSilver,
			"sub_expires_at": NoSubscriptionSentinel,
		}).Error
		if err != nil {
			return 0, "", err
		}
		return 0, "Your subscription has expired. Tier reset to Silver.", nil
	}

	days := int(expiry.Sub(now).Hours() / 24)
	return days, "", nil
}

// SweepExpiredSubscriptions demotes every paid account whose window has
// passed and returns how many rows changed. This is the batch
// counterpart of the demotion CheckSubscription performs one user at a
// time; the scheduler runs it daily.
func (r *Repository) SweepExpiredSubscriptions() (int64, error) {
	now := time.Now().Format(TimestampLayout)

	res := r.db.Model(&User{}).
		Where("sub_expires_at != ? AND sub_expires_at < ?", NoSubscriptionSentinel, now).
		Updates(map[string]interface{}{
			"tier":           TierSilver,
			"sub_expires_at": NoSubscriptionSentinel,
		})
	return res.RowsAffected, res.Error
}
