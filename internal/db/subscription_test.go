package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func forceExpiry(t *testing.T, repo *Repository, userID uint, expiry string) {
	t.Helper()
	err := repo.DB().Model(&User{}).Where("id = ?", userID).
		Update("sub_expires_at", expiry).Error
	require.NoError(t, err)
}

func TestPurchaseThenCheck(t *testing.T) {
	repo := newTestRepository(t)

	id, err := repo.Register("alice", "pw123!", "1990-01-01", RoleUser, "")
	require.NoError(t, err)

	require.NoError(t, repo.PurchaseSubscription(TierGolden, id))

	days, notice, err := repo.CheckSubscription(id)
	require.NoError(t, err)
	assert.Empty(t, notice)
	assert.GreaterOrEqual(t, days, 29)
	assert.LessOrEqual(t, days, 30)

	user, err := repo.FetchUser("alice", "pw123!")
	require.NoError(t, err)
	assert.Equal(t, TierGolden, user.Tier)
}

func TestRepurchaseResetsWindow(t *testing.T) {
	repo := newTestRepository(t)

	id, err := repo.Register("bob", "pw123!", "1990-01-01", RoleUser, "")
	require.NoError(t, err)

	require.NoError(t, repo.PurchaseSubscription(TierGolden, id))
	forceExpiry(t, repo, id, time.Now().AddDate(0, 0, 2).Format(TimestampLayout))

	require.NoError(t, repo.PurchaseSubscription(TierGolden, id))

	days, notice, err := repo.CheckSubscription(id)
	require.NoError(t, err)
	assert.Empty(t, notice)
	assert.GreaterOrEqual(t, days, 29)
}

func TestCheckExpiredDemotesToSilver(t *testing.T) {
	repo := newTestRepository(t)

	id, err := repo.Register("carol", "pw123!", "1990-01-01", RoleUser, "")
	require.NoError(t, err)

	require.NoError(t, repo.PurchaseSubscription(TierGolden, id))
	forceExpiry(t, repo, id, time.Now().AddDate(0, 0, -31).Format(TimestampLayout))

	days, notice, err := repo.CheckSubscription(id)
	require.NoError(t, err)
	assert.Equal(t, 0, days)
	assert.NotEmpty(t, notice)

	// The check itself persisted the demotion.
	user, err := repo.FetchUser("carol", "pw123!")
	require.NoError(t, err)
	assert.Equal(t, TierSilver, user.Tier)
	assert.Equal(t, NoSubscriptionSentinel, user.SubExpiresAt)
}

func TestCheckSentinelShortCircuits(t *testing.T) {
	repo := newTestRepository(t)

	id, err := repo.Register("dave", "pw123!", "1990-01-01", RoleUser, "")
	require.NoError(t, err)

	days, notice, err := repo.CheckSubscription(id)
	require.NoError(t, err)
	assert.Equal(t, 0, days)
	assert.NotEmpty(t, notice)

	user, err := repo.FetchUser("dave", "pw123!")
	require.NoError(t, err)
	assert.Equal(t, TierSilver, user.Tier)
	assert.Equal(t, NoSubscriptionSentinel, user.SubExpiresAt)
}

func TestCheckSubscriptionMissingUser(t *testing.T) {
	repo := newTestRepository(t)

	_, _, err := repo.CheckSubscription(12)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSweepExpiredSubscriptions(t *testing.T) {
	repo := newTestRepository(t)

	expired, err := repo.Register("expired", "pw123!", "1990-01-01", RoleUser, "")
	require.NoError(t, err)
	active, err := repo.Register("active", "pw123!", "1990-01-01", RoleUser, "")
	require.NoError(t, err)
	_, err = repo.Register("fresh", "pw123!", "1990-01-01", RoleUser, "")
	require.NoError(t, err)

	require.NoError(t, repo.PurchaseSubscription(TierGolden, expired))
	forceExpiry(t, repo, expired, time.Now().AddDate(0, 0, -1).Format(TimestampLayout))
	require.NoError(t, repo.PurchaseSubscription(TierGolden, active))

	demoted, err := repo.SweepExpiredSubscriptions()
	require.NoError(t, err)
	assert.Equal(t, int64(1), demoted)

	fetch := func(name string) *User {
		user, err := repo.FetchUser(name, "pw123!")
		require.NoError(t, err)
		return user
	}

	assert.Equal(t, TierSilver, fetch("expired").Tier)
	assert.Equal(t, NoSubscriptionSentinel, fetch("expired").SubExpiresAt)
	assert.Equal(t, TierGolden, fetch("active").Tier)
	assert.Equal(t, TierSilver, fetch("fresh").Tier)
}
