package db

import "gorm.io/gorm"

// WalletBalance returns the stored balance of the single wallet row.
func (r *Repository) WalletBalance() (int, error) {
	var wallet Wallet
	if err := r.db.First(&wallet, 1).Error; err != nil {
		return 0, err
	}
	return wallet.Balance, nil
}

// Recharge moves funds from a card onto the wallet. The wallet balance
// is SET to amount, not incremented; that replacement semantics lives
// in this one function. The caller computes newCardBalance and checks
// amount against the card's funds before calling.
func (r *Repository) Recharge(amount int, cardID uint, newCardBalance int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&BankCard{}).Where("id = ?", cardID).Update("balance", newCardBalance)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrCardNotFound
		}

		return tx.Model(&Wallet{}).Where("id = ?", 1).Update("balance", amount).Error
	})
}
