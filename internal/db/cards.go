package db

import (
	"errors"

	"gorm.io/gorm"
)

// AddCard stores a new card for the user. Digit counts and the minimum
// opening balance are enforced by the caller before this point.
func (r *Repository) AddCard(userID uint, name, number, expireDate string, balance int, cvv string) (uint, error) {
	card := BankCard{
		UserID:     userID,
		Name:       name,
		Number:     number,
		ExpireDate: expireDate,
		Balance:    balance,
		CVV:        cvv,
	}

	if err := r.db.Create(&card).Error; err != nil {
		return 0, err
	}
	return card.ID, nil
}

// ListCards returns every stored card ordered by id. The userID filter
// is accepted but deliberately not applied: historical callers see all
// users' cards, and scoping the listing later is a change here only.
func (r *Repository) ListCards(userID uint) ([]BankCard, error) {
	_ = userID

	var cards []BankCard
	if err := r.db.Order("id").Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *Repository) FindCard(cardID uint) (*BankCard, error) {
	var card BankCard
	if err := r.db.First(&card, cardID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	return &card, nil
}

// UpdateCard merges the non-blank name/number over the stored row, same
// pattern as UpdateProfile.
func (r *Repository) UpdateCard(name, number string, cardID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var card BankCard
		if err := tx.First(&card, cardID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCardNotFound
			}
			return err
		}

		if name != "" {
			card.Name = name
		}
		if number != "" {
			card.Number = number
		}

		return tx.Save(&card).Error
	})
}

// DeleteCard removes the row and renumbers the survivors to a dense
// 1..N by ascending current id, all in one transaction. Every
// previously displayed card id is invalid after this call.
func (r *Repository) DeleteCard(cardID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&BankCard{}, cardID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrCardNotFound
		}

		var survivors []BankCard
		if err := tx.Order("id").Find(&survivors).Error; err != nil {
			return err
		}

		// Ascending order keeps the new id below or equal to the old
		// one, so no renumbering step can collide with a later row.
		for i, card := range survivors {
			newID := uint(i + 1)
			if card.ID == newID {
				continue
			}
			if err := tx.Exec("UPDATE bank_cards SET id = ? WHERE id = ?", newID, card.ID).Error; err != nil {
				return err
			}
		}

		// Realign the autoincrement counter so the next insert
		// continues from N. SQLite only; other dialects keep their
		// native counter.
		if tx.Dialector.Name() == "sqlite" {
			if err := tx.Exec("UPDATE sqlite_sequence SET seq = ? WHERE name = ?", len(survivors), "bank_cards").Error; err != nil {
				return err
			}
		}

		return nil
	})
}
