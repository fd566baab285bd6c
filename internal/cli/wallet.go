package cli

import (
	"errors"
	"strconv"

	"sanse-desk/internal/db"
)

func (s *Service) walletMenu(user *db.User) error {
	for {
		s.println("Wallet Menu:")
		s.println("1. Show wallet balance")
		s.println("2. Recharge wallet from a bank card")
		s.println("3. Back to user menu")

		choice, err := s.prompt("Please enter the desired number: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			s.showWalletBalance()
		case "2":
			err = s.rechargeWallet()
		case "3":
			return nil
		default:
			s.println("Error: unknown operation.")
		}

		if err != nil {
			return err
		}
	}
}

func (s *Service) showWalletBalance() {
	balance, err := s.repo.WalletBalance()
	if err != nil {
		s.reportError(ErrDatabasef("wallet balance: %v", err))
		return
	}
	s.println("Wallet balance:", balance)
}

// rechargeWallet does the bounds check and computes the card's new
// balance; the repository only writes the two values it is handed.
func (s *Service) rechargeWallet() error {
	cardID, err := s.promptCardID("Enter the ID of the card to recharge from: ")
	if err != nil {
		return err
	}

	card, err := s.repo.FindCard(cardID)
	if err != nil {
		if errors.Is(err, db.ErrCardNotFound) {
			s.println("id for bank card is wrong. please try again")
			return nil
		}
		s.reportError(ErrDatabasef("find card %d: %v", cardID, err))
		return nil
	}

	input, err := s.prompt("Enter the amount to transfer in Rials: ")
	if err != nil {
		return err
	}
	amount, convErr := strconv.Atoi(input)
	if convErr != nil || amount <= 0 {
		s.println("Error: enter a positive numeric amount.")
		return nil
	}
	if amount > card.Balance {
		s.println("Error: the amount exceeds the card balance.")
		return nil
	}

	if err := s.repo.Recharge(amount, card.ID, card.Balance-amount); err != nil {
		s.reportError(ErrDatabasef("recharge from card %d: %v", card.ID, err))
		return nil
	}

	s.println("Wallet recharged successfully.")
	return nil
}
