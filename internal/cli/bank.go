package cli

import (
	"errors"
	"strconv"

	"sanse-desk/internal/db"
)

func (s *Service) bankMenu(user *db.User) error {
	s.println("Welcome to the bank card manager")
	for {
		s.println("1. Add a bank card")
		s.println("2. Show bank cards")
		s.println("3. Edit a bank card")
		s.println("4. Delete a bank card")
		s.println("5. Back to user menu")

		choice, err := s.prompt("Please enter the desired number: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = s.addBankCard(user)
		case "2":
			s.listBankCards(user)
		case "3":
			err = s.editBankCard()
		case "4":
			err = s.deleteBankCard()
		case "5":
			return nil
		default:
			s.println("Error: unknown operation.")
		}

		if err != nil {
			return err
		}
	}
}

func (s *Service) addBankCard(user *db.User) error {
	name, err := s.prompt("Enter a name for your card: ")
	if err != nil {
		return err
	}

	var number string
	for {
		number, err = s.prompt("Enter your card number (16 digits): ")
		if err != nil {
			return err
		}
		if validCardNumber(number) {
			break
		}
		s.println("Error: invalid card number. It should be exactly 16 digits.")
	}

	var expireDate string
	for {
		input, err := s.prompt("Enter the expiration date of your card (YY/MM): ")
		if err != nil {
			return err
		}
		expireDate, err = normalizeExpireDate(input)
		if err == nil {
			break
		}
		s.println("Error: enter the expiration date in the correct format (YY/MM).")
	}

	var balance int
	for {
		input, err := s.prompt("Enter the current balance of your card in Rials (minimum 500,000 Rials): ")
		if err != nil {
			return err
		}
		balance, err = strconv.Atoi(input)
		if err == nil && balance >= minCardBalance {
			break
		}
		s.println("Error: enter a valid current balance of your card (minimum 500,000 Rials).")
	}

	var cvv string
	for {
		cvv, err = s.prompt("Enter the CVV2 of your card (4 digits): ")
		if err != nil {
			return err
		}
		if validCVV(cvv) {
			break
		}
		s.println("CVV2 number must be exactly four digits and contain only digits (0-9).")
	}

	if _, err := s.repo.AddCard(user.ID, name, number, expireDate, balance, cvv); err != nil {
		s.reportError(ErrDatabasef("add card for user %d: %v", user.ID, err))
		return nil
	}

	s.println("Bank card added successfully.")
	return nil
}

func (s *Service) listBankCards(user *db.User) {
	cards, err := s.repo.ListCards(user.ID)
	if err != nil {
		s.reportError(ErrDatabasef("list cards: %v", err))
		return
	}

	if len(cards) == 0 {
		s.println("No bank cards stored yet.")
		return
	}

	for _, card := range cards {
		s.println("Card Id:", card.ID)
		s.println("Card Name:", card.Name)
		s.println("Card Number:", card.Number)
		s.println("Card Expire Date:", card.ExpireDate)
		s.println("Card Balance:", card.Balance)
		s.println()
	}
}

func (s *Service) editBankCard() error {
	for {
		cardID, err := s.promptCardID("Choose your card id: ")
		if err != nil {
			return err
		}

		if _, err := s.repo.FindCard(cardID); err != nil {
			if errors.Is(err, db.ErrCardNotFound) {
				s.println("id for bank card is wrong. please try again")
				continue
			}
			s.reportError(ErrDatabasef("find card %d: %v", cardID, err))
			return nil
		}

		name, err := s.prompt("New name for your card (leave blank to keep current): ")
		if err != nil {
			return err
		}
		number, err := s.prompt("New card number (leave blank to keep current): ")
		if err != nil {
			return err
		}
		if number != "" && !validCardNumber(number) {
			s.println("Error: invalid card number. It should be exactly 16 digits.")
			return nil
		}

		if err := s.repo.UpdateCard(name, number, cardID); err != nil {
			s.reportError(ErrDatabasef("update card %d: %v", cardID, err))
			return nil
		}

		s.println("Bank card updated successfully.")
		return nil
	}
}

func (s *Service) deleteBankCard() error {
	cardID, err := s.promptCardID("Enter the ID of your bank card to delete: ")
	if err != nil {
		return err
	}

	if err := s.repo.DeleteCard(cardID); err != nil {
		if errors.Is(err, db.ErrCardNotFound) {
			s.println("id for bank card is wrong. please try again")
			return nil
		}
		s.reportError(ErrDatabasef("delete card %d: %v", cardID, err))
		return nil
	}

	s.println("Bank card deleted. Remaining card ids were renumbered.")
	return nil
}

// promptCardID keeps asking until the input parses as a positive
// number.
func (s *Service) promptCardID(label string) (uint, error) {
	for {
		input, err := s.prompt(label)
		if err != nil {
			return 0, err
		}
		id, convErr := strconv.ParseUint(input, 10, 32)
		if convErr != nil || id == 0 {
			s.println("Error: enter a numeric card id.")
			continue
		}
		return uint(id), nil
	}
}
