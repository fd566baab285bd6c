package cli

import (
	"errors"

	"sanse-desk/internal/db"
)

func (s *Service) subscriptionMenu(user *db.User) error {
	for {
		s.println("Subscription Menu:")
		s.println("1. Subscription status")
		s.println("2. Buy Golden subscription (30 days)")
		s.println("3. Back to user menu")

		choice, err := s.prompt("Please enter the desired number: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			s.showSubscriptionStatus(user)
		case "2":
			s.buySubscription(user)
		case "3":
			return nil
		default:
			s.println("Error: unknown operation.")
		}
	}
}

// showSubscriptionStatus prints the remaining days. Checking an
// expired subscription also resets the stored tier to Silver.
func (s *Service) showSubscriptionStatus(user *db.User) {
	days, notice, err := s.repo.CheckSubscription(user.ID)
	if err != nil {
		if errors.Is(err, db.ErrUserNotFound) {
			s.println("user does not exist")
			return
		}
		s.reportError(ErrDatabasef("check subscription %d: %v", user.ID, err))
		return
	}

	if notice != "" {
		s.println(notice)
		user.Tier = db.TierSilver
		return
	}

	s.printf("Days remaining on your subscription: %d\n", days)
}

func (s *Service) buySubscription(user *db.User) {
	if err := s.repo.PurchaseSubscription(db.TierGolden, user.ID); err != nil {
		if errors.Is(err, db.ErrUserNotFound) {
			s.println("user does not exist")
			return
		}
		s.reportError(ErrDatabasef("purchase subscription %d: %v", user.ID, err))
		return
	}

	user.Tier = db.TierGolden
	s.println("Golden subscription activated for 30 days.")
}
