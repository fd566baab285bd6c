package cli

import (
	"context"
	"errors"

	"sanse-desk/internal/db"
)

func (s *Service) handleRegister() error {
	username, err := s.prompt("Please enter a username: ")
	if err != nil {
		return err
	}

	var password string
	for {
		password, err = s.promptPassword("Please enter a password: ")
		if err != nil {
			return err
		}
		if validPassword(password) {
			break
		}
		s.println("Password must be at least 5 characters long.")
	}

	var birthdate string
	for {
		input, err := s.prompt("Enter your date of birth in the format (YYYY-MM-DD): ")
		if err != nil {
			return err
		}
		birthdate, err = normalizeISODate(input)
		if err == nil {
			break
		}
		s.println("birthdate input is wrong. please try again!")
	}

	phone, err := s.prompt("Please enter a phone number (optional): ")
	if err != nil {
		return err
	}

	if _, err := s.repo.Register(username, password, birthdate, db.RoleUser, phone); err != nil {
		if errors.Is(err, db.ErrDuplicateUsername) {
			s.println("Error: username is already taken.")
			return nil
		}
		s.reportError(ErrDatabasef("register %q: %v", username, err))
		return nil
	}

	s.println("Registration successful.")
	return nil
}

func (s *Service) handleLogin(ctx context.Context) error {
	username, err := s.prompt("Please enter your username: ")
	if err != nil {
		return err
	}
	password, err := s.promptPassword("Please enter your password: ")
	if err != nil {
		return err
	}

	ok, err := s.repo.Authenticate(username, password)
	if err != nil {
		s.reportError(ErrDatabasef("authenticate %q: %v", username, err))
		return nil
	}
	if !ok {
		s.println("Login Failed!!")
		return nil
	}

	user, err := s.repo.FetchUser(username, password)
	if err != nil {
		// The account vanished between the two reads.
		if errors.Is(err, db.ErrUserNotFound) {
			s.println("Login Failed!!")
			return nil
		}
		s.reportError(ErrDatabasef("fetch %q: %v", username, err))
		return nil
	}

	s.println("Login successful!")
	return s.userMenu(ctx, user)
}

func (s *Service) userMenu(ctx context.Context, user *db.User) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		s.printf("\nLogged in as %s\n", user.Username)
		s.println("User Menu:")
		s.println("1. Display user information")
		s.println("2. Edit user information")
		s.println("3. Change password")
		s.println("4. Bank cards")
		s.println("5. Wallet")
		s.println("6. Subscription")
		s.println("7. Sanses")
		s.println("8. Log out")

		choice, err := s.prompt("Please enter the desired number: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			s.showUserInfo(user)
		case "2":
			err = s.editUserInfo(user)
		case "3":
			err = s.changePassword(user)
		case "4":
			err = s.bankMenu(user)
		case "5":
			err = s.walletMenu(user)
		case "6":
			err = s.subscriptionMenu(user)
		case "7":
			err = s.sanseMenu(user)
		case "8":
			return nil
		default:
			s.println("Error: unknown operation.")
		}

		if err != nil {
			return err
		}
	}
}

func (s *Service) showUserInfo(user *db.User) {
	s.println("Username:", user.Username)
	s.println("Birthdate:", user.Birthdate)
	s.println("Registration Date:", user.RegisteredAt)
	s.println("Phone Number:", user.Phone)
	s.println("Subscription Tier:", string(user.Tier))
}

func (s *Service) editUserInfo(user *db.User) error {
	newUsername, err := s.prompt("New username (leave blank to keep current): ")
	if err != nil {
		return err
	}
	newPhone, err := s.prompt("New phone number (leave blank to keep current): ")
	if err != nil {
		return err
	}

	switch err := s.repo.UpdateProfile(user.ID, newUsername, newPhone); {
	case errors.Is(err, db.ErrUserNotFound):
		s.println("user does not exist")
	case errors.Is(err, db.ErrDuplicateUsername):
		s.println("Error: username is already taken.")
	case err != nil:
		s.reportError(ErrDatabasef("update profile %d: %v", user.ID, err))
	default:
		if newUsername != "" {
			user.Username = newUsername
		}
		if newPhone != "" {
			user.Phone = newPhone
		}
		s.println("Information updated successfully.")
	}
	return nil
}

func (s *Service) changePassword(user *db.User) error {
	newPassword, err := s.promptPassword("New password: ")
	if err != nil {
		return err
	}
	confirmPassword, err := s.promptPassword("Confirm new password: ")
	if err != nil {
		return err
	}

	if newPassword != confirmPassword {
		s.println("Passwords do not match. Please try again.")
		return nil
	}
	if !validPassword(newPassword) {
		s.println("Password must be at least 5 characters long.")
		return nil
	}

	switch err := s.repo.ChangePassword(user.ID, newPassword, confirmPassword); {
	case errors.Is(err, db.ErrUserNotFound):
		s.println("user does not exist")
	case err != nil:
		s.reportError(ErrDatabasef("change password %d: %v", user.ID, err))
	default:
		user.Password = confirmPassword
		s.println("Password changed successfully.")
	}
	return nil
}
