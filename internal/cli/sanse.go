package cli

import (
	"errors"
	"strconv"

	"sanse-desk/internal/db"
)

func (s *Service) sanseMenu(user *db.User) error {
	role, err := s.repo.UserRole(user.ID)
	if err != nil {
		s.reportError(ErrDatabasef("role for user %d: %v", user.ID, err))
		return nil
	}

	for {
		s.println("Sanse Menu:")
		s.println("1. List sanses")
		s.println("2. Buy a sanse")
		if role == db.RoleAdmin {
			s.println("3. Add a sanse (admin)")
			s.println("4. Delete a sanse (admin)")
		}
		s.println("5. Back to user menu")

		choice, err := s.prompt("Please enter the desired number: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			s.listSanses()
		case "2":
			err = s.buySanse()
		case "3":
			if role != db.RoleAdmin {
				s.reportError(ErrPermission("add sanse requires the Admin role"))
				continue
			}
			err = s.addSanse()
		case "4":
			if role != db.RoleAdmin {
				s.reportError(ErrPermission("delete sanse requires the Admin role"))
				continue
			}
			err = s.deleteSanse()
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

func (s *Service) listSanses() {
	sanses, err := s.repo.ListSanses()
	if err != nil {
		s.reportError(ErrDatabasef("list sanses: %v", err))
		return
	}

	if len(sanses) == 0 {
		s.println("No sanses scheduled yet.")
		return
	}

	for _, sanse := range sanses {
		s.println("Sanse Id:", sanse.ID)
		s.println("Movie Name:", sanse.MovieName)
		s.println("Release Date:", sanse.ReleaseDate)
		s.println("Hall Capacity:", sanse.HallCapacity)
		s.println("Age Limit:", sanse.AgeLimit)
		s.println()
	}
}

// buySanse is a lookup by id; no purchase ledger or capacity decrement
// is persisted.
func (s *Service) buySanse() error {
	input, err := s.prompt("Enter the sanse id to buy: ")
	if err != nil {
		return err
	}
	id, convErr := strconv.ParseUint(input, 10, 32)
	if convErr != nil || id == 0 {
		s.println("Error: enter a numeric sanse id.")
		return nil
	}

	sanse, err := s.repo.FindSanse(uint(id))
	if err != nil {
		if errors.Is(err, db.ErrSanseNotFound) {
			s.println("sanse does not exist")
			return nil
		}
		s.reportError(ErrDatabasef("find sanse %d: %v", id, err))
		return nil
	}

	s.printf("Sanse purchased: %s (release %s, age limit %d).\n",
		sanse.MovieName, sanse.ReleaseDate, sanse.AgeLimit)
	return nil
}

func (s *Service) addSanse() error {
	movieName, err := s.prompt("Enter the movie name: ")
	if err != nil {
		return err
	}

	var releaseDate string
	for {
		input, err := s.prompt("Enter the release date (YYYY-MM-DD): ")
		if err != nil {
			return err
		}
		releaseDate, err = normalizeISODate(input)
		if err == nil {
			break
		}
		s.println("release date input is wrong. please try again!")
	}

	hallCapacity, err := s.promptPositiveInt("Enter the hall capacity: ")
	if err != nil {
		return err
	}
	ageLimit, err := s.promptPositiveInt("Enter the age limit: ")
	if err != nil {
		return err
	}

	if _, err := s.repo.AddSanse(movieName, releaseDate, hallCapacity, ageLimit); err != nil {
		s.reportError(ErrDatabasef("add sanse %q: %v", movieName, err))
		return nil
	}

	s.println("Sanse added successfully.")
	return nil
}

func (s *Service) deleteSanse() error {
	input, err := s.prompt("Enter the sanse id to delete: ")
	if err != nil {
		return err
	}
	id, convErr := strconv.ParseUint(input, 10, 32)
	if convErr != nil || id == 0 {
		s.println("Error: enter a numeric sanse id.")
		return nil
	}

	if err := s.repo.DeleteSanse(uint(id)); err != nil {
		if errors.Is(err, db.ErrSanseNotFound) {
			s.println("sanse does not exist")
			return nil
		}
		s.reportError(ErrDatabasef("delete sanse %d: %v", id, err))
		return nil
	}

	s.println("Sanse deleted successfully.")
	return nil
}

func (s *Service) promptPositiveInt(label string) (int, error) {
	for {
		input, err := s.prompt(label)
		if err != nil {
			return 0, err
		}
		value, convErr := strconv.Atoi(input)
		if convErr != nil || value <= 0 {
			s.println("Error: enter a positive number.")
			continue
		}
		return value, nil
	}
}
