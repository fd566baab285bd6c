package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"

	"sanse-desk/internal/config"
	"sanse-desk/internal/db"

	"golang.org/x/term"
)

// Service drives the blocking interactive menu loop. All field
// validation happens here; the repository receives pre-validated
// strings.
type Service struct {
	cfg  *config.Config
	repo *db.Repository
	in   *bufio.Reader
	out  io.Writer

	// secureInput enables no-echo password entry. Off when stdin is
	// not a terminal, so scripted sessions read passwords as plain
	// lines.
	secureInput bool
}

func New(cfg *config.Config, repo *db.Repository) *Service {
	return &Service{
		cfg:         cfg,
		repo:        repo,
		in:          bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		secureInput: term.IsTerminal(int(os.Stdin.Fd())),
	}
}

// Run shows the top-level menu until the user exits, the input source
// is exhausted, or the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		s.clearScreen()
		s.println("\nUser Menu:")
		s.println("1. Register a new user")
		s.println("2. User login")
		s.println("0. Exit")

		choice, err := s.prompt("Please enter the desired number: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch choice {
		case "0":
			return nil
		case "1":
			err = s.handleRegister()
		case "2":
			err = s.handleLogin(ctx)
		default:
			s.println("Error: unknown operation.")
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}
