package cli

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"golang.org/x/term"
)

func (s *Service) println(args ...interface{}) {
	fmt.Fprintln(s.out, args...)
}

func (s *Service) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Service) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Service) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	return s.readLine()
}

// promptPassword reads without echo when attached to a terminal and
// falls back to a plain line otherwise.
func (s *Service) promptPassword(label string) (string, error) {
	if !s.secureInput {
		return s.prompt(label)
	}

	fmt.Fprint(s.out, label)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(s.out)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// clearScreen wipes the terminal between menus, 'cls' on Windows and
// 'clear' elsewhere. A non-terminal output is left alone.
func (s *Service) clearScreen() {
	f, ok := s.out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return
	}

	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("cmd", "/c", "cls")
	} else {
		cmd = exec.Command("clear")
	}
	cmd.Stdout = f
	_ = cmd.Run()
}
