package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/naveenspark/loginform/internal/config"
	"github.com/naveenspark/loginform/internal/logging"
	"github.com/naveenspark/loginform/internal/session"
	"github.com/naveenspark/loginform/internal/store"
	"github.com/naveenspark/loginform/internal/tui"
	"github.com/naveenspark/loginform/pkg/domain"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

// readPassword is a test seam for term.ReadPassword.
var readPassword = func() ([]byte, error) {
	return term.ReadPassword(int(os.Stdin.Fd()))
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cmd := ""
	if len(args) > 0 {
		cmd = args[0]
	}
	switch cmd {
	case "--version", "version", "-v":
		fmt.Println("loginform " + version)
		return nil
	case "help", "--help", "-h":
		printHelp(os.Stdout)
		return nil
	case "", "status", "login", "logout":
	default:
		printHelp(os.Stderr)
		return fmt.Errorf("unknown command %q", cmd)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, closeLog, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx := context.Background()
	bc := session.NewBroadcaster()
	bc.Subscribe(func(s session.Snapshot) {
		log.Debug(ctx, "session broadcast", "logged_in", s.IsLoggedIn)
	})
	holder := session.NewHolder(store.NewFileStore(cfg.StateDir), bc, log)
	holder.Initialize(ctx)

	switch cmd {
	case "status":
		return runStatus(os.Stdout, holder)
	case "login":
		return runLogin(ctx, bufio.NewReader(os.Stdin), os.Stdout, holder, args[1:])
	case "logout":
		return runLogout(ctx, os.Stdout, holder)
	}
	return runTUI(cfg, bc, holder, log)
}

// openLogger sends logs to cfg.LogFile. With no file configured, logs are
// dropped because the TUI owns the terminal.
func openLogger(cfg config.Config) (logging.Logger, func(), error) {
	if cfg.LogFile == "" {
		return logging.Discard(), func() {}, nil
	}
	f, err := tea.LogToFile(cfg.LogFile, "loginform")
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log, err := logging.New(f, cfg.LogLevel)
	if err != nil {
		f.Close() //nolint:errcheck
		return nil, nil, err
	}
	return log, func() { f.Close() }, nil //nolint:errcheck
}

func runTUI(cfg config.Config, bc *session.Broadcaster, holder *session.Holder, log logging.Logger) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("not a terminal; use 'loginform login' for non-interactive use")
	}

	var opts []tea.ProgramOption
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	app := tui.NewApp(bc, holder.Login, log)
	p := tea.NewProgram(app, opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func runStatus(w io.Writer, holder *session.Holder) error {
	state := "logged out"
	if holder.Session().IsLoggedIn {
		state = "logged in"
	}
	_, err := fmt.Fprintln(w, state)
	return err
}

// runLogin logs in without the TUI. The same field rules apply; there is no
// typing to debounce, so validity is committed right away.
func runLogin(ctx context.Context, in *bufio.Reader, w io.Writer, holder *session.Holder, args []string) error {
	if holder.Session().IsLoggedIn {
		fmt.Fprintln(w, "Already logged in.") //nolint:errcheck
		return nil
	}

	var email string
	if len(args) > 0 {
		email = args[0]
	} else {
		fmt.Fprint(w, "E-Mail: ") //nolint:errcheck
		line, err := in.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return fmt.Errorf("read email: %w", err)
		}
		email = strings.TrimSpace(line)
	}

	fmt.Fprint(w, "Password: ") //nolint:errcheck
	pw, err := readPassword()
	fmt.Fprintln(w) //nolint:errcheck
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}

	var fm domain.Form
	fm, _ = fm.Input(domain.FieldEmail, email)
	fm, _ = fm.Input(domain.FieldPassword, string(pw))
	fm = fm.Commit()
	switch {
	case !fm.Email.IsValid:
		return errors.New("invalid email: must contain @")
	case !fm.Password.IsValid:
		return errors.New("invalid password: must be at least 7 characters")
	}

	if err := holder.Login(ctx, fm.Credentials()); err != nil {
		return err
	}
	fmt.Fprintln(w, "Logged in.") //nolint:errcheck
	return nil
}

func runLogout(ctx context.Context, w io.Writer, holder *session.Holder) error {
	if !holder.Session().IsLoggedIn {
		fmt.Fprintln(w, "Already logged out.") //nolint:errcheck
		// Clear any stray marker anyway.
		return holder.Logout(ctx)
	}
	if err := holder.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(w, "Logged out.") //nolint:errcheck
	return nil
}
