package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/smileynet/rolodex"
	"github.com/smileynet/rolodex/internal/assistant"
	"github.com/smileynet/rolodex/internal/book"
	"github.com/smileynet/rolodex/internal/config"
	"github.com/smileynet/rolodex/internal/dashboard"
	"github.com/smileynet/rolodex/internal/seed"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for rolodex.
type CLI struct {
	Version   kong.VersionFlag `help:"Show version." short:"V"`
	Demo      DemoCmd          `cmd:"" help:"Walk through the address book operations on the demo contacts."`
	Shell     ShellCmd         `cmd:"" help:"Start the interactive assistant."`
	Birthdays BirthdaysCmd     `cmd:"" help:"List upcoming birthdays from a seed set."`
	Dashboard DashboardCmd     `cmd:"" help:"Open interactive dashboard TUI."`
}

// loadConfig reads user and project config, applies env overrides and validates.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/rolodex/config.yaml"),
		".rolodex/config.yaml",
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newBook creates an empty book using cfg's leap day policy.
func newBook(cfg *config.Config, now func() time.Time) *book.Book {
	return book.New(book.WithClock(now), book.WithLeapDayPolicy(cfg.LeapDayPolicy()))
}

// seedLoader reads seed sets from cfg.Seed.Dir, falling back to the embedded ones.
func seedLoader(cfg *config.Config) *seed.Loader {
	return seed.NewLoader(rolodex.OverlayFS(cfg.Seed.Dir, rolodex.Seeds))
}

// DemoCmd replays the address book walkthrough on a seed set.
type DemoCmd struct {
	Seed string `help:"Seed set to load." default:"demo"`
}

// Run executes the demo command.
func (d *DemoCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	b := newBook(cfg, time.Now)
	if err := seedLoader(cfg).LoadInto(b, d.Seed); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	return d.run(os.Stdout, b, cfg.Birthdays.WindowDays)
}

// run prints every record, edits and looks up John's phones, lists upcoming
// birthdays and deletes Jane. Steps for contacts missing from b are skipped.
func (d *DemoCmd) run(w io.Writer, b *book.Book, windowDays int) error {
	for _, r := range b.Records() {
		fmt.Fprintln(w, r)
	}

	if john, ok := b.Find("John"); ok {
		if err := john.EditPhone("1234567890", "1112223333"); err != nil {
			return fmt.Errorf("demo: %w", err)
		}
		fmt.Fprintln(w, john)

		if p, ok := john.FindPhone("5555555555"); ok {
			fmt.Fprintf(w, "%s: %s\n", john.Name(), p)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, assistant.FormatUpcoming(b.UpcomingBirthdays(windowDays)))

	b.Delete("Jane")
	fmt.Fprintf(w, "\nContacts after deleting Jane: %d\n", b.Len())
	return nil
}

// ShellCmd starts the interactive assistant.
type ShellCmd struct {
	Seed string `help:"Seed set to preload (empty starts with no contacts)."`
}

// Run executes the shell command.
func (s *ShellCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("shell: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	b := newBook(cfg, time.Now)
	s.preload(os.Stderr, b, seedLoader(cfg))
	return s.run(ctx, os.Stdin, os.Stdout, cfg, b)
}

// preload adds the seed set to b. A seed that cannot be loaded is reported
// as a warning and the shell starts empty.
func (s *ShellCmd) preload(w io.Writer, b *book.Book, loader *seed.Loader) {
	if s.Seed == "" {
		return
	}
	if err := loader.LoadInto(b, s.Seed); err != nil {
		fmt.Fprintf(w, "warning: %v\n", err)
	}
}

func (s *ShellCmd) run(ctx context.Context, in io.Reader, out io.Writer, cfg *config.Config, b *book.Book) error {
	sess := assistant.New(b,
		assistant.WithPrompt(cfg.Assistant.Prompt),
		assistant.WithWindowDays(cfg.Birthdays.WindowDays),
		assistant.WithPhoneAttempts(cfg.Assistant.PhoneAttempts),
	)
	err := sess.Run(ctx, in, out)
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(out)
		fmt.Fprintln(out, assistant.Farewell)
		return nil
	}
	return err
}

// BirthdaysCmd prints upcoming birthdays for a seed set.
type BirthdaysCmd struct {
	Days *int   `help:"Window length in days (defaults to birthdays.window_days)."`
	Seed string `help:"Seed set to load." default:"demo"`
}

// Run executes the birthdays command.
func (c *BirthdaysCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("birthdays: %w", err)
	}
	return c.run(os.Stdout, cfg, newBook(cfg, time.Now), seedLoader(cfg))
}

func (c *BirthdaysCmd) run(w io.Writer, cfg *config.Config, b *book.Book, loader *seed.Loader) error {
	days := cfg.Birthdays.WindowDays
	if c.Days != nil {
		if *c.Days < 0 {
			return fmt.Errorf("birthdays: --days must be non-negative, got %d", *c.Days)
		}
		days = *c.Days
	}
	if err := loader.LoadInto(b, c.Seed); err != nil {
		return fmt.Errorf("birthdays: %w", err)
	}
	fmt.Fprintln(w, assistant.FormatUpcoming(b.UpcomingBirthdays(days)))
	return nil
}

// DashboardCmd opens the interactive dashboard TUI.
type DashboardCmd struct {
	Seed    string `help:"Seed set to browse." default:"demo"`
	LogFile string `help:"Write debug logs to this file." type:"path"`
}

// teaRunner abstracts Bubble Tea program execution for testing.
type teaRunner interface {
	Run() (tea.Model, error)
}

// Run builds the book and launches the dashboard TUI.
func (d *DashboardCmd) Run() error {
	isTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if !isTTY {
		return fmt.Errorf("dashboard: requires a terminal (TTY)")
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}

	if d.LogFile != "" {
		f, err := tea.LogToFile(d.LogFile, "rolodex")
		if err != nil {
			return fmt.Errorf("dashboard: opening log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	b := newBook(cfg, time.Now)
	if err := seedLoader(cfg).LoadInto(b, d.Seed); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	log.Printf("dashboard: loaded %d contacts from seed %q", b.Len(), d.Seed)

	m := dashboard.NewModel(b, dashboard.WithWindowDays(cfg.Birthdays.WindowDays))
	prog := tea.NewProgram(m, tea.WithAltScreen())
	return d.run(isTTY, prog)
}

// run executes the tea program, enabling testable wiring.
func (d *DashboardCmd) run(isTTY bool, prog teaRunner) error {
	if !isTTY {
		return fmt.Errorf("dashboard: requires a terminal (TTY)")
	}
	_, err := prog.Run()
	return err
}

// Exit codes.
const (
	exitSuccess = 0
	exitSetup   = 1
)

func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	return exitSetup
}

// isSeedMissing reports whether err means the requested seed set does not exist.
func isSeedMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Description("An address book with an interactive assistant and birthday reminders."),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		if isSeedMissing(err) {
			fmt.Fprintln(os.Stderr, "hint: built-in seed sets are demo and team")
		}
		os.Exit(exitCode(err))
	}
}
