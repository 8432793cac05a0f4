package client

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-signout/internal/kiosk"
	"github.com/MKhiriev/go-signout/internal/logger"
	"github.com/MKhiriev/go-signout/models"
)

const (
	cmdQuit    = "quit"
	cmdExit    = "exit"
	cmdHome    = "home"
	cmdVersion = "version"
	cmdHeld    = "held"
	cmdHistory = "history"
)

type App struct {
	workflow *kiosk.Workflow

	in  io.Reader
	out io.Writer

	info     models.AppBuildInfo
	terminal string

	// draftName holds the display name typed during registration until the
	// PIN line arrives.
	draftName string

	logger *logger.Logger
}

func NewApp(workflow *kiosk.Workflow, in io.Reader, out io.Writer, info models.AppBuildInfo, terminal string, logger *logger.Logger) *App {
	return &App{
		workflow: workflow,
		in:       in,
		out:      out,
		info:     info,
		terminal: terminal,
		logger:   logger,
	}
}

// Run reads lines until the input ends, "quit" is typed or ctx is done. A
// signed in user is signed out before Run returns.
func (a *App) Run(ctx context.Context) error {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(a.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	a.logger.Info().Str("terminal", a.terminal).Msg("kiosk started")
	a.prompt()

	for {
		select {
		case <-ctx.Done():
			a.leave()
			return nil
		case line, ok := <-lines:
			if !ok {
				a.leave()
				select {
				case err := <-readErr:
					return err
				default:
					return nil
				}
			}
			if a.handle(ctx, line) {
				a.leave()
				return nil
			}
			a.prompt()
		}
	}
}

// handle processes one input line and reports whether the kiosk should
// stop.
func (a *App) handle(ctx context.Context, line string) bool {
	command := strings.ToLower(strings.TrimSpace(line))

	switch command {
	case cmdQuit, cmdExit:
		return true
	case cmdVersion:
		a.println(renderBuildInfo(a.info))
		return false
	case cmdHome:
		a.draftName = ""
		a.report(a.workflow.Home(ctx))
		return false
	}

	switch a.workflow.Snapshot().State {
	case kiosk.StateUnauthenticated:
		_, err := a.workflow.ScanUser(ctx, line)
		a.report(err)

	case kiosk.StateAwaitingPIN:
		identity, err := a.workflow.EnterPIN(ctx, strings.TrimSpace(line))
		if err == nil {
			a.printf("Welcome %s!\n", identity.DisplayName)
		}
		a.report(err)

	case kiosk.StateAwaitingRegistration:
		a.handleRegistration(ctx, line)

	case kiosk.StateAuthenticated:
		a.handleAuthenticated(ctx, line, command)
	}

	return false
}

func (a *App) handleRegistration(ctx context.Context, line string) {
	if a.draftName == "" {
		a.draftName = strings.TrimSpace(line)
		if a.draftName == "" {
			a.println("The name must not be empty.")
		}
		return
	}

	name := a.draftName
	a.draftName = ""

	identity, err := a.workflow.Register(ctx, name, strings.TrimSpace(line))
	if err == nil {
		a.printf("Welcome %s!\n", identity.DisplayName)
	}
	a.report(err)
}

func (a *App) handleAuthenticated(ctx context.Context, line, command string) {
	if mode, ok := kiosk.ParseMode(command); ok {
		a.report(a.workflow.SetMode(mode))
		return
	}

	if command == cmdHeld {
		records, err := a.workflow.Held(ctx)
		if err != nil {
			a.report(err)
			return
		}
		if len(records) == 0 {
			a.println("You hold no items.")
		}
		for _, r := range records {
			a.printf("  %s (%s) since %s\n", valueOr(r.ItemDisplayName, r.ItemID), r.ItemID, r.CheckoutTime.Local().Format("2006-01-02 15:04"))
		}
		return
	}

	if strings.HasPrefix(command, cmdHistory+" ") {
		code := strings.TrimSpace(strings.TrimSpace(line)[len(cmdHistory):])
		events, err := a.workflow.History(ctx, code)
		if err != nil {
			a.report(err)
			return
		}
		if len(events) == 0 {
			a.println("No history for this item.")
		}
		for _, e := range events {
			a.printf("  %s: %s, %s to %s\n", e.ItemID, e.HolderDisplayName,
				e.CheckoutTime.Local().Format("2006-01-02 15:04"), e.CheckinTime.Local().Format("2006-01-02 15:04"))
		}
		return
	}

	receipt, err := a.workflow.ScanItem(ctx, line)
	if err != nil {
		a.report(err)
		return
	}

	if receipt.Mode == kiosk.ModeCheckin {
		a.printf("Checked in: %s (%s).\n", valueOr(receipt.Event.ItemDisplayName, receipt.Event.ItemID), receipt.Event.ItemID)
		return
	}
	a.printf("Checked out: %s (%s) to %s.\n", receipt.Record.ItemDisplayName, receipt.Record.ItemID, receipt.Record.HolderDisplayName)
}

func (a *App) prompt() {
	snap := a.workflow.Snapshot()

	switch snap.State {
	case kiosk.StateUnauthenticated:
		a.println("Scan your badge:")
	case kiosk.StateAwaitingPIN:
		a.printf("Hello %s, enter your PIN (or \"home\"):\n", valueOr(snap.DisplayName, snap.UserID))
	case kiosk.StateAwaitingRegistration:
		if a.draftName == "" {
			a.printf("Badge %s is new. Enter your name:\n", snap.UserID)
		} else {
			a.println("Choose a 4-digit PIN:")
		}
	case kiosk.StateAuthenticated:
		a.printf("[%s] %s, scan an item (in, out, held, history <code>, home):\n", snap.Mode, snap.DisplayName)
	}
}

// leave signs out a user still at the terminal.
func (a *App) leave() {
	if a.workflow.Snapshot().State != kiosk.StateAuthenticated {
		return
	}
	if err := a.workflow.Home(context.Background()); err != nil {
		a.logger.Warn().Err(err).Msg("sign out on exit failed")
	}
}

func (a *App) report(err error) {
	if err == nil {
		return
	}
	a.logger.Warn().Err(err).Msg("kiosk action failed")
	a.println(humanize(err))
}

func (a *App) println(s string) {
	fmt.Fprintln(a.out, s)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
