// Package shell is the interactive text front end for the games.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"probplay/models"
	"probplay/service"
)

// Services bundles the game services the shell drives
type Services struct {
	Players        service.PlayerService
	LuckyBoxes     service.LuckyBoxService
	Investigations service.InvestigationService
	Bridge         service.BridgeService
	Goals          service.GoalService
}

// Shell represents the play shell
type Shell struct {
	services Services
	in       io.Reader
	out      io.Writer
	delay    time.Duration // pause before a draw result is shown
	commands map[string]Command
	history  []string
	running  bool

	player   *models.Player
	session  *service.CaseSession
	crossing *service.Crossing
}

// Command represents a shell command
type Command struct {
	Handler     CommandHandler
	Description string
	Usage       string
	Category    string // "game", "info", "utility"
}

// CommandHandler is a function that handles a shell command
type CommandHandler func(ctx context.Context, s *Shell, args []string) error

// New creates a shell for player reading from in and writing to out
func New(services Services, player *models.Player, in io.Reader, out io.Writer, delay time.Duration) *Shell {
	s := &Shell{
		services: services,
		in:       in,
		out:      out,
		delay:    delay,
		player:   player,
		running:  true,
	}
	s.initializeCommands()
	return s
}

// Player returns the player the shell is playing as
func (s *Shell) Player() *models.Player {
	return s.player
}

// History returns every line entered so far
func (s *Shell) History() []string {
	return s.history
}

// Run starts the interactive loop and returns when input ends, the player quits or ctx is done
func (s *Shell) Run(ctx context.Context) error {
	s.printBanner()

	scanner := bufio.NewScanner(s.in)
	for s.running {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		fmt.Fprintf(s.out, "\n🎲 %d pts> ", s.player.Points)
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		s.history = append(s.history, input)

		parts := strings.Fields(input)
		cmdName := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmdName {
		case "exit", "quit":
			s.running = false
			fmt.Fprintf(s.out, "👋 Thanks for playing! Final score: %d\n", s.player.Points)
			continue
		}

		cmd, exists := s.commands[cmdName]
		if !exists {
			s.printError(fmt.Errorf("unknown command: %s. Type 'help' for available commands", cmdName))
			continue
		}
		if err := cmd.Handler(ctx, s, args); err != nil {
			s.printError(err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}
	return nil
}

func (s *Shell) printBanner() {
	fmt.Fprintln(s.out, "🎓 Probability Playground 🎓")
	fmt.Fprintln(s.out, "============================")
	for _, card := range models.GameCards {
		fmt.Fprintf(s.out, "  %s %s - %s (%s)\n", card.Icon, card.Title, card.Description, card.Concept)
	}
	fmt.Fprintln(s.out, "\nType 'help' to see the commands.")
}

// suspense pauses before a resolved result is shown
func (s *Shell) suspense(msg string) {
	if s.delay <= 0 {
		return
	}
	fmt.Fprintf(s.out, "%s...\n", msg)
	time.Sleep(s.delay)
}

// printError displays an error message in red
func (s *Shell) printError(err error) {
	fmt.Fprintf(s.out, "\033[31m❌ Error: %s\033[0m\n", err.Error())
}

// printSuccess displays a success message in green
func (s *Shell) printSuccess(msg string) {
	fmt.Fprintf(s.out, "\033[32m✅ %s\033[0m\n", msg)
}

// printWarning displays a warning message in yellow
func (s *Shell) printWarning(msg string) {
	fmt.Fprintf(s.out, "\033[33m⚠️  %s\033[0m\n", msg)
}

// printInfo displays an info message in blue
func (s *Shell) printInfo(msg string) {
	fmt.Fprintf(s.out, "\033[34mℹ️  %s\033[0m\n", msg)
}

// printBadges announces newly earned badges
func (s *Shell) printBadges(badges []models.BadgeType) {
	for _, b := range badges {
		def := models.BadgeDefinitions[b]
		s.printSuccess(fmt.Sprintf("New badge: %s %s - %s", def.Icon, b, def.Description))
	}
}
