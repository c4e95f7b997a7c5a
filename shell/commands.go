package shell

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"probplay/models"
)

// initializeCommands sets up all available shell commands
func (s *Shell) initializeCommands() {
	s.commands = map[string]Command{
		"help": {
			Handler:     handleHelp,
			Description: "Show available commands",
			Usage:       "help [command]",
			Category:    "utility",
		},
		"status": {
			Handler:     handleStatus,
			Description: "Show points and badges",
			Usage:       "status",
			Category:    "info",
		},
		"stats": {
			Handler:     handleStats,
			Description: "Show round statistics",
			Usage:       "stats",
			Category:    "info",
		},
		"boxes": {
			Handler:     handleBoxes,
			Description: "List lucky boxes with their expected value",
			Usage:       "boxes",
			Category:    "game",
		},
		"open": {
			Handler:     handleOpen,
			Description: "Buy and open a lucky box",
			Usage:       "open <box_id>",
			Category:    "game",
		},
		"cases": {
			Handler:     handleCases,
			Description: "List Find the Thief cases",
			Usage:       "cases",
			Category:    "game",
		},
		"case": {
			Handler:     handleCase,
			Description: "Start or restart investigating a case",
			Usage:       "case <case_id>",
			Category:    "game",
		},
		"clue": {
			Handler:     handleClue,
			Description: "Reveal the next clue",
			Usage:       "clue",
			Category:    "game",
		},
		"odds": {
			Handler:     handleOdds,
			Description: "Show every suspect's current odds",
			Usage:       "odds",
			Category:    "game",
		},
		"accuse": {
			Handler:     handleAccuse,
			Description: "Accuse a suspect once every clue is revealed",
			Usage:       "accuse <suspect_id>",
			Category:    "game",
		},
		"bridge": {
			Handler:     handleBridge,
			Description: "Show the bridge crossing and payoff table",
			Usage:       "bridge",
			Category:    "game",
		},
		"send": {
			Handler:     handleSend,
			Description: "Send waiting adventurers across the bridge",
			Usage:       "send <count>",
			Category:    "game",
		},
		"again": {
			Handler:     handleAgain,
			Description: "Start a new crossing once nobody is waiting",
			Usage:       "again",
			Category:    "game",
		},
		"targets": {
			Handler:     handleTargets,
			Description: "List goal targets with their expected value",
			Usage:       "targets",
			Category:    "game",
		},
		"shoot": {
			Handler:     handleShoot,
			Description: "Shoot at a goal target",
			Usage:       "shoot <target_id>",
			Category:    "game",
		},
	}
}

// handleHelp displays help information
func handleHelp(ctx context.Context, s *Shell, args []string) error {
	if len(args) > 0 {
		cmdName := args[0]
		if cmd, exists := s.commands[cmdName]; exists {
			fmt.Fprintf(s.out, "\n📖 %s\n", cmdName)
			fmt.Fprintf(s.out, "   %s\n", cmd.Description)
			fmt.Fprintf(s.out, "   Usage: %s\n", cmd.Usage)
			return nil
		}
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	fmt.Fprintln(s.out, "\n📚 Available Commands:")
	fmt.Fprintln(s.out, "====================")
	for _, category := range []string{"game", "info", "utility"} {
		var names []string
		for name, cmd := range s.commands {
			if cmd.Category == category {
				names = append(names, name)
			}
		}
		sort.Strings(names)

		fmt.Fprintf(s.out, "\n%s:\n", strings.ToUpper(category))
		for _, name := range names {
			fmt.Fprintf(s.out, "  %-8s %s\n", name, s.commands[name].Description)
		}
	}
	fmt.Fprintln(s.out, "\n  exit     Leave the playground")
	return nil
}

func handleStatus(ctx context.Context, s *Shell, args []string) error {
	fmt.Fprintf(s.out, "\n💰 Points: %d\n", s.player.Points)
	if len(s.player.Badges) == 0 {
		fmt.Fprintln(s.out, "🏅 Badges: none yet")
		return nil
	}
	fmt.Fprintln(s.out, "🏅 Badges:")
	for _, b := range s.player.Badges {
		def := models.BadgeDefinitions[b]
		fmt.Fprintf(s.out, "  %s %s - %s\n", def.Icon, b, def.Description)
	}
	return nil
}

func handleStats(ctx context.Context, s *Shell, args []string) error {
	stats := s.services.Players.Stats(s.player)
	fmt.Fprintf(s.out, "\n📊 Rounds: %d (won %d, lost %d)\n", stats.TotalRounds, stats.TotalWins, stats.TotalLosses)
	fmt.Fprintf(s.out, "   Won %d, lost %d, spent %d\n", stats.TotalWon, stats.TotalLost, stats.TotalSpent)
	fmt.Fprintf(s.out, "   Biggest win %d, biggest loss %d\n", stats.BiggestWin, stats.BiggestLoss)
	for _, card := range models.GameCards {
		if n := stats.RoundsByGame[card.ID]; n > 0 {
			fmt.Fprintf(s.out, "   %s %s: %d\n", card.Icon, card.Title, n)
		}
	}
	return nil
}

func handleBoxes(ctx context.Context, s *Shell, args []string) error {
	analysis, err := s.services.LuckyBoxes.Analyze()
	if err != nil {
		return err
	}
	boxes := s.services.LuckyBoxes.Boxes()
	fmt.Fprintln(s.out, "\n🎁 Lucky Box Shop")
	for i, box := range boxes {
		marker := ""
		if analysis[i].Best {
			marker = " ⭐ best expected value"
		}
		fmt.Fprintf(s.out, "  [%d] %s - price %d, EV %.1f (net %+.1f)%s\n",
			box.ID, box.Name, box.Price, analysis[i].ExpectedValue, analysis[i].NetExpected, marker)
		for _, item := range box.Items {
			fmt.Fprintf(s.out, "      %-14s %5d  %5.1f%%  %s\n", item.Name, item.Value, item.Probability*100, item.Rarity)
		}
	}
	return nil
}

func handleOpen(ctx context.Context, s *Shell, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: open <box_id>")
	}
	boxID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("box id must be a number: %s", args[0])
	}

	result, err := s.services.LuckyBoxes.OpenBox(ctx, s.player, boxID)
	if err != nil {
		return err
	}
	s.suspense("🎁 Opening the box")

	fmt.Fprintf(s.out, "\n🎉 %s: you got %s (%s) worth %d\n", result.Box.Name, result.Prize.Name, result.Prize.Rarity, result.Prize.Value)
	fmt.Fprintf(s.out, "   Net %+d against an expected %+.1f\n", result.NetChange, result.ExpectedValue-float64(result.Box.Price))
	s.printBadges(result.BadgesEarned)
	return nil
}

func handleCases(ctx context.Context, s *Shell, args []string) error {
	fmt.Fprintln(s.out, "\n🕵️ Find the Thief")
	for _, gc := range s.services.Investigations.Cases() {
		fmt.Fprintf(s.out, "  [%s] %s - %d suspects, %d clues\n", gc.ID, gc.Title, len(gc.Suspects), len(gc.Clues))
	}
	return nil
}

func handleCase(ctx context.Context, s *Shell, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: case <case_id>")
	}
	if s.session != nil && s.session.Case.ID == args[0] {
		if err := s.services.Investigations.Restart(ctx, s.session); err != nil {
			return err
		}
		s.printInfo("Investigation restarted")
	} else {
		session, err := s.services.Investigations.Start(ctx, args[0])
		if err != nil {
			return err
		}
		s.session = session
	}

	fmt.Fprintf(s.out, "\n📜 %s\n%s\n", s.session.Case.Title, s.session.Case.Story)
	return handleOdds(ctx, s, nil)
}

func handleClue(ctx context.Context, s *Shell, args []string) error {
	if s.session == nil {
		return fmt.Errorf("no open case. Use 'case <case_id>' first")
	}
	reveal, err := s.services.Investigations.RevealNextClue(ctx, s.session)
	if err != nil {
		return err
	}
	s.suspense("🔎 Examining the evidence")

	fmt.Fprintf(s.out, "\n🧩 Clue %d: %s\n", reveal.Clue.ID, reveal.Clue.Text)
	if reveal.Contradiction {
		s.printWarning("No remaining suspect fits this clue. The odds stay as they were.")
	}
	if err := handleOdds(ctx, s, nil); err != nil {
		return err
	}
	if reveal.Remaining == 0 {
		s.printInfo("Every clue is revealed. Time to 'accuse <suspect_id>'.")
	}
	return nil
}

func handleOdds(ctx context.Context, s *Shell, args []string) error {
	if s.session == nil {
		return fmt.Errorf("no open case. Use 'case <case_id>' first")
	}
	probs := s.session.Probabilities()
	for _, suspect := range s.session.Case.Suspects {
		p := probs[suspect.ID]
		fmt.Fprintf(s.out, "  %s %-10s %-18s %5.1f%% %s\n",
			suspect.Avatar, suspect.ID, suspect.Name, p*100, strings.Repeat("█", int(p*20)))
	}
	fmt.Fprintf(s.out, "  %d clues left\n", s.session.Remaining())
	return nil
}

func handleAccuse(ctx context.Context, s *Shell, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: accuse <suspect_id>")
	}
	if s.session == nil {
		return fmt.Errorf("no open case. Use 'case <case_id>' first")
	}
	result, err := s.services.Investigations.Accuse(ctx, s.player, s.session, args[0])
	if err != nil {
		return err
	}

	if result.Correct {
		s.printSuccess(fmt.Sprintf("%s did it! %+d points", result.Guilty.Name, result.PointsChange))
	} else {
		s.printWarning(fmt.Sprintf("Wrong! It was %s. %+d points", result.Guilty.Name, result.PointsChange))
	}
	s.printBadges(result.BadgesEarned)
	return nil
}

func handleBridge(ctx context.Context, s *Shell, args []string) error {
	if s.crossing == nil {
		s.crossing = s.services.Bridge.NewCrossing()
	}
	analysis, err := s.services.Bridge.Analyze()
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, "\n🌉 Survival Bridge")
	var line strings.Builder
	for _, a := range s.crossing.Adventurers {
		switch a {
		case models.AdventurerSafe:
			line.WriteString("✅")
		case models.AdventurerLost:
			line.WriteString("💀")
		default:
			line.WriteString("🧍")
		}
	}
	fmt.Fprintf(s.out, "  Adventurers: %s (%d waiting)\n", line.String(), s.crossing.Waiting())

	for i, o := range s.services.Bridge.Options() {
		marker := ""
		if analysis[i].Best {
			marker = " ⭐ best expected value"
		}
		fmt.Fprintf(s.out, "  send %d: %3.0f%% safe, %+d / %+d, EV %+.1f%s\n",
			o.Count, o.Probability*100, o.Reward, o.Penalty, analysis[i].ExpectedValue, marker)
	}
	return nil
}

func handleSend(ctx context.Context, s *Shell, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: send <count>")
	}
	count, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("count must be a number: %s", args[0])
	}
	if s.crossing == nil {
		s.crossing = s.services.Bridge.NewCrossing()
	}

	result, err := s.services.Bridge.SendAcross(ctx, s.player, s.crossing, count)
	if err != nil {
		return err
	}
	s.suspense("🌉 Crossing the bridge")

	if result.Success {
		s.printSuccess(fmt.Sprintf("All %d made it across! %+d points", result.Count, result.PointsChange))
	} else {
		s.printWarning(fmt.Sprintf("The bridge gave way under %d adventurers. %+d points", result.Count, result.PointsChange))
	}
	s.printBadges(result.BadgesEarned)
	if s.crossing.Waiting() == 0 {
		s.printInfo("Nobody is left waiting. Type 'again' to play another crossing.")
	}
	return nil
}

func handleAgain(ctx context.Context, s *Shell, args []string) error {
	if s.crossing == nil {
		s.crossing = s.services.Bridge.NewCrossing()
		return handleBridge(ctx, s, nil)
	}
	if !s.services.Bridge.Reset(s.crossing) {
		return fmt.Errorf("%d adventurers are still waiting", s.crossing.Waiting())
	}
	s.printInfo("A fresh group of adventurers arrives")
	return handleBridge(ctx, s, nil)
}

func handleTargets(ctx context.Context, s *Shell, args []string) error {
	analysis, err := s.services.Goals.Analyze()
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, "\n⚽ Goal or Miss")
	for i, t := range s.services.Goals.Targets() {
		marker := ""
		if analysis[i].Best {
			marker = " ⭐ best expected value"
		}
		if t.GoldenBoot {
			marker += " 👟"
		}
		fmt.Fprintf(s.out, "  [%s] %s: %3.0f%% to score, %+d / %+d, EV %+.1f%s\n",
			t.ID, t.Name, t.Probability*100, t.Reward, t.Penalty, analysis[i].ExpectedValue, marker)
	}
	return nil
}

func handleShoot(ctx context.Context, s *Shell, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: shoot <target_id>")
	}
	result, err := s.services.Goals.Shoot(ctx, s.player, args[0])
	if err != nil {
		return err
	}
	s.suspense("⚽ The ball is in the air")

	if result.Goal {
		s.printSuccess(fmt.Sprintf("GOAL in the %s! %+d points", result.Target.Name, result.PointsChange))
	} else {
		s.printWarning(fmt.Sprintf("Missed the %s. %+d points", result.Target.Name, result.PointsChange))
	}
	s.printBadges(result.BadgesEarned)
	return nil
}
