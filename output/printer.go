// Package output renders parsed games as fixed-width, optionally colorized
// text in the teletext style.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"nhl-scores/config"
	"nhl-scores/model"
	"nhl-scores/stats"
)

// Options control one rendering pass. Interactive is decided by the caller,
// so tests can pin either path; colors are emitted only when both UseColors
// and Interactive hold.
type Options struct {
	UseColors      bool
	ShowHighlights bool
	ShowStats      bool
	Interactive    bool
}

// Printer renders games to a single writer.
type Printer struct {
	w          io.Writer
	opts       Options
	highlights config.Highlights

	normal  *color.Color // regulation goals
	special *color.Color // overtime and shootout goals
	marked  *color.Color // highlighted players, stats, series
	final   *color.Color // finished-game score
	plain   *color.Color // header text and live score
}

// NewPrinter creates a printer for one rendering pass.
func NewPrinter(w io.Writer, opts Options, highlights config.Highlights) *Printer {
	return &Printer{
		w:          w,
		opts:       opts,
		highlights: highlights,
		normal:     forced(color.FgCyan),
		special:    forced(color.FgMagenta),
		marked:     forced(color.FgYellow),
		final:      forced(color.FgGreen),
		plain:      forced(color.FgWhite),
	}
}

// forced builds a color that ignores the package-global tty sniffing; the
// printer gates activation itself through Options.
func forced(attr color.Attribute) *color.Color {
	c := color.New(attr)
	c.EnableColor()

	return c
}

func (p *Printer) colorsActive() bool {
	return p.opts.UseColors && p.opts.Interactive
}

// paint wraps s in the color's escape codes when colors are active.
func (p *Printer) paint(c *color.Color, s string) string {
	if !p.colorsActive() {
		return s
	}

	return c.Sprint(s)
}

// PrintGames renders every parsed game in feed order. Dropped (nil) games
// are skipped without a trace; an empty feed gets a single notice line.
func (p *Printer) PrintGames(games []*model.Game) {
	if len(games) == 0 {
		fmt.Fprintln(p.w, "No games today.")

		return
	}

	for _, game := range games {
		if game == nil {
			continue
		}

		p.PrintGame(game)
	}
}

// PrintGame renders one game: header, paired goal rows, the shootout
// decider on its own line, then the optional stats and series lines. A
// blank line always trails the goal rows.
func (p *Printer) PrintGame(game *model.Game) {
	p.printHeader(game)

	home := sideGoals(game, game.Home)
	away := sideGoals(game, game.Away)

	rows := len(home)
	if len(away) > rows {
		rows = len(away)
	}

	for i := 0; i < rows; i++ {
		switch {
		case i < len(home) && i < len(away):
			p.printBothGoals(&home[i], &away[i])
		case i < len(home):
			p.printHomeGoal(&home[i])
		default:
			p.printAwayGoal(&away[i])
		}
	}

	// The game-winning shootout goal goes on its own line: the game must be
	// tied before it, so printing it after the paired rows is safe.
	if game.Special == model.SpecialShootout && len(game.Goals) > 0 {
		decider := game.Goals[len(game.Goals)-1]
		if decider.Team == game.Home {
			p.printHomeGoal(&decider)
		} else {
			p.printAwayGoal(&decider)
		}
	}

	fmt.Fprintln(p.w)

	if p.opts.ShowStats {
		p.printStats(game.Goals)
	}

	p.printSeries(game)
}

// sideGoals keeps one side's goals for the paired body. Shootout deciders
// stay out unless the game is marked "ot"; overtime minutes top out below
// the sentinel, so the clause only ever excludes true shootout entries.
func sideGoals(game *model.Game, team string) []model.Goal {
	kept := make([]model.Goal, 0, len(game.Goals))

	for _, goal := range game.Goals {
		if goal.Team != team {
			continue
		}

		if goal.Minute == model.ShootoutMinute && game.Special != model.SpecialOvertime {
			continue
		}

		kept = append(kept, goal)
	}

	return kept
}

func (p *Printer) printHeader(game *model.Game) {
	left := fmt.Sprintf("%-15s %2s %-15s %-2s ", CityName(game.Home), "-", CityName(game.Away), "")
	fmt.Fprint(p.w, p.paint(p.plain, left))

	switch game.Status {
	case model.StatusFinal:
		fmt.Fprintln(p.w, p.paint(p.final, fmt.Sprintf("%6s", game.Special+" "+game.Score)))
	case model.StatusPostponed:
		fmt.Fprintln(p.w, p.paint(p.plain, fmt.Sprintf("%6s", "POSTP.")))
	default:
		fmt.Fprintln(p.w, p.paint(p.plain, fmt.Sprintf("%6s", game.Score)))
	}
}

func (p *Printer) goalColor(goal *model.Goal) *color.Color {
	switch {
	case goal.Special:
		return p.special
	case p.opts.ShowHighlights && p.highlights[goal.Scorer.LastName]:
		return p.marked
	default:
		return p.normal
	}
}

func (p *Printer) printBothGoals(home, away *model.Goal) {
	homeMessage := fmt.Sprintf("%-15s %2d ", home.Scorer.LastName, home.Minute)
	fmt.Fprint(p.w, p.paint(p.goalColor(home), homeMessage))

	awayMessage := fmt.Sprintf("%-15s %2d", away.Scorer.LastName, away.Minute)
	fmt.Fprintln(p.w, p.paint(p.goalColor(away), awayMessage))
}

func (p *Printer) printHomeGoal(goal *model.Goal) {
	message := fmt.Sprintf("%-15s %2d", goal.Scorer.LastName, goal.Minute)
	fmt.Fprintln(p.w, p.paint(p.goalColor(goal), message))
}

func (p *Printer) printAwayGoal(goal *model.Goal) {
	message := fmt.Sprintf("%-15s %2s %-15s %2d", "", "", goal.Scorer.LastName, goal.Minute)
	fmt.Fprintln(p.w, p.paint(p.goalColor(goal), message))
}

// printStats renders the per-game tally line for highlighted players.
// Nothing is printed when no highlighted player took part, including when
// the highlight set itself is empty.
func (p *Printer) printStats(goals []model.Goal) {
	tally := stats.Aggregate(goals, p.highlights)
	if len(tally) == 0 {
		return
	}

	parts := make([]string, 0, len(tally))
	for name, stat := range stats.Disambiguate(tally) {
		parts = append(parts, fmt.Sprintf("%s %d+%d", name, stat.Goals, stat.Assists))
	}

	line := "(" + strings.Join(parts, ", ") + ")"
	if p.opts.ShowHighlights {
		fmt.Fprintln(p.w, p.paint(p.marked, line))
	} else {
		fmt.Fprintln(p.w, line)
	}

	fmt.Fprintln(p.w)
}

func (p *Printer) printSeries(game *model.Game) {
	if game.SeriesWins == nil {
		return
	}

	line := fmt.Sprintf("Series %d-%d", game.SeriesWins[game.Home], game.SeriesWins[game.Away])
	fmt.Fprintln(p.w, p.paint(p.marked, line))
	fmt.Fprintln(p.w)
}
