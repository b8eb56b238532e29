// Package parser turns the loosely shaped wire feed into the strict domain
// model consumed by rendering and stats.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"nhl-scores/feed"
	"nhl-scores/model"
)

// Reasons a single game gets dropped from the output.
var (
	ErrMissingTeams  = errors.New("teams block missing or incomplete")
	ErrMissingScore  = errors.New("score missing for team")
	ErrBadPeriod     = errors.New("unrecognized period")
	ErrMissingMinute = errors.New("minute missing for non-shootout goal")
)

// ParseGames transforms every feed entry. The result keeps feed order, with
// a nil entry for each dropped game so siblings are unaffected by one bad
// record.
func ParseGames(resp *feed.Response, logger *logrus.Logger) []*model.Game {
	games := make([]*model.Game, 0, len(resp.Games))

	for i := range resp.Games {
		game, err := ParseGame(&resp.Games[i])
		if err != nil {
			logger.WithError(err).Warn("dropping malformed game")
			games = append(games, nil)

			continue
		}

		games = append(games, game)
	}

	return games
}

// ParseGame builds the domain Game for one feed entry. A missing teams
// block, a side absent from the scores map, or a goal violating the
// period/minute contract fails this game only.
func ParseGame(entry *feed.Game) (*model.Game, error) {
	if entry.Teams == nil || entry.Teams.Home.Abbreviation == "" || entry.Teams.Away.Abbreviation == "" {
		return nil, ErrMissingTeams
	}

	home := entry.Teams.Home.Abbreviation
	away := entry.Teams.Away.Abbreviation

	homeScore, ok := entry.Scores[home]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingScore, home)
	}

	awayScore, ok := entry.Scores[away]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingScore, away)
	}

	goals := make([]model.Goal, 0, len(entry.Goals))

	for i := range entry.Goals {
		goal, err := parseGoal(&entry.Goals[i])
		if err != nil {
			return nil, err
		}

		goals = append(goals, goal)
	}

	return &model.Game{
		Home:       home,
		Away:       away,
		Score:      fmt.Sprintf("%d-%d", homeScore, awayScore),
		Goals:      goals,
		Status:     entry.Status.State,
		Special:    specialMarker(entry.Goals),
		SeriesWins: seriesWins(entry.CurrentStats.PlayoffSeries),
	}, nil
}

func parseGoal(goal *feed.Goal) (model.Goal, error) {
	minute, err := goalMinute(goal)
	if err != nil {
		return model.Goal{}, err
	}

	team := strings.ReplaceAll(goal.Team, `"`, "")

	assists := make([]model.Player, 0, len(goal.Assists))
	for _, assist := range goal.Assists {
		assists = append(assists, splitName(assist.Player, team))
	}

	return model.Goal{
		Scorer:  splitName(goal.Scorer.Player, team),
		Assists: assists,
		Minute:  minute,
		Special: specialGoal(goal.Period),
		Team:    team,
	}, nil
}

// goalMinute converts the feed's per-period clock into an elapsed game
// minute over 20 minute periods. Shootout attempts carry no clock and map
// to the sentinel.
func goalMinute(goal *feed.Goal) (int, error) {
	if goal.Period == "SO" {
		return model.ShootoutMinute, nil
	}

	if goal.Min == nil {
		return 0, fmt.Errorf("%w: period %q", ErrMissingMinute, goal.Period)
	}

	if goal.Period == "OT" {
		return 60 + *goal.Min, nil
	}

	period, err := strconv.Atoi(goal.Period)
	if err != nil || period < 1 {
		return 0, fmt.Errorf("%w: %q", ErrBadPeriod, goal.Period)
	}

	return 20*(period-1) + *goal.Min, nil
}

// specialGoal reports whether a goal happened outside the first three
// periods. Anything that does not parse as a number counts as special; the
// only literals the feed should send are OT and SO, and an unexpected one is
// safer treated as extraordinary than as regulation.
func specialGoal(period string) bool {
	parsed, err := strconv.Atoi(period)
	if err != nil {
		return true
	}

	return parsed >= 4
}

// specialMarker derives the game-level marker from the last goal's period.
// Numeric periods past the third are playoff overtimes and count as "ot".
func specialMarker(goals []feed.Goal) string {
	if len(goals) == 0 {
		return model.SpecialNone
	}

	switch goals[len(goals)-1].Period {
	case "1", "2", "3":
		return model.SpecialNone
	case "OT":
		return model.SpecialOvertime
	case "SO":
		return model.SpecialShootout
	default:
		return model.SpecialOvertime
	}
}

func seriesWins(series *feed.PlayoffSeries) map[string]int {
	if series == nil {
		return nil
	}

	wins := make(map[string]int, len(series.Wins))
	for team, count := range series.Wins {
		wins[team] = int(count)
	}

	return wins
}

// splitName splits a full name on the first space. A single-token name gets
// an empty surname. Multi-word first names end up in the surname, a known
// tradeoff since the feed carries no structured name data.
func splitName(full, team string) model.Player {
	first, last, _ := strings.Cut(full, " ")

	return model.Player{FirstName: first, LastName: last, Team: team}
}
