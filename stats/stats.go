// Package stats folds goals into per-player tallies for the highlight list.
package stats

import (
	"nhl-scores/config"
	"nhl-scores/model"
)

// Aggregate counts goals and assists for players whose surname appears in
// the highlight set. Keys are full Player values, so two players sharing a
// surname stay separate. Shootout deciders never count: the league records
// them as neither goals nor points.
func Aggregate(goals []model.Goal, highlights config.Highlights) map[model.Player]model.Stat {
	tally := make(map[model.Player]model.Stat)

	for _, goal := range goals {
		if goal.Minute == model.ShootoutMinute {
			continue
		}

		if highlights[goal.Scorer.LastName] {
			entry := tally[goal.Scorer]
			entry.Goals++
			tally[goal.Scorer] = entry
		}

		for _, assist := range goal.Assists {
			if highlights[assist.LastName] {
				entry := tally[assist]
				entry.Assists++
				tally[assist] = entry
			}
		}
	}

	return tally
}

// Disambiguate maps tracked players to display names. A player whose
// surname is unique within the tally keeps the bare surname; a collision
// with any other tracked player adds the first initial. Only the current
// tally matters, so the result is deterministic per call.
func Disambiguate(tally map[model.Player]model.Stat) map[string]model.Stat {
	display := make(map[string]model.Stat, len(tally))

	for player, stat := range tally {
		name := player.LastName

		for other := range tally {
			if other != player && other.LastName == player.LastName {
				name = initialed(player)

				break
			}
		}

		display[name] = stat
	}

	return display
}

func initialed(player model.Player) string {
	if player.FirstName == "" {
		return player.LastName
	}

	initial := []rune(player.FirstName)[0]

	return string(initial) + ". " + player.LastName
}
