package stats

import (
	"testing"

	"github.com/stretchr/testify/require"

	"nhl-scores/config"
	"nhl-scores/model"
)

func goal(scorer model.Player, minute int, assists ...model.Player) model.Goal {
	return model.Goal{Scorer: scorer, Assists: assists, Minute: minute, Team: scorer.Team}
}

func TestAggregateCountsHighlightedOnly(t *testing.T) {
	barkov := model.Player{FirstName: "Aleksander", LastName: "Barkov", Team: "FLA"}
	verhaeghe := model.Player{FirstName: "Carter", LastName: "Verhaeghe", Team: "FLA"}
	point := model.Player{FirstName: "Brayden", LastName: "Point", Team: "TBL"}

	goals := []model.Goal{
		goal(barkov, 12, verhaeghe),
		goal(point, 24, barkov),
		goal(verhaeghe, 41, barkov),
	}

	tally := Aggregate(goals, config.Highlights{"Barkov": true})

	require.Len(t, tally, 1)
	require.Equal(t, model.Stat{Goals: 1, Assists: 2}, tally[barkov])
}

func TestAggregateExcludesShootoutDecider(t *testing.T) {
	barkov := model.Player{FirstName: "Aleksander", LastName: "Barkov", Team: "FLA"}

	goals := []model.Goal{
		goal(barkov, 21),
		goal(barkov, model.ShootoutMinute),
	}

	tally := Aggregate(goals, config.Highlights{"Barkov": true})

	require.Equal(t, model.Stat{Goals: 1}, tally[barkov])
}

func TestAggregateKeepsSharedSurnamesApart(t *testing.T) {
	jack := model.Player{FirstName: "Jack", LastName: "Hughes", Team: "NJD"}
	quinn := model.Player{FirstName: "Quinn", LastName: "Hughes", Team: "VAN"}

	goals := []model.Goal{
		goal(jack, 5),
		goal(quinn, 33),
	}

	tally := Aggregate(goals, config.Highlights{"Hughes": true})

	require.Len(t, tally, 2)
	require.Equal(t, model.Stat{Goals: 1}, tally[jack])
	require.Equal(t, model.Stat{Goals: 1}, tally[quinn])
}

func TestAggregateEmptyHighlightList(t *testing.T) {
	barkov := model.Player{FirstName: "Aleksander", LastName: "Barkov", Team: "FLA"}

	tally := Aggregate([]model.Goal{goal(barkov, 10)}, config.Highlights{})
	require.Empty(t, tally)
}

func TestDisambiguateCollidingSurnames(t *testing.T) {
	jack := model.Player{FirstName: "Jack", LastName: "Hughes", Team: "NJD"}
	quinn := model.Player{FirstName: "Quinn", LastName: "Hughes", Team: "VAN"}
	barkov := model.Player{FirstName: "Aleksander", LastName: "Barkov", Team: "FLA"}

	display := Disambiguate(map[model.Player]model.Stat{
		jack:   {Goals: 1},
		quinn:  {Goals: 1},
		barkov: {Assists: 1},
	})

	require.Len(t, display, 3)
	require.Equal(t, model.Stat{Goals: 1}, display["J. Hughes"])
	require.Equal(t, model.Stat{Goals: 1}, display["Q. Hughes"])
	require.Equal(t, model.Stat{Assists: 1}, display["Barkov"])
}

func TestDisambiguateSameTeamCollision(t *testing.T) {
	marcus := model.Player{FirstName: "Marcus", LastName: "Foligno", Team: "MIN"}
	nick := model.Player{FirstName: "Nick", LastName: "Foligno", Team: "MIN"}

	display := Disambiguate(map[model.Player]model.Stat{
		marcus: {Goals: 1},
		nick:   {Goals: 2},
	})

	require.Equal(t, model.Stat{Goals: 1}, display["M. Foligno"])
	require.Equal(t, model.Stat{Goals: 2}, display["N. Foligno"])
}

func TestDisambiguateUniqueSurnameStaysBare(t *testing.T) {
	barkov := model.Player{FirstName: "Aleksander", LastName: "Barkov", Team: "FLA"}

	display := Disambiguate(map[model.Player]model.Stat{barkov: {Goals: 2}})

	require.Equal(t, map[string]model.Stat{"Barkov": {Goals: 2}}, display)
}
