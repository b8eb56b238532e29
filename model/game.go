package model

// Player identifies one skater. Two Player values describe the same person
// only when all three fields match; colliding surnames across different
// identities are resolved at display time, not here.
type Player struct {
	FirstName string
	LastName  string
	Team      string
}

// Goal is a single scoring event within a game.
type Goal struct {
	Scorer  Player
	Assists []Player // feed order, at most two
	Minute  int      // elapsed game minute, ShootoutMinute for SO deciders
	Special bool     // overtime, shootout or any period past the third
	Team    string
}

// Game states reported by the feed.
const (
	StatusLive      = "LIVE"
	StatusFinal     = "FINAL"
	StatusPostponed = "POSTPONED"
)

// Game-level special markers, decided by the last goal's period.
const (
	SpecialNone     = ""
	SpecialOvertime = "ot"
	SpecialShootout = "so"
)

// ShootoutMinute marks a shootout-deciding goal. It is a sentinel, not a
// real clock reading: regulation plus overtime never reaches it the same way.
const ShootoutMinute = 65

type Game struct {
	Home  string
	Away  string
	Score string // "home-away"
	Goals []Goal // chronological, as given by the feed

	Status  string
	Special string

	// Playoff series win counts per team abbreviation, nil outside playoffs.
	SeriesWins map[string]int
}

// Stat is a highlighted player's tally for one rendering pass.
type Stat struct {
	Goals   int
	Assists int
}
