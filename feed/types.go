package feed

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexInt decodes a JSON number or a numeric string. The feed is not
// consistent about which one the scores map carries.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("numeric string expected: %w", err)
		}
		*f = FlexInt(n)
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexInt(n)

	return nil
}

// Response is the top-level scores document.
type Response struct {
	Date  Date   `json:"date"`
	Games []Game `json:"games"`
}

type Date struct {
	Raw    string `json:"raw"`
	Pretty string `json:"pretty"`
}

// Game is one per-game record. The goals list is absent entirely before the
// first goal; teams and scores are mandatory for a renderable game.
type Game struct {
	Status       Status             `json:"status"`
	StartTime    string             `json:"startTime"`
	Goals        []Goal             `json:"goals"`
	Scores       map[string]FlexInt `json:"scores"`
	Teams        *Teams             `json:"teams"`
	PreGameStats Stats              `json:"preGameStats"`
	CurrentStats Stats              `json:"currentStats"`
}

type Status struct {
	State    string    `json:"state"`
	Progress *Progress `json:"progress"`
}

type Progress struct {
	CurrentPeriod              int    `json:"currentPeriod"`
	CurrentPeriodOrdinal       string `json:"currentPeriodOrdinal"`
	CurrentPeriodTimeRemaining struct {
		Pretty string `json:"pretty"`
		Min    int    `json:"min"`
		Sec    int    `json:"sec"`
	} `json:"currentPeriodTimeRemaining"`
}

type Teams struct {
	Away Team `json:"away"`
	Home Team `json:"home"`
}

type Team struct {
	Abbreviation string `json:"abbreviation"`
	ID           int    `json:"id"`
	LocationName string `json:"locationName"`
	ShortName    string `json:"shortName"`
	TeamName     string `json:"teamName"`
}

// Goal is one scoring event. Period is either a small positive integer in
// string form or the literal "OT"/"SO". Min is required for everything
// except shootout attempts, which have no game clock.
type Goal struct {
	Period   string   `json:"period"`
	Scorer   Scorer   `json:"scorer"`
	Team     string   `json:"team"`
	Assists  []Scorer `json:"assists"`
	EmptyNet bool     `json:"emptyNet"`
	Strength string   `json:"strength"`
	Min      *int     `json:"min"`
	Sec      *int     `json:"sec"`
}

type Scorer struct {
	Player      string `json:"player"`
	SeasonTotal int    `json:"seasonTotal"`
}

// Stats is a team-level stat block. Only PlayoffSeries is consumed; the rest
// stays opaque.
type Stats struct {
	Records       map[string]json.RawMessage `json:"records"`
	Streaks       map[string]json.RawMessage `json:"streaks"`
	Standings     map[string]json.RawMessage `json:"standings"`
	PlayoffSeries *PlayoffSeries             `json:"playoffSeries"`
}

type PlayoffSeries struct {
	Round int                `json:"round"`
	Wins  map[string]FlexInt `json:"wins"`
}
