package output

// CityName maps a team abbreviation to the city name shown in the header.
// The two New York teams are spelled out to stay distinguishable.
func CityName(abbr string) string {
	switch abbr {
	case "BOS":
		return "Boston"
	case "BUF":
		return "Buffalo"
	case "NJD":
		return "New Jersey"
	case "NYI":
		return "NY Islanders"
	case "NYR":
		return "NY Rangers"
	case "PHI":
		return "Philadelphia"
	case "PIT":
		return "Pittsburgh"
	case "WSH":
		return "Washington"
	case "CAR":
		return "Carolina"
	case "CHI":
		return "Chicago"
	case "CBJ":
		return "Columbus"
	case "DAL":
		return "Dallas"
	case "DET":
		return "Detroit"
	case "FLA":
		return "Florida"
	case "NSH":
		return "Nashville"
	case "TBL":
		return "Tampa Bay"
	case "ANA":
		return "Anaheim"
	case "ARI":
		return "Arizona"
	case "COL":
		return "Colorado"
	case "LAK":
		return "Los Angeles"
	case "MIN":
		return "Minnesota"
	case "SJS":
		return "San Jose"
	case "STL":
		return "St. Louis"
	case "VGK":
		return "Vegas"
	case "CGY":
		return "Calgary"
	case "EDM":
		return "Edmonton"
	case "MTL":
		return "Montreal"
	case "OTT":
		return "Ottawa"
	case "TOR":
		return "Toronto"
	case "VAN":
		return "Vancouver"
	case "WPG":
		return "Winnipeg"
	case "SEA":
		return "Seattle"
	default:
		return "[unknown]"
	}
}
