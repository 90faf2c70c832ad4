// Package region maps arrival countries to continents for the regional
// volume summaries. It is the injected classifier collaborator of the
// aggregation engine: lookups are backed by an embedded ISO 3166 table,
// failures degrade to "other", and nothing here ever panics.
package region

import (
	"strings"
	"sync"
)

// Sentinel region values.
const (
	// Other is returned for any country that cannot be classified.
	Other = "other"
	// USA is the reserved region for the United States, kept distinct
	// from the rest of North America in the reports.
	USA = "usa"
)

// Continent names as they appear in region selectors, lowercase.
const (
	Africa       = "africa"
	Antarctica   = "antarctica"
	Asia         = "asia"
	Europe       = "europe"
	NorthAmerica = "north america"
	Oceania      = "oceania"
	SouthAmerica = "south america"
)

// Valid region selector values for the weekday volume query: "world",
// "usa", or a continent.
var Selectors = []string{
	"world", Asia, Africa, Europe, NorthAmerica, SouthAmerica, Oceania, USA,
}

// IsSelector reports whether s (already lowercased) is a known region
// selector.
func IsSelector(s string) bool {
	for _, sel := range Selectors {
		if s == sel {
			return true
		}
	}
	return false
}

type countryInfo struct {
	name      string
	continent string
}

var nameIndexOnce sync.Once
var nameIndex map[string]string // lowercase country name -> alpha-2

// Classify maps an ISO 3166-1 alpha-2 code or an English country name to
// its lowercase continent, with the United States reported as USA. Any
// lookup failure returns Other; Classify never fails louder than that.
func Classify(country string) string {
	s := strings.TrimSpace(country)
	if s == "" {
		return Other
	}

	code := strings.ToUpper(s)
	if len(code) != 2 {
		nameIndexOnce.Do(buildNameIndex)
		c, ok := nameIndex[strings.ToLower(s)]
		if !ok {
			return Other
		}
		code = c
	}

	info, ok := countries[code]
	if !ok {
		return Other
	}
	if code == "US" {
		return USA
	}
	return info.continent
}

func buildNameIndex() {
	nameIndex = make(map[string]string, len(countries))
	for code, info := range countries {
		nameIndex[strings.ToLower(info.name)] = code
	}
	// Common aliases that appear in flight feeds.
	nameIndex["united states of america"] = "US"
	nameIndex["usa"] = "US"
	nameIndex["uk"] = "GB"
	nameIndex["great britain"] = "GB"
	nameIndex["south korea"] = "KR"
	nameIndex["north korea"] = "KP"
	nameIndex["russia"] = "RU"
	nameIndex["vietnam"] = "VN"
	nameIndex["iran"] = "IR"
	nameIndex["syria"] = "SY"
	nameIndex["laos"] = "LA"
	nameIndex["bolivia"] = "BO"
	nameIndex["venezuela"] = "VE"
	nameIndex["tanzania"] = "TZ"
	nameIndex["moldova"] = "MD"
	nameIndex["brunei"] = "BN"
	nameIndex["czech republic"] = "CZ"
	nameIndex["ivory coast"] = "CI"
	nameIndex["cape verde"] = "CV"
	nameIndex["macau"] = "MO"
	nameIndex["palestine"] = "PS"
	nameIndex["taiwan"] = "TW"
}
