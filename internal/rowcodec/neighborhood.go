package rowcodec

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// arrondissementPatterns is the ordered matcher cascade for pulling a Paris
// arrondissement out of free-text address data. The first pattern whose
// capture group matches wins. Each capture group is a 1-2 digit (or, for
// the postal form, 3 digit) arrondissement number.
var arrondissementPatterns = []*regexp.Regexp{
	// "75019" style postal codes; the last three digits carry the number.
	regexp.MustCompile(`75(\d{3})`),
	// "20e " or "1er " followed by whitespace.
	regexp.MustCompile(`(\d{1,2})(?:er|e)\s`),
	// "Paris 20e", "Paris 1er".
	regexp.MustCompile(`Paris\s(\d{1,2})(?:er|e)`),
	// "Paris 20," or "Paris 20 " without the ordinal suffix.
	regexp.MustCompile(`Paris\s(\d{1,2})[\s,]`),
	// "10ème", "20eme".
	regexp.MustCompile(`(\d{1,2})(?:ème|eme)`),
	// Parenthesized, as in "Rue des Orteaux (20)".
	regexp.MustCompile(`\((\d{1,2})\)`),
}

// knownLocations maps street and place-name fragments to neighborhoods for
// addresses that carry no usable arrondissement pattern. Scanned in
// declaration order; the first fragment contained in the address wins.
var knownLocations = []struct {
	Fragment     string
	Neighborhood string
}{
	{"Belleville", "19e"},
	{"Menilmontant", "20e"},
	{"Bidassoa", "20e"},
	{"Orteaux", "20e"},
	{"Nation", "12e"},
	{"Roquepine", "8e"},
	{"Jussieu", "5e"},
	{"Luxembourg", "6e"},
	{"Rasselins", "20e"},
	{"Rigoles", "20e"},
	{"Gambetta", "20e"},
	{"Couronnes", "20e"},
	{"Davout", "20e"},
	{"Pelleport", "20e"},
	{"Maraichers", "20e"},
	{"Delgrès", "20e"},
	{"Dénoyez", "20e"},
	{"Déjerine", "20e"},
	{"Nakache", "20e"},
	{"Charonne", "11e"},
	{"CHARONNE", "11e"},
	{"Planchat", "11e"},
	{"Vercors", "12e"},
	{"Ramus", "20e"},
	{"Lumiére", "20e"},
	{"Lumière", "20e"},
	{"Louis Ganne", "20e"},
	{"Frapié", "20e"},
	{"Boyer", "20e"},
}

// NeighborhoodFromAddress infers a neighborhood like "19e" or "1er" from
// free-text address data. The arrondissement pattern cascade is tried
// first, then the known-locations table. Returns "" when nothing matches.
func NeighborhoodFromAddress(address string) string {
	for _, re := range arrondissementPatterns {
		if m := re.FindStringSubmatch(address); m != nil {
			if hood := formatArrondissement(m[1]); hood != "" {
				return hood
			}
		}
	}
	for _, loc := range knownLocations {
		if strings.Contains(address, loc.Fragment) {
			return loc.Neighborhood
		}
	}
	return ""
}

// formatArrondissement renders an arrondissement number as the French
// ordinal: "1er" for 1, "{n}e" otherwise. Leading zeros from postal codes
// are dropped.
func formatArrondissement(digits string) string {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return ""
	}
	if n == 1 {
		return "1er"
	}
	return fmt.Sprintf("%de", n)
}
