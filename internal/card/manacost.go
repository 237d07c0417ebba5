package card

import (
	"regexp"
	"strconv"
	"strings"
)

// manaSymbol matches one {…} mana symbol: {1}, {G}, {X}, {W/U}, {2/B}.
// Adapted from the teacher's mana.ParseCost symbol scanner — here it
// only ever feeds ConvertedCost, never a payment system (§1 Non-goals
// excludes mana accounting; ManaCostText/ConvertedCost are display
// fields on Card per §3).
var manaSymbol = regexp.MustCompile(`\{([^}]+)\}`)

// ManaCost is a parsed printed mana cost, kept only to compute a
// converted mana cost when a caller has a cost string but no
// precomputed CMC.
type ManaCost struct {
	Generic int
	Colored int // any single colored, colorless {C} or hybrid symbol counts as 1 toward CMC
	X       bool
}

// ParseManaCost parses a cost string like "{2}{R}{R}" or "{X}{U}".
// Malformed or unknown symbols are simply ignored — per §7 ParseMalformed
// handling, this is a display helper and must never panic on bad input.
func ParseManaCost(cost string) ManaCost {
	var mc ManaCost
	for _, match := range manaSymbol.FindAllStringSubmatch(cost, -1) {
		symbol := strings.ToUpper(strings.TrimSpace(match[1]))
		switch {
		case symbol == "X":
			mc.X = true
		case symbol == "W", symbol == "U", symbol == "B", symbol == "R", symbol == "G", symbol == "C":
			mc.Colored++
		default:
			if n, err := strconv.Atoi(symbol); err == nil {
				mc.Generic += n
			} else if strings.Contains(symbol, "/") {
				// Hybrid ({W/U}, {2/B}): counts as one colored symbol
				// toward CMC regardless of which half is paid.
				mc.Colored++
			}
			// anything else: unrecognized symbol, ignored
		}
	}
	return mc
}

// ConvertedCost sums to a converted mana cost. X always contributes 0,
// matching variable-cost printings normalizing to 0 per §3.
func (mc ManaCost) ConvertedCost() int {
	return mc.Generic + mc.Colored
}
