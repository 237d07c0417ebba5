// Package oracle lifts printed card text into the structured Ability
// set defined by internal/card (C2). Parse is a pure function: same
// input always yields the same output, and unmatched lines become
// card.Unresolved abilities rather than being guessed at — see §4.1.
//
// The rule table below is modeled on the teacher's regexp-driven line
// classifiers (mana.ParseCost's symbol scanner, and the bracket
// simulator's condenser/patterns.go keep/ignore/extract tables): a
// fixed, ordered list of compiled patterns, first match wins, no
// backtracking between rules.
package oracle

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PropterMalone/3cblue/internal/card"
)

var (
	reminderText = regexp.MustCompile(`\([^)]*\)`)

	reWard       = regexp.MustCompile(`(?i)^ward\s+(\{[^}]*\})\s*$`)
	reProtection = regexp.MustCompile(`(?i)^protection from ([^(]+?)\s*(?:\([^)]*\))?\s*$`)

	reETBDamage = regexp.MustCompile(`(?i)^when .+ enters(?: the battlefield)?,\s*(?:it\s+)?deals\s+(\d+)\s+damage\s+to\s+(.+?)\.?\s*$`)
	reETBLife   = regexp.MustCompile(`(?i)^when .+ enters(?: the battlefield)?,\s*(?:you\s+)?gain\s+(\d+)\s+life\.?\s*$`)
	reETBToken  = regexp.MustCompile(`(?i)^when .+ enters(?: the battlefield)?,\s*create\s+(?:(a|an|one|two|three|four|five|six)\s+)?(\d+)/(\d+)\s+.*?tokens?\.?\s*$`)

	reActivatedTapDamage = regexp.MustCompile(`(?i)^\{t\}[^:]*:\s*.*deals\s+(\d+)\s+damage\s+to\s+(.+?)\.?\s*$`)
	reActivatedTapLife   = regexp.MustCompile(`(?i)^\{t\}[^:]*:\s*.*gain\s+(\d+)\s+life\.?\s*$`)

	rePTModifier = regexp.MustCompile(`(?i)(other creatures you control|enchanted creature|equipped creature|creatures you control)\s+gets?\s+([+-]\d+)/([+-]\d+)`)
)

var tokenCountWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6,
	"a": 1, "an": 1,
}

var ptTargetByPhrase = map[string]card.PTTarget{
	"other creatures you control": card.PTTargetOtherCreaturesYouControl,
	"enchanted creature":          card.PTTargetEnchantedCreature,
	"equipped creature":           card.PTTargetEquippedCreature,
	"creatures you control":       card.PTTargetCreaturesYouControl,
}

// Parse lifts oracle text into a sequence of Abilities, one per line
// (possibly more for a comma-separated keyword line, exactly one
// Unresolved for any line matching no rule). Empty/whitespace input
// yields an empty sequence.
func Parse(oracleText string) []card.Ability {
	var abilities []card.Ability
	for _, rawLine := range strings.Split(oracleText, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}
		abilities = append(abilities, parseLine(line)...)
	}
	return abilities
}

func parseLine(line string) []card.Ability {
	if kws, ok := parseKeywordLine(line); ok {
		return kws
	}
	if a, ok := parseWard(line); ok {
		return []card.Ability{a}
	}
	if a, ok := parseProtection(line); ok {
		return []card.Ability{a}
	}
	if a, ok := parseETBDamage(line); ok {
		return []card.Ability{a}
	}
	if a, ok := parseETBLifeGain(line); ok {
		return []card.Ability{a}
	}
	if a, ok := parseETBCreateToken(line); ok {
		return []card.Ability{a}
	}
	if a, ok := parseActivatedTapDamage(line); ok {
		return []card.Ability{a}
	}
	if a, ok := parseActivatedTapLifeGain(line); ok {
		return []card.Ability{a}
	}
	if a, ok := parseStaticPTModifier(line); ok {
		return []card.Ability{a}
	}
	return []card.Ability{{
		Kind:             card.KindUnresolved,
		UnresolvedText:   line,
		UnresolvedReason: "no matching parser rule",
	}}
}

// parseKeywordLine implements §4.1 rule 1: strip reminder text, split on
// commas, and only succeed if every resulting token is a known simple
// keyword (ward and protection are excluded — they carry parameters and
// are handled by rules 2 and 3).
func parseKeywordLine(line string) ([]card.Ability, bool) {
	stripped := reminderText.ReplaceAllString(line, "")
	stripped = strings.TrimSpace(stripped)
	if stripped == "" {
		return nil, false
	}
	tokens := strings.Split(stripped, ",")
	keywords := make([]card.Keyword, 0, len(tokens))
	for _, tok := range tokens {
		text := strings.ToLower(strings.TrimSpace(tok))
		if text == "" {
			return nil, false
		}
		kw, ok := card.KeywordFromText(text)
		if !ok || kw == card.Ward || kw == card.Protection {
			return nil, false
		}
		keywords = append(keywords, kw)
	}
	abilities := make([]card.Ability, len(keywords))
	for i, kw := range keywords {
		abilities[i] = card.Ability{Kind: card.KindKeyword, Keyword: kw}
	}
	return abilities, true
}

func parseWard(line string) (card.Ability, bool) {
	m := reWard.FindStringSubmatch(line)
	if m == nil {
		return card.Ability{}, false
	}
	return card.Ability{Kind: card.KindKeyword, Keyword: card.Ward, WardCost: m[1]}, true
}

func parseProtection(line string) (card.Ability, bool) {
	m := reProtection.FindStringSubmatch(line)
	if m == nil {
		return card.Ability{}, false
	}
	return card.Ability{
		Kind:                card.KindKeyword,
		Keyword:             card.Protection,
		ProtectionQualifier: strings.TrimSpace(m[1]),
	}, true
}

func parseETBDamage(line string) (card.Ability, bool) {
	m := reETBDamage.FindStringSubmatch(line)
	if m == nil {
		return card.Ability{}, false
	}
	amount, err := strconv.Atoi(m[1])
	if err != nil {
		return card.Ability{Kind: card.KindUnresolved, UnresolvedText: line, UnresolvedReason: "malformed numeric field"}, true
	}
	return card.Ability{
		Kind:         card.KindETBDamage,
		DamageAmount: amount,
		DamageTarget: classifyDamageTarget(m[2]),
	}, true
}

func parseETBLifeGain(line string) (card.Ability, bool) {
	m := reETBLife.FindStringSubmatch(line)
	if m == nil {
		return card.Ability{}, false
	}
	amount, err := strconv.Atoi(m[1])
	if err != nil {
		return card.Ability{Kind: card.KindUnresolved, UnresolvedText: line, UnresolvedReason: "malformed numeric field"}, true
	}
	return card.Ability{Kind: card.KindETBLifeGain, LifeAmount: amount}, true
}

func parseETBCreateToken(line string) (card.Ability, bool) {
	m := reETBToken.FindStringSubmatch(line)
	if m == nil {
		return card.Ability{}, false
	}
	count := 1
	if word := strings.ToLower(m[1]); word != "" {
		if n, ok := tokenCountWords[word]; ok {
			count = n
		}
	}
	power, err1 := strconv.Atoi(m[2])
	toughness, err2 := strconv.Atoi(m[3])
	if err1 != nil || err2 != nil {
		return card.Ability{Kind: card.KindUnresolved, UnresolvedText: line, UnresolvedReason: "malformed numeric field"}, true
	}
	return card.Ability{
		Kind:           card.KindETBCreateToken,
		TokenCount:     count,
		TokenPower:     power,
		TokenToughness: toughness,
	}, true
}

func parseActivatedTapDamage(line string) (card.Ability, bool) {
	m := reActivatedTapDamage.FindStringSubmatch(line)
	if m == nil {
		return card.Ability{}, false
	}
	amount, err := strconv.Atoi(m[1])
	if err != nil {
		return card.Ability{Kind: card.KindUnresolved, UnresolvedText: line, UnresolvedReason: "malformed numeric field"}, true
	}
	return card.Ability{
		Kind:         card.KindActivatedTapDamage,
		DamageAmount: amount,
		DamageTarget: classifyDamageTarget(m[2]),
	}, true
}

func parseActivatedTapLifeGain(line string) (card.Ability, bool) {
	m := reActivatedTapLife.FindStringSubmatch(line)
	if m == nil {
		return card.Ability{}, false
	}
	amount, err := strconv.Atoi(m[1])
	if err != nil {
		return card.Ability{Kind: card.KindUnresolved, UnresolvedText: line, UnresolvedReason: "malformed numeric field"}, true
	}
	return card.Ability{Kind: card.KindActivatedTapLifeGain, LifeAmount: amount}, true
}

func parseStaticPTModifier(line string) (card.Ability, bool) {
	m := rePTModifier.FindStringSubmatch(line)
	if m == nil {
		return card.Ability{}, false
	}
	target, ok := ptTargetByPhrase[strings.ToLower(m[1])]
	if !ok {
		return card.Ability{}, false
	}
	power, err1 := strconv.Atoi(m[2])
	toughness, err2 := strconv.Atoi(m[3])
	if err1 != nil || err2 != nil {
		return card.Ability{Kind: card.KindUnresolved, UnresolvedText: line, UnresolvedReason: "malformed numeric field"}, true
	}
	return card.Ability{
		Kind:        card.KindStaticPTModifier,
		PTPower:     power,
		PTToughness: toughness,
		PTTarget:    target,
	}, true
}

// classifyDamageTarget derives a DamageTarget from substring containment
// in the order {creature, opponent, player, any_target} per §4.1 rule 4.
func classifyDamageTarget(phrase string) card.DamageTarget {
	lower := strings.ToLower(phrase)
	switch {
	case strings.Contains(lower, "creature"):
		return card.DamageTargetCreature
	case strings.Contains(lower, "opponent"):
		return card.DamageTargetOpponent
	case strings.Contains(lower, "player"):
		return card.DamageTargetPlayer
	default:
		return card.DamageTargetAny
	}
}
