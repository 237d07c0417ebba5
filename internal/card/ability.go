package card

import "fmt"

// Keyword is one of the evergreen keyword abilities the oracle parser
// recognizes. The set is closed; adding a keyword means updating
// keywordNames and every switch below.
type Keyword int

const (
	Flying Keyword = iota
	FirstStrike
	DoubleStrike
	Trample
	Deathtouch
	Lifelink
	Reach
	Menace
	Defender
	Vigilance
	Indestructible
	Haste
	Hexproof
	Ward
	Flash
	Protection
)

var keywordNames = map[Keyword]string{
	Flying:         "flying",
	FirstStrike:    "first_strike",
	DoubleStrike:   "double_strike",
	Trample:        "trample",
	Deathtouch:     "deathtouch",
	Lifelink:       "lifelink",
	Reach:          "reach",
	Menace:         "menace",
	Defender:       "defender",
	Vigilance:      "vigilance",
	Indestructible: "indestructible",
	Haste:          "haste",
	Hexproof:       "hexproof",
	Ward:           "ward",
	Flash:          "flash",
	Protection:     "protection",
}

// keywordByText maps the lowercase printed keyword to its Keyword value,
// built once from keywordNames so the two never drift apart.
var keywordByText = func() map[string]Keyword {
	m := make(map[string]Keyword, len(keywordNames))
	for k, name := range keywordNames {
		m[name] = k
	}
	// Printed card text spells these with a space, not an underscore.
	m["first strike"] = FirstStrike
	m["double strike"] = DoubleStrike
	return m
}()

func (k Keyword) String() string {
	if name, ok := keywordNames[k]; ok {
		return name
	}
	return fmt.Sprintf("keyword(%d)", int(k))
}

// KeywordFromText looks up a keyword by its printed (lowercase, space-
// separated) spelling. ok is false for anything the parser doesn't know.
func KeywordFromText(text string) (Keyword, bool) {
	k, ok := keywordByText[text]
	return k, ok
}

// PTTarget names who a StaticPTModifier applies to.
type PTTarget int

const (
	PTTargetSelf PTTarget = iota
	PTTargetEnchantedCreature
	PTTargetEquippedCreature
	PTTargetOtherCreaturesYouControl
	PTTargetCreaturesYouControl
)

func (t PTTarget) String() string {
	switch t {
	case PTTargetSelf:
		return "self"
	case PTTargetEnchantedCreature:
		return "enchanted_creature"
	case PTTargetEquippedCreature:
		return "equipped_creature"
	case PTTargetOtherCreaturesYouControl:
		return "other_creatures_you_control"
	case PTTargetCreaturesYouControl:
		return "creatures_you_control"
	default:
		return fmt.Sprintf("pt_target(%d)", int(t))
	}
}

// DamageTarget names who an ETBDamage or ActivatedTapDamage ability can
// hit. §4.1 rule 4 derives this from substring containment in the order
// {creature, opponent, player, any_target}.
type DamageTarget int

const (
	DamageTargetAny DamageTarget = iota
	DamageTargetCreature
	DamageTargetPlayer
	DamageTargetOpponent
)

func (t DamageTarget) String() string {
	switch t {
	case DamageTargetAny:
		return "any_target"
	case DamageTargetCreature:
		return "creature"
	case DamageTargetPlayer:
		return "player"
	case DamageTargetOpponent:
		return "opponent"
	default:
		return fmt.Sprintf("damage_target(%d)", int(t))
	}
}

// AbilityKind discriminates the closed Ability sum type (§3).
type AbilityKind int

const (
	KindKeyword AbilityKind = iota
	KindStaticPTModifier
	KindETBDamage
	KindETBLifeGain
	KindETBCreateToken
	KindActivatedTapDamage
	KindActivatedTapLifeGain
	KindUnresolved
)

func (k AbilityKind) String() string {
	switch k {
	case KindKeyword:
		return "Keyword"
	case KindStaticPTModifier:
		return "StaticPTModifier"
	case KindETBDamage:
		return "ETBDamage"
	case KindETBLifeGain:
		return "ETBLifeGain"
	case KindETBCreateToken:
		return "ETBCreateToken"
	case KindActivatedTapDamage:
		return "ActivatedTapDamage"
	case KindActivatedTapLifeGain:
		return "ActivatedTapLifeGain"
	case KindUnresolved:
		return "Unresolved"
	default:
		return fmt.Sprintf("ability_kind(%d)", int(k))
	}
}

// Ability is the closed tagged sum described in §3. Only the fields
// relevant to Kind are meaningful; the rest are zero. A flat struct
// (rather than one type per variant behind an interface) keeps every
// switch over Kind in one place. TokenKeywords is a slice, so Ability
// values are not comparable with ==.
type Ability struct {
	Kind AbilityKind

	// KindKeyword
	Keyword             Keyword
	WardCost            string // Keyword == Ward
	ProtectionQualifier string // Keyword == Protection

	// KindStaticPTModifier
	PTPower     int
	PTToughness int
	PTTarget    PTTarget
	PTCondition string // never populated by the parser (§4.1 rule 9); carried for data-model completeness

	// KindETBDamage, KindActivatedTapDamage
	DamageAmount int
	DamageTarget DamageTarget

	// KindETBLifeGain, KindActivatedTapLifeGain
	LifeAmount int

	// KindETBCreateToken
	TokenCount     int
	TokenPower     int
	TokenToughness int
	TokenKeywords  []Keyword

	// KindUnresolved
	UnresolvedText   string
	UnresolvedReason string
}

// IsKeyword reports whether this ability is the given keyword.
func (a Ability) IsKeyword(k Keyword) bool {
	return a.Kind == KindKeyword && a.Keyword == k
}

func (a Ability) String() string {
	switch a.Kind {
	case KindKeyword:
		if a.Keyword == Ward {
			return fmt.Sprintf("Keyword(ward, cost=%s)", a.WardCost)
		}
		if a.Keyword == Protection {
			return fmt.Sprintf("Keyword(protection, qualifier=%s)", a.ProtectionQualifier)
		}
		return fmt.Sprintf("Keyword(%s)", a.Keyword)
	case KindStaticPTModifier:
		return fmt.Sprintf("StaticPTModifier(%+d/%+d, %s)", a.PTPower, a.PTToughness, a.PTTarget)
	case KindETBDamage:
		return fmt.Sprintf("ETBDamage(%d, %s)", a.DamageAmount, a.DamageTarget)
	case KindETBLifeGain:
		return fmt.Sprintf("ETBLifeGain(%d)", a.LifeAmount)
	case KindETBCreateToken:
		return fmt.Sprintf("ETBCreateToken(%d, %d/%d)", a.TokenCount, a.TokenPower, a.TokenToughness)
	case KindActivatedTapDamage:
		return fmt.Sprintf("ActivatedTapDamage(%d, %s)", a.DamageAmount, a.DamageTarget)
	case KindActivatedTapLifeGain:
		return fmt.Sprintf("ActivatedTapLifeGain(%d)", a.LifeAmount)
	case KindUnresolved:
		return fmt.Sprintf("Unresolved(%q: %s)", a.UnresolvedText, a.UnresolvedReason)
	default:
		return fmt.Sprintf("Ability(kind=%d)", int(a.Kind))
	}
}
