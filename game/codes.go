package game

import "strings"

// CodeKind is how a cheat code affects the player
type CodeKind int

const (
	// CodeLevelDamage adds Value*level to player damage
	CodeLevelDamage CodeKind = iota
	// CodeBulletMod changes the bullets the player fires
	CodeBulletMod
)

// CodeEffect describes one redeemable code
type CodeEffect struct {
	Kind  CodeKind
	Value float64

	Multishot       int
	Bounces         int
	Explosive       bool
	ExplosiveDamage float64

	Description string
}

// BulletMods are the bullet modifiers granted by codes
type BulletMods struct {
	Multishot       int
	Bounces         int
	Explosive       bool
	ExplosiveDamage float64
}

// CodeResult is the outcome of a redemption attempt
type CodeResult int

const (
	CodeRedeemed CodeResult = iota
	CodeAlreadyRedeemed
	CodeInvalid
)

func (r CodeResult) String() string {
	switch r {
	case CodeRedeemed:
		return "Code redeemed successfully!"
	case CodeAlreadyRedeemed:
		return "Code already redeemed!"
	default:
		return "Invalid code!"
	}
}

// Codes is the table of known codes, keyed by their normalized form
var Codes = map[string]CodeEffect{
	"ULTRADUCK":   {Kind: CodeLevelDamage, Value: 5, Description: "+5 damage per level"},
	"QUACKMASTER": {Kind: CodeLevelDamage, Value: 3, Description: "+3 damage per level"},
	"DUCKPOWER":   {Kind: CodeLevelDamage, Value: 2, Description: "+2 damage per level"},
	"WADDLE":      {Kind: CodeLevelDamage, Value: 4, Description: "+4 damage per level"},
	"FEATHERS":    {Kind: CodeLevelDamage, Value: 6, Description: "+6 damage per level"},
	"DUCK AND LASER": {
		Kind:        CodeBulletMod,
		Multishot:   3,
		Bounces:     2,
		Description: "Triple shot with 2 bounces",
	},
	"EXPLOSIVE HYPERDUCK": {
		Kind:            CodeBulletMod,
		Explosive:       true,
		ExplosiveDamage: 20,
		Description:     "Explosive bullets dealing 20 damage",
	},
}

// NormalizeCode trims and upper-cases user input
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ApplyCodes folds the active codes into a damage bonus and bullet modifiers.
// Level damage sums across codes; bullet modifiers take the maximum.
// Unknown codes are ignored.
func ApplyCodes(active []string, level int) (damageBonus float64, mods BulletMods) {
	for _, name := range active {
		effect, ok := Codes[name]
		if !ok {
			continue
		}
		switch effect.Kind {
		case CodeLevelDamage:
			damageBonus += effect.Value * float64(level)
		case CodeBulletMod:
			mods.Multishot = max(mods.Multishot, effect.Multishot)
			mods.Bounces = max(mods.Bounces, effect.Bounces)
			if effect.Explosive {
				mods.Explosive = true
				mods.ExplosiveDamage = max(mods.ExplosiveDamage, effect.ExplosiveDamage)
			}
		}
	}
	return damageBonus, mods
}
