package game

import "sort"

// Upgrades are the permanent shop upgrades
type Upgrades struct {
	ExtraProjectiles int `json:"extraProjectiles" yaml:"extra_projectiles"`
	MaxHP            int `json:"maxHp" yaml:"max_hp"`
	Speed            int `json:"speed" yaml:"speed"`
}

// Snapshot is the persisted meta state
type Snapshot struct {
	Coins          int      `json:"coins" yaml:"coins"`
	Upgrades       Upgrades `json:"upgrades" yaml:"upgrades"`
	UnlockedLevels []int    `json:"unlockedLevels" yaml:"unlocked_levels"`
	ActiveCodes    []string `json:"activeCodes" yaml:"active_codes"`
}

// SnapshotSink receives the meta state whenever it changes
type SnapshotSink interface {
	Save(Snapshot) error
}

// SnapshotSource loads the meta state saved by a previous session
type SnapshotSource interface {
	Load() (Snapshot, error)
}

// DefaultSnapshot is the state of a brand new profile
func DefaultSnapshot() Snapshot {
	return Snapshot{UnlockedLevels: []int{1}}
}

// Normalize repairs a loaded snapshot: negative counters become 0, out-of-range and duplicate
// levels are dropped with level 1 always present, and unknown or duplicate codes are dropped.
func (s Snapshot) Normalize() Snapshot {
	out := Snapshot{
		Coins: max(s.Coins, 0),
		Upgrades: Upgrades{
			ExtraProjectiles: max(s.Upgrades.ExtraProjectiles, 0),
			MaxHP:            max(s.Upgrades.MaxHP, 0),
			Speed:            max(s.Upgrades.Speed, 0),
		},
	}

	seen := map[int]bool{1: true}
	out.UnlockedLevels = []int{1}
	for _, level := range s.UnlockedLevels {
		if level < 1 || level > MaxLevels || seen[level] {
			continue
		}
		seen[level] = true
		out.UnlockedLevels = append(out.UnlockedLevels, level)
	}
	sort.Ints(out.UnlockedLevels)

	seenCode := map[string]bool{}
	out.ActiveCodes = []string{}
	for _, code := range s.ActiveCodes {
		code = NormalizeCode(code)
		if _, ok := Codes[code]; !ok || seenCode[code] {
			continue
		}
		seenCode[code] = true
		out.ActiveCodes = append(out.ActiveCodes, code)
	}
	return out
}
