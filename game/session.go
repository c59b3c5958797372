package game

import (
	"fmt"
	"math"
	"sort"
)

// ShopItem is a permanent upgrade sold in the shop
type ShopItem string

const (
	ItemExtraProjectile ShopItem = "extraProjectiles"
	ItemMaxHP           ShopItem = "maxHp"
	ItemSpeed           ShopItem = "speed"
)

// ShopItems lists the items in shop order
var ShopItems = []ShopItem{ItemExtraProjectile, ItemMaxHP, ItemSpeed}

// Label returns the shop button text
func (i ShopItem) Label() string {
	switch i {
	case ItemExtraProjectile:
		return "Extra Projectile"
	case ItemMaxHP:
		return "Max HP +1"
	case ItemSpeed:
		return "Speed +1"
	default:
		return string(i)
	}
}

// UpgradeChoice is the reward picked on the victory screen
type UpgradeChoice int

const (
	UpgradeHP UpgradeChoice = iota
	UpgradeSpeed
)

// RunBonus holds victory upgrades; they last until the run ends
type RunBonus struct {
	MaxHP int
	Speed float64
}

// Session is the run-level and meta state that outlives a single level
type Session struct {
	Level   int
	Endless bool

	LevelKills int
	TotalKills int
	BossKills  int

	Coins       int
	Upgrades    Upgrades
	unlocked    map[int]bool
	ActiveCodes []string

	AllowMultiplePowerups bool

	// Abilities won from ultimate bosses
	Blink bool
	Dash  bool

	Bonus RunBonus

	Victory         bool
	AwaitingUpgrade bool

	sink SnapshotSink
}

// NewSession restores meta state from a snapshot. A nil sink discards saves.
func NewSession(snap Snapshot, sink SnapshotSink) *Session {
	snap = snap.Normalize()
	s := &Session{
		Level:       1,
		Coins:       snap.Coins,
		Upgrades:    snap.Upgrades,
		unlocked:    make(map[int]bool, len(snap.UnlockedLevels)),
		ActiveCodes: snap.ActiveCodes,
		sink:        sink,
	}
	for _, level := range snap.UnlockedLevels {
		s.unlocked[level] = true
	}
	return s
}

// Snapshot returns the persistable part of the session
func (s *Session) Snapshot() Snapshot {
	codes := make([]string, len(s.ActiveCodes))
	copy(codes, s.ActiveCodes)
	return Snapshot{
		Coins:          s.Coins,
		Upgrades:       s.Upgrades,
		UnlockedLevels: s.UnlockedLevels(),
		ActiveCodes:    codes,
	}
}

// save hands the snapshot to the sink. Failures are logged; play goes on.
func (s *Session) save() {
	if s.sink == nil {
		return
	}
	if err := s.sink.Save(s.Snapshot()); err != nil {
		logger().Warn("failed to save progress", "error", err)
	}
}

// UnlockedLevels returns the unlocked levels in ascending order
func (s *Session) UnlockedLevels() []int {
	levels := make([]int, 0, len(s.unlocked))
	for level := range s.unlocked {
		levels = append(levels, level)
	}
	sort.Ints(levels)
	return levels
}

// IsUnlocked reports whether a level can be selected
func (s *Session) IsUnlocked(level int) bool {
	return s.unlocked[level]
}

// Unlock opens a level and saves. It reports false if the level was already open or out of range.
func (s *Session) Unlock(level int) bool {
	if level < 1 || level > MaxLevels || s.unlocked[level] {
		return false
	}
	s.unlocked[level] = true
	s.save()
	return true
}

// Purchase buys one level of a permanent upgrade
func (s *Session) Purchase(item ShopItem) error {
	var field *int
	switch item {
	case ItemExtraProjectile:
		field = &s.Upgrades.ExtraProjectiles
	case ItemMaxHP:
		field = &s.Upgrades.MaxHP
	case ItemSpeed:
		field = &s.Upgrades.Speed
	default:
		return fmt.Errorf("purchase %q: %w", item, ErrUnknownItem)
	}
	if s.Coins < UpgradeCost {
		return fmt.Errorf("purchase %s: %w", item, ErrInsufficientCoins)
	}
	s.Coins -= UpgradeCost
	*field++
	s.save()
	return nil
}

// RedeemCode activates a cheat code. Effects apply from the next level start.
func (s *Session) RedeemCode(code string) CodeResult {
	code = NormalizeCode(code)
	if _, ok := Codes[code]; !ok {
		return CodeInvalid
	}
	for _, active := range s.ActiveCodes {
		if active == code {
			return CodeAlreadyRedeemed
		}
	}
	s.ActiveCodes = append(s.ActiveCodes, code)
	s.save()
	return CodeRedeemed
}

// SelectLevel starts a new run on an unlocked level
func (s *Session) SelectLevel(level int) error {
	if !s.IsUnlocked(level) {
		return fmt.Errorf("select level %d: %w", level, ErrLevelLocked)
	}
	s.Level = level
	s.Bonus = RunBonus{}
	s.clearLevelState()
	return nil
}

func (s *Session) clearLevelState() {
	s.LevelKills = 0
	s.Victory = false
	s.AwaitingUpgrade = false
}

// PlayerStats derives the player's starting stats for the current level
func (s *Session) PlayerStats() PlayerStats {
	bonus, mods := ApplyCodes(s.ActiveCodes, s.Level)
	return PlayerStats{
		MaxHP:  playerBaseHP + s.Upgrades.MaxHP + (s.Level/6)*4 + s.Level + s.Bonus.MaxHP,
		Speed:  playerBaseSpeed + float64(s.Upgrades.Speed) + s.Bonus.Speed,
		Damage: playerBaseDamage + math.Floor(float64(s.Level)/5) + bonus,
		Mods:   mods,
		Blink:  s.Blink,
		Dash:   s.Dash,
	}
}

// creditKill records one enemy kill
func (s *Session) creditKill() {
	s.LevelKills++
	s.TotalKills++
}

// grantReward applies an ultimate boss's ability reward
func (s *Session) grantReward(r Reward) {
	switch r {
	case RewardBlink:
		s.Blink = true
	case RewardDash:
		s.Dash = true
	}
}

// waveCleared books the last boss of a wave. It reports whether the level should
// advance straight away (endless mode) instead of showing the victory screen.
func (s *Session) waveCleared() bool {
	s.LevelKills = 0
	s.BossKills++
	if s.Level < MaxLevels {
		s.Unlock(s.Level + 1)
	}
	if s.Endless {
		s.Level++
		return true
	}
	s.Victory = true
	s.AwaitingUpgrade = true
	return false
}

// ChooseUpgrade books the victory upgrade for the rest of the run
func (s *Session) ChooseUpgrade(choice UpgradeChoice) error {
	if !s.Victory || !s.AwaitingUpgrade {
		return ErrNoUpgradePending
	}
	switch choice {
	case UpgradeHP:
		s.Bonus.MaxHP++
	case UpgradeSpeed:
		s.Bonus.Speed++
	default:
		return fmt.Errorf("upgrade choice %d: %w", choice, ErrUnknownItem)
	}
	s.AwaitingUpgrade = false
	return nil
}

// NextLevel leaves the victory screen. It reports false when the last level was
// beaten and the run is over.
func (s *Session) NextLevel() bool {
	s.clearLevelState()
	if s.Level >= MaxLevels {
		return false
	}
	s.Level++
	return true
}
