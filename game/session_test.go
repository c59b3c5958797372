package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedeemCode(t *testing.T) {
	sink := &recordingSink{}
	s := NewSession(DefaultSnapshot(), sink)

	assert.Equal(t, CodeRedeemed, s.RedeemCode("  ultraduck "))
	assert.Equal(t, []string{"ULTRADUCK"}, s.ActiveCodes)
	require.Len(t, sink.saved, 1)
	assert.Equal(t, []string{"ULTRADUCK"}, sink.last().ActiveCodes)

	assert.Equal(t, CodeAlreadyRedeemed, s.RedeemCode("ULTRADUCK"))
	assert.Equal(t, CodeInvalid, s.RedeemCode("NOTACODE"))
	assert.Len(t, s.ActiveCodes, 1)
	assert.Len(t, sink.saved, 1, "failed redemptions do not save")
}

func TestCodeResultMessages(t *testing.T) {
	assert.Equal(t, "Code redeemed successfully!", CodeRedeemed.String())
	assert.Equal(t, "Code already redeemed!", CodeAlreadyRedeemed.String())
	assert.Equal(t, "Invalid code!", CodeInvalid.String())
}

func TestApplyCodes(t *testing.T) {
	bonus, mods := ApplyCodes([]string{"ULTRADUCK", "DUCKPOWER"}, 3)
	assert.Equal(t, 21.0, bonus)
	assert.Equal(t, BulletMods{}, mods)

	_, mods = ApplyCodes([]string{"DUCK AND LASER", "EXPLOSIVE HYPERDUCK"}, 1)
	assert.Equal(t, BulletMods{Multishot: 3, Bounces: 2, Explosive: true, ExplosiveDamage: 20}, mods)
}

func TestPlayerStatsFormula(t *testing.T) {
	s := NewSession(Snapshot{
		Upgrades:       Upgrades{ExtraProjectiles: 1, MaxHP: 2, Speed: 3},
		UnlockedLevels: []int{1, 2, 3, 4, 5, 6, 7},
		ActiveCodes:    []string{"ULTRADUCK"},
	}, nil)
	require.NoError(t, s.SelectLevel(7))

	stats := s.PlayerStats()
	assert.Equal(t, 5+2+4+7, stats.MaxHP)
	assert.Equal(t, 8.0, stats.Speed)
	assert.Equal(t, 1+1+35.0, stats.Damage)
}

func TestExtraProjectileUpgradeKeepsSingleShot(t *testing.T) {
	s := NewSession(Snapshot{Upgrades: Upgrades{ExtraProjectiles: 3}}, nil)
	p := NewPlayer(testArena, s.PlayerStats())

	p.Shoot(p.Pos.Add(Vec2{100, 0}))
	assert.Len(t, p.Bullets, 1)
}

func TestPurchase(t *testing.T) {
	sink := &recordingSink{}
	s := NewSession(Snapshot{Coins: 120}, sink)

	require.NoError(t, s.Purchase(ItemMaxHP))
	require.NoError(t, s.Purchase(ItemSpeed))
	assert.Equal(t, 20, s.Coins)
	assert.Equal(t, Upgrades{MaxHP: 1, Speed: 1}, s.Upgrades)
	assert.Len(t, sink.saved, 2)

	err := s.Purchase(ItemExtraProjectile)
	assert.True(t, errors.Is(err, ErrInsufficientCoins))
	assert.Equal(t, 20, s.Coins)
	assert.Zero(t, s.Upgrades.ExtraProjectiles)

	err = s.Purchase(ShopItem("laser"))
	assert.ErrorIs(t, err, ErrUnknownItem)
}

func TestSaveFailureKeepsPlaying(t *testing.T) {
	sink := &recordingSink{err: errors.New("disk full")}
	s := NewSession(Snapshot{Coins: 50}, sink)

	require.NoError(t, s.Purchase(ItemSpeed))
	assert.Equal(t, 1, s.Upgrades.Speed)
}

func TestSelectLockedLevel(t *testing.T) {
	s := NewSession(DefaultSnapshot(), nil)

	err := s.SelectLevel(2)
	assert.ErrorIs(t, err, ErrLevelLocked)
	assert.Equal(t, 1, s.Level)

	assert.True(t, s.Unlock(2))
	assert.False(t, s.Unlock(2))
	assert.False(t, s.Unlock(MaxLevels+1))
	require.NoError(t, s.SelectLevel(2))
	assert.Equal(t, 2, s.Level)
}

func TestSnapshotNormalize(t *testing.T) {
	snap := Snapshot{
		Coins:          -5,
		Upgrades:       Upgrades{MaxHP: -1, Speed: 2},
		UnlockedLevels: []int{5, 0, 3, 99, 5, -2},
		ActiveCodes:    []string{"ultraduck", "bogus", "ULTRADUCK", "waddle"},
	}.Normalize()

	assert.Zero(t, snap.Coins)
	assert.Equal(t, Upgrades{Speed: 2}, snap.Upgrades)
	assert.Equal(t, []int{1, 3, 5}, snap.UnlockedLevels)
	assert.Equal(t, []string{"ULTRADUCK", "WADDLE"}, snap.ActiveCodes)
}

func TestWaveClearedUnlocksNextLevel(t *testing.T) {
	sink := &recordingSink{}
	s := NewSession(DefaultSnapshot(), sink)

	assert.False(t, s.waveCleared())
	assert.True(t, s.Victory)
	assert.True(t, s.AwaitingUpgrade)
	assert.True(t, s.IsUnlocked(2))
	assert.Contains(t, sink.last().UnlockedLevels, 2)

	require.NoError(t, s.ChooseUpgrade(UpgradeSpeed))
	assert.ErrorIs(t, s.ChooseUpgrade(UpgradeHP), ErrNoUpgradePending)
	assert.Equal(t, 1.0, s.Bonus.Speed)

	assert.True(t, s.NextLevel())
	assert.Equal(t, 2, s.Level)
	assert.False(t, s.Victory)
}

func TestFinalLevelEndsRun(t *testing.T) {
	levels := make([]int, 0, MaxLevels)
	for i := 1; i <= MaxLevels; i++ {
		levels = append(levels, i)
	}
	s := NewSession(Snapshot{UnlockedLevels: levels}, nil)
	require.NoError(t, s.SelectLevel(MaxLevels))

	s.waveCleared()
	assert.False(t, s.NextLevel())
	assert.False(t, s.IsUnlocked(MaxLevels+1))
}

func TestEndlessAdvancesPastFinalLevel(t *testing.T) {
	s := NewSession(DefaultSnapshot(), nil)
	s.Endless = true
	s.Level = MaxLevels

	assert.True(t, s.waveCleared())
	assert.Equal(t, MaxLevels+1, s.Level)
	assert.False(t, s.Victory)
}
