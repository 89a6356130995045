package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/smolwifi/internal/model"
)

func rec(ssid, key string, signal int) model.NetworkRecord {
	return model.NetworkRecord{SSID: ssid, IdentityKey: key, SignalPercent: signal}
}

func TestRankSortsBySignalDescending(t *testing.T) {
	ranked := Rank([]model.NetworkRecord{
		rec("weak", "k1", 20),
		rec("strong", "k2", 90),
		rec("mid", "k3", 55),
	})

	require.Len(t, ranked, 3)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].SignalPercent, ranked[i].SignalPercent)
	}
	assert.Equal(t, "strong", ranked[0].SSID)
	assert.Equal(t, "weak", ranked[2].SSID)
}

func TestRankTieBreaksBySSIDCaseInsensitive(t *testing.T) {
	ranked := Rank([]model.NetworkRecord{
		rec("zebra", "k1", 50),
		rec("Apple", "k2", 50),
		rec("mango", "k3", 50),
	})

	require.Len(t, ranked, 3)
	assert.Equal(t, "Apple", ranked[0].SSID)
	assert.Equal(t, "mango", ranked[1].SSID)
	assert.Equal(t, "zebra", ranked[2].SSID)
}

func TestRankDeduplicatesKeepingStrongerSignal(t *testing.T) {
	ranked := Rank([]model.NetworkRecord{
		rec("home", "aa:bb", 40),
		rec("home", "aa:bb", 75),
		rec("home", "aa:bb", 60),
	})

	require.Len(t, ranked, 1)
	assert.Equal(t, 75, ranked[0].SignalPercent)
}

func TestRankKeepsDistinctAccessPointsSharingSSID(t *testing.T) {
	// Mesh extenders: same SSID, different BSSIDs, both stay visible.
	ranked := Rank([]model.NetworkRecord{
		rec("mesh", "aa:aa", 80),
		rec("mesh", "bb:bb", 60),
	})

	assert.Len(t, ranked, 2)
}

func TestRankCollisionKeepsStrongerAndStaysActive(t *testing.T) {
	active := rec("home", "aa:bb", 40)
	active.Active = true

	ranked := Rank([]model.NetworkRecord{rec("home", "aa:bb", 90), active})
	require.Len(t, ranked, 1)
	assert.Equal(t, 90, ranked[0].SignalPercent)
	assert.True(t, ranked[0].Active)
}

func TestRankEqualSignalCollisionPrefersActive(t *testing.T) {
	active := rec("home", "aa:bb", 70)
	active.Active = true
	other := rec("home", "aa:bb", 70)
	other.FrequencyMHz = 5180

	ranked := Rank([]model.NetworkRecord{other, active})
	require.Len(t, ranked, 1)
	assert.True(t, ranked[0].Active)
	assert.Zero(t, ranked[0].FrequencyMHz)
}

func TestRankEmptyInput(t *testing.T) {
	ranked := Rank(nil)
	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)
}

func TestRankIsDeterministic(t *testing.T) {
	in := []model.NetworkRecord{
		rec("b", "k1", 50),
		rec("a", "k2", 50),
		rec("", "k3", 50),
		rec("c", "k4", 70),
	}
	first := Rank(in)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Rank(in))
	}
}
