package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/doodle-api/internal/entities/gacha"
	"github.com/KirkDiggler/doodle-api/internal/redis"
	"github.com/KirkDiggler/doodle-api/internal/repositories/save"
)

const legacySave = `{"gold":250,"inventory":[{"uid":1712345,"name":"Scrap-Ball","rarity":"Common","img":"scrap.png","stats":{"atk":5,"def":5,"spd":5},"vibe":15}],"slots":[{"level":2,"equippedId":1712345},{"level":1,"equippedId":null},{"level":1,"equippedId":null}],"areaIndex":0,"areasUnlocked":0}`

func newRepairFixture(t *testing.T) (*miniredis.Miniredis, redis.Client, *save.Codec) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return mr, client, &save.Codec{StartingGold: gacha.DefaultStartingGold, AreaCount: 5}
}

func repairOpts(confirm bool) *repairOptions {
	return &repairOptions{
		Key:       save.DefaultKey,
		LegacyKey: save.DefaultLegacyKey,
		Confirm:   func([]string) bool { return confirm },
	}
}

func TestRepairSaveNothingStored(t *testing.T) {
	_, client, codec := newRepairFixture(t)

	result, err := repairSave(context.Background(), client, codec, repairOpts(true))
	require.NoError(t, err)
	require.Len(t, result.Keys, 2)
	assert.Equal(t, keyMissing, result.Keys[0].Status)
	assert.Equal(t, keyMissing, result.Keys[1].Status)
	assert.False(t, result.Rewritten)
	assert.Empty(t, result.Deleted)
}

func TestRepairSaveMigratesLegacyKey(t *testing.T) {
	mr, client, codec := newRepairFixture(t)
	require.NoError(t, mr.Set(save.DefaultLegacyKey, legacySave))

	result, err := repairSave(context.Background(), client, codec, repairOpts(false))
	require.NoError(t, err)
	assert.True(t, result.Rewritten)
	assert.Equal(t, keyMigrated, result.Keys[1].Status)
	assert.Equal(t, 250.0, result.Keys[1].Gold)
	assert.Equal(t, 1, result.Keys[1].Inventory)

	stored, err := mr.Get(save.DefaultKey)
	require.NoError(t, err)
	state, meta, err := codec.Decode([]byte(stored))
	require.NoError(t, err)
	assert.Equal(t, save.SnapshotVersion, meta.Version)
	assert.Equal(t, 250.0, state.Gold)
	assert.Equal(t, 2, state.Slots[0].Level)
}

func TestRepairSaveDeletesCorruptLegacyAfterConfirm(t *testing.T) {
	mr, client, codec := newRepairFixture(t)
	require.NoError(t, mr.Set(save.DefaultKey, legacySave))
	require.NoError(t, mr.Set(save.DefaultLegacyKey, "{not json"))

	result, err := repairSave(context.Background(), client, codec, repairOpts(true))
	require.NoError(t, err)
	assert.Equal(t, keyOK, result.Keys[0].Status)
	assert.Equal(t, keyCorrupt, result.Keys[1].Status)
	assert.Equal(t, []string{save.DefaultLegacyKey}, result.Deleted)
	assert.False(t, mr.Exists(save.DefaultLegacyKey))
	assert.True(t, mr.Exists(save.DefaultKey))
}

func TestRepairSaveKeepsCorruptWithoutConfirm(t *testing.T) {
	mr, client, codec := newRepairFixture(t)
	require.NoError(t, mr.Set(save.DefaultKey, "[]garbage"))

	result, err := repairSave(context.Background(), client, codec, repairOpts(false))
	require.NoError(t, err)
	assert.Equal(t, keyCorrupt, result.Keys[0].Status)
	assert.False(t, result.Rewritten)
	assert.Empty(t, result.Deleted)
	assert.True(t, mr.Exists(save.DefaultKey))
}

func TestRepairSaveCorruptCanonicalReplacedByLegacy(t *testing.T) {
	mr, client, codec := newRepairFixture(t)
	require.NoError(t, mr.Set(save.DefaultKey, "{not json"))
	require.NoError(t, mr.Set(save.DefaultLegacyKey, legacySave))

	result, err := repairSave(context.Background(), client, codec, repairOpts(true))
	require.NoError(t, err)
	assert.True(t, result.Rewritten)
	assert.Empty(t, result.Deleted, "the rewritten canonical key is kept")

	stored, err := mr.Get(save.DefaultKey)
	require.NoError(t, err)
	_, _, err = codec.Decode([]byte(stored))
	assert.NoError(t, err)
}

func TestRepairSaveDryRunChangesNothing(t *testing.T) {
	mr, client, codec := newRepairFixture(t)
	require.NoError(t, mr.Set(save.DefaultLegacyKey, legacySave))

	opts := repairOpts(true)
	opts.DryRun = true
	result, err := repairSave(context.Background(), client, codec, opts)
	require.NoError(t, err)
	assert.False(t, result.Rewritten)
	assert.False(t, mr.Exists(save.DefaultKey))

	var buf bytes.Buffer
	printRepair(&buf, result, true)
	assert.Contains(t, buf.String(), "- "+save.DefaultKey+": missing")
	assert.Contains(t, buf.String(), save.DefaultLegacyKey+": migrated")
	assert.Contains(t, buf.String(), "Dry run")
}
