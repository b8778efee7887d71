package shop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lpautet/mud-r-sub003/internal/model"
	"github.com/lpautet/mud-r-sub003/internal/testutil"
)

// assertGrouped checks the contiguity invariant: identical items are
// never separated by a different item.
func assertGrouped(t *testing.T, ch *model.Character) {
	t.Helper()
	seen := make(map[model.ProtoID]int)
	for i, it := range ch.Carrying {
		if prev, ok := seen[it.Proto]; ok && !ch.Carrying[i-1].IdenticalTo(it) {
			t.Fatalf("item #%d at index %d separated from its group (last seen at %d)",
				it.Proto, i, prev)
		}
		seen[it.Proto] = i
	}
}

// List triggers consolidation on a keeper whose goods arrived interleaved.
func TestListConsolidatesInterleavedStock(t *testing.T) {
	e, w, _, keeper, s := testutil.NewEngine(t)
	buyer := testutil.NewPlayer(t, w, "Ryla", 1000)

	testutil.GiveItem(t, w, keeper, testutil.SwordVNum)
	testutil.GiveItem(t, w, keeper, testutil.WandVNum)
	testutil.GiveItem(t, w, keeper, testutil.SwordVNum)
	testutil.GiveItem(t, w, keeper, testutil.WandVNum)
	testutil.GiveItem(t, w, keeper, testutil.SwordVNum)

	e.List(buyer, keeper, s, "")

	assertGrouped(t, keeper)
	assert.Equal(t, int32(len(keeper.Carrying)), s.SortedPrefix())
}

// A second consolidation of an already sorted inventory changes nothing.
func TestConsolidationIdempotent(t *testing.T) {
	e, w, _, keeper, s := testutil.NewEngine(t)
	buyer := testutil.NewPlayer(t, w, "Ryla", 1000)

	testutil.GiveItem(t, w, keeper, testutil.SwordVNum)
	testutil.GiveItem(t, w, keeper, testutil.WandVNum)
	testutil.GiveItem(t, w, keeper, testutil.SwordVNum)

	e.List(buyer, keeper, s, "")
	before := append([]*model.Item(nil), keeper.Carrying...)

	e.List(buyer, keeper, s, "")
	assert.Equal(t, before, keeper.Carrying)
}

// Duplicates of a produced item collapse to one exemplar; the shop can
// manufacture more at will.
func TestProducedDuplicatesCollapse(t *testing.T) {
	e, w, _, keeper, s := testutil.NewEngine(t)
	buyer := testutil.NewPlayer(t, w, "Ryla", 1000)

	stock := testutil.GiveItem(t, w, keeper, testutil.BreadVNum)
	dup1 := testutil.GiveItem(t, w, keeper, testutil.BreadVNum)
	dup2 := testutil.GiveItem(t, w, keeper, testutil.BreadVNum)

	e.List(buyer, keeper, s, "")

	require.Len(t, keeper.Carrying, 1)
	assert.Same(t, stock, keeper.Carrying[0])

	// The extra exemplars are gone from the arena too.
	assert.Nil(t, w.Item(dup1.ID))
	assert.Nil(t, w.Item(dup2.ID))
}

// A sold item joins its identical run instead of landing at the end.
func TestSoldItemJoinsItsGroup(t *testing.T) {
	e, w, _, keeper, s := testutil.NewEngine(t)
	seller := testutil.NewPlayer(t, w, "Ryla", 0)

	testutil.GiveItem(t, w, keeper, testutil.SwordVNum)
	testutil.GiveItem(t, w, keeper, testutil.WandVNum)
	testutil.GiveItem(t, w, seller, testutil.SwordVNum)

	keeper.Gold = 10000
	e.Sell(seller, keeper, s, "sword")

	require.Len(t, keeper.Carrying, 3)
	assertGrouped(t, keeper)
	assert.Equal(t, testutil.SwordVNum, keeper.Carrying[0].Proto)
	assert.Equal(t, testutil.SwordVNum, keeper.Carrying[1].Proto)
	assert.Equal(t, testutil.WandVNum, keeper.Carrying[2].Proto)
}

// Selling a copy of a produced item feeds it back to the manufacturer:
// the copy is destroyed rather than stocked twice.
func TestSellProducedItemDiscardsCopy(t *testing.T) {
	e, w, _, keeper, s := testutil.NewEngine(t)
	seller := testutil.NewPlayer(t, w, "Ryla", 0)

	stock := testutil.GiveItem(t, w, keeper, testutil.BreadVNum)
	sold := testutil.GiveItem(t, w, seller, testutil.BreadVNum)

	keeper.Gold = 1000
	e.Sell(seller, keeper, s, "bread")

	require.Len(t, keeper.Carrying, 1)
	assert.Same(t, stock, keeper.Carrying[0])
	assert.Nil(t, w.Item(sold.ID))
	assert.Positive(t, seller.Gold, "seller still gets paid")
}

func TestResetSortForcesResort(t *testing.T) {
	e, w, _, keeper, s := testutil.NewEngine(t)
	buyer := testutil.NewPlayer(t, w, "Ryla", 1000)

	testutil.GiveItem(t, w, keeper, testutil.SwordVNum)
	e.List(buyer, keeper, s, "")
	require.Equal(t, int32(1), s.SortedPrefix())

	s.ResetSort()
	assert.Equal(t, int32(0), s.SortedPrefix())

	e.List(buyer, keeper, s, "")
	assert.Equal(t, int32(1), s.SortedPrefix())
}
