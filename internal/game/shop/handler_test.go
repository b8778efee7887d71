package shop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lpautet/mud-r-sub003/internal/game/shop"
	"github.com/lpautet/mud-r-sub003/internal/model"
	"github.com/lpautet/mud-r-sub003/internal/testutil"
)

func TestHandleRoutesTradeVerbs(t *testing.T) {
	e, w, msg, keeper, _ := testutil.NewEngine(t)
	buyer := testutil.NewPlayer(t, w, "Ryla", 1000)
	testutil.GiveItem(t, w, keeper, testutil.SwordVNum)

	assert.True(t, e.Handle(buyer, keeper, "list", ""))
	assert.True(t, msg.Contains("Available"))

	msg.Reset()
	assert.True(t, e.Handle(buyer, keeper, "buy", "sword"))
	require.Len(t, buyer.Carrying, 1)

	msg.Reset()
	assert.True(t, e.Handle(buyer, keeper, "value", "sword"))
	assert.True(t, msg.Contains("gold coins for that!"))

	msg.Reset()
	assert.True(t, e.Handle(buyer, keeper, "sell", "sword"))
	assert.Empty(t, buyer.Carrying)

	assert.False(t, e.Handle(buyer, keeper, "dance", ""), "unknown verbs pass through")
}

func TestHandleStealWarnsTheRoom(t *testing.T) {
	e, w, msg, keeper, _ := testutil.NewEngine(t)
	thief := testutil.NewPlayer(t, w, "Ryla", 0)

	assert.True(t, e.Handle(thief, keeper, "steal", "bread baker"))

	assert.True(t, msg.Contains("the baker shouts 'Ryla is a bloody thief!'"),
		"got %v", msg.Entries)
	assert.True(t, msg.Contains("the baker slaps Ryla."), "got %v", msg.Entries)
}

func TestHandleIgnoresOtherRoomsAndSleep(t *testing.T) {
	e, w, _, keeper, _ := testutil.NewEngine(t)
	buyer := testutil.NewPlayer(t, w, "Ryla", 1000)

	buyer.Room = 9999
	assert.False(t, e.Handle(buyer, keeper, "list", ""))

	buyer.Room = testutil.ShopRoom
	keeper.Sleeping = true
	assert.False(t, e.Handle(buyer, keeper, "list", ""))
}

func TestKeeperOwnCommandResetsSort(t *testing.T) {
	e, w, _, keeper, s := testutil.NewEngine(t)
	buyer := testutil.NewPlayer(t, w, "Ryla", 0)
	testutil.GiveItem(t, w, keeper, testutil.SwordVNum)

	e.List(buyer, keeper, s, "")
	require.Equal(t, int32(1), s.SortedPrefix())

	assert.False(t, e.Handle(keeper, keeper, "drop", "all"))
	assert.Equal(t, int32(0), s.SortedPrefix(), "keeper reshuffling his goods invalidates the sort")
}

// secondaryStub consumes exactly one verb.
type secondaryStub struct {
	verb    string
	handled int
}

func (h *secondaryStub) Handle(ch, keeper *model.Character, cmd, arg string) bool {
	if cmd == h.verb {
		h.handled++
		return true
	}
	return false
}

func (h *secondaryStub) IsDefault() bool { return false }

func TestSecondaryHandlerRunsFirst(t *testing.T) {
	e, w, _, keeper, s := testutil.NewEngine(t)
	buyer := testutil.NewPlayer(t, w, "Ryla", 1000)
	testutil.GiveItem(t, w, keeper, testutil.SwordVNum)

	stub := &secondaryStub{verb: "list"}
	s.Secondary = stub

	assert.True(t, e.Handle(buyer, keeper, "list", ""))
	assert.Equal(t, 1, stub.handled, "secondary consumed the verb before the engine")

	assert.True(t, e.Handle(buyer, keeper, "buy", "sword"))
	require.Len(t, buyer.Carrying, 1, "unconsumed verbs still reach the engine")
}

func TestOkDamageKeeper(t *testing.T) {
	e, w, msg, keeper, s := testutil.NewEngine(t)
	attacker := testutil.NewPlayer(t, w, "Ryla", 0)

	assert.False(t, e.OkDamageKeeper(attacker, keeper))
	assert.True(t, msg.Contains("Get out of here before I call the guards!"), "got %v", msg.Entries)
	assert.True(t, msg.Contains("the baker slaps Ryla."), "got %v", msg.Entries)

	s.Bitvector |= shop.WillStartFight
	assert.True(t, e.OkDamageKeeper(attacker, keeper))

	// Mobs without a shop are always fair game.
	bystander := testutil.NewPlayer(t, w, "a rat", 0)
	bystander.NPC = true
	assert.True(t, e.OkDamageKeeper(attacker, bystander))
}
