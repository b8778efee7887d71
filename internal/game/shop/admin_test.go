package shop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lpautet/mud-r-sub003/internal/game/shop"
	"github.com/lpautet/mud-r-sub003/internal/testutil"
)

func TestShowShopsTable(t *testing.T) {
	e, w, msg, _, _ := testutil.NewEngine(t)
	god := testutil.NewPlayer(t, w, "Zeus", 0)

	e.ShowShops(god, "")

	out := msg.Last()
	assert.Contains(t, out, "Keeper")
	assert.Contains(t, out, "1.20")
	assert.Contains(t, out, "0.80")
}

func TestShowShopsDetail(t *testing.T) {
	e, w, msg, _, s := testutil.NewEngine(t)
	god := testutil.NewPlayer(t, w, "Zeus", 0)
	s.WithWho = shop.TradeNoEvil | shop.TradeNoThief
	s.Bitvector = shop.WillBankMoney

	e.ShowShops(god, "1")

	out := msg.Last()
	assert.Contains(t, out, "the baker")
	assert.Contains(t, out, "a loaf of bread")
	assert.Contains(t, out, "FOOD")
	assert.Contains(t, out, "Good, Neutral, Magic User, Cleric, Warrior")
	assert.Contains(t, out, "USES_BANK")
}

func TestShowShopsHere(t *testing.T) {
	e, w, msg, _, _ := testutil.NewEngine(t)
	god := testutil.NewPlayer(t, w, "Zeus", 0)

	e.ShowShops(god, ".")
	assert.Contains(t, msg.Last(), "The Bakery")

	god.Room = 9999
	msg.Reset()
	e.ShowShops(god, ".")
	assert.Contains(t, msg.Last(), "This isn't a shop!")
}

func TestShowShopsBadIndex(t *testing.T) {
	e, w, msg, _, _ := testutil.NewEngine(t)
	god := testutil.NewPlayer(t, w, "Zeus", 0)

	e.ShowShops(god, "42")
	assert.Contains(t, msg.Last(), "Illegal shop number.")
}
