package shop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lpautet/mud-r-sub003/internal/game/shop"
	"github.com/lpautet/mud-r-sub003/internal/model"
	"github.com/lpautet/mud-r-sub003/internal/testutil"
)

func TestShopHours(t *testing.T) {
	tests := []struct {
		name  string
		hour  int32
		open1 int32
		close1 int32
		open2 int32
		close2 int32
		retort string // empty means the shop serves
	}{
		{"before opening", 6, 8, 20, 0, 0, "Come back later!"},
		{"just opened", 8, 8, 20, 0, 0, ""},
		{"after closing", 21, 8, 20, 0, 0, "Sorry, come back tomorrow."},
		{"between two windows", 13, 6, 12, 14, 22, "Sorry, we have closed, but come back later."},
		{"second window", 15, 6, 12, 14, 22, ""},
		{"after second window", 23, 6, 12, 14, 22, "Sorry, come back tomorrow."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, w, msg, keeper, s := testutil.NewEngine(t)
			buyer := testutil.NewPlayer(t, w, "Ryla", 100)
			testutil.GiveItem(t, w, keeper, testutil.SwordVNum)

			s.Open1, s.Close1 = tt.open1, tt.close1
			s.Open2, s.Close2 = tt.open2, tt.close2
			w.Clock().SetHour(tt.hour)

			e.List(buyer, keeper, s, "")

			if tt.retort == "" {
				assert.True(t, msg.Contains("Available"), "expected a listing, got %v", msg.Entries)
			} else {
				require.NotEmpty(t, msg.Entries)
				assert.Equal(t, keeper.Name+" says, '"+tt.retort+"'", msg.Last())
			}
		})
	}
}

func TestKeeperRefusesUnseenCustomer(t *testing.T) {
	e, w, msg, keeper, s := testutil.NewEngine(t)
	buyer := testutil.NewPlayer(t, w, "Ryla", 100)
	buyer.Invisible = true

	e.List(buyer, keeper, s, "")

	assert.Equal(t, keeper.Name+" says, 'I don't trade with someone I can't see!'", msg.Last())
}

func TestAlignmentRestriction(t *testing.T) {
	e, w, msg, keeper, s := testutil.NewEngine(t)
	buyer := testutil.NewPlayer(t, w, "Ryla", 100)
	buyer.Alignment = -400
	s.WithWho = shop.TradeNoEvil

	e.List(buyer, keeper, s, "")

	assert.True(t, msg.Contains("Get out of here before I call the guards!"),
		"got %v", msg.Entries)
}

func TestClassRestriction(t *testing.T) {
	e, w, msg, keeper, s := testutil.NewEngine(t)
	buyer := testutil.NewPlayer(t, w, "Ryla", 100)
	buyer.Class = model.ClassThief
	s.WithWho = shop.TradeNoThief

	e.List(buyer, keeper, s, "")

	assert.True(t, msg.Contains("We don't serve your kind here!"), "got %v", msg.Entries)
}

func TestClassRestrictionIgnoredForNPCs(t *testing.T) {
	e, w, msg, keeper, s := testutil.NewEngine(t)
	testutil.GiveItem(t, w, keeper, testutil.SwordVNum)

	customer := testutil.NewPlayer(t, w, "a charmed thief", 100)
	customer.NPC = true
	customer.Class = model.ClassThief
	s.WithWho = shop.TradeNoThief

	e.List(customer, keeper, s, "")

	assert.True(t, msg.Contains("Available"), "got %v", msg.Entries)
}

func TestGodBypassesRestrictions(t *testing.T) {
	e, w, msg, keeper, s := testutil.NewEngine(t)
	testutil.GiveItem(t, w, keeper, testutil.SwordVNum)

	god := testutil.NewPlayer(t, w, "Zeus", 0)
	god.Level = model.LvlGod
	god.Alignment = -1000
	s.WithWho = shop.TradeNoEvil

	e.List(god, keeper, s, "")

	assert.True(t, msg.Contains("Available"), "got %v", msg.Entries)
}

// Visibility is checked before godhood: a wizinvis immortal gets the
// same brush-off as any other unseen customer.
func TestInvisibleGodStillRefused(t *testing.T) {
	e, w, msg, keeper, s := testutil.NewEngine(t)
	testutil.GiveItem(t, w, keeper, testutil.SwordVNum)

	god := testutil.NewPlayer(t, w, "Zeus", 0)
	god.Level = model.LvlGod
	god.Invisible = true

	e.List(god, keeper, s, "")

	assert.Equal(t, keeper.Name+" says, 'I don't trade with someone I can't see!'", msg.Last())
}
