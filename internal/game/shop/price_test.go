package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lpautet/mud-r-sub003/internal/model"
)

func pricedItem(cost int32) *model.Item {
	return &model.Item{Type: model.ItemWeapon, Cost: cost}
}

func charWithCha(cha int32) *model.Character {
	return &model.Character{Charisma: cha}
}

func TestBuyPrice(t *testing.T) {
	t.Parallel()

	s := &Shop{ProfitBuy: 1.2, ProfitSell: 0.8}
	it := pricedItem(100)

	tests := []struct {
		name      string
		keeperCha int32
		buyerCha  int32
		want      int32
	}{
		{"equal charisma is the flat margin", 12, 12, 120},
		{"charismatic buyer gets a discount", 12, 19, 108},
		{"charismatic keeper marks up", 19, 12, 132},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := BuyPrice(it, s, charWithCha(tt.keeperCha), charWithCha(tt.buyerCha))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSellPrice(t *testing.T) {
	t.Parallel()

	s := &Shop{ProfitBuy: 1.2, ProfitSell: 0.8}
	it := pricedItem(100)

	// Equal charisma: plain sell margin.
	assert.Equal(t, int32(80), SellPrice(it, s, charWithCha(12), charWithCha(12)))

	// Charismatic seller talks the price up.
	assert.Equal(t, int32(88), SellPrice(it, s, charWithCha(12), charWithCha(19)))

	// Keeper charisma talks it down.
	assert.Equal(t, int32(72), SellPrice(it, s, charWithCha(19), charWithCha(12)))
}

// The sell price can never exceed the buy price for the same pair, or a
// player could mint gold by selling and buying back in a loop.
func TestSellNeverAboveBuy(t *testing.T) {
	t.Parallel()

	shops := []*Shop{
		{ProfitBuy: 1.2, ProfitSell: 0.8},
		{ProfitBuy: 1.0, ProfitSell: 1.0},
		{ProfitBuy: 1.1, ProfitSell: 1.1},
	}
	it := pricedItem(1000)

	for _, s := range shops {
		for keeperCha := int32(3); keeperCha <= 25; keeperCha++ {
			for cha := int32(3); cha <= 25; cha++ {
				keeper := charWithCha(keeperCha)
				other := charWithCha(cha)
				buy := BuyPrice(it, s, keeper, other)
				sell := SellPrice(it, s, keeper, other)
				assert.LessOrEqual(t, sell, buy,
					"profit %.1f/%.1f keeper cha %d customer cha %d",
					s.ProfitBuy, s.ProfitSell, keeperCha, cha)
			}
		}
	}
}
