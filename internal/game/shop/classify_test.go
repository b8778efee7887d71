package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lpautet/mud-r-sub003/internal/model"
)

func weaponShop() *Shop {
	return &Shop{
		Rules: []AcceptRule{
			{Type: model.ItemWeapon},
			{Type: model.ItemWand},
		},
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		it   *model.Item
		s    *Shop
		want Classification
	}{
		{
			name: "worthless beats everything",
			it:   &model.Item{Type: model.ItemWeapon, Cost: 0},
			s:    weaponShop(),
			want: Worthless,
		},
		{
			name: "no-sell flag refuses even a matching type",
			it:   &model.Item{Type: model.ItemWeapon, Cost: 100, Extra: model.FlagNoSell},
			s:    weaponShop(),
			want: Refused,
		},
		{
			name: "matching type accepted",
			it:   &model.Item{Type: model.ItemWeapon, Cost: 100},
			s:    weaponShop(),
			want: Accepted,
		},
		{
			name: "non-matching type refused",
			it:   &model.Item{Type: model.ItemFood, Cost: 10},
			s:    weaponShop(),
			want: Refused,
		},
		{
			name: "used up wand is depleted",
			it:   &model.Item{Type: model.ItemWand, Cost: 500, Values: [4]int32{0, 5, 0, 0}},
			s:    weaponShop(),
			want: Depleted,
		},
		{
			name: "charged wand accepted",
			it:   &model.Item{Type: model.ItemWand, Cost: 500, Values: [4]int32{0, 5, 3, 0}},
			s:    weaponShop(),
			want: Accepted,
		},
		{
			name: "keyword expression accepts a foreign type",
			it:   &model.Item{Type: model.ItemScroll, Cost: 50, Extra: model.FlagMagic},
			s: &Shop{Rules: []AcceptRule{
				{Type: model.ItemWeapon, Keywords: "MAGIC"},
			}},
			want: Accepted,
		},
		{
			name: "empty expression does not widen a foreign type",
			it:   &model.Item{Type: model.ItemScroll, Cost: 50},
			s: &Shop{Rules: []AcceptRule{
				{Type: model.ItemWeapon},
			}},
			want: Refused,
		},
		{
			name: "no rules refuses everything",
			it:   &model.Item{Type: model.ItemWeapon, Cost: 100},
			s:    &Shop{},
			want: Refused,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Classify(tt.it, tt.s))
		})
	}
}
