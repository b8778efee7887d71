package shop

import "github.com/lpautet/mud-r-sub003/internal/model"

// charismaSpread normalizes the charisma difference between keeper and
// counterparty into a price multiplier: each point moves the price by
// 1/70. The constant is game-balance-critical and must not drift.
// CircleMUD reference: shop.c buy_price() comment table.
const charismaSpread = 70.0

// BuyPrice — цена, по которой кипер продаёт предмет покупателю.
// Более харизматичный кипер делает наценку, более харизматичный
// покупатель получает скидку.
func BuyPrice(it *model.Item, s *Shop, keeper, buyer *model.Character) int32 {
	delta := float64(keeper.Charisma-buyer.Charisma) / charismaSpread
	return int32(float64(it.Cost) * s.ProfitBuy * (1 + delta))
}

// SellPrice — цена, по которой кипер скупает предмет у продавца.
// Знак харизма-дельты инвертирован (харизматичный продавец выторговывает
// больше), но sell-маржа зажата buy-маржой: магазин никогда не покупает
// дороже, чем продаёт, иначе возникает денежная петля.
func SellPrice(it *model.Item, s *Shop, keeper, seller *model.Character) int32 {
	delta := float64(keeper.Charisma-seller.Charisma) / charismaSpread
	sellMod := s.ProfitSell * (1 - delta)
	buyMod := s.ProfitBuy * (1 + delta)
	if sellMod > buyMod {
		sellMod = buyMod
	}
	return int32(float64(it.Cost) * sellMod)
}
