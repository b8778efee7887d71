package shop

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lpautet/mud-r-sub003/internal/model"
)

// Админский обзор магазинов: сводная таблица и детальная карточка.
// CircleMUD reference: shop.c show_shops() / list_all_shops() /
// list_detailed_shop().

// customerString renders whom the shop serves. Compact form is one
// letter per category with '_' for the excluded ones; detailed form is
// a comma-separated list of the served categories.
func customerString(s *Shop, detailed bool) string {
	var b strings.Builder
	for i, label := range TradeLetters {
		allowed := s.WithWho&(1<<i) == 0
		if detailed {
			if allowed {
				if b.Len() > 0 {
					b.WriteString(", ")
				}
				b.WriteString(label)
			}
		} else {
			if allowed {
				b.WriteByte(label[0])
			} else {
				b.WriteByte('_')
			}
		}
	}
	if detailed && b.Len() == 0 {
		return "None"
	}
	return b.String()
}

// ShowShops handles "show shops [arg]": no argument lists every shop,
// "." picks the shop in the viewer's room, a number picks by position
// in the listing.
func (e *Engine) ShowShops(ch *model.Character, arg string) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		e.listAllShops(ch)
		return
	}

	var s *Shop
	if arg == "." {
		s = e.ShopAt(ch.Room)
		if s == nil {
			e.msg.ToChar(ch, "This isn't a shop!")
			return
		}
	} else if isNumber(arg) {
		n, _ := strconv.Atoi(arg)
		if n < 1 || n > len(e.shops) {
			e.msg.ToChar(ch, "Illegal shop number.")
			return
		}
		s = e.shops[n-1]
	} else {
		e.msg.ToChar(ch, "Illegal shop number.")
		return
	}
	e.listDetailedShop(ch, s)
}

func (e *Engine) listAllShops(ch *model.Character) {
	var b strings.Builder
	b.WriteString(" ##   Virtual   Where    Keeper    Buy   Sell   Customers\n")
	b.WriteString("---------------------------------------------------------\n")
	for i, s := range e.shops {
		room := model.Nowhere
		if len(s.Rooms) > 0 {
			room = s.Rooms[0]
		}
		keeper := "<NONE>"
		if proto := e.world.CharProto(s.Keeper); proto != nil {
			keeper = strconv.FormatInt(int64(s.Keeper), 10)
		}
		fmt.Fprintf(&b, "%3d   %6d   %6d   %6s   %3.2f   %3.2f    %s\n",
			i+1, s.VNum, room, keeper, s.ProfitSell, s.ProfitBuy,
			customerString(s, false))
	}
	e.msg.ToChar(ch, strings.TrimRight(b.String(), "\n"))
}

func (e *Engine) listDetailedShop(ch *model.Character, s *Shop) {
	var b strings.Builder

	fmt.Fprintf(&b, "Vnum:       [%5d]\n", s.VNum)

	b.WriteString("Rooms:      ")
	if len(s.Rooms) == 0 {
		b.WriteString("None!")
	}
	for i, r := range s.Rooms {
		if i > 0 {
			b.WriteString(", ")
		}
		name := "<UNKNOWN>"
		if room := e.world.Room(r); room != nil {
			name = room.Name
		}
		fmt.Fprintf(&b, "%s (#%d)", name, r)
	}
	b.WriteByte('\n')

	b.WriteString("Shopkeeper: ")
	if proto := e.world.CharProto(s.Keeper); proto != nil {
		fmt.Fprintf(&b, "%s (#%d), Special Function: %s\n",
			proto.Name, s.Keeper, yesno(s.Secondary != nil))
	} else {
		b.WriteString("<NONE>\n")
	}

	b.WriteString("Produces:   ")
	if len(s.Producing) == 0 {
		b.WriteString("Nothing!")
	}
	for i, vnum := range s.Producing {
		if i > 0 {
			b.WriteString(", ")
		}
		name := "<UNKNOWN>"
		if proto := e.world.ItemProto(vnum); proto != nil {
			name = proto.ShortDesc
		}
		fmt.Fprintf(&b, "%s (#%d)", name, vnum)
	}
	b.WriteByte('\n')

	b.WriteString("Buys:       ")
	if len(s.Rules) == 0 {
		b.WriteString("Nothing!")
	}
	for i, rule := range s.Rules {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(itemTypeName(rule.Type))
		if rule.Keywords != "" {
			fmt.Fprintf(&b, " [%s]", rule.Keywords)
		}
	}
	b.WriteByte('\n')

	fmt.Fprintf(&b, "Buy at:     [%4.2f], Sell at: [%4.2f], Open: [%d-%d, %d-%d]\n",
		s.ProfitSell, s.ProfitBuy, s.Open1, s.Close1, s.Open2, s.Close2)
	fmt.Fprintf(&b, "Bank:       [%9d], Gold on hand: %s\n",
		s.BankAccount, keeperGold(e, s))
	fmt.Fprintf(&b, "Customers:  %s\n", customerString(s, true))

	var bits []string
	for i, name := range ShopBits {
		if s.Bitvector&(1<<i) != 0 {
			bits = append(bits, name)
		}
	}
	if len(bits) == 0 {
		bits = []string{"NOBITS"}
	}
	fmt.Fprintf(&b, "Bits:       %s", strings.Join(bits, " "))

	e.msg.ToChar(ch, b.String())
}

func keeperGold(e *Engine, s *Shop) string {
	for _, c := range e.world.Chars() {
		if c.Proto == s.Keeper {
			return strconv.FormatInt(int64(c.Gold), 10)
		}
	}
	return "<absent>"
}

func itemTypeName(t model.ItemType) string {
	if t < 0 || int(t) >= len(model.ItemTypeNames) {
		return "<UNKNOWN>"
	}
	return model.ItemTypeNames[t]
}

func yesno(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
