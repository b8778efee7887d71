// Package comm delivers in-game text: keeper speech, emotes and plain
// lines to characters and rooms. The trading engine talks only to the
// Messenger interface; transports (console, telnet) implement it.
package comm

import (
	"strings"

	"github.com/lpautet/mud-r-sub003/internal/model"
)

// Messenger — канал доставки игрового текста. Все реплики кипера и
// обратная связь торгового движка идут через него.
type Messenger interface {
	// Say makes the speaker say text to the whole room.
	Say(speaker *model.Character, text string)
	// Tell makes the speaker tell text privately to another character.
	Tell(speaker, to *model.Character, text string)
	// Emote shows "<speaker> <text>" to the room.
	Emote(actor *model.Character, text string)
	// Act renders a $n/$N template to everyone in the actor's room
	// except the actor. $n — actor's name, $N — victim's name.
	Act(actor, victim *model.Character, tmpl string)
	// ToChar sends a raw line to one character.
	ToChar(ch *model.Character, text string)
}

// ExpandAct substitutes $n and $N in an act template.
func ExpandAct(tmpl string, actor, victim *model.Character) string {
	out := strings.ReplaceAll(tmpl, "$N", victimName(victim))
	return strings.ReplaceAll(out, "$n", victimName(actor))
}

func victimName(ch *model.Character) string {
	if ch == nil {
		return "someone"
	}
	return ch.Name
}
