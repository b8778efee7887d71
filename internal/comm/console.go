package comm

import (
	"fmt"
	"io"

	"github.com/lpautet/mud-r-sub003/internal/model"
)

// Console — Messenger для локальной консольной сессии: печатает только то,
// что видел бы один наблюдаемый персонаж.
type Console struct {
	w      io.Writer
	player *model.Character
}

// NewConsole creates a console messenger following player's point of view.
func NewConsole(w io.Writer, player *model.Character) *Console {
	return &Console{w: w, player: player}
}

func (c *Console) Say(speaker *model.Character, text string) {
	if speaker.Room != c.player.Room {
		return
	}
	fmt.Fprintf(c.w, "%s says, '%s'\n", speaker.Name, text)
}

func (c *Console) Tell(speaker, to *model.Character, text string) {
	if to != c.player {
		return
	}
	fmt.Fprintf(c.w, "%s tells you, '%s'\n", speaker.Name, text)
}

func (c *Console) Emote(actor *model.Character, text string) {
	if actor.Room != c.player.Room {
		return
	}
	fmt.Fprintf(c.w, "%s %s\n", actor.Name, text)
}

func (c *Console) Act(actor, victim *model.Character, tmpl string) {
	// Act is addressed to the room minus the actor.
	if actor == c.player || actor.Room != c.player.Room {
		return
	}
	fmt.Fprintln(c.w, ExpandAct(tmpl, actor, victim))
}

func (c *Console) ToChar(ch *model.Character, text string) {
	if ch != c.player {
		return
	}
	fmt.Fprintln(c.w, text)
}
