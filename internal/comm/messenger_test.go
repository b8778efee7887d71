package comm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lpautet/mud-r-sub003/internal/model"
)

func TestExpandAct(t *testing.T) {
	t.Parallel()

	actor := &model.Character{Name: "the baker"}
	victim := &model.Character{Name: "Ryla"}

	assert.Equal(t, "the baker slaps Ryla.", ExpandAct("$n slaps $N.", actor, victim))
	assert.Equal(t, "Ryla buys a loaf of bread.", ExpandAct("$n buys a loaf of bread.", victim, nil))
	assert.Equal(t, "someone waves.", ExpandAct("$n waves.", nil, nil))
}

func TestConsolePointOfView(t *testing.T) {
	t.Parallel()

	player := &model.Character{Name: "Ryla", Room: 1}
	keeper := &model.Character{Name: "the baker", Room: 1, NPC: true}
	elsewhere := &model.Character{Name: "far one", Room: 2}

	var buf bytes.Buffer
	c := NewConsole(&buf, player)

	c.Say(keeper, "Come back later!")
	c.Say(elsewhere, "nobody hears this")
	c.Tell(keeper, player, "You can't afford it!")
	c.Tell(keeper, elsewhere, "private to someone else")
	c.Emote(keeper, "smokes on his joint.")
	c.Act(keeper, player, "$n slaps $N.")
	c.Act(player, keeper, "$n buys a loaf of bread.") // own act is not echoed
	c.ToChar(player, "You now have a loaf of bread.")
	c.ToChar(elsewhere, "not for the player")

	want := "the baker says, 'Come back later!'\n" +
		"the baker tells you, 'You can't afford it!'\n" +
		"the baker smokes on his joint.\n" +
		"the baker slaps Ryla.\n" +
		"You now have a loaf of bread.\n"
	assert.Equal(t, want, buf.String())
}
