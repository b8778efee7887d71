// Package testutil содержит общие строительные блоки тестов: мир с
// магазином, готовые персонажи и записывающий Messenger.
package testutil

import (
	"strings"

	"github.com/lpautet/mud-r-sub003/internal/comm"
	"github.com/lpautet/mud-r-sub003/internal/model"
)

// RecordingMessenger captures every line the engine emits, one entry
// per call, so tests can assert on exact keeper speech.
type RecordingMessenger struct {
	Entries []string
}

var _ comm.Messenger = (*RecordingMessenger)(nil)

func (m *RecordingMessenger) Say(speaker *model.Character, text string) {
	m.Entries = append(m.Entries, speaker.Name+" says, '"+text+"'")
}

func (m *RecordingMessenger) Tell(speaker, to *model.Character, text string) {
	m.Entries = append(m.Entries, speaker.Name+" tells "+to.Name+", '"+text+"'")
}

func (m *RecordingMessenger) Emote(actor *model.Character, text string) {
	m.Entries = append(m.Entries, actor.Name+" "+text)
}

func (m *RecordingMessenger) Act(actor, victim *model.Character, tmpl string) {
	m.Entries = append(m.Entries, comm.ExpandAct(tmpl, actor, victim))
}

func (m *RecordingMessenger) ToChar(ch *model.Character, text string) {
	m.Entries = append(m.Entries, "["+ch.Name+"] "+text)
}

// Last returns the most recent entry, "" if nothing was said.
func (m *RecordingMessenger) Last() string {
	if len(m.Entries) == 0 {
		return ""
	}
	return m.Entries[len(m.Entries)-1]
}

// Contains reports whether any recorded entry contains the substring.
func (m *RecordingMessenger) Contains(sub string) bool {
	for _, e := range m.Entries {
		if strings.Contains(e, sub) {
			return true
		}
	}
	return false
}

// Reset drops everything recorded so far.
func (m *RecordingMessenger) Reset() {
	m.Entries = nil
}
