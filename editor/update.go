package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// eventsForKey decodes one key message. Rune messages (typing or a bracketed
// paste) may carry several events.
func (m Model) eventsForKey(msg tea.KeyMsg) []Event {
	km := m.keys

	switch {
	case key.Matches(msg, km.Up):
		return []Event{Move(IntentUp)}
	case key.Matches(msg, km.Down):
		return []Event{Move(IntentDown)}
	case key.Matches(msg, km.Left):
		return []Event{Move(IntentLeft)}
	case key.Matches(msg, km.Right):
		return []Event{Move(IntentRight)}
	case key.Matches(msg, km.Home):
		return []Event{Move(IntentHome)}
	case key.Matches(msg, km.End):
		return []Event{Move(IntentEnd)}
	case key.Matches(msg, km.PageUp):
		return []Event{Move(IntentPageUp)}
	case key.Matches(msg, km.PageDown):
		return []Event{Move(IntentPageDown)}

	case key.Matches(msg, km.Backspace):
		return []Event{{Kind: EventBackspace}}
	case key.Matches(msg, km.Delete):
		return []Event{{Kind: EventDelete}}
	case key.Matches(msg, km.Enter):
		return []Event{{Kind: EventEnter}}

	case key.Matches(msg, km.Reload):
		return []Event{{Kind: EventReload}}
	case key.Matches(msg, km.Save):
		return []Event{{Kind: EventSave}}
	case key.Matches(msg, km.Quit):
		return []Event{{Kind: EventQuit}}
	}

	switch msg.Type {
	case tea.KeySpace:
		return []Event{Insert(' ')}
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		return eventsForRunes(msg.Runes)
	}
	return nil
}

func eventsForRunes(runes []rune) []Event {
	out := make([]Event, 0, len(runes))
	for i, r := range runes {
		switch {
		case r == '\r':
			out = append(out, Event{Kind: EventEnter})
		case r == '\n':
			// CRLF from a paste is one line break.
			if i > 0 && runes[i-1] == '\r' {
				continue
			}
			out = append(out, Event{Kind: EventEnter})
		case r < 0x80 && IsPrintable(byte(r)):
			out = append(out, Insert(byte(r)))
		}
	}
	return out
}
