package editor

import (
	"errors"
	"fmt"
	"log"

	"github.com/iw2rmb/tide/buffer"
	"github.com/iw2rmb/tide/storage"
)

// Session is one editing session over a single file.
//
// A Session is not safe for concurrent use; the event loop owns it.
type Session struct {
	filename string
	store    storage.Store

	buf *buffer.Buffer
	ctl *Controller

	running      bool
	status       string
	savedVersion uint64
}

// NewSession loads filename from store into a fresh session. A missing or
// unreadable file starts an empty buffer; the outcome is left in Status.
func NewSession(filename string, store storage.Store, width, height int) *Session {
	s := &Session{
		filename: filename,
		store:    store,
		running:  true,
	}
	s.buf = buffer.New()
	s.ctl = NewController(s.buf, width, height)

	lines, err := s.load()
	switch {
	case err == nil:
		s.replaceBuffer(lines)
		s.status = "opened " + filename
	case errors.Is(err, storage.ErrNotFound):
		s.status = "started new file " + filename
	default:
		log.Printf("editor: open %s: %v", filename, err)
		s.status = fmt.Sprintf("open failed, started new file: %v", err)
	}
	return s
}

func (s *Session) Filename() string          { return s.filename }
func (s *Session) Running() bool             { return s.running }
func (s *Session) Status() string            { return s.status }
func (s *Session) Buffer() *buffer.Buffer    { return s.buf }
func (s *Session) Controller() *Controller   { return s.ctl }
func (s *Session) Modified() bool            { return s.buf.Version() != s.savedVersion }
func (s *Session) SetSize(width, height int) { s.ctl.SetSize(width, height) }

// Position returns the cursor column and the buffer line index.
func (s *Session) Position() (col, line int) {
	return s.ctl.Cursor().Col, s.ctl.LineIndex()
}

// Apply interprets one event. Every event leaves the buffer non-empty and the
// cursor on an existing line.
func (s *Session) Apply(ev Event) {
	var err error
	switch ev.Kind {
	case EventInsert:
		err = s.insert(ev.Char)
	case EventEnter:
		err = s.enter()
	case EventBackspace:
		err = s.backspace()
	case EventDelete:
		err = s.deleteForward()
	case EventMove:
		s.ctl.Move(ev.Intent)
	case EventReload:
		s.reload()
	case EventSave:
		s.save()
	case EventQuit:
		s.running = false
	}
	if err != nil {
		// Clamping should make this unreachable; keep the session usable.
		log.Printf("editor: %s abandoned: %v", ev.Kind, err)
		s.ctl.Normalize()
	}
}

func (s *Session) insert(c byte) error {
	if !IsPrintable(c) {
		return nil
	}
	col := s.ctl.Cursor().Col
	if err := s.buf.InsertByte(s.ctl.LineIndex(), col, c); err != nil {
		return err
	}
	s.ctl.SetColumn(col + 1)
	return nil
}

func (s *Session) enter() error {
	idx := s.ctl.LineIndex()
	col := s.ctl.Cursor().Col
	var err error
	if col == s.buf.LineLen(idx) {
		err = s.buf.InsertLineAfter(idx, "")
	} else {
		err = s.buf.SplitLine(idx, col)
	}
	if err != nil {
		return err
	}
	s.ctl.Move(IntentDown)
	s.ctl.SetColumn(0)
	return nil
}

func (s *Session) backspace() error {
	idx := s.ctl.LineIndex()
	col := s.ctl.Cursor().Col
	if col > 0 {
		if err := s.buf.DeleteByte(idx, col-1); err != nil {
			return err
		}
		s.ctl.SetColumn(col - 1)
		return nil
	}
	if idx == 0 {
		return nil
	}

	joinAt := s.buf.LineLen(idx - 1)
	if err := s.buf.JoinWithNext(idx - 1); err != nil {
		return err
	}
	s.ctl.Move(IntentUp)
	s.ctl.SetColumn(joinAt)
	return nil
}

func (s *Session) deleteForward() error {
	idx := s.ctl.LineIndex()
	col := s.ctl.Cursor().Col
	if col < s.buf.LineLen(idx) {
		return s.buf.DeleteByte(idx, col)
	}
	if idx+1 >= s.buf.LineCount() {
		return nil
	}
	if err := s.buf.JoinWithNext(idx); err != nil {
		return err
	}
	s.ctl.Normalize()
	return nil
}

func (s *Session) reload() {
	lines, err := s.load()
	if err != nil {
		log.Printf("editor: reload %s: %v", s.filename, err)
		s.replaceBuffer(nil)
		if errors.Is(err, storage.ErrNotFound) {
			s.status = "no file " + s.filename + ", buffer cleared"
		} else {
			s.status = fmt.Sprintf("reload failed, buffer cleared: %v", err)
		}
		return
	}
	s.replaceBuffer(lines)
	s.status = "reloaded " + s.filename
}

func (s *Session) save() {
	if s.store == nil {
		s.status = "save failed: no storage"
		return
	}
	lines := s.buf.Lines()
	if err := s.store.Save(s.filename, lines); err != nil {
		log.Printf("editor: save %s: %v", s.filename, err)
		s.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	s.savedVersion = s.buf.Version()
	s.status = fmt.Sprintf("saved %s (%d lines)", s.filename, len(lines))
	log.Printf("editor: saved %s (%d lines)", s.filename, len(lines))
}

func (s *Session) load() ([]string, error) {
	if s.store == nil {
		return nil, storage.ErrNotFound
	}
	return s.store.Load(s.filename)
}

func (s *Session) replaceBuffer(lines []string) {
	s.buf = buffer.FromLines(lines)
	s.savedVersion = s.buf.Version()
	s.ctl.Attach(s.buf)
}
