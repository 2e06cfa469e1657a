// Package tui renders the interactive ledger browser and translates
// key events into session intents. All state lives in the session;
// this package redraws the widgets from it after every intent.
package tui

import (
	"feona/internal/session"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"
)

type ui struct {
	app  *tview.Application
	sess *session.Session
	log  *logrus.Logger

	months *tview.List
	detail *tview.Table
	info   *tview.TextView
}

// Run opens the browser and blocks until the user quits.
func Run(sess *session.Session, log *logrus.Logger) error {
	u := &ui{app: tview.NewApplication(), sess: sess, log: log}

	u.months = tview.NewList().ShowSecondaryText(false)
	u.months.SetSelectedBackgroundColor(tcell.ColorYellow)
	u.months.SetSelectedTextColor(tcell.ColorBlack)
	u.months.SetBorder(true)
	u.months.SetTitle("Months")

	u.detail = tview.NewTable().SetSelectable(true, false).SetFixed(1, 0)
	u.detail.SetSelectedStyle(tcell.StyleDefault.
		Background(tcell.ColorYellow).
		Foreground(tcell.ColorBlack).
		Attributes(tcell.AttrBold))
	u.detail.SetBorder(true)
	u.detail.SetTitle("Detail")

	u.info = tview.NewTextView()
	u.info.SetBorder(true)

	right := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(u.detail, 0, 1, true).
		AddItem(u.info, 3, 0, false)

	layout := tview.NewFlex().
		AddItem(u.months, 0, 1, false).
		AddItem(right, 0, 4, true)

	// every key is handled here; the widgets never see input, so
	// their built-in navigation cannot drift away from the session
	// cursors
	u.app.SetInputCapture(u.capture)
	u.redraw()

	u.log.Info("interactive session started")

	err := u.app.SetRoot(layout, true).Run()

	u.log.Info("interactive session ended")

	return err
}

func (u *ui) capture(e *tcell.EventKey) *tcell.EventKey {
	if e.Key() == tcell.KeyCtrlC {
		u.app.Stop()

		return nil
	}

	switch u.sess.Mode {
	case session.ModeNormal:
		u.captureNormal(e)
	default:
		u.captureEntry(e)
	}

	u.redraw()

	return nil
}

func (u *ui) captureNormal(e *tcell.EventKey) {
	switch e.Rune() {
	case 'q':
		u.app.Stop()
	case 'n':
		u.sess.NextMonth()
	case 'p':
		u.sess.PrevMonth()
	case 'j':
		u.sess.NextTransaction()
	case 'k':
		u.sess.PrevTransaction()
	case 'd':
		u.sess.Delete()
		u.log.WithField("month", currentLabel(u.sess)).Info("deleted entry")
	case 'a':
		u.sess.BeginAdd()
	case 'u':
		u.sess.BeginUpdate()
	}
}

func (u *ui) captureEntry(e *tcell.EventKey) {
	switch e.Key() {
	case tcell.KeyEscape:
		u.sess.Cancel()
	case tcell.KeyEnter:
		u.sess.Confirm()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		u.sess.Backspace()
	case tcell.KeyRune:
		u.sess.TypeRune(e.Rune())
	}
}

func currentLabel(s *session.Session) string {
	m, ok := s.CurrentMonth()
	if !ok {
		return ""
	}

	return m.String()
}
