package tui

import (
	"fmt"

	"feona/internal/ledger"
	"feona/internal/session"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// redraw repopulates every widget from the session's read surface.
func (u *ui) redraw() {
	u.months.Clear()

	for _, label := range u.sess.Months {
		u.months.AddItem(label, "", 0, nil)
	}

	if len(u.sess.Months) > 0 {
		u.months.SetCurrentItem(u.sess.MonthIndex)
	}

	u.detail.Clear()

	for col, header := range []string{"Date", "Amount", "Description"} {
		u.detail.SetCell(0, col, tview.NewTableCell(header).
			SetAttributes(tcell.AttrBold).
			SetSelectable(false))
	}

	for row, tx := range u.sess.Transactions {
		u.detail.SetCell(row+1, 0, tview.NewTableCell(tx.Date.Format(ledger.DateFormat)))
		u.detail.SetCell(row+1, 1, tview.NewTableCell(tx.Amount.StringFixed(2)).
			SetAlign(tview.AlignRight))
		u.detail.SetCell(row+1, 2, tview.NewTableCell(tx.Description).
			SetExpansion(1))
	}

	if len(u.sess.Transactions) > 0 {
		u.detail.Select(u.sess.TransactionIndex+1, 0)
	}

	u.info.SetTitle(modeTitle(u.sess.Mode))
	u.info.SetText(infoText(u.sess))
}

func modeTitle(m session.Mode) string {
	switch m {
	case session.ModeAdd:
		return "Add"
	case session.ModeUpdate:
		return "Update"
	default:
		return "Info"
	}
}

// infoText renders the status line: the raw buffer in normal mode, or
// the current prompt with the typed text during guided entry.
func infoText(s *session.Session) string {
	if s.Mode == session.ModeNormal {
		return s.Input
	}

	return fmt.Sprintf("%v: %v", s.Step, s.Input)
}
