// Package session implements the state machine behind the interactive
// ledger browser: month and transaction cursors, the guided
// Date -> Amount -> Description entry flow for adding and updating
// entries, and re-synchronization with the store after every mutation.
//
// The machine is pure with respect to the terminal: it never renders
// and never reads input. One method per abstract intent mutates the
// single Session instance; the interaction loop owns that instance and
// calls exactly one method per input event.
package session

import (
	"fmt"
	"unicode/utf8"

	"feona/internal/ledger"

	"github.com/shopspring/decimal"
)

// Mode is the current interaction mode.
type Mode int

const (
	// ModeNormal is plain navigation over months and transactions.
	ModeNormal Mode = iota
	// ModeAdd is the guided entry flow for a new transaction.
	ModeAdd
	// ModeUpdate is the guided entry flow replacing the selected
	// transaction.
	ModeUpdate
)

// Step is the current step of a guided entry flow. It is only
// meaningful while Mode is ModeAdd or ModeUpdate.
type Step int

const (
	StepDate Step = iota
	StepAmount
	StepDescription
)

// String returns the prompt label for the step.
func (s Step) String() string {
	switch s {
	case StepAmount:
		return "Amount"
	case StepDescription:
		return "Description"
	default:
		return "Date"
	}
}

// Session is the in-memory view of the ledger that the renderer reads:
// the month catalog and its cursor, the selected month's transactions
// and their cursor, the interaction mode, and the free-text input
// buffer. Outside of guided entry the buffer doubles as the status
// line.
//
// The store's files remain the single source of truth; Transactions is
// a fresh load and is reloaded after every write.
type Session struct {
	store *ledger.Store

	Months           []string
	MonthIndex       int
	Transactions     []ledger.Transaction
	TransactionIndex int

	Mode  Mode
	Step  Step
	Draft ledger.Transaction
	Input string
}

// New builds a session with the catalog loaded, the most recent month
// selected, its transactions loaded, and the month sum shown in the
// status line.
func New(store *ledger.Store) *Session {
	s := &Session{store: store, Draft: ledger.NewTransaction()}

	s.refreshMonths()

	if len(s.Months) > 0 {
		s.MonthIndex = len(s.Months) - 1
	}

	s.reloadTransactions()
	s.setInputToSum()

	return s
}

// CurrentMonth returns the month key for the selected catalog entry.
// The second return value is false when the catalog is empty or the
// label is malformed.
func (s *Session) CurrentMonth() (ledger.Month, bool) {
	if s.MonthIndex < 0 || s.MonthIndex >= len(s.Months) {
		return ledger.Month{}, false
	}

	m, err := ledger.ParseMonth(s.Months[s.MonthIndex])
	if err != nil {
		return ledger.Month{}, false
	}

	return m, true
}

// refreshMonths re-reads the catalog. A listing failure degrades to an
// empty catalog so the session can always start.
func (s *Session) refreshMonths() {
	months, err := s.store.ListMonths()
	if err != nil {
		months = nil
	}

	s.Months = months

	if s.MonthIndex >= len(s.Months) {
		s.MonthIndex = len(s.Months) - 1
	}

	if s.MonthIndex < 0 {
		s.MonthIndex = 0
	}
}

// reloadTransactions re-reads the selected month from the store and
// clamps the transaction cursor. Load failures land in the status
// line; the session keeps running with an empty list.
func (s *Session) reloadTransactions() {
	m, ok := s.CurrentMonth()
	if !ok {
		s.Transactions = nil
		s.TransactionIndex = 0

		return
	}

	txs, err := s.store.Load(m)
	if err != nil {
		s.Transactions = nil
		s.TransactionIndex = 0
		s.Input = err.Error()

		return
	}

	s.Transactions = txs

	if s.TransactionIndex >= len(s.Transactions) {
		s.TransactionIndex = len(s.Transactions) - 1
	}

	if s.TransactionIndex < 0 {
		s.TransactionIndex = 0
	}
}

// setInputToSum places the selected month's sum in the status line.
func (s *Session) setInputToSum() {
	m, ok := s.CurrentMonth()
	if !ok {
		s.Input = ""

		return
	}

	sum, err := s.store.SumAmounts(m)
	if err != nil {
		// the load failure is already in the status line
		return
	}

	s.Input = fmt.Sprintf("Sum for current month: %v", ledger.FormatAmount(sum))
}

// NextMonth advances the month cursor circularly, reloads the month
// and resets the transaction cursor.
func (s *Session) NextMonth() {
	s.stepMonth(1)
}

// PrevMonth retreats the month cursor circularly, reloads the month
// and resets the transaction cursor.
func (s *Session) PrevMonth() {
	s.stepMonth(-1)
}

func (s *Session) stepMonth(delta int) {
	if s.Mode != ModeNormal || len(s.Months) == 0 {
		return
	}

	n := len(s.Months)
	s.MonthIndex = (s.MonthIndex + delta + n) % n
	s.TransactionIndex = 0
	s.reloadTransactions()
	s.setInputToSum()
}

// NextTransaction advances the transaction cursor circularly.
func (s *Session) NextTransaction() {
	s.stepTransaction(1)
}

// PrevTransaction retreats the transaction cursor circularly.
func (s *Session) PrevTransaction() {
	s.stepTransaction(-1)
}

func (s *Session) stepTransaction(delta int) {
	if s.Mode != ModeNormal || len(s.Transactions) == 0 {
		return
	}

	n := len(s.Transactions)
	s.TransactionIndex = (s.TransactionIndex + delta + n) % n
}

// Delete removes the selected transaction from the store and reloads.
// When the removed entry was the last of several, the cursor moves
// back by one. A store failure leaves the cursors untouched and puts
// the error in the status line.
func (s *Session) Delete() {
	if s.Mode != ModeNormal {
		return
	}

	if len(s.Transactions) == 0 {
		s.Input = "no entry selected to delete"

		return
	}

	m, ok := s.CurrentMonth()
	if !ok {
		return
	}

	if err := s.store.RemoveAt(m, s.TransactionIndex); err != nil {
		s.Input = fmt.Sprintf("cannot delete entry: %v", err)

		return
	}

	if len(s.Transactions) > 1 && s.TransactionIndex == len(s.Transactions)-1 {
		s.TransactionIndex--
	}

	s.reloadTransactions()
}

// BeginAdd switches to the guided add flow with a fresh draft.
func (s *Session) BeginAdd() {
	if s.Mode != ModeNormal {
		return
	}

	s.Mode = ModeAdd
	s.Step = StepDate
	s.Draft = ledger.NewTransaction()
	s.Input = ""
}

// BeginUpdate copies the selected transaction into the draft, seeds
// the input buffer with its date and switches to the guided update
// flow.
func (s *Session) BeginUpdate() {
	if s.Mode != ModeNormal {
		return
	}

	if len(s.Transactions) == 0 {
		s.Input = "no entry selected to update"

		return
	}

	s.Mode = ModeUpdate
	s.Step = StepDate
	s.Draft = s.Transactions[s.TransactionIndex]
	s.Input = s.Draft.Date.Format(ledger.DateFormat)
}

// Cancel abandons the guided entry flow, discarding the draft and the
// input buffer.
func (s *Session) Cancel() {
	if s.Mode == ModeNormal {
		return
	}

	s.Mode = ModeNormal
	s.Step = StepDate
	s.Draft = ledger.NewTransaction()
	s.Input = ""
}

// TypeRune appends one character to the input buffer during guided
// entry.
func (s *Session) TypeRune(r rune) {
	if s.Mode == ModeNormal {
		return
	}

	s.Input += string(r)
}

// Backspace removes the last character of the input buffer during
// guided entry.
func (s *Session) Backspace() {
	if s.Mode == ModeNormal || s.Input == "" {
		return
	}

	_, size := utf8.DecodeLastRuneInString(s.Input)
	s.Input = s.Input[:len(s.Input)-size]
}

// Confirm advances the guided entry flow by one step. In ModeNormal it
// does nothing.
func (s *Session) Confirm() {
	switch s.Mode {
	case ModeAdd:
		s.confirmAdd()
	case ModeUpdate:
		s.confirmUpdate()
	}
}

func (s *Session) confirmAdd() {
	switch s.Step {
	case StepDate:
		d, err := ledger.DateOrToday(s.Input)
		if err != nil {
			// recoverable: stay on the step, keep the text for editing
			return
		}

		s.Draft.Date = d
		s.Input = ""
		s.Step = StepAmount

	case StepAmount:
		amount, err := decimal.NewFromString(s.Input)
		if err != nil {
			s.abortEntry(fmt.Sprintf("invalid amount %q: entry aborted", s.Input))

			return
		}

		// the guided add records spending: a positive magnitude is
		// stored as its negation so month sums are a net balance
		s.Draft.Amount = amount.Neg()
		s.Input = ""
		s.Step = StepDescription

	case StepDescription:
		s.Draft.Description = s.Input
		err := s.store.Add(s.Draft)

		s.Mode = ModeNormal
		s.Step = StepDate
		s.Draft = ledger.NewTransaction()

		if err != nil {
			s.Input = fmt.Sprintf("cannot add entry: %v", err)

			return
		}

		s.resync()
		s.Input = "Added entry successfully"
	}
}

func (s *Session) confirmUpdate() {
	switch s.Step {
	case StepDate:
		d, err := ledger.DateOrToday(s.Input)
		if err != nil {
			return
		}

		s.Draft.Date = d
		s.Input = s.Draft.Amount.String()
		s.Step = StepAmount

	case StepAmount:
		amount, err := decimal.NewFromString(s.Input)
		if err != nil {
			s.abortEntry(fmt.Sprintf("invalid amount %q: entry aborted", s.Input))

			return
		}

		s.Draft.Amount = amount
		s.Input = s.Draft.Description
		s.Step = StepDescription

	case StepDescription:
		s.Draft.Description = s.Input

		m, ok := s.CurrentMonth()
		if !ok || s.TransactionIndex >= len(s.Transactions) {
			s.abortEntry(fmt.Sprintf("cannot update entry: %v", ledger.ErrIndexOutOfRange))

			return
		}

		txs := make([]ledger.Transaction, len(s.Transactions))
		copy(txs, s.Transactions)
		txs[s.TransactionIndex] = s.Draft

		err := s.store.Save(m, txs)

		s.Mode = ModeNormal
		s.Step = StepDate
		s.Draft = ledger.NewTransaction()

		if err != nil {
			s.Input = fmt.Sprintf("cannot update entry: %v", err)

			return
		}

		s.resync()
		s.Input = "Updated entry successfully"
	}
}

// abortEntry is the hard stop of a guided entry interaction: the draft
// is discarded and the reason lands in the status line.
func (s *Session) abortEntry(msg string) {
	s.Mode = ModeNormal
	s.Step = StepDate
	s.Draft = ledger.NewTransaction()
	s.Input = msg
}

// resync refreshes the catalog after a write and re-locates the
// previously selected month label, since a write may have grown the
// catalog ahead of the cursor. A vanished label falls back to the most
// recent month.
func (s *Session) resync() {
	var label string
	if s.MonthIndex >= 0 && s.MonthIndex < len(s.Months) {
		label = s.Months[s.MonthIndex]
	}

	s.refreshMonths()

	if len(s.Months) > 0 {
		s.MonthIndex = len(s.Months) - 1

		for i := range s.Months {
			if s.Months[i] == label {
				s.MonthIndex = i

				break
			}
		}
	}

	s.reloadTransactions()
}
