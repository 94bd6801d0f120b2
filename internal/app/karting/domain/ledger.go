package domain

import "time"

// Ledger debits booking totals from client balances.
type Ledger struct{}

// NewLedger creates a new Ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Charge returns a copy of client with amount debited and one more visit
// recorded. The input is never modified. Funds are checked before anything
// changes; a negative amount credits the balance.
func (l *Ledger) Charge(client *Client, amount int64, now time.Time) (*Client, error) {
	if client.cash-amount < 0 {
		return nil, ErrInsufficientFunds
	}

	charged := client.clone()
	charged.cash -= amount
	charged.frequency++
	charged.updatedAt = now
	charged.changes.MarkDirty(FieldCash, FieldFrequency)

	charged.recordEvent(&ClientChargedEvent{
		ClientID:     charged.id,
		Rut:          charged.rut,
		Amount:       amount,
		CashAfter:    charged.cash,
		FrequencyNow: charged.frequency,
		ChargedAt:    now,
	})

	return charged, nil
}
