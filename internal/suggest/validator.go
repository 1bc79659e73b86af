// Package suggest is the trust boundary for externally generated journal
// entry proposals. A proposal's origin (an LLM or any other generator)
// cannot be trusted to respect the chart of accounts, so every field is
// checked before anything reaches the posting engine.
package suggest

import (
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/saldo-dev/saldo/internal/accounts"
	"github.com/saldo-dev/saldo/internal/errs"
	"github.com/saldo-dev/saldo/internal/journal"
	"github.com/saldo-dev/saldo/internal/model"
)

// Poster is the slice of the posting engine the validator forwards to.
type Poster interface {
	PostPair(date time.Time, description string, debit, credit journal.Side, reference string) (model.JournalBatch, error)
}

// Validator screens proposed entries and forwards accepted ones to the
// posting engine. Rejected proposals are discarded whole; nothing is ever
// partially posted.
type Validator struct {
	registry *accounts.Registry
	poster   Poster
	log      *zap.Logger
}

// NewValidator creates a Validator.
func NewValidator(registry *accounts.Registry, poster Poster, log *zap.Logger) *Validator {
	return &Validator{registry: registry, poster: poster, log: log}
}

// Submit validates p and, if every check passes, posts it as a balanced
// pair. Failures are ValidationErrors naming the offending field.
func (v *Validator) Submit(p model.ProposedEntry) (model.JournalBatch, error) {
	date, err := v.check(p)
	if err != nil {
		v.log.Info("proposal rejected",
			zap.String("reference", p.Reference),
			zap.Error(err),
		)
		return model.JournalBatch{}, err
	}

	batch, err := v.poster.PostPair(date, p.Description,
		journal.Side{AccountCode: p.DebitAccountCode, Amount: p.Amount},
		journal.Side{AccountCode: p.CreditAccountCode, Amount: p.Amount},
		p.Reference,
	)
	if err != nil {
		v.log.Info("proposal rejected at posting",
			zap.String("reference", p.Reference),
			zap.Error(err),
		)
		return model.JournalBatch{}, err
	}

	v.log.Info("proposal posted",
		zap.String("reference", p.Reference),
		zap.String("debit", p.DebitAccountCode),
		zap.String("credit", p.CreditAccountCode),
		zap.String("amount", p.Amount.String()),
	)
	return batch, nil
}

func (v *Validator) check(p model.ProposedEntry) (time.Time, error) {
	date, err := time.Parse(model.DateFormat, p.Date)
	if err != nil {
		return time.Time{}, errs.Validationf("date", "%q is not a valid calendar date (want YYYY-MM-DD)", p.Date)
	}
	if !p.Amount.GreaterThan(decimal.Zero) {
		return time.Time{}, errs.Validationf("amount", "must be greater than zero, got %s", p.Amount)
	}
	if p.DebitAccountCode == p.CreditAccountCode {
		return time.Time{}, errs.Validationf("credit_account_code", "debit and credit accounts must differ")
	}

	err = v.registry.View(func(lk accounts.Lookup) error {
		if !lk.Exists(p.DebitAccountCode) {
			return errs.Validationf("debit_account_code", "unknown account code %q", p.DebitAccountCode)
		}
		if !lk.Exists(p.CreditAccountCode) {
			return errs.Validationf("credit_account_code", "unknown account code %q", p.CreditAccountCode)
		}
		return nil
	})
	if err != nil {
		return time.Time{}, err
	}
	return date, nil
}
