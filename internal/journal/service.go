package journal

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/saldo-dev/saldo/internal/accounts"
	"github.com/saldo-dev/saldo/internal/errs"
	"github.com/saldo-dev/saldo/internal/model"
)

// Service is the posting engine. It validates batches against the account
// registry and commits them to the store; the registry is read-only from
// here. Validation and append both happen inside Registry.View, so a
// cascading rename can never interleave with a post.
type Service struct {
	registry *accounts.Registry
	store    *Store
}

// NewService creates a posting Service.
func NewService(registry *accounts.Registry, store *Store) *Service {
	return &Service{registry: registry, store: store}
}

// Side is one half of a paired posting: an account code and an amount.
type Side struct {
	AccountCode string
	Amount      decimal.Decimal
}

// PostPair constructs two balanced lines (one full debit, one full credit,
// same amount) and appends them as one batch. This is the balance-safe
// entry point used by invoice and expense postings.
func (s *Service) PostPair(date time.Time, description string, debit, credit Side, reference string) (model.JournalBatch, error) {
	if !debit.Amount.Equal(credit.Amount) {
		return model.JournalBatch{}, &errs.ImbalancedBatchError{Debit: debit.Amount, Credit: credit.Amount}
	}
	lines := []model.JournalLine{
		{
			Date:        date,
			AccountCode: debit.AccountCode,
			Description: description,
			Debit:       debit.Amount,
			Credit:      decimal.Zero,
			Reference:   reference,
		},
		{
			Date:        date,
			AccountCode: credit.AccountCode,
			Description: description,
			Debit:       decimal.Zero,
			Credit:      credit.Amount,
			Reference:   reference,
		},
	}
	return s.PostBatch(lines)
}

// PostBatch validates lines as a unit and appends them atomically. On any
// validation failure the store is left unchanged and the caller must
// resubmit a corrected batch. Line IDs are assigned here; caller-supplied
// IDs are ignored.
func (s *Service) PostBatch(lines []model.JournalLine) (model.JournalBatch, error) {
	batch := make([]model.JournalLine, len(lines))
	copy(batch, lines)
	for i := range batch {
		batch[i].ID = uuid.NewString()
	}

	err := s.registry.View(func(lk accounts.Lookup) error {
		if err := ValidateBatch(batch, lk); err != nil {
			return err
		}
		s.store.Append(batch)
		return nil
	})
	if err != nil {
		return model.JournalBatch{}, err
	}

	ref := ""
	if len(batch) > 0 {
		ref = batch[0].Reference
	}
	return model.JournalBatch{Reference: ref, Lines: batch}, nil
}
