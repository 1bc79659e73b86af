// Package accounts owns the chart of accounts. The Registry is the only
// writer of account records; other components hold account codes as foreign
// keys, never references into the registry.
package accounts

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/saldo-dev/saldo/internal/errs"
	"github.com/saldo-dev/saldo/internal/model"
)

// Journal is the registry's view of the journal store: just enough to
// cascade a code rename and to refuse deleting a referenced account.
type Journal interface {
	// RewriteAccountCode repoints every line referencing oldCode to
	// newCode and returns how many lines changed.
	RewriteAccountCode(oldCode, newCode string) int
	// CountByCode returns the number of lines referencing code.
	CountByCode(code string) int
}

// Lookup resolves account codes during validation. It is only valid inside
// the Registry.View callback that produced it.
type Lookup interface {
	Exists(code string) bool
}

// Registry holds the chart of accounts behind a single writer lock.
// Mutations and the rename cascade run under the write lock, so a rename
// and a concurrent journal append can never interleave (posting validates
// under View, which holds the read lock).
type Registry struct {
	mu       sync.RWMutex
	accounts []model.Account // insertion order
	byID     map[string]int
	byCode   map[string]int
	journal  Journal
}

// NewRegistry creates an empty Registry bound to a journal for rename
// cascades and delete protection.
func NewRegistry(journal Journal) *Registry {
	return &Registry{
		byID:    make(map[string]int),
		byCode:  make(map[string]int),
		journal: journal,
	}
}

// List returns all accounts in insertion order.
func (r *Registry) List() []model.Account {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Account, len(r.accounts))
	copy(out, r.accounts)
	return out
}

// Get returns an account by ID.
func (r *Registry) Get(id string) (model.Account, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.byID[id]
	if !ok {
		return model.Account{}, false
	}
	return r.accounts[i], true
}

// Add creates an account with a fresh ID. The code must be non-empty and
// unique, and the type must be a recognized enum value.
func (r *Registry) Add(code, name string, typ model.AccountType) (model.Account, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return model.Account{}, errs.Validationf("code", "must not be empty")
	}
	if !typ.Valid() {
		return model.Account{}, errs.Validationf("type", "unrecognized account type %q", typ)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.byCode[code]; dup {
		return model.Account{}, &errs.ConflictError{Kind: "account code", Key: code}
	}

	acct := model.Account{
		ID:   uuid.NewString(),
		Code: code,
		Name: name,
		Type: typ,
	}
	r.byID[acct.ID] = len(r.accounts)
	r.byCode[acct.Code] = len(r.accounts)
	r.accounts = append(r.accounts, acct)
	return acct, nil
}

// Update rewrites an account in place. A code change cascades to every
// journal line referencing the old code as part of the same operation, so
// historical totals stay attached to the renamed account.
func (r *Registry) Update(id, code, name string, typ model.AccountType) (model.Account, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return model.Account{}, errs.Validationf("code", "must not be empty")
	}
	if !typ.Valid() {
		return model.Account{}, errs.Validationf("type", "unrecognized account type %q", typ)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.byID[id]
	if !ok {
		return model.Account{}, &errs.NotFoundError{Kind: "account", Key: id}
	}

	oldCode := r.accounts[i].Code
	if code != oldCode {
		if _, dup := r.byCode[code]; dup {
			return model.Account{}, &errs.ConflictError{Kind: "account code", Key: code}
		}
	}

	r.accounts[i].Code = code
	r.accounts[i].Name = name
	r.accounts[i].Type = typ

	if code != oldCode {
		delete(r.byCode, oldCode)
		r.byCode[code] = i
		// Registry write lock is still held: no append can observe the
		// old code after this point.
		r.journal.RewriteAccountCode(oldCode, code)
	}
	return r.accounts[i], nil
}

// Delete removes an account. Deleting an account whose code is still
// referenced by journal lines is refused; history must stay classifiable.
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.byID[id]
	if !ok {
		return &errs.NotFoundError{Kind: "account", Key: id}
	}

	code := r.accounts[i].Code
	if n := r.journal.CountByCode(code); n > 0 {
		return &errs.ReferentialIntegrityError{Code: code, Lines: n}
	}

	r.accounts = append(r.accounts[:i], r.accounts[i+1:]...)
	delete(r.byID, id)
	delete(r.byCode, code)
	for j := i; j < len(r.accounts); j++ {
		r.byID[r.accounts[j].ID] = j
		r.byCode[r.accounts[j].Code] = j
	}
	return nil
}

// View runs fn under the read lock with a code lookup. The posting engine
// validates and appends inside fn, so no rename can slip in between
// validation and commit.
func (r *Registry) View(fn func(Lookup) error) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return fn(lookup{r})
}

// Snapshot runs fn under the read lock with a copy of the accounts.
// Reporting reads the journal inside fn so both snapshots come from the
// same instant: a rename cascade holds the write lock across its store
// rewrite and cannot land between them. Lock order stays registry then
// store, the same as posting.
func (r *Registry) Snapshot(fn func(accts []model.Account)) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Account, len(r.accounts))
	copy(out, r.accounts)
	fn(out)
}

// FirstOfType returns the first account of the given type in insertion
// order, preferring the account with preferCode when it exists.
func (r *Registry) FirstOfType(typ model.AccountType, preferCode string) (model.Account, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if preferCode != "" {
		if i, ok := r.byCode[preferCode]; ok && r.accounts[i].Type == typ {
			return r.accounts[i], true
		}
	}
	for _, a := range r.accounts {
		if a.Type == typ {
			return a, true
		}
	}
	return model.Account{}, false
}

type lookup struct {
	r *Registry
}

func (l lookup) Exists(code string) bool {
	_, ok := l.r.byCode[code]
	return ok
}
