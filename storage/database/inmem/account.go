package inmemdb

import (
	"context"

	"github.com/duy-ank/asm-apdp/core/account"
)

type accountRepository struct {
	db *accountTable
}

var _ account.Repository = (*accountRepository)(nil)

func NewAccountRepository(db *DB) *accountRepository {
	return &accountRepository{db: db.account}
}

func (r *accountRepository) CheckUniqueness(_ context.Context, username, email, phone string, excluded ...account.Account) error {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	skip := make(map[int]struct{}, len(excluded))
	for _, a := range excluded {
		skip[a.ID] = struct{}{}
	}

	// live or not: account identity stays reserved after soft deletion
	for _, acct := range r.db.t {
		if _, ok := skip[acct.ID]; ok {
			continue
		}
		if acct.Username == username {
			return account.ErrUsernameExists
		}
		if acct.Email == email {
			return account.ErrEmailExists
		}
		if acct.Phone == phone {
			return account.ErrPhoneExists
		}
	}
	return nil
}

func (r *accountRepository) HasAccounts(_ context.Context) (bool, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()
	return len(r.db.t) > 0, nil
}

func (r *accountRepository) CreateAccount(_ context.Context, acct account.Account) (account.Account, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	r.db.pk++
	acct.ID = r.db.pk
	r.db.t[acct.ID] = &acct
	return acct, nil
}

func (r *accountRepository) GetAccount(_ context.Context, filter account.GetFilter) (account.Account, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	for _, acct := range r.db.t {
		if !acct.IsLive() {
			continue
		}
		if (filter.ID != 0 && acct.ID == filter.ID) ||
			(filter.Email != "" && acct.Email == filter.Email) {
			return *acct, nil
		}
	}
	return account.Account{}, account.ErrNotFound
}

func (r *accountRepository) QueryAccounts(_ context.Context) ([]account.Account, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	res := make([]account.Account, 0, len(r.db.t))
	for _, acct := range r.db.t {
		if acct.IsLive() {
			res = append(res, *acct)
		}
	}
	return res, nil
}

func (r *accountRepository) UpdateAccount(_ context.Context, acct account.Account) (account.Account, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	if _, ok := r.db.t[acct.ID]; !ok {
		return account.Account{}, account.ErrNotFound
	}
	r.db.t[acct.ID] = &acct
	return acct, nil
}
