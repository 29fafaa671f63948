package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/duy-ank/asm-apdp/core"
	"github.com/duy-ank/asm-apdp/core/account"
)

var accountUniqueSentinels = map[string]error{
	"accounts_username_key": account.ErrUsernameExists,
	"accounts_email_key":    account.ErrEmailExists,
	"accounts_phone_key":    account.ErrPhoneExists,
}

type accountRepository struct {
	db core.DBExecutor
}

var _ account.Repository = (*accountRepository)(nil)

func NewAccountRepository(db core.DBExecutor) *accountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) CheckUniqueness(ctx context.Context, username, email, phone string, excluded ...account.Account) error {
	// live or not: account identity stays reserved after soft deletion
	q := `SELECT username, email, phone FROM accounts WHERE (username = ? OR email = ? OR phone = ?)`
	args := []interface{}{username, email, phone}
	if len(excluded) > 0 {
		ids := make([]int, len(excluded))
		for i, a := range excluded {
			ids[i] = a.ID
		}
		q += ` AND id NOT IN (?)`
		args = append(args, ids)
	}

	q, flatArgs, err := sqlx.In(q, args...)
	if err != nil {
		return errors.Wrap(err, "building uniqueness query")
	}

	var clashes []account.Account
	if err := sqlx.SelectContext(ctx, r.db, &clashes, r.db.Rebind(q), flatArgs...); err != nil {
		return errors.Wrap(err, "checking account uniqueness")
	}
	for _, c := range clashes {
		switch {
		case c.Username == username:
			return account.ErrUsernameExists
		case c.Email == email:
			return account.ErrEmailExists
		case c.Phone == phone:
			return account.ErrPhoneExists
		}
	}
	return nil
}

func (r *accountRepository) HasAccounts(ctx context.Context) (bool, error) {
	var exists bool
	if err := sqlx.GetContext(ctx, r.db, &exists, `SELECT EXISTS (SELECT 1 FROM accounts)`); err != nil {
		return false, errors.Wrap(err, "checking for accounts")
	}
	return exists, nil
}

func (r *accountRepository) CreateAccount(ctx context.Context, acct account.Account) (account.Account, error) {
	const q = `
		INSERT INTO accounts (role, username, email, phone, address, password_hash, status, created_at, updated_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := sqlx.GetContext(ctx, r.db, &acct.ID, q,
		acct.Role, acct.Username, acct.Email, acct.Phone, acct.Address,
		acct.PasswordHash, acct.Status, acct.CreatedAt, acct.UpdatedAt, acct.DeletedAt)
	if err != nil {
		return account.Account{}, trapUniqueErr(err, accountUniqueSentinels)
	}
	return acct, nil
}

func (r *accountRepository) GetAccount(ctx context.Context, filter account.GetFilter) (account.Account, error) {
	var (
		cond string
		arg  interface{}
	)
	switch {
	case filter.ID != 0:
		cond, arg = `id = $1`, filter.ID
	case filter.Email != "":
		cond, arg = `email = $1`, filter.Email
	default:
		return account.Account{}, account.ErrNotFound
	}

	var acct account.Account
	q := `SELECT * FROM accounts WHERE deleted_at IS NULL AND ` + cond
	if err := sqlx.GetContext(ctx, r.db, &acct, q, arg); err != nil {
		return account.Account{}, trapNoRowsErr(err, account.ErrNotFound)
	}
	return acct, nil
}

func (r *accountRepository) QueryAccounts(ctx context.Context) ([]account.Account, error) {
	var accts []account.Account
	q := `SELECT * FROM accounts WHERE deleted_at IS NULL ORDER BY id`
	if err := sqlx.SelectContext(ctx, r.db, &accts, q); err != nil {
		return nil, errors.Wrap(err, "querying accounts")
	}
	return accts, nil
}

func (r *accountRepository) UpdateAccount(ctx context.Context, acct account.Account) (account.Account, error) {
	const q = `
		UPDATE accounts
		SET role = $2, username = $3, email = $4, phone = $5, address = $6,
		    password_hash = $7, status = $8, updated_at = $9, deleted_at = $10
		WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q,
		acct.ID, acct.Role, acct.Username, acct.Email, acct.Phone, acct.Address,
		acct.PasswordHash, acct.Status, acct.UpdatedAt, acct.DeletedAt)
	if err != nil {
		return account.Account{}, trapUniqueErr(err, accountUniqueSentinels)
	}
	if n, err := res.RowsAffected(); err != nil {
		return account.Account{}, errors.Wrap(err, "updating account")
	} else if n == 0 {
		return account.Account{}, account.ErrNotFound
	}
	return acct, nil
}
