package account

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/duy-ank/asm-apdp/core"
)

var (
	ErrNotFound       = errors.New("account not found")
	ErrEmailExists    = errors.New("this email is already registered")
	ErrUsernameExists = errors.New("this username is already taken")
	ErrPhoneExists    = errors.New("this phone number is already registered")

	// ErrInvalidCredentials is returned for unknown emails and wrong
	// passwords alike; callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Default admin account seeded on first run.
const (
	SeedAdminUsername = "admin"
	SeedAdminEmail    = "admin@sims.com"
	SeedAdminPassword = "admin123"
	SeedAdminPhone    = "1234567890"
	SeedAdminAddress  = "Default Admin Address"
)

type (
	GetFilter struct {
		ID    int
		Email string
	}

	Repository interface {
		// CheckUniqueness verifies that username, email and phone are not in
		// use by any account (live or not), except the excluded ones. It
		// returns ErrUsernameExists, ErrEmailExists or ErrPhoneExists.
		CheckUniqueness(ctx context.Context, username, email, phone string, excluded ...Account) error
		HasAccounts(ctx context.Context) (bool, error)
		CreateAccount(ctx context.Context, acct Account) (Account, error)
		// GetAccount finds a live account matching the filter; ErrNotFound
		// if it is absent or soft-deleted.
		GetAccount(ctx context.Context, filter GetFilter) (Account, error)
		QueryAccounts(ctx context.Context) ([]Account, error)
		UpdateAccount(ctx context.Context, acct Account) (Account, error)
	}

	Service struct {
		repo Repository
		mail core.EmailService
		conf *core.Config
	}
)

func NewService(repo Repository, mail core.EmailService, conf *core.Config) *Service {
	return &Service{repo: repo, mail: mail, conf: conf}
}

// CheckUniqueness converts repository uniqueness failures into field-level
// validation errors on the originating form.
func (svc *Service) CheckUniqueness(ctx context.Context, uname, email, phone string, excl ...Account) error {
	if err := svc.repo.CheckUniqueness(ctx, uname, email, phone, excl...); err != nil {
		var field string
		switch errors.Cause(err) {
		case ErrUsernameExists:
			field = "username"
		case ErrEmailExists:
			field = "email"
		case ErrPhoneExists:
			field = "phone"
		default:
			return err
		}
		return core.NewValidationError(err, core.FieldError{Field: field, Error: err.Error()})
	}
	return nil
}

// Register creates an account from a validated registration form and sends a
// welcome email. The requested role must be one of RegisterableRoles; the
// role validator reports anything else as a field error before we get here.
func (svc *Service) Register(ctx context.Context, na NewAccount) (Account, error) {
	acct := Account{
		Role:      na.Role,
		Username:  na.Username,
		Email:     na.Email,
		Phone:     na.Phone,
		Address:   na.Address,
		Status:    core.StatusActive,
		CreatedAt: time.Now().UTC(),
	}
	if err := acct.SetPassword(na.Password); err != nil {
		return Account{}, errors.Wrap(err, "hashing password")
	}

	acct, err := svc.repo.CreateAccount(ctx, acct)
	if err != nil {
		return Account{}, errors.Wrap(err, "creating account")
	}

	svc.sendWelcomeEmail(acct, na.FullName)
	return acct, nil
}

// Authenticate looks up a live account by email and verifies the password.
// Unknown email and wrong password yield the same ErrInvalidCredentials.
func (svc *Service) Authenticate(ctx context.Context, email, pwd string) (Account, error) {
	acct, err := svc.repo.GetAccount(ctx, GetFilter{Email: core.CleanString(email, true /* lower */)})
	if err != nil {
		if errors.Cause(err) == ErrNotFound {
			return Account{}, ErrInvalidCredentials
		}
		return Account{}, errors.Wrap(err, "finding account by email")
	}
	if err = acct.CheckPassword(pwd); err != nil {
		return Account{}, ErrInvalidCredentials
	}
	return acct, nil
}

// Provision creates an account for a student added through the admin surface.
// The generated one-time password is returned exactly once; only its hash is
// stored.
func (svc *Service) Provision(ctx context.Context, email, phone, address, role string) (Account, string, error) {
	email = core.CleanString(email, true /* lower */)
	uname := strings.SplitN(email, "@", 2)[0]

	if err := svc.CheckUniqueness(ctx, uname, email, phone); err != nil {
		return Account{}, "", err
	}

	pwd := uuid.NewString()
	acct := Account{
		Role:      role,
		Username:  uname,
		Email:     email,
		Phone:     phone,
		Address:   address,
		Status:    core.StatusActive,
		CreatedAt: time.Now().UTC(),
	}
	if err := acct.SetPassword(pwd); err != nil {
		return Account{}, "", errors.Wrap(err, "hashing password")
	}

	acct, err := svc.repo.CreateAccount(ctx, acct)
	if err != nil {
		return Account{}, "", errors.Wrap(err, "creating account")
	}
	return acct, pwd, nil
}

// Seed creates the default admin account when the store holds no accounts at
// all. It reports whether an account was created; running it again is a no-op.
func (svc *Service) Seed(ctx context.Context) (bool, error) {
	exists, err := svc.repo.HasAccounts(ctx)
	if err != nil {
		return false, errors.Wrap(err, "checking for existing accounts")
	}
	if exists {
		return false, nil
	}

	admin := Account{
		Role:      RoleAdmin,
		Username:  SeedAdminUsername,
		Email:     SeedAdminEmail,
		Phone:     SeedAdminPhone,
		Address:   SeedAdminAddress,
		Status:    core.StatusActive,
		CreatedAt: time.Now().UTC(),
	}
	if err := admin.SetPassword(SeedAdminPassword); err != nil {
		return false, errors.Wrap(err, "hashing password")
	}
	if _, err := svc.repo.CreateAccount(ctx, admin); err != nil {
		return false, errors.Wrap(err, "creating default admin")
	}
	return true, nil
}

func (svc *Service) GetByID(ctx context.Context, id int) (Account, error) {
	return svc.repo.GetAccount(ctx, GetFilter{ID: id})
}

func (svc *Service) GetByEmail(ctx context.Context, email string) (Account, error) {
	return svc.repo.GetAccount(ctx, GetFilter{Email: core.CleanString(email, true /* lower */)})
}

func (svc *Service) QueryAll(ctx context.Context) ([]Account, error) {
	return svc.repo.QueryAccounts(ctx)
}

func (svc *Service) sendWelcomeEmail(acct Account, fullName string) {
	if svc.mail == nil {
		return
	}
	svc.mail.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Name: fullName, Address: acct.Email}},
		Subject: fmt.Sprintf("Welcome to %s", svc.conf.AppName),
		Body: fmt.Sprintf(
			"Hi %s,\n\nYour %s account %q has been created. You can now log in with your email address.",
			fullName, svc.conf.AppName, acct.Username),
	})
}
