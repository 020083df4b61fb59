// Package user contains the account entity consumed for authentication and
// for attributing shipment mutations. The shipment core only reads a user's
// id and full name; everything else serves login and user administration.
package user

import (
	"errors"
	"strings"
	"time"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

var (
	// ErrUserIsNotConstructed is returned when a User was not created through
	// NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

	// ErrPasswordTooShort is returned when a password is shorter than MinPasswordLength.
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")

	// ErrInvalidCredentials is returned when a password check fails.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// User is an account that can authenticate and act on shipments.
// Emails are unique case-insensitively; they are normalized to lower case
// at construction so the storage uniqueness constraint sees one casing.
type User struct {
	id           kernel.UUID
	email        string
	passwordHash string
	fullName     string
	phone        string
	role         Role
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time

	isConstructed bool
}

// NewUser creates an active user with a bcrypt-hashed password.
func NewUser(id kernel.UUID, email, password, fullName, phone string, role Role, now time.Time) (*User, error) {
	u := &User{
		phone:         phone,
		isActive:      true,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setFullName(fullName),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	if err := u.SetPassword(password); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a user from persistence with its stored hash.
func RestoreUser(
	id kernel.UUID,
	email, passwordHash, fullName, phone string,
	role Role,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*User, error) {
	u := &User{
		passwordHash:  passwordHash,
		phone:         phone,
		isActive:      isActive,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setFullName(fullName),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the user was created through a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Email returns the lowercased email address.
func (u *User) Email() string {
	return u.email
}

// PasswordHash returns the bcrypt hash for persistence.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// FullName returns the display name used in history attribution.
func (u *User) FullName() string {
	return u.fullName
}

// Phone returns the optional phone number.
func (u *User) Phone() string {
	return u.phone
}

// Role returns the authorization role.
func (u *User) Role() Role {
	return u.role
}

// IsActive reports whether the account may log in.
func (u *User) IsActive() bool {
	return u.isActive
}

// CreatedAt returns the creation timestamp.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// SetPassword hashes and stores a new password.
func (u *User) SetPassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.passwordHash = string(hash)
	return nil
}

// ChangePassword replaces the stored password and bumps the update timestamp.
func (u *User) ChangePassword(password string, now time.Time) error {
	if err := u.Validate(); err != nil {
		return err
	}
	if err := u.SetPassword(password); err != nil {
		return err
	}
	u.updatedAt = now
	return nil
}

// CheckPassword compares a plaintext password against the stored hash.
// Returns ErrInvalidCredentials on mismatch.
func (u *User) CheckPassword(password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// Update applies the fields present in upd, leaving omitted fields untouched.
func (u *User) Update(upd UpdateData, now time.Time) error {
	if err := u.Validate(); err != nil {
		return err
	}

	if upd.Email != nil {
		if err := u.setEmail(*upd.Email); err != nil {
			return err
		}
	}
	if upd.FullName != nil {
		if err := u.setFullName(*upd.FullName); err != nil {
			return err
		}
	}
	if upd.Role != nil {
		if err := u.setRole(*upd.Role); err != nil {
			return err
		}
	}
	if upd.Phone != nil {
		u.phone = *upd.Phone
	}
	if upd.IsActive != nil {
		u.isActive = *upd.IsActive
	}

	u.updatedAt = now
	return nil
}

// UpdateData is the partial-update payload for user administration.
type UpdateData struct {
	Email    *string
	FullName *string
	Phone    *string
	Role     *Role
	IsActive *bool
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	u.email = email
	return nil
}

func (u *User) setFullName(fullName string) error {
	if fullName == "" {
		return errs.NewValueIsRequiredError("fullName")
	}
	u.fullName = fullName
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
