package auth

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"projectforge/config"
	domainerrors "projectforge/internal/domain/errors"
	"projectforge/internal/domain/service"
	"projectforge/internal/errors"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 8

// Password policy i18n keys.
const (
	KeyPasswordTooShort       = "user.changePassword.error.passwordTooShort"
	KeyPasswordCharsAndDigits = "user.changePassword.error.notCharsAndDigits"
	KeyPasswordForbiddenWords = "user.changePassword.error.forbiddenWords"
)

var forbiddenPasswordWords = []string{"password", "passwort", "admin", "projectforge", "qwertz", "qwerty", "12345678"}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher. The cost comes from
// auth.bcryptCost and falls back to bcrypt.DefaultCost.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	return NewBcryptHasherWithCost(cost)
}

// NewBcryptHasherWithCost creates a hasher with an explicit cost, clamped to
// the range bcrypt accepts.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	cost = max(bcrypt.MinCost, min(cost, bcrypt.MaxCost))

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength requires a minimum length and a mix of letters
// and non-letters. Common words are rejected case-insensitively.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if len([]rune(password)) < MinPasswordLength {
		return domainerrors.NewUserError(KeyPasswordTooShort, MinPasswordLength).ForField("password")
	}

	var letters, others bool
	for _, r := range password {
		if unicode.IsLetter(r) {
			letters = true
		} else if !unicode.IsSpace(r) {
			others = true
		}
	}
	if !letters || !others {
		return domainerrors.NewUserError(KeyPasswordCharsAndDigits).ForField("password")
	}

	lower := strings.ToLower(password)
	for _, word := range forbiddenPasswordWords {
		if strings.Contains(lower, word) {
			return domainerrors.NewUserError(KeyPasswordForbiddenWords, word).ForField("password")
		}
	}

	return nil
}
