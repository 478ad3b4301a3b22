package db

import (
	"errors"
	"fmt"

	"github.com/ramanasai/mindclean/internal/encryption"
)

// ErrLocked is returned when an encrypted row cannot be opened.
var ErrLocked = errors.New("item text is encrypted")

// Sealer encrypts confide texts before they reach disk.
// A nil *Sealer or one without a passphrase stores plaintext.
type Sealer struct {
	encryptor *encryption.Encryptor
	enabled   bool
}

// NewSealer builds a sealer; an empty password yields a disabled sealer.
func NewSealer(password, saltPath string) (*Sealer, error) {
	if password == "" {
		return &Sealer{enabled: false}, nil
	}

	encryptor, err := encryption.NewEncryptor(password, saltPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create encryptor: %w", err)
	}
	return &Sealer{encryptor: encryptor, enabled: true}, nil
}

// IsEnabled returns whether encryption is enabled
func (s *Sealer) IsEnabled() bool {
	return s != nil && s.enabled
}

// Seal returns the stored form of text and whether it was encrypted.
func (s *Sealer) Seal(text string) (string, bool, error) {
	if !s.IsEnabled() {
		return text, false, nil
	}
	enc, err := s.encryptor.Encrypt(text)
	if err != nil {
		return "", false, fmt.Errorf("failed to encrypt text: %w", err)
	}
	return enc, true, nil
}

// Open reverses Seal. Encrypted rows without a usable key yield ErrLocked.
func (s *Sealer) Open(stored string, encrypted bool) (string, error) {
	if !encrypted {
		return stored, nil
	}
	if !s.IsEnabled() {
		return "", ErrLocked
	}
	plain, err := s.encryptor.Decrypt(stored)
	if err != nil {
		return "", errors.Join(ErrLocked, err)
	}
	return plain, nil
}
