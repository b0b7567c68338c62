package generator

import (
	"errors"
	"fmt"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	specialChars   = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	MinLength     = 4
	DefaultLength = 12
)

var (
	ErrInvalidLength            = errors.New("password length must be at least 4 for a secure password")
	ErrEmptyPool                = errors.New("at least one character type must be selected")
	ErrLengthTooShortForClasses = errors.New("password length is shorter than the number of selected character types")
)

// Options configures the password generator. Lowercase letters are always included.
type Options struct {
	Length    int
	Uppercase bool
	Digits    bool
	Special   bool
}

// DefaultOptions returns 12 characters with every optional class enabled.
func DefaultOptions() Options {
	return Options{
		Length:    DefaultLength,
		Uppercase: true,
		Digits:    true,
		Special:   true,
	}
}

// Generate creates a random password from src based on the given options.
// The result holds at least one character of every enabled class, in a
// uniformly random order. A nil src uses Default().
func Generate(src Source, opts Options) (string, error) {
	if opts.Length < MinLength {
		return "", ErrInvalidLength
	}
	if src == nil {
		src = Default()
	}

	var requiredSets []string
	if opts.Uppercase {
		requiredSets = append(requiredSets, uppercaseChars)
	}
	if opts.Digits {
		requiredSets = append(requiredSets, digitChars)
	}
	if opts.Special {
		requiredSets = append(requiredSets, specialChars)
	}
	requiredSets = append(requiredSets, lowercaseChars)

	return generate(src, opts.Length, requiredSets)
}

func generate(src Source, length int, requiredSets []string) (string, error) {
	var pool string
	for _, charset := range requiredSets {
		pool += charset
	}
	if pool == "" {
		return "", ErrEmptyPool
	}
	if length < len(requiredSets) {
		return "", ErrLengthTooShortForClasses
	}

	result := make([]byte, 0, length)

	// One representative per selected class.
	for _, charset := range requiredSets {
		ch, err := randChar(src, charset)
		if err != nil {
			return "", fmt.Errorf("generating password: %w", err)
		}
		result = append(result, ch)
	}

	for len(result) < length {
		ch, err := randChar(src, pool)
		if err != nil {
			return "", fmt.Errorf("generating password: %w", err)
		}
		result = append(result, ch)
	}

	if err := shuffle(src, result); err != nil {
		return "", fmt.Errorf("generating password: %w", err)
	}

	return string(result), nil
}

// randChar picks a uniformly random character from charset.
func randChar(src Source, charset string) (byte, error) {
	if charset == "" {
		return 0, ErrEmptyPool
	}
	n, err := src.IntN(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[n], nil
}

// shuffle performs a Fisher-Yates shuffle.
func shuffle(src Source, data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := src.IntN(i + 1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}
