package service

import (
	"errors"

	"github.com/passgen/passgen-go/internal/generator"
	"github.com/passgen/passgen-go/internal/model"
)

// MaxLength bounds passwords requested over the network.
const MaxLength = 1024

var ErrLengthTooLong = errors.New("password length must be at most 1024")

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	src generator.Source
}

// NewGeneratorService creates a new GeneratorService drawing from src.
func NewGeneratorService(src generator.Source) *GeneratorService {
	if src == nil {
		src = generator.Default()
	}
	return &GeneratorService{src: src}
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := generator.Options{
		Length:    req.Length,
		Uppercase: boolOrDefault(req.Uppercase, true),
		Digits:    boolOrDefault(req.Digits, true),
		Special:   boolOrDefault(req.Special, true),
	}

	if opts.Length == 0 {
		opts.Length = generator.DefaultLength
	}
	if opts.Length > MaxLength {
		return model.GenerateResponse{}, ErrLengthTooLong
	}

	password, err := generator.Generate(s.src, opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
	}, nil
}

// IsValidationError reports whether err was caused by the caller's input.
func IsValidationError(err error) bool {
	return errors.Is(err, generator.ErrInvalidLength) ||
		errors.Is(err, generator.ErrLengthTooShortForClasses) ||
		errors.Is(err, ErrLengthTooLong)
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
