// Package prompt implements the interactive password generator session.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/passgen/passgen-go/internal/generator"
)

var ErrInvalidInput = errors.New("invalid input")

// Run asks for a length and the three character class toggles on in, then
// writes the generated password (or an error line) to out. The returned
// error is non-nil whenever an "Error:" line was printed.
func Run(in io.Reader, out io.Writer, src generator.Source) error {
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, "Welcome to the Password Generator!")

	fmt.Fprint(out, "Enter the password length (minimum 4): ")
	lengthAnswer, err := readLine(scanner)
	if err != nil {
		return fail(out, err)
	}
	length, err := strconv.Atoi(lengthAnswer)
	if err != nil {
		return fail(out, fmt.Errorf("%w: password length must be an integer, got %q", ErrInvalidInput, lengthAnswer))
	}

	opts := generator.Options{Length: length}
	questions := []struct {
		text   string
		answer *bool
	}{
		{"Include uppercase letters? (y/n): ", &opts.Uppercase},
		{"Include digits? (y/n): ", &opts.Digits},
		{"Include special characters? (y/n): ", &opts.Special},
	}
	for _, q := range questions {
		fmt.Fprint(out, q.text)
		if *q.answer, err = readYes(scanner); err != nil {
			return fail(out, err)
		}
	}

	password, err := generator.Generate(src, opts)
	if err != nil {
		return fail(out, err)
	}

	slog.Debug("password generated",
		"length", len(password),
		"uppercase", opts.Uppercase,
		"digits", opts.Digits,
		"special", opts.Special,
	)
	fmt.Fprintf(out, "\nGenerated Password: %s\n", password)
	return nil
}

func fail(out io.Writer, err error) error {
	fmt.Fprintf(out, "Error: %v\n", err)
	return err
}

// readLine returns the next trimmed line, or "" at a clean end of input.
func readLine(scanner *bufio.Scanner) (string, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", nil
	}
	return strings.TrimSpace(scanner.Text()), nil
}

// readYes reports whether the next answer is "y" in any case. End of input counts as no.
func readYes(scanner *bufio.Scanner) (bool, error) {
	answer, err := readLine(scanner)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "y"), nil
}
