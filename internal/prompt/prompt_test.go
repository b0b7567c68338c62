package prompt

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passgen/passgen-go/internal/generator"
)

func extractPassword(t *testing.T, out string) string {
	t.Helper()
	const marker = "Generated Password: "
	idx := strings.Index(out, marker)
	require.NotEqual(t, -1, idx, "no password in output: %q", out)
	return strings.TrimSuffix(out[idx+len(marker):], "\n")
}

func TestRunAllClasses(t *testing.T) {
	var out bytes.Buffer
	err := Run(strings.NewReader("16\ny\ny\ny\n"), &out, generator.NewSeededSource(1))
	require.NoError(t, err)

	transcript := out.String()
	assert.True(t, strings.HasPrefix(transcript, "Welcome to the Password Generator!\n"))
	assert.Contains(t, transcript, "Enter the password length (minimum 4): ")
	assert.Contains(t, transcript, "Include uppercase letters? (y/n): ")
	assert.Contains(t, transcript, "Include digits? (y/n): ")
	assert.Contains(t, transcript, "Include special characters? (y/n): ")
	assert.Contains(t, transcript, "(y/n): \nGenerated Password: ")

	password := extractPassword(t, transcript)
	assert.Len(t, password, 16)
	assert.True(t, strings.ContainsAny(password, "ABCDEFGHIJKLMNOPQRSTUVWXYZ"))
	assert.True(t, strings.ContainsAny(password, "0123456789"))
	assert.True(t, strings.ContainsAny(password, "abcdefghijklmnopqrstuvwxyz"))
}

func TestRunAnswersAreCaseInsensitive(t *testing.T) {
	var out bytes.Buffer
	err := Run(strings.NewReader("20\nY\n  y \nn\n"), &out, generator.Default())
	require.NoError(t, err)

	password := extractPassword(t, out.String())
	assert.Len(t, password, 20)
	assert.True(t, strings.ContainsAny(password, "ABCDEFGHIJKLMNOPQRSTUVWXYZ"))
	assert.True(t, strings.ContainsAny(password, "0123456789"))
	for _, c := range password {
		assert.True(t, (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9'),
			"unexpected special character %q", c)
	}
}

func TestRunOnlyExactYIsYes(t *testing.T) {
	var out bytes.Buffer
	err := Run(strings.NewReader("12\nyes\nno\n\n"), &out, generator.Default())
	require.NoError(t, err)

	password := extractPassword(t, out.String())
	assert.Len(t, password, 12)
	for _, c := range password {
		assert.True(t, c >= 'a' && c <= 'z', "unexpected character %q", c)
	}
}

func TestRunEndOfInputMeansNo(t *testing.T) {
	var out bytes.Buffer
	err := Run(strings.NewReader("8\n"), &out, generator.Default())
	require.NoError(t, err)

	password := extractPassword(t, out.String())
	assert.Len(t, password, 8)
}

func TestRunLengthTooShort(t *testing.T) {
	var out bytes.Buffer
	err := Run(strings.NewReader("3\ny\ny\ny\n"), &out, generator.Default())

	require.ErrorIs(t, err, generator.ErrInvalidLength)
	assert.Contains(t, out.String(), "Error: "+generator.ErrInvalidLength.Error()+"\n")
	assert.NotContains(t, out.String(), "Generated Password")
}

func TestRunLengthNotANumber(t *testing.T) {
	var out bytes.Buffer
	err := Run(strings.NewReader("twelve\n"), &out, generator.Default())

	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, out.String(), "Error: invalid input: password length must be an integer")
	assert.NotContains(t, out.String(), "Include uppercase letters?")
}

func TestRunOverlongLengthLineIsReadError(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader(strings.Repeat(" ", 70000) + "12\ny\ny\ny\n")
	err := Run(in, &out, generator.Default())

	require.ErrorIs(t, err, bufio.ErrTooLong)
	assert.NotErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, out.String(), "Error: reading input: ")
	assert.NotContains(t, out.String(), "Generated Password")
}

func TestRunReadFailureDuringQuestions(t *testing.T) {
	errDisk := errors.New("stdin closed unexpectedly")
	in := io.MultiReader(strings.NewReader("12\ny\n"), iotest.ErrReader(errDisk))

	var out bytes.Buffer
	err := Run(in, &out, generator.Default())

	require.ErrorIs(t, err, errDisk)
	assert.Contains(t, out.String(), "Include digits? (y/n): Error: reading input: stdin closed unexpectedly\n")
	assert.NotContains(t, out.String(), "Include special characters?")
	assert.NotContains(t, out.String(), "Generated Password")
}
