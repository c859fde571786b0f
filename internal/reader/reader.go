// Package reader loads the whole content of the search target into memory
package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// StdInTarget - имя цели, при котором контент читается из stdIn
const StdInTarget = "-"

var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

func ReadContent(stdin io.Reader, fileName string) (string, error) {
	switch fileName {
	case StdInTarget:
		return readStdIn(stdin)
	default:
		return readFile(fileName)
	}
}

func readStdIn(stdin io.Reader) (string, error) {
	raw, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("error reading stdin: %w", err)
	}
	return toText(raw)
}

func readFile(fileName string) (string, error) {
	// проверяем открывается ли файл
	info, err := os.Stat(fileName)
	if err != nil {
		return "", fmt.Errorf("error opening file %q: %w", fileName, err)
	}
	// проверяем не папка ли это
	if info.IsDir() {
		return "", fmt.Errorf("specified source filename %q is a directory", fileName)
	}

	raw, err := os.ReadFile(fileName)
	if err != nil {
		return "", fmt.Errorf("couldn't read file %q: %w", fileName, err)
	}
	return toText(raw)
}

func toText(raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", ErrInvalidUTF8
	}
	return string(raw), nil
}
