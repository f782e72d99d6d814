// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/taibuivan/wedplan/internal/platform/constants"
)

// ErrInputClosed is returned once the input stream is exhausted.
var ErrInputClosed = errors.New("console: input closed")

// Prompter reads typed values, asking again until the input is acceptable.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Text returns the raw line, which may be empty.
func (p *Prompter) Text(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("console: read input: %w", err)
		}
		return "", ErrInputClosed
	}

	return p.in.Text(), nil
}

// NonEmpty returns a trimmed, non-empty line.
func (p *Prompter) NonEmpty(prompt string) (string, error) {
	for {
		line, err := p.Text(prompt)
		if err != nil {
			return "", err
		}

		if value := strings.TrimSpace(line); value != "" {
			return value, nil
		}
		fmt.Fprintln(p.out, "Field cannot be empty.")
	}
}

// Int returns an integer no smaller than min.
func (p *Prompter) Int(prompt string, min int) (int, error) {
	for {
		line, err := p.Text(prompt)
		if err != nil {
			return 0, err
		}

		value, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(p.out, "Invalid number format. Try again.")
			continue
		}
		if value < min {
			fmt.Fprintf(p.out, "Value must be >= %d\n", min)
			continue
		}

		return value, nil
	}
}

// Date returns a calendar date typed as YYYY-MM-DD.
func (p *Prompter) Date(prompt string) (time.Time, error) {
	for {
		line, err := p.Text(prompt)
		if err != nil {
			return time.Time{}, err
		}

		value, err := time.Parse(constants.DateLayout, strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(p.out, "Invalid date format. Use YYYY-MM-DD (e.g. 2025-11-16).")
			continue
		}

		return value, nil
	}
}
