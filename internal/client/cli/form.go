package cli

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s looks like an email address. It mirrors the
// server's expectations well enough to give early feedback before the request
// is even sent.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}

// promptEmail reads an email address, re-prompting until it passes the format
// check. Line-based input has no keystroke stream to debounce, so validation
// runs on each submitted line instead.
func (a *App) promptEmail() (string, error) {
	for {
		email, err := GetSimpleText(a.reader, "Email", a.out)
		if err != nil {
			return "", err
		}
		if ValidEmail(email) {
			return email, nil
		}
		fmt.Fprintln(a.out, "That does not look like an email address, try again.")
	}
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %s\n", err)
}
