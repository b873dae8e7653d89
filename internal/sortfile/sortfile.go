// Package sortfile mengurutkan baris-baris sebuah file teks, naik atau
// turun, lalu menulis hasilnya ke file output atau stdout.
package sortfile

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

type Options struct {
	Input   string
	Output  string // kosong berarti hasil dikembalikan untuk dicetak
	Reverse bool
}

// SortLines mengurutkan salinan slice baris. Baris dibandingkan sebagai
// string utuh, sama seperti sorted() pada teks.
func SortLines(lines []string, reverse bool) []string {
	sorted := make([]string, len(lines))
	copy(sorted, lines)
	if reverse {
		sort.Sort(sort.Reverse(sort.StringSlice(sorted)))
	} else {
		sort.Strings(sorted)
	}
	return sorted
}

// Run membaca file input, mengurutkan barisnya, dan menulis hasil. Kalau
// Options.Output kosong, hasil dikembalikan sebagai string untuk dicetak
// oleh caller.
func Run(opts Options) (string, error) {
	data, err := os.ReadFile(opts.Input)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file '%s' is not found", opts.Input)
		}
		if os.IsPermission(err) {
			return "", fmt.Errorf("not given permission to access '%s'", opts.Input)
		}
		return "", err
	}

	lines := splitLines(string(data))
	lines = SortLines(lines, opts.Reverse)
	out := render(lines)

	if opts.Output == "" {
		return out, nil
	}
	if err := os.WriteFile(opts.Output, []byte(out), 0o644); err != nil {
		if os.IsPermission(err) {
			return "", fmt.Errorf("not possible to write to '%s' as not permitted", opts.Output)
		}
		return "", err
	}
	return "", nil
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

// render memastikan setiap baris diakhiri newline.
func render(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
