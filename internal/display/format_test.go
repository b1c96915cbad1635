package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/backmassage/emomerge/internal/config"
	"github.com/backmassage/emomerge/internal/term"
)

func TestPlural(t *testing.T) {
	tests := []struct {
		name string
		n    int
		noun string
		want string
	}{
		{"zero", 0, "file", "0 files"},
		{"one", 1, "file", "1 file"},
		{"many", 12, "directory", "12 directories"},
		{"actor", 2, "actor", "2 actors"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Plural(tt.n, tt.noun); got != tt.want {
				t.Errorf("Plural(%d, %q) = %q, want %q", tt.n, tt.noun, got, tt.want)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name        string
		part, total int
		want        string
	}{
		{"empty total", 3, 0, "0%"},
		{"half", 5, 10, "50%"},
		{"rounds down", 1, 3, "33%"},
		{"all", 7, 7, "100%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percent(tt.part, tt.total); got != tt.want {
				t.Errorf("Percent(%d, %d) = %q, want %q", tt.part, tt.total, got, tt.want)
			}
		})
	}
}

func TestTable(t *testing.T) {
	term.Configure(config.ColorNever)
	out := Table([]string{"Schema", "Files"}, [][]string{
		{"ravdess", "1440"},
		{"asvp-esd", "12625"},
	})
	for _, want := range []string{"Schema", "Files", "ravdess", "1440", "asvp-esd", "12625"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestPrintBanner(t *testing.T) {
	term.Configure(config.ColorNever)
	var buf bytes.Buffer
	PrintBanner(&buf)
	if buf.Len() == 0 {
		t.Error("banner not written")
	}
}
