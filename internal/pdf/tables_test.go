package pdf

import (
	"testing"

	"github.com/ledongthuc/pdf"
)

func frag(s string, x, y, w float64) pdf.Text {
	return pdf.Text{S: s, X: x, Y: y, W: w}
}

func TestGroupIntoRows(t *testing.T) {
	texts := []pdf.Text{
		frag("TAN", 200, 700, 20),
		frag("Date", 50, 702, 25), // within tolerance of the TAN fragment
		frag("5", 50, 650, 6),
		frag("March", 60, 650, 30),
		frag("2025", 95, 650, 24),
	}

	rows := groupIntoRows(texts)

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][0].S != "Date" || rows[0][1].S != "TAN" {
		t.Errorf("first row not ordered by X: %+v", rows[0])
	}
	if len(rows[1]) != 3 {
		t.Errorf("expected 3 fragments in second row, got %d", len(rows[1]))
	}
}

func TestSplitIntoCells(t *testing.T) {
	tests := []struct {
		name string
		row  []pdf.Text
		want []string
	}{
		{
			name: "adjacent fragments join into one cell",
			row: []pdf.Text{
				frag("5", 50, 650, 6),
				frag("March", 60, 650, 30),
				frag("2025", 95, 650, 24),
			},
			want: []string{"5 March 2025"},
		},
		{
			name: "wide gap starts a new cell",
			row: []pdf.Text{
				frag("Date", 50, 700, 25),
				frag("TAN", 200, 700, 20),
				frag("Form", 400, 700, 25),
				frag("No", 428, 700, 14),
			},
			want: []string{"Date", "TAN", "Form No"},
		},
		{
			name: "blank fragments ignored",
			row: []pdf.Text{
				frag("  ", 50, 700, 5),
				frag("TAN", 200, 700, 20),
			},
			want: []string{"TAN"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitIntoCells(tt.row)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d cells, got %d: %v", len(tt.want), len(got), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("cell %d: expected %q, got %q", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestFlatten(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"newlines and tabs", "Token Number\n\t097979000012345\n", "Token Number 097979000012345"},
		{"multiple spaces", "a    b  c", "a b c"},
		{"already flat", "a b c", "a b c"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Flatten(tt.in); got != tt.want {
				t.Errorf("Flatten(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
