package components

import (
	"strings"
	"testing"

	"plancast/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	tests := []struct {
		total int
		n     int
	}{
		{100, 4},
		{101, 4},
		{103, 3},
		{7, 2},
	}
	for _, tt := range tests {
		widths := LayoutRow(tt.total, tt.n)
		if len(widths) != tt.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", tt.total, tt.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tt.total {
			t.Fatalf("LayoutRow(%d, %d) sums to %d", tt.total, tt.n, sum)
		}
	}
}

func TestCardRowHeightMatchesTallest(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))
	if shortLines >= tallLines {
		t.Fatal("Test setup error: short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")
	if len(lines) != tallLines {
		t.Errorf("Joined height should match tallest card: got %d, want %d", len(lines), tallLines)
	}
}

func TestSparklineHandlesNegativeValues(t *testing.T) {
	theme.SetActive("flexoki-dark")

	s := Sparkline([]float64{-500, -100, 0, 300, 900}, theme.Active.Blue)
	if s == "" {
		t.Fatal("expected non-empty sparkline")
	}
	if Sparkline(nil, theme.Active.Blue) != "" {
		t.Fatal("expected empty sparkline for empty input")
	}
}

func TestBarChartFallsBackToSparklineWhenTiny(t *testing.T) {
	theme.SetActive("flexoki-dark")

	vals := []float64{1, 2, 3}
	chart := BarChart(vals, nil, theme.Active.Blue, 10, 2)
	spark := Sparkline(vals, theme.Active.Blue)
	if chart != spark {
		t.Fatalf("tiny chart = %q, want sparkline %q", chart, spark)
	}
}
