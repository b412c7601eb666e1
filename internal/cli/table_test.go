package cli

import (
	"strings"
	"testing"
)

func TestNewTable(t *testing.T) {
	table := NewTable([]string{"LEVEL", "REQUIRED", "RESULT"})

	if table == nil {
		t.Fatal("NewTable returned nil")
	}
	if len(table.headers) != 3 {
		t.Errorf("Expected 3 headers, got %d", len(table.headers))
	}
	if table.padding != 2 {
		t.Errorf("Expected padding of 2, got %d", table.padding)
	}
}

func TestTableAddRow(t *testing.T) {
	table := NewTable([]string{"LEVEL", "REQUIRED", "RESULT"})

	// Matching row is stored as-is.
	table.AddRow([]string{"AA", "4.50:1", "pass"})
	if len(table.rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(table.rows))
	}

	// Short rows are padded to the header count with empty cells.
	table.AddRow([]string{"AAA"})
	if len(table.rows[1]) != 3 {
		t.Errorf("Expected row padded to 3 columns, got %d", len(table.rows[1]))
	}
	if table.rows[1][1] != "" || table.rows[1][2] != "" {
		t.Errorf("Expected empty padded cells, got %q", table.rows[1])
	}

	// Long rows are truncated to the header count.
	table.AddRow([]string{"AA-large", "3.00:1", "pass", "extra"})
	if len(table.rows[2]) != 3 {
		t.Errorf("Expected row truncated to 3 columns, got %d", len(table.rows[2]))
	}
}

func TestTableRenderCompliance(t *testing.T) {
	table := NewTable([]string{"LEVEL", "REQUIRED", "RESULT"})
	table.AddRow([]string{"AA", "4.50:1", "pass"})
	table.AddRow([]string{"AAA", "7.00:1", "fail"})

	want := "LEVEL  REQUIRED  RESULT\n" +
		"-----  --------  ------\n" +
		"AA     4.50:1    pass  \n" +
		"AAA    7.00:1    fail  \n"
	if got := table.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestTableRenderEmpty(t *testing.T) {
	table := NewTable(nil)
	if got := table.Render(); got != "" {
		t.Errorf("Expected empty string for table without headers, got %q", got)
	}
}

func TestTableRenderNoRows(t *testing.T) {
	table := NewTable([]string{"HEX", "RATIO"})

	// Headers and separator still render.
	want := "HEX  RATIO\n" +
		"---  -----\n"
	if got := table.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestTableColumnWidthFollowsLongestCell(t *testing.T) {
	table := NewTable([]string{"HEX", "NAME"})
	table.AddRow([]string{"#4682b4", "steelblue"})
	table.AddRow([]string{"#ff0000", "red"})

	lines := strings.Split(table.Render(), "\n")
	if len(lines) < 4 {
		t.Fatalf("Expected at least 4 lines, got %d", len(lines))
	}

	// A cell wider than its header widens the whole column, so every
	// line ends up the same length and the dashes span the columns.
	headerLine, separatorLine := lines[0], lines[1]
	if len(separatorLine) != len(headerLine) {
		t.Errorf("Separator length (%d) should match header length (%d)", len(separatorLine), len(headerLine))
	}
	for i, line := range lines[2:4] {
		if len(line) != len(headerLine) {
			t.Errorf("Row %d length (%d) should match header length (%d)", i, len(line), len(headerLine))
		}
	}
	if !strings.Contains(separatorLine, strings.Repeat("-", len("#4682b4"))) {
		t.Errorf("Separator %q should span the widest cell", separatorLine)
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"AA", 8, "AA      "},
		{"#ff0000", 7, "#ff0000"},
		{"4.50:1", 3, "4.50:1"}, // Width less than string length
		{"", 4, "    "},
	}

	for _, tt := range tests {
		result := padRight(tt.input, tt.width)
		if result != tt.expected {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.width, result, tt.expected)
		}
	}
}
