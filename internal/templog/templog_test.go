package templog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "temperature.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLatest_LastLineWins(t *testing.T) {
	path := writeLog(t, "2024-10-20 12:00:00;Location1;20.5\n2024-10-20 12:05:00;Location1;21.0\n")

	got, err := Latest(path)
	if err != nil {
		t.Fatalf("Latest returned error: %v", err)
	}
	want := Reading{Timestamp: "2024-10-20 12:05:00", Location: "Location1", Temperature: 21.0}
	if got != want {
		t.Fatalf("Latest = %+v, want %+v", got, want)
	}
}

func TestLatest_IgnoresTrailingBlankLines(t *testing.T) {
	path := writeLog(t, "2024-10-20 12:00:00;Location1;20.5\n\n   \n\n")

	got, err := Latest(path)
	if err != nil {
		t.Fatalf("Latest returned error: %v", err)
	}
	if got.Temperature != 20.5 {
		t.Fatalf("Temperature = %v, want 20.5", got.Temperature)
	}
}

func TestLatest_TrimsTrailingWhitespaceOnLine(t *testing.T) {
	path := writeLog(t, "2024-10-20 12:00:00;Location1;20.5 \t\r\n")

	got, err := Latest(path)
	if err != nil {
		t.Fatalf("Latest returned error: %v", err)
	}
	if got.Temperature != 20.5 {
		t.Fatalf("Temperature = %v, want 20.5", got.Temperature)
	}
}

func TestLatest_EmptyFile(t *testing.T) {
	path := writeLog(t, "")

	_, err := Latest(path)
	if !errors.Is(err, ErrEmptyLog) {
		t.Fatalf("Latest error = %v, want ErrEmptyLog", err)
	}
}

func TestLatest_BlankLinesOnly(t *testing.T) {
	path := writeLog(t, "\n\n  \n")

	_, err := Latest(path)
	if !errors.Is(err, ErrEmptyLog) {
		t.Fatalf("Latest error = %v, want ErrEmptyLog", err)
	}
}

func TestLatest_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")

	_, err := Latest(path)
	var accessErr *FileAccessError
	if !errors.As(err, &accessErr) {
		t.Fatalf("Latest error = %v, want FileAccessError", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Latest error = %v, want it to wrap os.ErrNotExist", err)
	}
}

func TestLatest_Idempotent(t *testing.T) {
	path := writeLog(t, "2024-10-20 12:00:00;Location1;20.5\n")

	first, err := Latest(path)
	if err != nil {
		t.Fatalf("first Latest returned error: %v", err)
	}
	second, err := Latest(path)
	if err != nil {
		t.Fatalf("second Latest returned error: %v", err)
	}
	if first != second {
		t.Fatalf("readings differ: %+v vs %+v", first, second)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Reading
	}{
		{
			name: "basic line",
			line: "2024-10-20 12:00:00;Location1;20.5",
			want: Reading{Timestamp: "2024-10-20 12:00:00", Location: "Location1", Temperature: 20.5},
		},
		{
			name: "negative temperature",
			line: "2024-12-01 06:00:00;Outside;-3.25",
			want: Reading{Timestamp: "2024-12-01 06:00:00", Location: "Outside", Temperature: -3.25},
		},
		{
			name: "integer temperature",
			line: "2024-10-20 12:00:00;Cellar;7",
			want: Reading{Timestamp: "2024-10-20 12:00:00", Location: "Cellar", Temperature: 7},
		},
		{
			name: "fields kept as written",
			line: " 2024-10-20 ; Loc ;20.5",
			want: Reading{Timestamp: " 2024-10-20 ", Location: " Loc ", Temperature: 20.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.line)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.line, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParse_MalformedLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		fields int
	}{
		{"two fields", "2024-10-20 12:00:00;Location1", 2},
		{"one field", "just some text", 1},
		{"four fields", "a;b;c;d", 4},
		{"single delimiter", ";", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.line)
			var malformed *MalformedLineError
			if !errors.As(err, &malformed) {
				t.Fatalf("Parse(%q) error = %v, want MalformedLineError", tt.line, err)
			}
			if malformed.Fields != tt.fields {
				t.Fatalf("Fields = %d, want %d", malformed.Fields, tt.fields)
			}
		})
	}
}

func TestParse_MalformedLineMentionsFormat(t *testing.T) {
	_, err := Parse("2024-10-20 12:00:00;Location1")
	if err == nil {
		t.Fatal("Parse returned nil error")
	}
	if got := err.Error(); !strings.Contains(got, ExpectedFormat) {
		t.Fatalf("error %q does not mention expected format %q", got, ExpectedFormat)
	}
}

func TestParse_InvalidTemperature(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"word", "2024-10-20 12:00:00;Location1;hot"},
		{"empty field", "2024-10-20 12:00:00;Location1;"},
		{"bare delimiters", ";;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.line)
			var invalid *InvalidTemperatureError
			if !errors.As(err, &invalid) {
				t.Fatalf("Parse(%q) error = %v, want InvalidTemperatureError", tt.line, err)
			}
		})
	}
}

func TestReading_Display(t *testing.T) {
	r := Reading{Timestamp: "2024-10-20 12:05:00", Location: "Location1", Temperature: 21.0}
	want := "Location1: 21.0 °C (as of 2024-10-20 12:05:00)"
	if got := r.Display(); got != want {
		t.Fatalf("Display() = %q, want %q", got, want)
	}
}
