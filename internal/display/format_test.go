package display

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0 B"},
		{"small bytes", 512, "512 B"},
		{"exactly 1 KiB", 1024, "1.0 KiB"},
		{"1.5 KiB", 1536, "1.5 KiB"},
		{"1 MiB", 1024 * 1024, "1.0 MiB"},
		{"1 GiB", 1024 * 1024 * 1024, "1.0 GiB"},
		{"typical file 700 MiB", 734003200, "700.0 MiB"},
		{"4.7 GiB", 5046586572, "4.7 GiB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatBytes(tt.bytes)
			if got != tt.want {
				t.Errorf("FormatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestFormatThroughput(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		d     time.Duration
		want  string
	}{
		{"one MiB per second", 1024 * 1024, time.Second, "1.0 MiB/s"},
		{"half second", 1024, 500 * time.Millisecond, "2.0 KiB/s"},
		{"zero duration", 1024, 0, "n/a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatThroughput(tt.bytes, tt.d); got != tt.want {
				t.Errorf("FormatThroughput(%d, %s) = %q, want %q", tt.bytes, tt.d, got, tt.want)
			}
		})
	}
}

func TestCount(t *testing.T) {
	if got := Count(1, "file", "files"); got != "1 file" {
		t.Errorf("Count(1) = %q", got)
	}
	if got := Count(0, "file", "files"); got != "0 files" {
		t.Errorf("Count(0) = %q", got)
	}
}

func TestPrintBanner_NoColor(t *testing.T) {
	var b bytes.Buffer
	PrintBanner(&b)
	if strings.Contains(b.String(), "\033[") {
		t.Errorf("banner contains escape codes with colors disabled: %q", b.String())
	}
	if !strings.Contains(b.String(), "|_|") {
		t.Errorf("banner missing art: %q", b.String())
	}
}
