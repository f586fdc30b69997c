package version

import "testing"

func TestStringReflectsBuildVersion(t *testing.T) {
	cleanup := ForTesting("1.2.3-test")
	t.Cleanup(cleanup)

	if got := String(); got != "1.2.3-test" {
		t.Fatalf("expected version 1.2.3-test, got %s", got)
	}
}

func TestForTestingRestores(t *testing.T) {
	before := String()
	ForTesting("9.9.9")()
	if got := String(); got != before {
		t.Fatalf("expected version %s after cleanup, got %s", before, got)
	}
}

func TestRelease(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"dev", "dev"},
		{"0.3.0", "0.3.0"},
		{"v0.3.0", "0.3.0"},
		{"v0.3.0-5-gabcdef", "0.3.0"},
		{"0.3.0-rc1", "0.3.0-rc1"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Release(tt.in); got != tt.want {
				t.Errorf("Release(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"dev", "dev"},
		{"0.3.0", "v0.3.0"},
		{"v0.3.0", "v0.3.0"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := FormatVersion(tt.in); got != tt.want {
				t.Errorf("FormatVersion(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
