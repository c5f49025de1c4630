package version

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Version
		wantErr bool
	}{
		{"0.53", Version{0, 53, 0}, false},
		{"1.2.3", Version{1, 2, 3}, false},
		{"v1.75.0", Version{1, 75, 0}, false},
		{"18", Version{18, 0, 0}, false},
		{"  0.3 ", Version{0, 3, 0}, false},
		{"", Version{}, true},
		{"abc", Version{}, true},
		{"1.2.3-rc1", Version{}, true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) expected error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) returned error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestExtract(t *testing.T) {
	tests := []struct {
		input   string
		want    Version
		wantErr bool
	}{
		{"cargo 1.75.0 (1d8b05cdd 2023-11-20)", Version{1, 75, 0}, false},
		{`"0.53"`, Version{0, 53, 0}, false},
		{"no digits here", Version{}, true},
	}

	for _, tt := range tests {
		got, err := Extract(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Extract(%q) expected error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Extract(%q) returned error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Extract(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b Version
		want int
	}{
		{Version{0, 53, 0}, Version{0, 53, 0}, 0},
		{Version{0, 52, 9}, Version{0, 53, 0}, -1},
		{Version{0, 54, 0}, Version{0, 53, 0}, 1},
		{Version{1, 0, 0}, Version{0, 99, 99}, 1},
		{Version{1, 75, 0}, Version{1, 75, 1}, -1},
	}

	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("%v.Compare(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestGreaterThanOrEqual(t *testing.T) {
	if !(Version{0, 53, 0}).GreaterThanOrEqual(Version{0, 53, 0}) {
		t.Error("equal versions should satisfy GreaterThanOrEqual")
	}
	if (Version{0, 52, 0}).GreaterThanOrEqual(Version{0, 53, 0}) {
		t.Error("0.52 should not be >= 0.53")
	}
}
