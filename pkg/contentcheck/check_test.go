package contentcheck

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosscopy/migcheck/pkg/check"
)

type mockFS struct {
	Content []byte
	Err     error
}

func (m *mockFS) ReadFile(_ string) ([]byte, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Content, nil
}

const cargoToml = `[dependencies]
libp2p = { version = "0.53", features = ["tcp", "quic", "mdns"] }
futures = "0.3"
`

func TestCheck_Run(t *testing.T) {
	tests := []struct {
		name       string
		check      Check
		wantStatus check.Status
		wantDetail string
	}{
		{
			name: "all requirements matched",
			check: Check{
				Path: "Cargo.toml",
				Requirements: []Requirement{
					{Pattern: `libp2p.*=.*\{.*version.*=.*"0\.53"`, Description: "libp2p dependency added"},
					{Pattern: `"tcp"`, Description: "libp2p TCP feature configured"},
					{Pattern: `futures.*=.*"0\.3"`, Description: "futures dependency updated"},
				},
				FS: &mockFS{Content: []byte(cargoToml)},
			},
			wantStatus: check.StatusOK,
			wantDetail: "ok: libp2p dependency added",
		},
		{
			name: "one requirement unmatched",
			check: Check{
				Path: "Cargo.toml",
				Requirements: []Requirement{
					{Pattern: `libp2p`, Description: "libp2p dependency added"},
					{Pattern: `tokio-tungstenite`, Description: "websocket dependency present"},
				},
				FS: &mockFS{Content: []byte(cargoToml)},
			},
			wantStatus: check.StatusFail,
			wantDetail: "missing: websocket dependency present",
		},
		{
			name: "missing file fails with one detail",
			check: Check{
				Path:         "src/network/mod.rs",
				Requirements: []Requirement{{Pattern: `Libp2p\(String\)`, Description: "Libp2p error added"}},
				FS:           &mockFS{Err: os.ErrNotExist},
			},
			wantStatus: check.StatusFail,
			wantDetail: "not found",
		},
		{
			name: "read error fails inline",
			check: Check{
				Path:         "src/network/mod.rs",
				Requirements: []Requirement{{Pattern: `Libp2p`, Description: "Libp2p error added"}},
				FS:           &mockFS{Err: errors.New("permission denied")},
			},
			wantStatus: check.StatusFail,
			wantDetail: "failed to read file: permission denied",
		},
		{
			name: "empty requirements pass when file is readable",
			check: Check{
				Path: "Cargo.toml",
				FS:   &mockFS{Content: []byte(cargoToml)},
			},
			wantStatus: check.StatusOK,
		},
		{
			name: "empty requirements still fail on a missing file",
			check: Check{
				Path: "Cargo.toml",
				FS:   &mockFS{Err: os.ErrNotExist},
			},
			wantStatus: check.StatusFail,
			wantDetail: "not found",
		},
		{
			name: "invalid pattern fails the requirement",
			check: Check{
				Path:         "Cargo.toml",
				Requirements: []Requirement{{Pattern: `(`, Description: "broken"}},
				FS:           &mockFS{Content: []byte(cargoToml)},
			},
			wantStatus: check.StatusFail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.check.Run()

			assert.Equal(t, tt.wantStatus, result.Status)
			if tt.wantDetail != "" {
				assert.Contains(t, result.Details, tt.wantDetail)
			}
		})
	}
}

func TestCheck_EvaluatesEveryRequirement(t *testing.T) {
	c := Check{
		Path: "src/config/mod.rs",
		Requirements: []Requirement{
			{Pattern: `pub enable_mdns: bool`, Description: "enable_mdns field added"},
			{Pattern: `pub use_websocket: bool`, Description: "websocket flag present"},
			{Pattern: `pub enable_quic: bool`, Description: "enable_quic field added"},
		},
		FS: &mockFS{Content: []byte("pub enable_mdns: bool,\npub enable_quic: bool,\n")},
	}

	result := c.Run()

	// One detail line per requirement, in order, failures included.
	require.Len(t, result.Details, 3)
	assert.Equal(t, "ok: enable_mdns field added", result.Details[0])
	assert.Equal(t, "missing: websocket flag present", result.Details[1])
	assert.Equal(t, "ok: enable_quic field added", result.Details[2])
	assert.Equal(t, check.StatusFail, result.Status)
}

func TestCheck_MultilinePatterns(t *testing.T) {
	c := Check{
		Path: "Cargo.toml",
		Requirements: []Requirement{
			{Pattern: `^futures`, Description: "futures at a line start"},
		},
		FS: &mockFS{Content: []byte(cargoToml)},
	}

	result := c.Run()

	assert.Equal(t, check.StatusOK, result.Status)
}

func TestCheck_MinVersion(t *testing.T) {
	tests := []struct {
		name        string
		requirement Requirement
		content     string
		wantStatus  check.Status
	}{
		{
			name: "capture group meets floor",
			requirement: Requirement{
				Pattern:     `libp2p.*=.*version.*=.*"(\d+\.\d+)"`,
				Description: "libp2p dependency added",
				MinVersion:  "0.53",
			},
			content:    cargoToml,
			wantStatus: check.StatusOK,
		},
		{
			name: "capture group below floor",
			requirement: Requirement{
				Pattern:     `libp2p.*=.*version.*=.*"(\d+\.\d+)"`,
				Description: "libp2p dependency added",
				MinVersion:  "0.54",
			},
			content:    cargoToml,
			wantStatus: check.StatusFail,
		},
		{
			name: "match without any version number",
			requirement: Requirement{
				Pattern:     `(futures)`,
				Description: "futures dependency updated",
				MinVersion:  "0.3",
			},
			content:    cargoToml,
			wantStatus: check.StatusFail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Check{
				Path:         "Cargo.toml",
				Requirements: []Requirement{tt.requirement},
				FS:           &mockFS{Content: []byte(tt.content)},
			}
			assert.Equal(t, tt.wantStatus, c.Run().Status)
		})
	}
}

func TestCheck_ResultName(t *testing.T) {
	c := Check{Path: "Cargo.toml", FS: &mockFS{Content: []byte("x")}}
	assert.Equal(t, "content: Cargo.toml", c.Run().Name)

	c.Label = "Cargo.toml dependency configuration"
	assert.Equal(t, "Cargo.toml dependency configuration: Cargo.toml", c.Run().Name)
}
