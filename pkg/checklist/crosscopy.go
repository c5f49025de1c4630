package checklist

import "github.com/crosscopy/migcheck/pkg/contentcheck"

// CargoManifest identifies the CrossCopy project root. It is a
// precondition for the built-in checklist, not a checklist item.
const CargoManifest = "Cargo.toml"

// CrossCopy returns the built-in checklist that verifies the CrossCopy
// network layer migration from WebSocket to libp2p, rooted at dir.
//
// The documentation patterns contain Chinese text because the CrossCopy
// docs are written in Chinese; they are matched byte-for-byte.
func CrossCopy(dir string) *Runner {
	return &Runner{
		Dir:    dir,
		Header: "CrossCopy network layer migration verification",
		Marker: CargoManifest,
		Sections: []Section{
			{
				Title: "Dependency updates",
				Items: []Item{{
					Path:  "Cargo.toml",
					Label: "Cargo.toml dependency configuration",
					Requirements: []contentcheck.Requirement{
						{Pattern: `libp2p.*=.*\{.*version.*=.*"0\.53"`, Description: "libp2p dependency added"},
						{Pattern: `"tcp"`, Description: "libp2p TCP feature configured"},
						{Pattern: `futures.*=.*"0\.3"`, Description: "futures dependency updated"},
					},
				}},
			},
			{
				Title: "Configuration struct",
				Items: []Item{{
					Path:  "src/config/mod.rs",
					Label: "NetworkConfig struct",
					Requirements: []contentcheck.Requirement{
						{Pattern: `pub enable_mdns: bool`, Description: "enable_mdns field added"},
						{Pattern: `pub mdns_discovery_interval: u64`, Description: "mdns_discovery_interval field added"},
						{Pattern: `pub enable_quic: bool`, Description: "enable_quic field added"},
						{Pattern: `pub idle_connection_timeout: u64`, Description: "idle_connection_timeout field added"},
					},
				}},
			},
			{
				Title: "Network error types",
				Items: []Item{{
					Path:  "src/network/mod.rs",
					Label: "network error types",
					Requirements: []contentcheck.Requirement{
						{Pattern: `MdnsDiscoveryFailed\(String\)`, Description: "MdnsDiscoveryFailed error added"},
						{Pattern: `Libp2p\(String\)`, Description: "Libp2p error added"},
						{Pattern: `PeerNotFound\(String\)`, Description: "PeerNotFound error added"},
						{Pattern: `Transport\(String\)`, Description: "Transport error added"},
					},
				}},
			},
			{
				Title: "Connection struct",
				Items: []Item{{
					Path:  "src/network/connection.rs",
					Label: "Connection struct",
					Requirements: []contentcheck.Requirement{
						{Pattern: `use libp2p::\{PeerId, Multiaddr\}`, Description: "libp2p types imported"},
						{Pattern: `pub peer_id: Option<PeerId>`, Description: "peer_id field added"},
						{Pattern: `pub address: Option<Multiaddr>`, Description: "address field added"},
						{Pattern: `pub message_sender: Option<mpsc::UnboundedSender<Message>>`, Description: "message_sender field added"},
					},
				}},
			},
			{
				Title: "Network manager",
				Items: []Item{{
					Path:  "src/network/manager.rs",
					Label: "NetworkManager implementation",
					Requirements: []contentcheck.Requirement{
						{Pattern: `use libp2p::`, Description: "libp2p imported"},
						{Pattern: `CrossCopyBehaviour`, Description: "CrossCopyBehaviour defined"},
						{Pattern: `mdns::Event::Discovered`, Description: "mDNS discovery event handled"},
						{Pattern: `SwarmEvent::`, Description: "swarm events handled"},
					},
				}},
			},
			{
				Title: "Documentation",
				Items: []Item{
					{
						Path:  "doc/technical-specification.md",
						Label: "doc",
						Requirements: []contentcheck.Requirement{
							{Pattern: `libp2p 协议栈`, Description: "technical specification updated for libp2p"},
							{Pattern: `mDNS 发现`, Description: "mDNS discovery documented"},
						},
					},
					{
						Path:  "doc/api-reference.md",
						Label: "doc",
						Requirements: []contentcheck.Requirement{
							{Pattern: `enable_mdns: bool`, Description: "API reference updated"},
							{Pattern: `mdns_discovery_interval: u64`, Description: "mDNS configuration documented"},
						},
					},
					{
						Path:  "doc/architecture.md",
						Label: "doc",
						Requirements: []contentcheck.Requirement{
							{Pattern: `libp2p.*点对点网络通信`, Description: "architecture description updated"},
							{Pattern: `mDNS 自动节点发现`, Description: "mDNS auto-discovery described"},
						},
					},
				},
			},
			{
				Title: "Tests and examples",
				Items: []Item{
					{Kind: KindExists, Path: "tests/network_libp2p_test.rs", Label: "test/example file"},
					{Kind: KindExists, Path: "examples/libp2p_network_demo.rs", Label: "test/example file"},
					{Kind: KindExists, Path: "NETWORK_MIGRATION.md", Label: "test/example file"},
				},
			},
		},
		Summary: &Summary{
			Headline: "All checks passed - the network layer migration is complete",
			Confirmations: []string{
				"WebSocket to libp2p migration complete",
				"mDNS automatic discovery implemented",
				"configuration struct updated",
				"documentation synchronized",
				"tests and examples created",
			},
			NextSteps: []string{
				"run 'cargo check' to verify the build",
				"run 'cargo test' to execute the test suite",
				"run 'cargo run --example libp2p_network_demo' to see the demo",
			},
		},
	}
}
