package version

import "fmt"

// Build variables injected with ldflags:
// -X 'github.com/eng-elias-owis/mcp-setup-guide/pkg/version.Version=v1.0.0'
// -X 'github.com/eng-elias-owis/mcp-setup-guide/pkg/version.CommitHash=abc123'
// -X 'github.com/eng-elias-owis/mcp-setup-guide/pkg/version.BuildDate=2024-01-01T00:00:00Z'
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// Info returns build information in a structured format
type Info struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
	BuildDate  string `json:"build_date"`
}

func Get() Info {
	return Info{
		Version:    Version,
		CommitHash: CommitHash,
		BuildDate:  BuildDate,
	}
}

func (i Info) String() string {
	return fmt.Sprintf("version %s\ncommit: %s\nbuilt: %s", i.Version, i.CommitHash, i.BuildDate)
}
