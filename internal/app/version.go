package app

import "fmt"

// Release metadata, stamped by the linker:
//
//	go build -ldflags "-X github.com/heartmarshall/lexitron/internal/app.Version=v0.3.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns the one-line release banner printed by -version and
// logged when a lexicon is opened.
func BuildVersion() string {
	return fmt.Sprintf("lexitron %s, %s @ %s", Version, Commit, BuildTime)
}
