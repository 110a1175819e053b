package versioning

// Overridden with -ldflags "-X github.com/dogechain-lab/blockenv/versioning.Version=..."
// on release builds. Version follows https://semver.org/
var (
	Version   = "v0.0.0-dev"
	Commit    = ""
	BuildTime = ""
)

const shortCommitLength = 8

// Describe returns the version, suffixed with the short commit when known
func Describe() string {
	if Commit == "" {
		return Version
	}

	commit := Commit
	if len(commit) > shortCommitLength {
		commit = commit[:shortCommitLength]
	}

	return Version + "+" + commit
}
