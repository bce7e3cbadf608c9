// Package version holds build-time identification for the basecore CLI.
package version

// These are overridden at build time via -ldflags.
var (
	Version   = "0.1.0-dev"
	GitCommit = ""
	BuildDate = ""
)

// String renders a one-line "version (commit C, built D)" summary,
// omitting the parenthetical when neither GitCommit nor BuildDate is set.
func String() string {
	if GitCommit == "" && BuildDate == "" {
		return Version
	}
	out := Version + " ("
	if GitCommit != "" {
		out += "commit " + GitCommit
		if BuildDate != "" {
			out += ", "
		}
	}
	if BuildDate != "" {
		out += "built " + BuildDate
	}
	return out + ")"
}
