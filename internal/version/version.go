package version

// Version is the current MateTicket version.
// Bump it on every release.
const Version = "0.1.0"

// FullVersion returns the version with a v prefix.
func FullVersion() string {
	return "v" + Version
}
