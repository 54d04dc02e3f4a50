package version

// Version is the current version of the argo-compose library.
// This value is set at build time using ldflags:
// -ldflags "-X github.com/rxtech-lab/argo-compose/internal/version.Version=0.3.0"
// The default value "main" indicates a development build.
var Version = "v0.3.0"

// GetVersion returns the current version of the library.
func GetVersion() string {
	return Version
}
