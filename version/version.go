package version

// Version is the semver of the current build. Overridable at build time with
// -ldflags "-X github.com/mybooks/mybooks/version.Version=x.y.z".
var Version = "0.1.0"

func GetCurrentVersion() string {
	return Version
}
