package version

// Version is the release string, overridden at build time with
// -ldflags "-X github.com/livp123/genlogsum/internal/version.Version=...".
// Version 是发布版本号，构建时通过 -ldflags 覆盖。
var Version = "dev"
