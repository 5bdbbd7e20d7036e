package cadenza

// Version is the library version, overridable at build time via
// -ldflags "-X github.com/aretw0/cadenza.Version=...".
var Version = "0.4.0"
