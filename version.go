package rbfnet

import "runtime/debug"

const modulePath = "github.com/LynnColeArt/rbfnet"

// Version reports the rbfnet module version and checksum recorded in the
// running binary's build info. Both are empty when the binary carries no
// build info or does not include rbfnet. A replaced module reports the
// replacement.
func Version() (version, sum string) {
	b, ok := debug.ReadBuildInfo()
	if !ok {
		return "", ""
	}
	return moduleVersion(b)
}

func moduleVersion(b *debug.BuildInfo) (version, sum string) {
	if b.Main.Path == modulePath {
		return b.Main.Version, b.Main.Sum
	}
	for _, m := range b.Deps {
		if m.Path != modulePath {
			continue
		}
		if r := m.Replace; r != nil {
			if r.Version == "" {
				return r.Path, r.Sum
			}
			return r.Version, r.Sum
		}
		return m.Version, m.Sum
	}
	return "", ""
}
