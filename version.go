package snapshare

import "fmt"

const (
	major = 0
	minor = 1
	patch = 0
)

// Meta is an optional build suffix (e.g. "beta"), set with -ldflags.
var Meta = ""

func StringVersion() string {
	v := fmt.Sprintf("%d.%d.%d", major, minor, patch)
	if Meta != "" {
		v = fmt.Sprintf("%s-%s", v, Meta)
	}

	return v
}
