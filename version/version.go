package version

import (
	"fmt"
	"runtime"
)

// Set via -ldflags at build time.
var (
	NAME     = "smartvm"
	VERSION  = "unknown"
	REVISION = "HEAD"
	BUILTAT  = "now"
)

func String() string {
	return fmt.Sprintf(
		"%s\nVersion:        %s\nGit hash:       %s\nBuilt:          %s\nGolang version: %s\nOS/Arch:        %s/%s\n",
		NAME, VERSION, REVISION, BUILTAT, runtime.Version(), runtime.GOOS, runtime.GOARCH,
	)
}

// Short returns "name version".
func Short() string {
	return NAME + " " + VERSION
}
