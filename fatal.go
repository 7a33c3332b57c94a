package osmem

import (
	"fmt"
	"os"
)

// die reports a fatal failure and terminates the process. It is called on
// kernel-resource failures and on the empty-registry state detected in
// acquireHeapBlock. A partially failed allocator has no safe state to
// return to: program-break adjustment, mapping and unmapping failures are all fatal,
// with no retry and no in-band signal to the client beyond the process
// exiting. This is the Go-idiomatic stand-in for the C source's DIE macro.
func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "osmem: fatal: "+format+"\n", args...)
	os.Exit(1)
}
