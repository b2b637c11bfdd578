//go:build !release

package piece

// checkedExecution enables a full consistency check of the piece chain
// after every edit. Build with -tags release to turn it off.
const checkedExecution = true
