//go:build release

package piece

const checkedExecution = false
