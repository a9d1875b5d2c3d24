//go:build !amd64

package cpu

// Halt spins forever on architectures without a halt stub.
//
//go:nosplit
func Halt() {
	for {
	}
}
