package cpu

// Halt disables interrupts and idles the processor forever.
//
//go:nosplit
func Halt()
