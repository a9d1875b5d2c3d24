package kernel

// Error describes why the kernel stopped before finishing its work. Values
// are allocated statically so they can be returned before the Go runtime is
// usable.
type Error struct {
	// The module where the error occurred.
	Module string

	// The error message
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Module + ": " + e.Message
}

var (
	// ErrUnsupportedRevision is returned when the loader did not acknowledge
	// the base revision the kernel was built against.
	ErrUnsupportedRevision = &Error{Module: "kmain", Message: "boot loader does not support base revision"}

	// ErrNoFramebuffer is returned when the loader supplied no framebuffer.
	ErrNoFramebuffer = &Error{Module: "kmain", Message: "boot loader supplied no framebuffer"}
)
