package main

import "stormy/kernel"

// main is a trampoline for kernel.Kmain. It keeps the kernel code reachable
// for the linker; the rt0 stub linked in by the kernel image build calls it
// once a stack is set up and halts the CPU should it ever return.
func main() {
	kernel.Kmain()
}
