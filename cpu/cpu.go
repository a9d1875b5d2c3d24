// Package cpu wraps the handful of processor instructions the kernel needs.
package cpu
