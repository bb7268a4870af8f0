// Package generic provides the pure Go reference kernels. Every kernel here
// implements all four type pairs and is the fallback the dispatcher uses when
// no faster variant applies.
package generic
