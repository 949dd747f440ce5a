//go:build !tinygo && !cgo

package hal

func newHostOutputs() (PWMOut, PWMOut) {
	return &levelOut{}, &levelOut{}
}
