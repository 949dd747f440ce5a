//go:build !tinygo && !cgo

package hal

import "errors"

func newMicSource() (SampleSource, error) {
	return nil, errors.New("mic: built without cgo")
}
