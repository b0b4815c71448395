//go:build !linux && !darwin && !windows

package proc

import "fmt"

func System() (Source, error) {
	return nil, fmt.Errorf("process listing unsupported on this OS")
}
