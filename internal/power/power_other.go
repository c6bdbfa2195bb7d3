//go:build !linux && !darwin && !windows

package power

func newInhibitor(string) Inhibitor {
	return unsupportedInhibitor{}
}
