package power

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

type caffeinateInhibitor struct {
	path string
	cmd  *exec.Cmd
}

func newInhibitor(string) Inhibitor {
	path, err := exec.LookPath("caffeinate")
	if err != nil {
		return unsupportedInhibitor{}
	}
	return &caffeinateInhibitor{path: path}
}

func (c *caffeinateInhibitor) Acquire(string) error {
	if c.cmd != nil {
		return nil
	}
	// -w ends caffeinate when this process exits.
	cmd := exec.Command(c.path, "-d", "-w", strconv.Itoa(os.Getpid()))
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start caffeinate: %w", err)
	}
	c.cmd = cmd
	return nil
}

func (c *caffeinateInhibitor) Release() error {
	if c.cmd == nil {
		return nil
	}
	cmd := c.cmd
	c.cmd = nil
	if err := cmd.Process.Kill(); err != nil {
		return fmt.Errorf("stop caffeinate: %w", err)
	}
	_ = cmd.Wait()
	return nil
}
