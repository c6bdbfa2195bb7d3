package power

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	screenSaverDest  = "org.freedesktop.ScreenSaver"
	screenSaverPath  = dbus.ObjectPath("/org/freedesktop/ScreenSaver")
	screenSaverIface = "org.freedesktop.ScreenSaver"
)

type dbusInhibitor struct {
	appName string
	conn    *dbus.Conn
	cookie  uint32
	active  bool
}

func newInhibitor(appName string) Inhibitor {
	return &dbusInhibitor{appName: appName}
}

func (d *dbusInhibitor) Acquire(reason string) error {
	if d.active {
		return nil
	}
	if d.conn == nil {
		conn, err := dbus.ConnectSessionBus()
		if err != nil {
			return fmt.Errorf("%w: session bus: %v", ErrUnsupported, err)
		}
		d.conn = conn
	}

	var cookie uint32
	obj := d.conn.Object(screenSaverDest, screenSaverPath)
	if err := obj.Call(screenSaverIface+".Inhibit", 0, d.appName, reason).Store(&cookie); err != nil {
		return fmt.Errorf("screensaver inhibit: %w", err)
	}
	d.cookie = cookie
	d.active = true
	return nil
}

func (d *dbusInhibitor) Release() error {
	if !d.active || d.conn == nil {
		return nil
	}
	d.active = false
	obj := d.conn.Object(screenSaverDest, screenSaverPath)
	if err := obj.Call(screenSaverIface+".UnInhibit", 0, d.cookie).Err; err != nil {
		return fmt.Errorf("screensaver uninhibit: %w", err)
	}
	return nil
}
