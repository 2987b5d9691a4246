package input

import "fmt"

type DeviceType int

const (
	DeviceTypeKeyboard = DeviceType(iota)
	DeviceTypePointer
	DeviceTypeTouch
)

// Device describes one input device feeding events into the tracker.
// The engine itself only cares about the events; the registry on the
// tracker exists so sources can be named in logs and inspected at the
// prompt.
type Device struct {
	ID   uint32
	Name string
	Type DeviceType
}

func (d Device) String() string {
	return fmt.Sprintf("%s %q (%d)", d.Type, d.Name, d.ID)
}

func (t DeviceType) String() string {
	switch t {
	case DeviceTypeKeyboard:
		return "keyboard"
	case DeviceTypePointer:
		return "pointer"
	case DeviceTypeTouch:
		return "touch"
	default:
		return "unknown"
	}
}
