package display

import (
	"flag"
	"fmt"
	"github.com/thelolagemann/gomechip/pkg/display/event"
	"github.com/thelolagemann/gomechip/pkg/emulator"
	"github.com/thelolagemann/gomechip/pkg/log"
	"strconv"
)

// Driver is the interface that wraps the basic methods for a
// display driver. All methods are called from the goroutine that runs
// the emulator; a driver that reads input on its own goroutines must
// buffer it until the next Poll.
type Driver interface {
	// Initialize initializes the display driver by attaching it to
	// the emulator that is using it.
	Initialize(emu Emulator) error
	// Poll returns the input events that occurred since the last call. It
	// must not block.
	Poll() []event.Event
	// Render presents a packed frame, see Pixel.
	Render(frame []byte) error
	// Stop the display driver, releasing any resources it holds.
	Stop() error
}

// Emulator is the interface that wraps the basic methods for an
// emulator to implement in order for the driver to be able to
// interact with it. The emulator is passed to the driver
// during initialization.
type Emulator interface {
	// Status returns the status of the emulator.
	Status() emulator.Status
	// Title returns a short description of the running program, used
	// for window titles.
	Title() string
	// Logger returns the logger drivers should report through.
	Logger() log.Logger
}

// DriverOption is a display driver option. This is used to
// configure a display driver.
type DriverOption struct {
	Name        string // name of the option
	Default     any    // default value of the option
	Value       any    // pointer to the value of the option
	Description string // description of the option
	Type        string // "int", "bool", "string", "float"
}

// InstalledDriver is a driver that has been installed. This is
// used to allow drivers to register their name.
type InstalledDriver struct {
	Name    string
	Options []DriverOption
	Driver
}

// InstalledDrivers is a list of all the installed drivers. This
// variable is exported so that it can be used by the main
// program to determine which drivers can be used. Drivers should
// call display.Install in their init() function.
var InstalledDrivers []*InstalledDriver

// Preference is the order in which drivers are tried when "auto" is
// requested.
var Preference = []string{"sdl", "terminal", "web", "null"}

// GetDriver returns the driver with the given name, or nil if
// no driver with that name is installed. The name "auto" selects the
// first installed driver in Preference.
func GetDriver(name string) Driver {
	if name == "auto" {
		for _, preferred := range Preference {
			if d := GetDriver(preferred); d != nil {
				return d
			}
		}
		if len(InstalledDrivers) > 0 {
			return InstalledDrivers[0].Driver
		}
		return nil
	}
	for _, driver := range InstalledDrivers {
		if driver.Name == name {
			return driver.Driver
		}
	}

	return nil
}

// Names returns the names of the installed drivers.
func Names() []string {
	names := make([]string, 0, len(InstalledDrivers))
	for _, driver := range InstalledDrivers {
		names = append(names, driver.Name)
	}
	return names
}

// Install registers a display driver with the given name.
func Install(name string, driver Driver, options []DriverOption) {
	InstalledDrivers = append(InstalledDrivers, &InstalledDriver{
		Name:    name,
		Options: options,
		Driver:  driver,
	})
}

// RegisterFlags iterates through all the display driver options and
// registers them with the flag set. Options unique to one driver are
// prefixed with the driver name, e.g. -sdl-scale; options that several
// drivers declare under the same name are merged into a single flag that
// sets all of them.
func RegisterFlags(fs *flag.FlagSet) {
	var order []string
	opts := make(map[string][]DriverOption)
	prefixes := make(map[string]string)

	for _, driver := range InstalledDrivers {
		for _, opt := range driver.Options {
			if _, seen := opts[opt.Name]; !seen {
				order = append(order, opt.Name)
			}
			opts[opt.Name] = append(opts[opt.Name], opt)
			prefixes[opt.Name] = driver.Name
		}
	}

	for _, name := range order {
		shared := opts[name]
		if len(shared) > 1 {
			// this requires an option merge
			multi := &multiValue{defaultValue: shared[0].Default}
			for _, opt := range shared {
				multi.values = append(multi.values, opt.Value)
				setDefault(opt)
			}
			fs.Var(multi, name, shared[0].Description)
			continue
		}

		// this option is unique and should be prefixed
		opt := shared[0]
		optName := fmt.Sprintf("%s-%s", prefixes[name], opt.Name)
		switch opt.Type {
		case "string":
			fs.StringVar(opt.Value.(*string), optName, opt.Default.(string), opt.Description)
		case "bool":
			fs.BoolVar(opt.Value.(*bool), optName, opt.Default.(bool), opt.Description)
		case "int":
			fs.IntVar(opt.Value.(*int), optName, opt.Default.(int), opt.Description)
		case "float":
			fs.Float64Var(opt.Value.(*float64), optName, opt.Default.(float64), opt.Description)
		}
	}
}

func setDefault(opt DriverOption) {
	switch v := opt.Value.(type) {
	case *string:
		*v = opt.Default.(string)
	case *bool:
		*v = opt.Default.(bool)
	case *int:
		*v = opt.Default.(int)
	case *float64:
		*v = opt.Default.(float64)
	}
}

type multiValue struct {
	values       []any
	defaultValue any
}

func (m *multiValue) String() string {
	if m == nil || m.defaultValue == nil {
		return ""
	}
	return fmt.Sprint(m.defaultValue)
}

func (m *multiValue) Set(value string) error {
	// update all the pointers with the provided value
	for _, ptr := range m.values {
		switch v := ptr.(type) {
		case *string:
			*v = value
		case *bool:
			b, err := strconv.ParseBool(value)
			if err != nil {
				return err
			}
			*v = b
		case *int:
			i, err := strconv.Atoi(value)
			if err != nil {
				return err
			}
			*v = i
		case *float64:
			f, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return err
			}
			*v = f
		default:
			return fmt.Errorf("unknown type: %T", ptr)
		}
	}

	return nil
}

func (m *multiValue) IsBoolFlag() bool {
	_, isBool := m.defaultValue.(bool)
	return isBool
}
