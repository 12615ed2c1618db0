package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/xolan/tog/internal/service"
)

// Deps contains all dependencies for CLI operations
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	Exit   func(code int)

	Logger   *slog.Logger
	Prompter Prompter
	Styles   Styles
	Version  string

	// Services is loaded on first use by LoadServices, so commands that
	// need no account (config init, --help) work without a config file.
	// Tests set it directly.
	Services     *service.Services
	LoadServices func(d *Deps) (*service.Services, error)
}

// DefaultDeps creates a new Deps with default values
func DefaultDeps() *Deps {
	return &Deps{
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
		Stdin:        os.Stdin,
		Exit:         os.Exit,
		Logger:       NewLogger(os.Stderr, false),
		Prompter:     NewHuhPrompter(),
		Styles:       NewStyles(os.Stdout),
		Version:      "dev",
		LoadServices: loadServices,
	}
}

// GetServices returns the services, loading them on first use.
func (d *Deps) GetServices() (*service.Services, error) {
	if d.Services != nil {
		return d.Services, nil
	}
	if d.LoadServices == nil {
		d.LoadServices = loadServices
	}

	svcs, err := d.LoadServices(d)
	if err != nil {
		return nil, err
	}
	d.Services = svcs

	if hp, ok := d.Prompter.(*HuhPrompter); ok {
		hp.Theme = svcs.Config.Get().Theme
	}
	return svcs, nil
}

func loadServices(d *Deps) (*service.Services, error) {
	return service.NewServices(d.Version, d.Logger)
}

// Global deps instance for CLI
var deps = DefaultDeps()

// SetDeps sets the global deps (for testing)
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets to default deps
func ResetDeps() {
	deps = DefaultDeps()
}

// GetDeps returns the current deps
func GetDeps() *Deps {
	return deps
}
