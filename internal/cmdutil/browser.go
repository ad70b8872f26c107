package cmdutil

import (
	"io"
	"os"
	"os/exec"

	"github.com/cli/browser"
	"github.com/google/shlex"
)

// browserOverride returns the user's browser command for url, or nil when
// neither BRICKYARD_BROWSER nor BROWSER is set.
// Order of precedence: BRICKYARD_BROWSER > BROWSER
func browserOverride(url string, getenv func(string) string) ([]string, error) {
	for _, key := range []string{"BRICKYARD_BROWSER", "BROWSER"} {
		if v := getenv(key); v != "" {
			parts, err := shlex.Split(v)
			if err != nil {
				return nil, err
			}
			if len(parts) > 0 {
				return append(parts, url), nil
			}
		}
	}
	return nil, nil
}

// Opener opens URLs, preferring a configured browser command over the
// platform default.
type Opener struct {
	Getenv func(string) string
	// Launch starts an override command without waiting for it.
	Launch func(argv []string) error
	// Default opens url with the platform opener.
	Default func(url string) error
}

// Open opens url.
func (o *Opener) Open(url string) error {
	argv, err := browserOverride(url, o.Getenv)
	if err != nil {
		return err
	}
	if argv == nil {
		return o.Default(url)
	}
	return o.Launch(argv)
}

// OpenBrowser opens url with the user's browser without waiting for it.
func OpenBrowser(url string) error {
	browser.Stdout = io.Discard
	o := &Opener{
		Getenv:  os.Getenv,
		Launch:  launch,
		Default: browser.OpenURL,
	}
	return o.Open(url)
}

func launch(argv []string) error {
	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
