package iostreams

import "fmt"

func (ios *IOStreams) printLine(line string) error {
	ios.ClearStatus()
	_, err := fmt.Fprintln(ios.ErrOut, line)
	return err
}

// PrintWarning prints a warning message to stderr with an exclamation icon.
func (ios *IOStreams) PrintWarning(format string, args ...any) error {
	return ios.printLine(ios.ColorScheme().WarningIconWithColor(fmt.Sprintf(format, args...)))
}

// PrintInfo prints an informational message to stderr with an info icon.
func (ios *IOStreams) PrintInfo(format string, args ...any) error {
	return ios.printLine(ios.ColorScheme().InfoIconWithColor(fmt.Sprintf(format, args...)))
}

// PrintFailure prints an error message to stderr with an X icon.
func (ios *IOStreams) PrintFailure(format string, args ...any) error {
	return ios.printLine(ios.ColorScheme().FailureIconWithColor(fmt.Sprintf(format, args...)))
}

