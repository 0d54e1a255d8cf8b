package prints

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var IsQuiet = false

var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

func warnBegin() string {
	return color.YellowString("Warning: ")
}

func Warnln(items ...any) {
	fmt.Fprint(Stderr, warnBegin())
	fmt.Fprintln(Stderr, items...)
}

func Warnf(format string, parameters ...any) {
	fmt.Fprint(Stderr, warnBegin())
	fmt.Fprintf(Stderr, format, parameters...)
}

func Print(items ...any) {
	if IsQuiet {
		return
	}

	fmt.Fprint(Stdout, items...)
}

func Println(items ...any) {
	if IsQuiet {
		return
	}

	fmt.Fprintln(Stdout, items...)
}

func Printf(format string, parameters ...any) {
	if IsQuiet {
		return
	}

	fmt.Fprintf(Stdout, format, parameters...)
}
