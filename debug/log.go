package debug

import (
	"fmt"
	"os"
	"os/exec"
	rtdebug "runtime/debug"
	"strings"

	"github.com/anita-format/go-anita/ir"
)

// Logf writes to stderr, rendering *ir.Node arguments as compact
// literals.
func Logf(msg string, args ...any) {
	for i := range args {
		if x, ok := args[i].(*ir.Node); ok {
			args[i] = ir.CompactString(x)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

// SafePath removes $HOME (containing personal data) from a path.
func SafePath(p string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return p
	}
	if strings.HasPrefix(p, home) {
		return "~" + p[len(home):]
	}
	return p
}

// LogException writes err in a boxed banner followed by the current
// stack, one numbered line each, via logf. A nil logf logs to stderr.
func LogException(err error, logf func(string, ...any)) {
	if logf == nil {
		logf = Logf
	}
	rule := "    +" + strings.Repeat("-", 88)
	logf("%s\n", rule)
	logf("    |\n")
	logf("    |        EXCEPTION ---> %v\n", err)
	logf("    |\n")
	logf("%s\n", rule)
	logf("    |\n")
	for i, line := range strings.Split(strings.TrimRight(string(rtdebug.Stack()), "\n"), "\n") {
		logf("%3d |  %s\n", i, line)
	}
}

// DiskFree runs "df -h ." and writes its output via logf, a line at a
// time. Works on Linux and macOS.
func DiskFree(logf func(string, ...any)) error {
	if logf == nil {
		logf = Logf
	}
	out, err := exec.Command("df", "-h", ".").Output()
	if err != nil {
		return fmt.Errorf("df: %w", err)
	}
	for _, line := range strings.Split(string(out), "\n") {
		if line != "" {
			logf("%s\n", line)
		}
	}
	return nil
}
