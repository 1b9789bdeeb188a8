package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

func newLogger(w io.Writer, format string, verbose bool) (*logrus.Logger, error) {
	l := logrus.New()
	l.SetOutput(w)
	switch format {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		l.SetFormatter(&logrus.TextFormatter{
			DisableColors:    !isTerminal(w),
			DisableQuote:     true,
			DisableTimestamp: true,
			PadLevelText:     true,
		})
	default:
		return nil, fmt.Errorf("unknown log format %q (want text or json)", format)
	}
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	}

	return l, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
