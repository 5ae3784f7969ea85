// Command propersort sorts lines of text in natural order, so that
// "Crank 170mm" sorts before "Crank 172.5mm" and "Shirt XS" before "Shirt L".
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/amp-labs/propersort/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := &app{
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		configure: logger.ConfigureLoggingWithOptions,
	}

	err := newRootCommand(app).ExecuteContext(ctx)

	stop()

	if err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}

		os.Exit(1)
	}
}
