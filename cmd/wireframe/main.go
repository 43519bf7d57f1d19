// wireframe renders rotating 3D wireframe models to image sequences or
// live in the terminal.
//
// Usage:
//
//	wireframe render [model]    write one revolution as PPM/PNG/BMP frames
//	wireframe view [model]      spin the model in the terminal
//	wireframe info <model>      print model statistics
//	wireframe config init       write the default configuration
//
// Without a model the built-in tetrahedron is used.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := fang.Execute(ctx, newRootCmd(), fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}
