// Command replay feeds a tengo input script through the command reader and
// prints the commands produced on each frame.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/milk9111/padcmd/config"
	"github.com/milk9111/padcmd/input"
	"github.com/milk9111/padcmd/replay"
)

func main() {
	bindingsPath := flag.String("bindings", "bindings.yaml", "bindings file (embedded defaults when missing)")
	scriptPath := flag.String("script", "", "tengo input script")
	frames := flag.Int("frames", 600, "maximum number of frames to run")
	menu := flag.Bool("menu", false, "read menu commands instead of player commands")
	all := flag.Bool("all", false, "print frames with no commands too")
	flag.Parse()

	if *scriptPath == "" {
		log.Fatal("replay: -script is required")
	}
	src, err := os.ReadFile(*scriptPath)
	if err != nil {
		log.Fatalf("replay: %v", err)
	}

	f, err := config.Load(*bindingsPath)
	if err != nil {
		log.Fatal(err)
	}
	cfg, err := f.Input()
	if err != nil {
		log.Fatal(err)
	}

	dev, err := replay.Compile(src, config.ParseKey)
	if err != nil {
		log.Fatal(err)
	}

	opts := runOptions{frames: *frames, menu: *menu, all: *all}
	if err := run(os.Stdout, input.NewReader(cfg, dev, dev), dev, opts); err != nil {
		log.Fatal(err)
	}
}

type runOptions struct {
	frames int
	menu   bool
	all    bool
}

func run(w io.Writer, r *input.Reader, dev *replay.Device, opts runOptions) error {
	for frame := 0; frame < opts.frames; frame++ {
		if err := dev.Advance(frame); err != nil {
			return err
		}

		if opts.menu {
			cmd := r.MenuCmd()
			if cmd != 0 || opts.all {
				fmt.Fprintf(w, "frame=%d menu=%s\n", frame, cmd)
			}
		} else {
			var p1, p2 input.Cmd
			r.PlayerCmd(&p1, &p2, input.Held)
			if p1 != 0 || p2 != 0 || opts.all {
				fmt.Fprintf(w, "frame=%d p1=%s p2=%s\n", frame, p1, p2)
			}
		}

		if dev.Done() {
			break
		}
	}
	return nil
}
