package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
)

const (
	targetFPS   = 30
	framePeriod = time.Second / targetFPS
	yawPerSec   = 0.4
)

var (
	aFlag    = flag.String("a", "5,10,15", "Initial operand a as x,y,z")
	bFlag    = flag.String("b", "3,1,7", "Initial operand b as x,y,z")
	sFlag    = flag.Float64("s", 2, "Initial scalar s")
	stepFlag = flag.Float64("step", 1, "Component adjustment step")
	logFlag  = flag.String("log", "", "Diagnostic log file (discarded if empty)")
)

func newSandbox() (*sandbox, error) {
	a, err := parseVec(*aFlag)
	if err != nil {
		return nil, fmt.Errorf("flag -a: %w", err)
	}
	b, err := parseVec(*bFlag)
	if err != nil {
		return nil, fmt.Errorf("flag -b: %w", err)
	}
	return &sandbox{a: a, b: b, s: *sFlag, step: *stepFlag}, nil
}

// handleKey applies one key event, returns false to quit
func (sb *sandbox) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		sb.adjust(1)
	case tcell.KeyDown:
		sb.adjust(-1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case '1':
			sb.operand = 0
		case '2':
			sb.operand = 1
		case 'x':
			sb.axis = 0
		case 'y':
			sb.axis = 1
		case 'z':
			sb.axis = 2
		case '+', '=':
			sb.s += sb.step
		case '-':
			sb.s -= sb.step
		case 'r':
			fresh, err := newSandbox()
			if err != nil {
				log.Printf("reset: %v", err)
				break
			}
			*sb = *fresh
		}
	}
	log.Printf("key=%v rune=%q a=%v b=%v s=%g", ev.Key(), ev.Rune(), sb.a, sb.b, sb.s)
	return true
}

func run(screen tcell.Screen, sb *sandbox) {
	ticker := time.NewTicker(framePeriod)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	lastTick := time.Now()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !sb.handleKey(ev) {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			now := time.Now()
			dt := now.Sub(lastTick).Seconds()
			lastTick = now
			if dt > 0.1 {
				dt = 0.1
			}
			sb.yaw += yawPerSec * dt
			sb.draw(screen)
		}
	}
}

func main() {
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	sb, err := newSandbox()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "vec3-sandbox crashed: %v\nStack Trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	log.Printf("start a=%v b=%v s=%g", sb.a, sb.b, sb.s)
	run(screen, sb)
	screen.Fini()
}
