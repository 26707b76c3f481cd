package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "list":
		listPorts()
	case "monitor":
		name := ""
		if len(os.Args) > 2 {
			name = os.Args[2]
		}
		monitor(name)
	default:
		usage()
	}
}

func usage() {
	fmt.Println("MIDI monitor")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  list             - List all MIDI input ports")
	fmt.Println("  monitor [name]   - Print CC/note messages from a port")
	fmt.Println("")
	fmt.Println("Use it to find the CC numbers of your encoders, then put them")
	fmt.Println("in ~/.config/synthmenu/config.json")
}

func listPorts() {
	fmt.Println("=== MIDI Input Ports ===")
	fmt.Println("(waiting up to 3 seconds...)")

	ch := make(chan []drivers.In, 1)
	go func() {
		ch <- midi.GetInPorts()
	}()

	select {
	case ins := <-ch:
		if len(ins) == 0 {
			fmt.Println("  no ports found")
		}
		for i, p := range ins {
			fmt.Printf("  %d: %s\n", i, p.String())
		}
	case <-time.After(3 * time.Second):
		fmt.Println("\nTIMEOUT! CoreMIDI is hung.")
		fmt.Println("Fix: sudo killall coreaudiod midiserver")
	}
}

func monitor(name string) {
	var port drivers.In
	for _, p := range midi.GetInPorts() {
		if name == "" || strings.Contains(strings.ToLower(p.String()), strings.ToLower(name)) {
			port = p
			break
		}
	}
	if port == nil {
		fmt.Printf("no input port matching %q\n", name)
		return
	}

	fmt.Printf("monitoring %s (ctrl+c to stop)\n", port.String())

	stop, err := midi.ListenTo(port, func(msg midi.Message, timestampms int32) {
		var channel, a, b uint8
		switch {
		case msg.GetControlChange(&channel, &a, &b):
			fmt.Printf("ch %2d  cc %3d = %3d\n", channel+1, a, b)
		case msg.GetNoteOn(&channel, &a, &b):
			fmt.Printf("ch %2d  note on  %3d vel %3d\n", channel+1, a, b)
		case msg.GetNoteOff(&channel, &a, &b):
			fmt.Printf("ch %2d  note off %3d\n", channel+1, a)
		}
	})
	if err != nil {
		fmt.Printf("open input: %v\n", err)
		return
	}
	defer stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	fmt.Println()
}
