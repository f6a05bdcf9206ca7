package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"hexbot/bot"
	"hexbot/hexagon"
	"hexbot/hexdump"
	"hexbot/process"
)

func main() {
	pidFlag := flag.Int("pid", 0, "Process ID to attach to (skips discovery)")
	nameFlag := flag.String("name", "superhexagon.exe", "Process name to search for")
	cmdlineFlag := flag.String("cmdline", "", "Command line argument to search for instead of the process name")
	titleFlag := flag.String("title", "Super Hexagon", "Window title to search for (windows builds)")
	intervalFlag := flag.Duration("interval", bot.DefaultInterval, "Delay between decision cycles")
	baseFlag := flag.String("base", "", "Override the base pointer location (hex)")
	peekFlag := flag.Bool("peek", false, "Dump the game state header region and exit")
	discoverFlag := flag.Bool("discover", false, "Scan for locations holding the resolved base address and exit")
	flag.Parse()

	proc, err := openTarget(targetOptions{
		pid:     *pidFlag,
		name:    *nameFlag,
		cmdline: *cmdlineFlag,
		title:   *titleFlag,
	})
	if err != nil {
		fmt.Printf("Error attaching to target: %v\n", err)
		os.Exit(1)
	}
	defer proc.Close()

	// Release the handle on SIGINT/SIGTERM too
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		proc.Close()
		os.Exit(0)
	}()

	offsets := hexagon.DefaultOffsets()
	if *baseFlag != "" {
		base, err := parseHexAddress(*baseFlag)
		if err != nil {
			fmt.Printf("Error parsing -base: %v\n", err)
			os.Exit(1)
		}
		offsets.BasePointer = base
	}

	game, err := hexagon.NewGame(proc, offsets)
	if err != nil {
		fmt.Printf("Error resolving game state: %v\n", err)
		os.Exit(1)
	}

	if *discoverFlag {
		if err := discoverBasePointer(proc, game); err != nil {
			fmt.Printf("Error scanning for base pointer: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *peekFlag {
		if err := peekGameState(proc, game); err != nil {
			fmt.Printf("Error dumping game state: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := bot.New(game, *intervalFlag).Run(); err != nil {
		fmt.Printf("Fatal: %v\n", err)
		os.Exit(1)
	}
}

// discoverBasePointer scans the target for every location storing the
// currently resolved base address. When a game update moves the base
// pointer, one of these is its new home.
func discoverBasePointer(proc process.Process, game *hexagon.Game) error {
	base := uint32(game.Base())
	pattern := []byte{
		byte(base),
		byte(base >> 8),
		byte(base >> 16),
		byte(base >> 24),
	}

	matches, err := proc.Scan(process.ExactAOB(pattern))
	if err != nil {
		return err
	}

	fmt.Printf("Base address %s is stored at %d location(s):\n", game.Base().ToString(), len(matches))
	for _, addr := range matches {
		fmt.Printf("  %s\n", addr.ToString())
	}

	return nil
}

// peekGameState dumps the header region of the game's data segment: the
// world angle, slot count and the start of the wall table all live in the
// first 0x300 bytes.
func peekGameState(proc process.Process, game *hexagon.Game) error {
	const peekSize = 0x300

	data, err := proc.ReadMemory(game.Base(), peekSize)
	if err != nil {
		return err
	}

	fmt.Print(hexdump.DumpWithOffset(data, uint64(game.Base())))
	return nil
}

func parseHexAddress(s string) (process.ProcessMemoryAddress, error) {
	s = strings.TrimPrefix(s, "0x")
	value, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid hex address %q", s)
	}
	return process.ProcessMemoryAddress(value), nil
}

// targetOptions carries the discovery flags to the platform openTarget
type targetOptions struct {
	pid     int
	name    string
	cmdline string
	title   string
}
