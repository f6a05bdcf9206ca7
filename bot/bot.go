package bot

import (
	"fmt"
	"time"

	"hexbot/hexagon"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
)

// DefaultInterval is the yield between decision cycles. The loop is
// deliberately not frame-locked; the heuristic's safety margin covers the
// staleness this introduces.
const DefaultInterval = 10 * time.Millisecond

// clearScreen moves the cursor home and erases the previous status output
const clearScreen = "\033[H\033[2J"

// Bot runs the refresh → decide → act cycle against one game instance. It
// is single threaded: one Bot, one Game, no locking.
type Bot struct {
	game     *hexagon.Game
	interval time.Duration
	log      *logger.Logger
}

func New(game *hexagon.Game, interval time.Duration) *Bot {
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Bot{
		game:     game,
		interval: interval,
		log:      logger.NewLogger(coloransi.Color(coloransi.Green, coloransi.ColorOrange, "bot")),
	}
}

// Step runs one decision cycle: refresh the wall table, pick the safest
// slot, snap the player into it. A cycle with no live walls is a normal
// steady state and performs no write; acted is false for such cycles.
// Any memory fault aborts the cycle with an error; there is no retry.
func (b *Bot) Step() (target uint32, worldAngle uint32, acted bool, err error) {
	snapshot, err := b.game.Snapshot()
	if err != nil {
		return 0, 0, false, err
	}

	target, ok := SafestSlot(snapshot.NumSlots, snapshot.Walls)
	if !ok {
		return 0, snapshot.WorldAngle, false, nil
	}

	if err := b.game.SetPlayerSlot(target); err != nil {
		return 0, 0, false, err
	}

	return target, snapshot.WorldAngle, true, nil
}

// Run cycles until a memory fault surfaces. There is no cancellation: the
// loop stops when the process is terminated or a Step fails.
func (b *Bot) Run() error {
	b.log.Infoln("Starting decision loop, interval", b.interval)

	for {
		target, worldAngle, acted, err := b.Step()
		if err != nil {
			return fmt.Errorf("decision cycle failed: %w", err)
		}

		if acted {
			fmt.Print(clearScreen)
			fmt.Println(coloransi.Foreground(coloransi.Cyan,
				fmt.Sprintf("Moving to slot [%d]; world angle is: %d.", target, worldAngle)))
		}

		time.Sleep(b.interval)
	}
}
