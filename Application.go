package main

import (
	"PongMatch/core"
	"PongMatch/logger"
	"fmt"
	"os"
)

const loggerProperties = "logger.properties"
const runProperties = "properties/local.properties"

func main() {
	if err := logger.Log.Init(loggerProperties); err != nil {
		logger.Log.Warn(fmt.Sprintf(logger.ConfigFallbackMsg, err))
	}

	conf, err := core.ReadProperties(runProperties)
	if err != nil {
		logger.Log.Warn(fmt.Sprintf(logger.ConfigFallbackMsg, err))
	}

	os.Exit(start(conf))
}

// start plays one match on the terminal and returns the process exit code.
func start(conf core.RunConfig) int {
	screen, err := initScreen()
	if err != nil {
		logger.Log.Fatal(fmt.Sprintf(logger.ScreenInitFailMsg, err))
		return 1
	}

	match := core.NewMatch(core.ArenaWidth, core.ArenaHeight)
	logger.Log.WithMatch(match.ID()).Info(fmt.Sprintf(logger.MatchStartMsg, core.ArenaWidth, core.ArenaHeight, core.ScoreLimit))

	logger.Log.SetEcho(false)
	state := newLocalGame(screen, match, conf).startGameLoop()
	screen.Fini()
	logger.Log.SetEcho(true)

	if state == core.Finished {
		left, right := match.Score()
		fmt.Println(core.Event{Kind: core.Won, Side: match.Winner(), LeftScore: left, RightScore: right})
	}
	return 0
}
