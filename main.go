package main

import (
	"flag"
	"fmt"

	"github.com/jackson-harris-iii/inifinite-phase-game/network"
	"github.com/jackson-harris-iii/inifinite-phase-game/phase"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
)

func main() {
	addr := flag.String("addr", ":9998", "listen address")
	bots := flag.Int("bots", 0, "bot seats to fill")
	theme := flag.String("theme", "", "phase theme, blank for standard phases")
	provider := flag.String("provider", "", "themed phase service url")
	flag.Parse()

	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()

	cfg := network.Config{Bots: *bots, Theme: *theme}
	if *provider != "" {
		cfg.Provider = phase.NewHTTPProvider(*provider)
	}
	host, err := network.NewHost(cfg)
	if err != nil {
		log.Error(err)
		return
	}
	async.Async(host.Run)
	server := network.NewWebsocketServer(*addr, host)
	log.Error(server.Serve())
}
