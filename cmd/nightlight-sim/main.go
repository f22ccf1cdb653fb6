package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/nightlight/assets"
	"github.com/automoto/nightlight/config"
	"github.com/automoto/nightlight/sim"
)

func main() {
	tickRate := flag.Int("tickrate", config.C.TickRate, "Simulation ticks per second")
	seconds := flag.Float64("seconds", 60, "Simulated seconds before stopping, 0 runs until death")
	seed := flag.Int64("seed", 1, "Random seed for sounds and the pilot")
	levelName := flag.String("level", "level01", "Embedded level to simulate")
	tuningPath := flag.String("config", "", "YAML tuning file applied over the defaults")
	realtime := flag.Bool("realtime", false, "Pace ticks with the wall clock")
	flag.BoolVar(&config.Debug.LogTransitions, "debug", false, "Log every player mode change")
	flag.Parse()

	if *tickRate <= 0 {
		log.Fatalf("tickrate must be positive, got %d", *tickRate)
	}
	if *tuningPath != "" {
		if err := config.LoadFile(*tuningPath); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	level, err := assets.LoadLevel(*levelName)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	maxTicks := int(*seconds * float64(*tickRate))
	session := sim.NewSession(level, sim.DefaultScript(), *tickRate, maxTicks, *seed)
	loop := sim.NewLoop(session, *tickRate, !*realtime)

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		if !loop.IsRunning() {
			return
		}
		log.Println("Shutting down...")
		loop.Stop()
	}()

	report := loop.Run()
	log.Printf("Result: %s", report)
}
