package main

import (
	"fmt"
	"log"
	"time"

	"github.com/ldurand/CardioFlow"
)

// Walks a single sensor through a day-like sequence of scenario changes and
// prints every sample so the smooth glides between targets are visible.
func main() {
	rest := cardioflow.Rest()
	phases := []struct {
		scenario cardioflow.ScenarioConfig
		duration time.Duration
	}{
		{rest, 10 * time.Second},
		{cardioflow.Sleep(), 20 * time.Second},
		{rest, 15 * time.Second},
		{cardioflow.Exercise(), 30 * time.Second},
		{rest, 25 * time.Second},
	}

	sensor, err := cardioflow.NewSimulatedSensor(rest)
	if err != nil {
		log.Fatalf("sensor: %v", err)
	}
	engine, err := cardioflow.NewEngine(sensor, 1.0)
	if err != nil {
		log.Fatalf("engine: %v", err)
	}

	for _, phase := range phases {
		fmt.Printf("\n--- switching to %s for %s ---\n", phase.scenario.Name, phase.duration)
		if err := engine.ChangeScenario(phase.scenario); err != nil {
			log.Fatalf("change scenario: %v", err)
		}

		stream, err := engine.Stream(phase.duration)
		if err != nil {
			log.Fatalf("stream: %v", err)
		}
		for stream.Next() {
			fmt.Println(stream.Sample())
		}
		if err := stream.Err(); err != nil {
			log.Fatalf("stream: %v", err)
		}
	}
}
