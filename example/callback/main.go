package main

import (
	"context"
	"fmt"
	"log"

	"github.com/ldurand/CardioFlow/pkg/cardioflow"
)

func main() {
	flow, err := cardioflow.Conf("../../data/config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	callback := func(batch []cardioflow.HeartData) error {
		for _, sample := range batch {
			fmt.Printf("t=%.2fs scenario=%s bpm=%.1f rr=%.0fms\n",
				sample.Timestamp,
				sample.Scenario,
				sample.BPM,
				sample.RRIntervalMS,
			)
		}
		return nil
	}

	if err := flow.Run(ctx, cardioflow.WithSink(cardioflow.NewCallbackSink("stdout", callback))); err != nil && err != context.Canceled {
		log.Fatalf("runtime error: %v", err)
	}
}
