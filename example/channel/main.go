package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ldurand/CardioFlow"
)

func main() {
	flow, err := cardioflow.Conf("../../data/config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sink, batches, closeBatches := cardioflow.NewChannelSink("fanout", 32)
	defer closeBatches()

	go fanoutWorker("downstream", batches)

	if err := flow.Run(ctx, cardioflow.WithSink(sink)); err != nil && err != context.Canceled {
		log.Fatalf("runtime error: %v", err)
	}
}

func fanoutWorker(name string, batches <-chan []cardioflow.HeartData) {
	for batch := range batches {
		fmt.Printf("[%s] forwarding %d samples at %s\n", name, len(batch), time.Now().Format(time.RFC3339))
	}
}
