package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	cardioflow "github.com/ldurand/CardioFlow"
)

func main() {
	// Optional .env for broker/database addresses; missing file is fine.
	_ = godotenv.Load()

	args := os.Args[1:]
	cmd := "simulate"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd = args[0]
		args = args[1:]
	}

	var err error
	switch cmd {
	case "simulate":
		err = simulateCommand(args)
	case "run":
		err = runCommand(args)
	case "validate":
		err = validateCommand(args)
	case "help":
		printUsage()
		return
	default:
		printUsage()
		err = fmt.Errorf("unknown command %q", cmd)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "cardioflow %s: %v\n", cmd, err)
		os.Exit(1)
	}
}

func simulateCommand(args []string) error {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	scenarioName := fs.String("scenario", "rest", "Scenario to simulate (rest|sleep|exercise)")
	duration := fs.Duration("duration", 30*time.Second, "Simulated duration")
	rate := fs.Float64("rate", 1.0, "Sampling rate in Hz")
	intensity := fs.Float64("intensity", 0, "Target BPM override for the exercise scenario")
	quiet := fs.Bool("quiet", false, "Suppress per-sample output, print only final statistics")
	showStats := fs.Bool("stats", false, "Print aggregate statistics at the end")
	realtime := fs.Bool("realtime", false, "Pace output against the wall clock like a live feed")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sc, err := cardioflow.ScenarioByName(*scenarioName, *intensity)
	if err != nil {
		return err
	}
	sensor, err := cardioflow.NewSimulatedSensor(sc)
	if err != nil {
		return err
	}
	engine, err := cardioflow.NewEngine(sensor, *rate)
	if err != nil {
		return err
	}

	if !*quiet {
		line := strings.Repeat("=", 60)
		fmt.Println(line)
		fmt.Println("CARDIAC SIMULATION ENGINE")
		fmt.Println(line)
		fmt.Printf("Scenario: %s\n", sc)
		fmt.Printf("Duration: %s\n", *duration)
		fmt.Printf("Rate: %g Hz\n", *rate)
		fmt.Println(line)
		fmt.Println()
	}

	stream, err := engine.Stream(*duration)
	if err != nil {
		return err
	}

	var ticker *time.Ticker
	if *realtime {
		ticker = time.NewTicker(engine.Tick())
		defer ticker.Stop()
	}

	collector := cardioflow.NewStatsCollector()
	for stream.Next() {
		data := stream.Sample()
		collector.Add(data)
		if !*quiet {
			fmt.Println(data)
		}
		if ticker != nil {
			<-ticker.C
		}
	}
	if err := stream.Err(); err != nil {
		return err
	}

	if *showStats || *quiet {
		collector.Summary().Render(os.Stdout, sc)
	}
	return nil
}

func runCommand(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	cfgPath := fs.String("config", "./config.yaml", "Path to runtime configuration file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	flow, err := cardioflow.Conf(*cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return flow.Run(ctx)
}

func validateCommand(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	cfgPath := fs.String("config", "./config.yaml", "Path to configuration file to validate")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := cardioflow.LoadConfig(*cfgPath); err != nil {
		return err
	}
	fmt.Printf("config %s looks good\n", *cfgPath)
	return nil
}

func printUsage() {
	fmt.Printf(`CardioFlow CLI

Usage:
  cardioflow [command] [flags]

Commands:
  simulate   Generate a bounded synthetic cardiac stream (default)
  run        Start the live runtime with the sinks from the config file
  validate   Load and validate a config file without starting the runtime

Examples:
  cardioflow -scenario rest -duration 30s
  cardioflow -scenario exercise -intensity 140 -duration 60s -stats
  cardioflow -scenario sleep -rate 2.0 -quiet
  cardioflow run -config ./config.yaml
  cardioflow validate -config ./config.yaml
`)
}
