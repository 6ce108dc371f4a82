// Command visavg synthesizes a visibility cube, averages it in time and
// frequency, and serves diagnostic plots of the result. It exists to
// exercise and profile the averaging core without any telescope data.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"

	influxdb2 "github.com/influxdata/influxdb-client-go"
	"github.com/influxdata/influxdb-client-go/api"
	"golang.org/x/sync/errgroup"

	"github.com/MWATelescope/mwa-go-core/pkg/util"
	"github.com/MWATelescope/mwa-go-core/pkg/vis/average"
	"github.com/MWATelescope/mwa-go-core/pkg/vis/config"
	"github.com/MWATelescope/mwa-go-core/pkg/vis/simulate"
	"github.com/MWATelescope/mwa-go-core/pkg/vis/viz"
	"github.com/MWATelescope/mwa-go-core/pkg/vis/window"
)

const resimulateInterval = 5 * time.Second

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.InfoLevel)
	configFile := flag.String("config", "visavg.yaml", "YAML config file")

	flag.Parse()
	if configFile == nil {
		flag.Usage()
		os.Exit(1)
	}

	configContents, err := os.ReadFile(*configFile)
	if err != nil {
		log.Fatal().Err(err).Msg("error reading config file")
	}
	var opts config.Config
	if err := yaml.Unmarshal(configContents, &opts); err != nil {
		log.Fatal().Err(err).Msg("error unmarshaling yaml file")
	}
	applyDefaults(&opts)

	var writeAPI api.WriteAPI = &util.MockWriteAPI{}
	if opts.InfluxDB.Host != "" {
		writeAPI = influxdb2.NewClient(opts.InfluxDB.Host, "").WriteAPI(opts.InfluxDB.Organization, opts.InfluxDB.Bucket)
	}

	vizServer := viz.NewServer(opts.VizServer.Port, opts.VizServer.UpdateInterval)
	spectrum := viz.NewSpectrumPlotter("01. Averaged spectrum", 0)
	delay := viz.NewDelayPlotter("02. Delay spectrum", 0, window.BlackmanHarris)
	occupancy := viz.NewOccupancyPlotter("03. Flag occupancy")
	vizServer.Register("averaged", spectrum)
	vizServer.Register("averaged", delay)
	vizServer.Register("averaged", occupancy)

	averager := average.NewAverager(
		average.WithWorkers(opts.Workers),
		average.WithLogger(log.Logger),
		average.WithMetrics(writeAPI))

	eg, ctx := errgroup.WithContext(context.Background())
	ctx, cancel := context.WithCancel(ctx)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	eg.Go(func() error {
		select {
		case <-sigChan:
		case <-ctx.Done():
		}
		cancel()
		vizServer.Stop(context.TODO())
		return nil
	})

	eg.Go(func() error {
		return vizServer.Run(ctx)
	})

	eg.Go(func() error {
		seed := opts.Simulate.Seed
		for {
			vis, weights, flags := simulate.PointSource(
				opts.Simulate.Timesteps, opts.Simulate.Channels, opts.Simulate.Baselines,
				opts.Simulate.FluxJy, opts.Simulate.NoiseSigma, seed)
			seed++

			avgVis, avgWeights, avgFlags, err := averager.Average(ctx, vis, weights, flags, opts.TimeFactor, opts.FreqFactor)
			if err != nil {
				return err
			}

			spectrum.Update(avgVis)
			delay.Update(avgVis)
			occupancy.Update(avgFlags)

			mean, stddev := simulate.WeightSummary(avgWeights)
			log.Info().
				Float64("weight_mean", mean).
				Float64("weight_stddev", stddev).
				Int("time_factor", opts.TimeFactor).
				Int("freq_factor", opts.FreqFactor).
				Msg("averaged synthetic cube")

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(resimulateInterval):
			}
		}
	})

	log.Info().
		Int("timesteps", opts.Simulate.Timesteps).
		Int("channels", opts.Simulate.Channels).
		Int("baselines", opts.Simulate.Baselines).
		Msg("Starting")

	if err := eg.Wait(); err != nil && err != context.Canceled {
		log.Fatal().Err(err).Msg("exited program")
	}
}

func applyDefaults(cfg *config.Config) {
	if cfg.TimeFactor < 1 {
		cfg.TimeFactor = 1
	}
	if cfg.FreqFactor < 1 {
		cfg.FreqFactor = 1
	}
	if cfg.Simulate.Timesteps < 1 {
		cfg.Simulate.Timesteps = 8
	}
	if cfg.Simulate.Channels < 1 {
		cfg.Simulate.Channels = 128
	}
	if cfg.Simulate.Baselines < 1 {
		cfg.Simulate.Baselines = 28
	}
	if cfg.Simulate.FluxJy == 0 {
		cfg.Simulate.FluxJy = 10
	}
	if cfg.VizServer.Port == 0 {
		cfg.VizServer.Port = 8089
	}
	if cfg.VizServer.UpdateInterval == 0 {
		cfg.VizServer.UpdateInterval = time.Second
	}
}
