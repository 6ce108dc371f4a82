package config

import (
	"testing"

	"gopkg.in/yaml.v2"
)

func TestUnmarshal(t *testing.T) {
	raw := `
time_factor: 4
freq_factor: 2
workers: 8
simulate:
  timesteps: 112
  channels: 128
  baselines: 8128
  flux_jy: 10.5
  noise_sigma: 0.1
  seed: 42
viz_server:
  port: 8089
influxdb:
  host: http://localhost:9999
  organization: mwa
  bucket: vis
`
	var cfg Config
	if err := yaml.Unmarshal([]byte(raw), &cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if cfg.TimeFactor != 4 || cfg.FreqFactor != 2 || cfg.Workers != 8 {
		t.Errorf("factors = (%d, %d, %d)", cfg.TimeFactor, cfg.FreqFactor, cfg.Workers)
	}
	if cfg.Simulate.Baselines != 8128 || cfg.Simulate.FluxJy != 10.5 {
		t.Errorf("simulate = %+v", cfg.Simulate)
	}
	if cfg.VizServer.Port != 8089 {
		t.Errorf("viz port = %d", cfg.VizServer.Port)
	}
	if cfg.InfluxDB.Bucket != "vis" {
		t.Errorf("influx bucket = %q", cfg.InfluxDB.Bucket)
	}
}
