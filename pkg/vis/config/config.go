package config

import "time"

type Config struct {
	TimeFactor int `yaml:"time_factor"`
	FreqFactor int `yaml:"freq_factor"`
	Workers    int `yaml:"workers"`

	Simulate Simulate `yaml:"simulate"`

	VizServer struct {
		Port           int           `yaml:"port"`
		UpdateInterval time.Duration `yaml:"update_interval_ms"`
	} `yaml:"viz_server"`

	InfluxDB struct {
		Host         string `yaml:"host"`
		Organization string `yaml:"organization"`
		Bucket       string `yaml:"bucket"`
	} `yaml:"influxdb"`
}

type Simulate struct {
	Timesteps  int     `yaml:"timesteps"`
	Channels   int     `yaml:"channels"`
	Baselines  int     `yaml:"baselines"`
	FluxJy     float64 `yaml:"flux_jy"`
	NoiseSigma float64 `yaml:"noise_sigma"`
	Seed       int64   `yaml:"seed"`
}
