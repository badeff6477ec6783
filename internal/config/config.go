package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Seed       uint64    `yaml:"seed"`
	DataDir    string    `yaml:"data_dir"`
	ResultsDir string    `yaml:"results_dir"`
	Counts     Counts    `yaml:"counts"`
	Dates      Dates     `yaml:"dates"`
	Databases  Databases `yaml:"databases"`
}

type Counts struct {
	Customers  int `yaml:"customers"`
	Products   int `yaml:"products"`
	Orders     int `yaml:"orders"`
	OrderItems int `yaml:"order_items"`
	Reviews    int `yaml:"reviews"`
}

type Dates struct {
	RegistrationStart string `yaml:"registration_start"`
	End               string `yaml:"end"`
}

// Databases holds DSNs. Environment variables take precedence over the
// YAML file so deployments can override connection strings without
// editing config.
type Databases struct {
	Postgres string `yaml:"postgres" envconfig:"POSTGRES_DSN"`
	MySQL    string `yaml:"mysql" envconfig:"MYSQL_DSN"`
}

func LoadConfig(path string) (*Config, error) {
	config := &Config{}

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(file, config); err != nil {
		return nil, err
	}

	if err := envconfig.Process("", &config.Databases); err != nil {
		return nil, err
	}

	if config.DataDir == "" {
		config.DataDir = "data"
	}
	if config.ResultsDir == "" {
		config.ResultsDir = "results"
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate enforces the run preconditions before any stage starts.
// Violations are configuration errors, never clamped.
func (c *Config) Validate() error {
	counts := []struct {
		name string
		n    int
	}{
		{"customers", c.Counts.Customers},
		{"products", c.Counts.Products},
		{"orders", c.Counts.Orders},
		{"order_items", c.Counts.OrderItems},
		{"reviews", c.Counts.Reviews},
	}
	for _, count := range counts {
		if count.n <= 0 {
			return fmt.Errorf("config: count %s must be positive, got %d", count.name, count.n)
		}
	}
	if c.Counts.OrderItems < c.Counts.Orders {
		return fmt.Errorf("config: order_items count %d is below orders count %d; every order needs at least one item",
			c.Counts.OrderItems, c.Counts.Orders)
	}

	start, err := c.RegistrationStart()
	if err != nil {
		return err
	}
	end, err := c.EndDate()
	if err != nil {
		return err
	}
	if end.Before(start) {
		return fmt.Errorf("config: dataset end date %s precedes registration window start %s",
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	return nil
}

func (c *Config) RegistrationStart() (time.Time, error) {
	return parseDate("dates.registration_start", c.Dates.RegistrationStart)
}

func (c *Config) EndDate() (time.Time, error) {
	return parseDate("dates.end", c.Dates.End)
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("config: %s: %w", field, err)
	}
	return t.UTC(), nil
}
