package flatprm

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

var (
	cfgLoaded = false
	config    = _flatprmconfig{}
)

// _flatprmconfig is a "hidden" struct, just use `flatprmConfig`
type _flatprmconfig struct {
	maxIterations   int
	maxSamples      int
	steeringHorizon float64
	gamma           float64
	seed            uint64
}

func (c _flatprmconfig) String() string {
	return fmt.Sprintf("[flatprm:config] iterations: %d samples: %d horizon: %.2f", c.maxIterations, c.maxSamples, c.steeringHorizon)
}

// flatprmConfig returns the planner configuration, loading conf.toml from the
// FLATPRM_CONFIG directory on first use. Without the environment variable the
// defaults apply.
func flatprmConfig() _flatprmconfig {
	if cfgLoaded {
		return config
	}
	config = _flatprmconfig{
		maxIterations:   100000,
		maxSamples:      10000,
		steeringHorizon: 1.5,
		gamma:           2,
		seed:            1,
	}
	confPath := os.Getenv("FLATPRM_CONFIG")
	if confPath == "" {
		cfgLoaded = true
		return config
	}
	viper.SetConfigName("conf")
	viper.AddConfigPath(confPath)
	if err := viper.ReadInConfig(); err != nil {
		panic(fmt.Errorf("%s/conf.toml not found", confPath))
	}
	if viper.IsSet("planner.max_iterations") {
		config.maxIterations = viper.GetInt("planner.max_iterations")
	}
	if viper.IsSet("planner.max_samples") {
		config.maxSamples = viper.GetInt("planner.max_samples")
	}
	if viper.IsSet("planner.steering_horizon") {
		config.steeringHorizon = viper.GetFloat64("planner.steering_horizon")
	}
	if viper.IsSet("planner.gamma") {
		config.gamma = viper.GetFloat64("planner.gamma")
	}
	if viper.IsSet("planner.seed") {
		config.seed = viper.GetUint64("planner.seed")
	}
	cfgLoaded = true
	return config
}

// SettingsFromConfig returns roadmap settings for the given robot, taking
// bounds and horizon from the loaded configuration.
func SettingsFromConfig(robot Robot) RoadmapSettings {
	c := flatprmConfig()
	return RoadmapSettings{
		MaxIterations:   c.maxIterations,
		MaxSamples:      c.maxSamples,
		SteeringHorizon: c.steeringHorizon,
		NeighborParams:  NewPRMStarNeighborParams(FlatStateDimension(robot), c.gamma),
	}
}

// ConfigSeed returns the sampler seed from the loaded configuration.
func ConfigSeed() uint64 {
	return flatprmConfig().seed
}
