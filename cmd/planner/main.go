package main

import (
	"flag"
	"log"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"github.com/thaipduong/flatprm"
)

// This code effectively only reads the scenario file and runs the planner.

const defaultScenario = "~~unset~~"

var (
	scenario string
	uniform  bool
)

func init() {
	flag.StringVar(&scenario, "scenario", defaultScenario, "planner scenario TOML file")
	flag.BoolVar(&uniform, "uniform", false, "sample pseudo-randomly instead of with the Halton sequence")
}

func main() {
	flag.Parse()
	if scenario == defaultScenario {
		log.Fatal("no scenario provided")
	}
	scenario = strings.Replace(scenario, ".toml", "", 1)
	viper.AddConfigPath(".")
	viper.SetConfigName(scenario)
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("./%s.toml: Error %s", scenario, err)
	}

	// Read robot parameters.
	radius := viper.GetFloat64("robot.radius")
	velMax := viper.GetFloat64("robot.velmax")
	var lows, highs [3]float64
	for i, v := range viper.GetStringSlice("robot.lows") {
		lows[i] = mustFloat(v)
	}
	for i, v := range viper.GetStringSlice("robot.highs") {
		highs[i] = mustFloat(v)
	}
	robot := flatprm.NewSphereRobot(radius, lows, highs, velMax)

	// Read the sphere obstacles.
	env := &flatprm.Environment{}
	for _, obs := range viper.GetStringSlice("environment.spheres") {
		fields := strings.Split(obs, ",")
		if len(fields) != 4 {
			log.Fatalf("sphere obstacle must be `x,y,z,r`, got `%s`", obs)
		}
		env.Spheres = append(env.Spheres, flatprm.NewSphere(mustFloat(fields[0]), mustFloat(fields[1]), mustFloat(fields[2]), mustFloat(fields[3])))
	}

	start := canonicalFlatState(viper.GetStringSlice("mission.start"), robot)
	goal := canonicalFlatState(viper.GetStringSlice("mission.goal"), robot)

	var rng flatprm.RNG
	if uniform {
		rng = flatprm.NewUniformRNG(flatprm.FlatStateDimension(robot), flatprm.ConfigSeed())
	} else {
		rng = flatprm.NewHalton(flatprm.FlatStateDimension(robot))
	}

	planner := flatprm.NewFlatPRM(robot, rng)
	result := planner.SolveOne(start, goal, env, flatprm.SettingsFromConfig(robot))
	if len(result.Path) == 0 {
		log.Fatalf("no path found after %d iterations", result.Iterations)
	}
	for i, state := range result.Path {
		log.Printf("path[%d] = %v", i, state)
	}
}

func canonicalFlatState(fields []string, robot flatprm.Robot) []float64 {
	state := make([]float64, flatprm.FlatStateDimension(robot))
	for i, v := range fields {
		state[i] = mustFloat(v)
	}
	robot.ScaleFlatState(state)
	return state
}

func mustFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		log.Fatalf("could not parse `%s` as float", s)
	}
	return f
}
