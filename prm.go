package flatprm

import (
	"fmt"
	"math"
	"os"
	"time"

	kitlog "github.com/go-kit/kit/log"
)

/* Handles incremental roadmap construction over flat states. */

// NeighborParams decides how many candidate neighbors to consider and within
// what radius, as a function of the current roadmap size.
type NeighborParams interface {
	MaxNeighbors(n int) int
	NeighborRadius(n int) float64
}

// PRMStarNeighborParams implements the PRM* connection strategy, whose radius
// shrinks with sample count at the rate guaranteeing asymptotic optimality.
type PRMStarNeighborParams struct {
	Dim   int
	Gamma float64
}

// NewPRMStarNeighborParams returns the PRM* strategy for a space of the given
// dimension.
func NewPRMStarNeighborParams(dim int, gamma float64) PRMStarNeighborParams {
	return PRMStarNeighborParams{Dim: dim, Gamma: gamma}
}

// MaxNeighbors implements the NeighborParams interface: k = ⌈e·(1+1/d)·ln n⌉.
func (p PRMStarNeighborParams) MaxNeighbors(n int) int {
	if n < 2 {
		return n
	}
	return int(math.Ceil(math.E * (1 + 1/float64(p.Dim)) * math.Log(float64(n))))
}

// NeighborRadius implements the NeighborParams interface:
// r = γ·(ln n / n)^(1/d).
func (p PRMStarNeighborParams) NeighborRadius(n int) float64 {
	if n < 2 {
		return math.Inf(1)
	}
	return p.Gamma * math.Pow(math.Log(float64(n))/float64(n), 1/float64(p.Dim))
}

// RoadmapSettings bound roadmap growth. MaxIterations counts every sampling
// attempt, including rejected samples; MaxSamples counts accepted nodes.
type RoadmapSettings struct {
	MaxIterations   int
	MaxSamples      int
	SteeringHorizon float64
	NeighborParams  NeighborParams
}

// DefaultRoadmapSettings returns PRM* settings sized for the given robot.
func DefaultRoadmapSettings(robot Robot) RoadmapSettings {
	return RoadmapSettings{
		MaxIterations:   100000,
		MaxSamples:      10000,
		SteeringHorizon: 1.5,
		NeighborParams:  NewPRMStarNeighborParams(FlatStateDimension(robot), 2),
	}
}

// PlanningResult carries the outcome of a plan invocation. A negative result
// is not an error: it has an empty Path and infinite Cost.
type PlanningResult struct {
	Path       [][]float64
	Cost       float64
	Elapsed    time.Duration
	Iterations int
	Size       []int
}

// Roadmap is the raw graph produced by BuildRoadmap: vertex states and
// adjacency lists by dense index.
type Roadmap struct {
	Vertices   [][]float64
	Edges      [][]int
	Elapsed    time.Duration
	Iterations int
}

// PlannerLogInit initializes the structured logger carried by a planner.
func PlannerLogInit(name string) kitlog.Logger {
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	return kitlog.With(klog, "planner", name)
}

// FlatPRM is a probabilistic roadmap planner over flat states: roadmap edges
// are steering splines validated by rake-batched collision checks. Every plan
// draws its samples from the planner's RNG and advances it, so concurrent
// invocations need distinct FlatPRM values, each with its own RNG.
type FlatPRM struct {
	robot     Robot
	rng       RNG
	validator Validator
	logger    kitlog.Logger
}

// NewFlatPRM returns a planner for the given robot drawing samples from rng.
func NewFlatPRM(robot Robot, rng RNG) *FlatPRM {
	return &FlatPRM{
		robot:     robot,
		rng:       rng,
		validator: NewValidator(robot),
		logger:    PlannerLogInit(robot.Name()),
	}
}

// SetLogger replaces the planner's logger.
func (p *FlatPRM) SetLogger(logger kitlog.Logger) {
	p.logger = logger
}

// SolveOne plans from start to a single goal.
func (p *FlatPRM) SolveOne(start, goal []float64, env *Environment, settings RoadmapSettings) PlanningResult {
	return p.Solve(start, [][]float64{goal}, env, settings)
}

// Solve grows a roadmap from start toward any of the goals and extracts the
// first path found. The result is deterministic given (start, goals,
// environment, settings) and the planner's RNG sequence.
func (p *FlatPRM) Solve(start []float64, goals [][]float64, env *Environment, settings RoadmapSettings) PlanningResult {
	startTime := time.Now()
	result := PlanningResult{Cost: math.Inf(1)}
	fsd := FlatStateDimension(p.robot)
	p.logger.Log("level", "info", "subsys", "prm", "status", "start", "goals", len(goals), "max_iterations", settings.MaxIterations, "max_samples", settings.MaxSamples)

	// A steering spline straight to a goal may already be collision-free.
	for _, goal := range goals {
		if p.validator.ValidatePolyMotion(env, start, goal, settings.SteeringHorizon) {
			result.Path = [][]float64{clone(start), clone(goal)}
			result.Cost = Distance(start, goal)
			result.Elapsed = time.Since(startTime)
			result.Iterations = 0
			result.Size = []int{1, 1}
			p.logger.Log("level", "info", "subsys", "prm", "status", "direct", "cost", result.Cost, "elapsed", result.Elapsed)
			return result
		}
	}

	if settings.MaxSamples < 1+len(goals) {
		panic(fmt.Errorf("max samples %d cannot hold the start and %d goals", settings.MaxSamples, len(goals)))
	}

	// The states buffer is allocated once at full capacity and never grows:
	// the NN index holds handles into it.
	stride := roundUpTo(fsd, Rake)
	states := make([]float64, settings.MaxSamples*stride)
	state := func(i int) []float64 {
		return states[i*stride : i*stride+fsd]
	}

	roadmap := NewKDTree(fsd)
	nodes := make([]RoadmapNode, 0, settings.MaxSamples)
	components := make([]connectedComponent, 0, settings.MaxSamples)

	const startIndex = 0
	copy(state(startIndex), start)
	nodes = append(nodes, newRoadmapNode(startIndex, startIndex, 0))
	roadmap.Insert(startIndex, state(startIndex))
	components = append(components, connectedComponent{parent: startIndex, size: 1})

	for _, goal := range goals {
		index := len(nodes)
		copy(state(index), goal)
		nodes = append(nodes, newRoadmapNode(index, noParent, math.Inf(1)))
		roadmap.Insert(index, state(index))
		components = append(components, connectedComponent{parent: index, size: 1})
	}
	goalMaxIndex := len(nodes)

	var neighbors []Neighbor
	block := make(Block, p.robot.FlatDimension())
	iter := 0
	for iter < settings.MaxIterations && len(nodes) < settings.MaxSamples {
		iter++
		sample := p.rng.Next()
		p.robot.ScaleFlatState(sample)

		// The sample is a single configuration, so the static predicate sees
		// the configuration portion broadcast across all lanes.
		for i := 0; i < p.robot.FlatDimension(); i++ {
			block[i] = broadcast(sample[i])
		}
		if !p.robot.FKCC(env, block) {
			continue
		}

		index := len(nodes)
		copy(state(index), sample)
		nodes = append(nodes, newRoadmapNode(index, noParent, math.Inf(1)))
		node := &nodes[index]

		k := settings.NeighborParams.MaxNeighbors(roadmap.Size())
		r := settings.NeighborParams.NeighborRadius(roadmap.Size())
		roadmap.Nearest(&neighbors, state(index), k, r)
		for _, nbr := range neighbors {
			if p.validator.ValidatePolyMotion(env, nbr.State, state(index), settings.SteeringHorizon) {
				node.Neighbors = append(node.Neighbors, RoadmapNeighbor{Index: nbr.Index, Distance: nbr.Distance})
				nodes[nbr.Index].Neighbors = append(nodes[nbr.Index].Neighbors, RoadmapNeighbor{Index: index, Distance: nbr.Distance})
			}
		}

		// Inserted after the query so a node is never its own neighbor.
		roadmap.Insert(index, state(index))

		if len(node.Neighbors) == 0 {
			node.Component = len(components)
			components = append(components, connectedComponent{parent: len(components), size: 1})
		} else {
			node.Component = nodes[node.Neighbors[0].Index].Component
			for _, nbr := range node.Neighbors {
				mergeComponents(components, node.Component, nodes[nbr.Index].Component)
			}
		}

		for g := 1; g < goalMaxIndex; g++ {
			if findRoot(components, startIndex) != findRoot(components, g) {
				continue
			}
			// Same component, so A* is guaranteed to reach the goal.
			astar(nodes, startIndex, g, state)
			result.Path = recoverPath(nodes, startIndex, g, state)
			result.Cost = nodes[g].G
			result.Elapsed = time.Since(startTime)
			result.Iterations = iter
			result.Size = []int{roadmap.Size(), 0}
			p.logger.Log("level", "info", "subsys", "prm", "status", "solved", "cost", result.Cost, "iterations", iter, "nodes", roadmap.Size(), "elapsed", result.Elapsed)
			return result
		}
	}

	result.Elapsed = time.Since(startTime)
	result.Iterations = iter
	result.Size = []int{roadmap.Size(), 0}
	p.logger.Log("level", "notice", "subsys", "prm", "status", "exhausted", "iterations", iter, "nodes", roadmap.Size(), "elapsed", result.Elapsed)
	return result
}

// BuildRoadmap runs the same growth loop as Solve but without goal
// short-circuiting or A* extraction, returning the raw graph. Candidate edges
// here are straight-line configuration-space motions.
func (p *FlatPRM) BuildRoadmap(start, goal []float64, env *Environment, settings RoadmapSettings) Roadmap {
	startTime := time.Now()
	fsd := FlatStateDimension(p.robot)

	if settings.MaxSamples < 2 {
		panic(fmt.Errorf("max samples %d cannot hold the start and the goal", settings.MaxSamples))
	}
	stride := roundUpTo(fsd, Rake)
	states := make([]float64, settings.MaxSamples*stride)
	state := func(i int) []float64 {
		return states[i*stride : i*stride+fsd]
	}

	roadmap := NewKDTree(fsd)
	nodes := make([]RoadmapNode, 0, settings.MaxSamples)

	copy(state(0), start)
	nodes = append(nodes, newRoadmapNode(0, 0, 0))
	roadmap.Insert(0, state(0))
	copy(state(1), goal)
	nodes = append(nodes, newRoadmapNode(1, noParent, math.Inf(1)))
	roadmap.Insert(1, state(1))

	var neighbors []Neighbor
	block := make(Block, p.robot.FlatDimension())
	iter := 0
	for iter < settings.MaxIterations && len(nodes) < settings.MaxSamples {
		iter++
		sample := p.rng.Next()
		p.robot.ScaleFlatState(sample)

		for i := 0; i < p.robot.FlatDimension(); i++ {
			block[i] = broadcast(sample[i])
		}
		if !p.robot.FKCC(env, block) {
			continue
		}

		index := len(nodes)
		copy(state(index), sample)
		nodes = append(nodes, newRoadmapNode(index, noParent, math.Inf(1)))
		node := &nodes[index]

		k := settings.NeighborParams.MaxNeighbors(roadmap.Size())
		r := settings.NeighborParams.NeighborRadius(roadmap.Size())
		roadmap.Nearest(&neighbors, state(index), k, r)
		for _, nbr := range neighbors {
			if p.validator.ValidateMotion(env, nbr.State[:p.robot.Dimension()], state(index)[:p.robot.Dimension()]) {
				node.Neighbors = append(node.Neighbors, RoadmapNeighbor{Index: nbr.Index, Distance: nbr.Distance})
				nodes[nbr.Index].Neighbors = append(nodes[nbr.Index].Neighbors, RoadmapNeighbor{Index: index, Distance: nbr.Distance})
			}
		}
		roadmap.Insert(index, state(index))
	}

	out := Roadmap{
		Vertices:   make([][]float64, 0, len(nodes)),
		Edges:      make([][]int, 0, len(nodes)),
		Elapsed:    time.Since(startTime),
		Iterations: iter,
	}
	for i := range nodes {
		out.Vertices = append(out.Vertices, clone(state(i)))
		edges := make([]int, 0, len(nodes[i].Neighbors))
		for _, nbr := range nodes[i].Neighbors {
			edges = append(edges, nbr.Index)
		}
		out.Edges = append(out.Edges, edges)
	}
	return out
}
