// Package builder defines shared constants used by graph builders, ensuring
// consistent validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodRandomDAG is the canonical name for the RandomDAG constructor.
	MethodRandomDAG = "RandomDAG"
	// MethodRandomGeometric is the canonical name for the RandomGeometric constructor.
	MethodRandomGeometric = "RandomGeometric"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
const MinCycleNodes = 3

// MinPathNodes is the smallest meaningful size for a simple path.
const MinPathNodes = 2

// MinGridDim is the smallest allowed dimension (rows or cols) for a Grid.
// A 1×1 grid has no edges, but is considered valid.
const MinGridDim = 1

// MinRandomVertices is the smallest vertex count for the random constructors.
const MinRandomVertices = 1

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

// MinProbability is the inclusive lower bound for RandomDAG's p.
const MinProbability = 0.0

// MaxProbability is the inclusive upper bound for RandomDAG's p.
const MaxProbability = 1.0
