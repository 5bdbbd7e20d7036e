/*
Package cadenza generates musical chord progressions by a constrained random
walk over a small directed transition network.

Each visited network position is rendered into a concrete chord (scale
degree plus quality), optionally substituted with a jazz-style extension or
marked for tritone substitution, and finally expanded into named pitches at
a target octave, optionally re-spelled with flats.

# Concept

Cadenza treats a progression as a walk over a graph of scale-degree
vertices. The engine manages the walk, the substitution decisions and the
rendering, while the music-theory collaborators (ScaleProvider and
ChordSpeller) resolve scales and spell chords. This Hexagonal Architecture
allows Cadenza to be embedded in any interface: CLI, HTTP server, or MCP
tooling.

# Key Features

  - Reproducible Output: Fix the random source (WithSeed/WithRand) and a
    configuration always yields the same progression.
  - Hexagonal Architecture: Core logic is decoupled from the theory layer
    and the presentation adapters.
  - Injectable Observability: Lifecycle hooks report every walk step,
    substitution decision and rendered chord without affecting results.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/cadenza"
	)

	func main() {
		eng, err := cadenza.New(cadenza.WithSeed(42))
		if err != nil {
			log.Fatal(err)
		}

		prog, err := eng.Generate(context.Background())
		if err != nil {
			log.Fatal(err)
		}

		for i, chord := range prog.Chords {
			fmt.Printf("%d. %-6s %v\n", i+1, chord.Symbol, chord.Pitches)
		}
	}

Configuration is supplied with WithConfig; see domain.DefaultConfig for the
stock eight-chord C-major setup. The substitution rule table is exposed
standalone as Substitute.
*/
package cadenza
