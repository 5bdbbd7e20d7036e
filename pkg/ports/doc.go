/*
Package ports defines the driven ports (interfaces) for the Cadenza engine.

These interfaces decouple the core generation logic from the music-theory
implementations, allowing the engine to work with alternative scale systems
or chord voicings.

# Key Interfaces

  - ScaleProvider: Resolves a scale root and name into an ordered note list.
  - ChordSpeller: Expands a chord symbol into ordered pitch names.
*/
package ports
