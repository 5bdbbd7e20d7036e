/*
Package domain contains the core domain models for the Cadenza engine.

It defines the fundamental entities of progression generation, such as the
transition Net, the engine Configuration, and the generated Progression.
This package is kept pure and free of external dependencies like I/O or
randomness, following Hexagonal Architecture principles.

# Key Entities

  - Net: The adjacency map defining which scale-degree vertices may follow
    which others in a progression.
  - Config: The immutable per-engine generation settings.
  - Step: One visited position of a walk (vertex id plus tritone flag).
  - Chord: One rendered chord (symbol plus ordered pitch names).
  - Progression: The full result of a single Generate call.
*/
package domain
