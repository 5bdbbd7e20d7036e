/*
Package theory provides the default music-theory collaborators for the
Cadenza engine: a ScaleProvider backed by interval patterns and a
ChordSpeller backed by a quality-to-intervals table.

Note names are sharp-spelled throughout; flat re-spelling is the renderer's
concern. The exported pitch-class helpers are shared with the engine's
tritone lookup.
*/
package theory
