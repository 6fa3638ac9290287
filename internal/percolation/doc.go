// Package percolation extracts the open clusters of a thresholded weight grid.
//
// What:
//
//   - Generate fills a core.WeightGrid with RNG samples rounded to hundredths.
//   - Extractor partitions the open cells at a threshold into maximal
//     4-connected components.
//   - ComputeStats summarizes a partition (sizes, largest cluster, spanning).
//
// Openness:
//
//   - Inclusive (default): a cell is open when weight <= p.
//   - Strict: a cell is open when weight < p.
//
// The predicate is evaluated only by Openness.Open, so every caller holding
// the same Extractor sees the same cells as open.
//
// Complexity:
//
//   - Generate: O(W×H).
//   - Extract:  O(W×H) time, O(W×H) memory (visited flags, stack, output).
//
// Cells are addressed in row-major order through core.WeightGrid.Index and
// core.WeightGrid.Coord. A component's lowest index is its identity.
package percolation
