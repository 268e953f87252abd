// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package myers contains an implementation of Myers' algorithm using the linear space refinement
// described in section 4b of the paper.
//
// The algorithm is a graph search on the graph modelling all possible edits that transform x into
// y. Every vertex (s, t) corresponds to a state: the top left (0, 0) corresponds to x and the
// bottom right (N, M) to y. A step to the right deletes x[s], a step down inserts y[t], and
// whenever x[s] == y[t] a free diagonal step matches both. An optimal diff (fewest insertions and
// deletions) is a minimum-cost path from (0, 0) to (N, M) where horizontal and vertical edges
// cost 1 and diagonal edges cost 0.
//
// Let a d-path be a path with exactly d non-diagonal edges. Myers' central observations are:
//
//   - A d-path must end on a diagonal k = s - t in {-d, -d+2, ..., d-2, d}. Consequently, d-paths
//     end on odd diagonals when d is odd and on even diagonals when d is even.
//   - A furthest reaching d-path on diagonal k is a furthest reaching (d-1)-path on diagonal k-1
//     followed by a horizontal edge, or one on diagonal k+1 followed by a vertical edge, in both
//     cases followed by the longest possible run of diagonal edges.
//
// This yields a greedy search that only needs to keep the furthest reaching endpoint per
// diagonal, trying d = 1, 2, ... until a path reaches (N, M); the first d that does is the edit
// distance. To reconstruct the path in linear space, the search is run forwards from (0, 0) and
// backwards from (N, M) simultaneously until the two frontiers overlap; the overlap fixes a run
// of diagonals in the middle of an optimal path. The two sub-rects on either side are then solved
// recursively and independently, emitting the script in order.
//
// In contrast to the paper, both searches here number diagonals with consistent k's by centering
// them around different midpoints, so no k conversion is needed for the overlap check.
//
// References:
//
// Myers, E.W. An O(ND) difference algorithm and its variations. Algorithmica 1, 251-266 (1986).
// https://doi.org/10.1007/BF01840446
//
// The algorithm was independently discovered by Esko Ukkonen:
//
// Ukkonen, E. Algorithms for approximate string matching. Information and Control, Volume 64,
// Issues 1-3, 100-118 (1985). https://doi.org/10.1016/S0019-9958(85)80046-2
package myers
