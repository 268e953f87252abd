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

// Package patch computes minimal differences between two sequences and represents them as a
// patch of context-bounded hunks, matching the conventions of the Unix diff family of tools.
//
// [Slices] and [Text] return the raw difference between two inputs as ordered spans borrowed
// from the inputs. [Lines] compares two texts line by line; the resulting [LineDiff] produces a
// [Patch] via [LineDiff.ToPatch], which can be rendered in unified format with [Patch.String] or
// a [Formatter].
//
// All functions are total: every finite input pair produces a result, including empty, identical
// and fully disjoint inputs. The outputs borrow from the inputs and are never copies of them.
//
// Performance: time complexity is O(N·D) where N is the combined length of both inputs and D the
// number of differences; working memory is O(N).
package patch
