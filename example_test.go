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

package patch_test

import (
	"fmt"

	"znkr.io/patch"
)

func ExampleLines() {
	x := "a\nb\nc\n"
	y := "a\nx\nc\n"

	p := patch.Lines(x, y).ToPatch(1)
	p.OldName = "a.txt"
	p.NewName = "b.txt"
	fmt.Print(p.String())
	// Output:
	// --- a.txt
	// +++ b.txt
	// @@ -1,3 +1,3 @@
	//  a
	// -b
	// +x
	//  c
}

func ExampleSlices() {
	x := []string{"milk", "eggs", "flour"}
	y := []string{"milk", "butter", "flour"}

	for _, s := range patch.Slices(x, y) {
		fmt.Printf("%v %q\n", s.Op, s.Seq)
	}
	// Output:
	// Equal ["milk"]
	// Delete ["eggs"]
	// Insert ["butter"]
	// Equal ["flour"]
}

func ExampleText() {
	for _, s := range patch.Text("abcdef", "abXdef") {
		fmt.Printf("%v %q\n", s.Op, s.Seq)
	}
	// Output:
	// Equal "ab"
	// Delete "c"
	// Insert "X"
	// Equal "def"
}
