// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package jagged

import "fmt"

// Contract assertions. Every call site is guarded by DebugEnabled so that
// release builds carry no checks on the trusted paths.

func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("jagged: "+format, args...))
	}
}

func assertRow(i, n int, op string) {
	assertf(i >= 0 && i < n, "%s: row %d not pushed (rows=%d)", op, i, n)
}

func assertLive(moved bool, op string) {
	assertf(!moved, "%s on a frozen builder", op)
}

// assertOffsets checks that an offset table that did not come from push is
// non-decreasing, starts at or above zero and ends at elems.
func assertOffsets(offsets []int, elems int) {
	prev := 0
	for i, off := range offsets {
		assertf(off >= prev, "offsets[%d]=%d decreases from %d", i, off, prev)
		prev = off
	}
	assertf(prev == elems, "last offset %d does not match %d elements", prev, elems)
}
