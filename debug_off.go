// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !jaggeddebug

package jagged

// DebugEnabled is false when the jaggeddebug tag is not set.
// Contract assertions compile away.
const DebugEnabled = false
