// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build jaggeddebug

package jagged

// DebugEnabled is true when built with the jaggeddebug tag.
// Contract assertions (malformed offsets, unchecked out-of-range access,
// use of a frozen builder) panic with a descriptive message.
const DebugEnabled = true
