// Copyright 2025 go-bitfield Authors
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

//go:build amd64 && !purego

package bitfield

import "golang.org/x/sys/cpu"

// hasBMI2 indicates BZHI support for the fused extract kernel (Haswell+,
// Excavator+).
var hasBMI2 bool

func init() {
	if NoAccelEnv() {
		return
	}

	// SHRD is baseline x86-64; no detection needed.
	shrd32 = shrdAsm32
	shrd64 = shrdAsm64
	currentAccel = AccelSHRD

	hasBMI2 = cpu.X86.HasBMI2
	if hasBMI2 {
		extract32 = extractAsm32
		extract64 = extractAsm64
		currentAccel = AccelBMI2
	}
}

// HasBMI2 returns true if the CPU supports BMI2 instructions.
// BMI2 provides the BZHI zero-high-bits instruction used by the fused
// extract kernel. Present on Intel Haswell+ and AMD Excavator+ CPUs.
func HasBMI2() bool {
	return hasBMI2
}
