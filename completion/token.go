// File: completion/token.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Generation token allocation. Each source packs its current 16-bit
// token and 2-bit phase into one atomic word so that every ownership
// transition is a single CAS. The token advances once per recycle and
// wraps naturally at 65536 generations; a stale handle would have to
// survive a full wrap of its slot to alias a live generation.

package completion

// Phases of one generation. pending -> claimed -> completed covers the
// synchronous path; pending -> attached -> claimed covers the
// asynchronous path, where the payload moves into the registered
// continuation box and the slot recycles at signal time.
const (
	phasePending uint32 = iota
	phaseAttached
	phaseClaimed
	phaseCompleted
)

const phaseMask = 0xffff

func packState(token uint16, phase uint32) uint32 {
	return uint32(token)<<16 | phase
}

func stateToken(word uint32) uint16 {
	return uint16(word >> 16)
}

func statePhase(word uint32) uint32 {
	return word & phaseMask
}

// nextToken advances a generation token with natural 16-bit wraparound.
func nextToken(token uint16) uint16 {
	return token + 1
}
