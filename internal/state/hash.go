package state

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// HashState produces the canonical encoding described in §4.2: active
// player, phase, both life totals, and — per player — a sorted bag of
// (cardName, tapped?, summoningSick?) triples for the battlefield and a
// sorted bag of card names for the hand. Sorting makes the hash
// independent of the order actions were taken in, so equivalent board
// positions reached via different action orderings collapse to the
// same key (required for the stalemate and transposition-table checks
// in §4.6).
//
// Adapted from the teacher's gameStateSnapshot.ComputeChecksum, which
// built a sorted, deterministic string representation before hashing
// with SHA-256 for the same reason: map/slice iteration order and
// construction history must not leak into the digest.
func HashState(gs *GameState) string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "ACTIVE:%d|PHASE:%s|LIFE0:%d|LIFE1:%d\n",
		gs.ActivePlayer, gs.Phase, gs.Players[0].Life, gs.Players[1].Life)

	for p := 0; p < 2; p++ {
		player := gs.Players[p]

		battlefield := make([]string, 0, len(player.Battlefield))
		for _, perm := range player.Battlefield {
			battlefield = append(battlefield, fmt.Sprintf("%s|%t|%t", perm.Card.Name, perm.Tapped, perm.SummoningSick))
		}
		sort.Strings(battlefield)

		hand := make([]string, 0, len(player.Hand))
		for _, c := range player.Hand {
			hand = append(hand, c.Name)
		}
		sort.Strings(hand)

		fmt.Fprintf(&buf, "P%d_BATTLEFIELD:%s\n", p, strings.Join(battlefield, ","))
		fmt.Fprintf(&buf, "P%d_HAND:%s\n", p, strings.Join(hand, ","))
	}

	sum := sha256.Sum256([]byte(buf.String()))
	return hex.EncodeToString(sum[:])
}
