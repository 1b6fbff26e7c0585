package cellular

import "github.com/aldenfall/dungeonkernel/pkg/dungeonerr"

func cancelledDuringAutomaton() error {
	return dungeonerr.New(dungeonerr.GenerationCancelled, "cancelled during cellular automaton iteration", nil)
}
