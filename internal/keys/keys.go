package keys

import (
	"strconv"
	"strings"
)

// NormalizeName trims a display name and collapses internal runs of
// whitespace into single spaces.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// BattleKey produces the canonical dedupe key of a stage run. A nil seed
// means the hero's next incrementing seed.
func BattleKey(heroID string, stageID int, seed *uint32) string {
	var b strings.Builder
	b.WriteString("hero:")
	b.WriteString(heroID)
	b.WriteString("|stage:")
	b.WriteString(strconv.Itoa(stageID))
	b.WriteString("|seed:")
	if seed == nil {
		b.WriteString("next")
	} else {
		b.WriteString(strconv.FormatUint(uint64(*seed), 10))
	}
	return b.String()
}
