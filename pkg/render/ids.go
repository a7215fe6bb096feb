package render

import (
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator produces DOM ids that are unique for the lifetime of the
// generator.
type IDGenerator interface {
	NextID(prefix string) string
}

// SequenceGenerator issues prefix-1, prefix-2, ... from a shared counter.
type SequenceGenerator struct {
	n atomic.Uint64
}

// NextID implements IDGenerator.
func (g *SequenceGenerator) NextID(prefix string) string {
	return joinID(prefix, strconv.FormatUint(g.n.Add(1), 10))
}

// UUIDGenerator issues prefix-<uuid> ids, unique across processes. Use it when
// fragments rendered by separate contexts end up on the same page.
type UUIDGenerator struct{}

// NextID implements IDGenerator.
func (UUIDGenerator) NextID(prefix string) string {
	return joinID(prefix, uuid.NewString())
}

func joinID(prefix, suffix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "uikit"
	}
	return prefix + "-" + suffix
}

// globalIDs serves nil contexts.
var globalIDs SequenceGenerator
