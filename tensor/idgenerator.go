package tensor

import (
	"hash/fnv"
	"log"
	"sync"
	"sync/atomic"

	"github.com/rs/xid"
)

var idGeneratorMutex sync.Mutex
var idGeneratorInstantiated bool
var idGenerator IDGenerator

// IDGenerator can generate Index IDs.
type IDGenerator interface {
	// Generate an ID. The result is never 0, which is reserved for
	// the null Index.
	Generate() uint64
}

// UseSequentialIDGenerator configures the package to hand out IDs
// sequentially. Sequential IDs are deterministic, but unique only
// within a single process.
func UseSequentialIDGenerator() {
	UseIDGenerator(NewSequentialIDGenerator())
}

// UseRandomIDGenerator configures the package to hand out IDs derived
// from the wall-clock time, the machine, and the process identifier.
// This is the default.
func UseRandomIDGenerator() {
	UseIDGenerator(NewRandomIDGenerator())
}

// UseIDGenerator installs the generator that new Indices draw their
// IDs from. It must be called before the first Index is constructed.
func UseIDGenerator(g IDGenerator) {
	if idGeneratorInstantiated {
		log.Panic("cannot change id generator type after using it")
	}

	idGeneratorMutex.Lock()
	if idGeneratorInstantiated {
		log.Panic("cannot change id generator type after using it")
	}

	idGenerator = g
	idGeneratorInstantiated = true

	idGeneratorMutex.Unlock()
}

// GetIDGenerator returns the generator used for new Indices,
// installing the random generator on first use.
func GetIDGenerator() IDGenerator {
	if idGeneratorInstantiated {
		return idGenerator
	}

	idGeneratorMutex.Lock()
	if idGeneratorInstantiated {
		idGeneratorMutex.Unlock()
		return idGenerator
	}

	idGenerator = NewRandomIDGenerator()
	idGeneratorInstantiated = true
	idGeneratorMutex.Unlock()

	return idGenerator
}

// NewSequentialIDGenerator returns a generator that counts up from 1.
func NewSequentialIDGenerator() IDGenerator {
	return &sequentialIDGenerator{}
}

// NewRandomIDGenerator returns a generator that folds xid values,
// which combine time, machine id, process id, and an atomic counter,
// into 64-bit IDs. Instances are safe to share across goroutines.
func NewRandomIDGenerator() IDGenerator {
	return randomIDGenerator{}
}

type sequentialIDGenerator struct {
	nextID uint64
}

func (g *sequentialIDGenerator) Generate() uint64 {
	return atomic.AddUint64(&g.nextID, 1)
}

type randomIDGenerator struct{}

func (g randomIDGenerator) Generate() uint64 {
	for {
		h := fnv.New64a()
		h.Write(xid.New().Bytes())

		if id := h.Sum64(); id != 0 {
			return id
		}
	}
}
