package util

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

// LockedRand is a math/rand source safe for use from every auction goroutine.
type LockedRand struct {
	lock *sync.Mutex
	r    *rand.Rand
}

func NewRandomizer(seed int64) *LockedRand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &LockedRand{
		lock: &sync.Mutex{},
		r:    rand.New(rand.NewSource(seed)),
	}
}

func (l *LockedRand) Intn(n int) int {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.r.Intn(n)
}

func (l *LockedRand) IntIn(min, max int) int {
	return l.Intn(max-min+1) + min
}

func NewAuctionGuid() string {
	return uuid.NewString()
}

// GuidGenerator hands out sequential, prefixed names. The simulation uses it
// for reproducible broker and participant names.
type GuidGenerator struct {
	lock    *sync.Mutex
	tracker map[string]int
}

func NewGuidGenerator() *GuidGenerator {
	return &GuidGenerator{
		lock:    &sync.Mutex{},
		tracker: map[string]int{},
	}
}

func (g *GuidGenerator) NewGuid(prefix string) string {
	g.lock.Lock()
	defer g.lock.Unlock()
	g.tracker[prefix] = g.tracker[prefix] + 1
	return fmt.Sprintf("%s-%d", prefix, g.tracker[prefix])
}

func (g *GuidGenerator) Reset() {
	g.lock.Lock()
	defer g.lock.Unlock()
	g.tracker = map[string]int{}
}
