package uuid_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/KirkDiggler/text-rpg/internal/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPrefixedGenerator(t *testing.T) {
	gen := uuid.NewPrefixedGenerator("enc_")

	a, b := gen.New(), gen.New()

	assert.True(t, strings.HasPrefix(a, "enc_"))
	assert.Len(t, a, len("enc_")+36)
	assert.NotEqual(t, a, b)
}

func TestSequenceGenerator_ConcurrentIDsAreUnique(t *testing.T) {
	gen := uuid.NewSequenceGenerator("enc")
	seen := sync.Map{}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, dup := seen.LoadOrStore(gen.New(), true)
			assert.False(t, dup)
		}()
	}
	wg.Wait()

	assert.Equal(t, "enc-51", gen.New())
}
