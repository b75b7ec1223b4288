package utils

import (
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

var whiteboardIDPattern = regexp.MustCompile(`^wb-[a-z0-9]{12}$`)

func TestGenerateWhiteboardIDFormat(t *testing.T) {
	for i := 0; i < 50; i++ {
		assert.Regexp(t, whiteboardIDPattern, GenerateWhiteboardID())
	}
}

func TestGenerateWhiteboardIDConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	ids := make([][]string, 8)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				ids[g] = append(ids[g], GenerateWhiteboardID())
			}
		}(g)
	}
	wg.Wait()

	for _, batch := range ids {
		for _, id := range batch {
			assert.Regexp(t, whiteboardIDPattern, id)
		}
	}
}
