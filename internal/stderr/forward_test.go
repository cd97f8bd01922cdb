package stderr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForward(t *testing.T) {
	out := make(chan string, 10)

	forward(strings.NewReader("first\n\n   \n  second  \n"), out)
	close(out)

	var got []string
	for line := range out {
		got = append(got, line)
	}
	assert.Equal(t, []string{"first", "second"}, got)
}

func TestForward_DropsWhenFull(t *testing.T) {
	out := make(chan string, 1)

	forward(strings.NewReader("a\nb\nc\n"), out)

	assert.Len(t, out, 1)
	assert.Equal(t, "a", <-out)
}
