package stderr

import (
	"bufio"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
)

// Messages receives captured lines for display. Lines that do not fit are
// still logged.
var Messages = make(chan string, 100)

func forward(r io.Reader, out chan<- string) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		log.Warn().Str("source", "stderr").Msg(line)
		select {
		case out <- line:
		default:
		}
	}
}
