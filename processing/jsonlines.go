package processing

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/muesli/reflow/truncate"

	"github.com/pdok/bitlib/ops"
)

// maxLineSize is the longest request line a JSONLines source accepts
const maxLineSize = 1024 * 1024

// JSONLines reads one JSON request per line and writes one JSON result per line.
// Blank lines are ignored. A malformed line still yields a request, carrying the decode error, so
// every non-blank input line gets a result.
type JSONLines struct {
	Reader io.Reader
	Writer io.Writer

	Malformed int
	readErr   error
	writeErr  error
}

// ReadRequests implements Source. Requests without an id, malformed ones included, get their line
// number as id.
func (j *JSONLines) ReadRequests(requests chan<- ops.Request) {
	defer close(requests)
	scanner := bufio.NewScanner(j.Reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var request ops.Request
		if err := json.Unmarshal([]byte(line), &request); err != nil {
			j.Malformed++
			log.Printf("  malformed line %d (%s): %v", lineNo, truncate.StringWithTail(line, maxLogWidth/2, "..."), err)
			request = ops.Request{DecodeErr: fmt.Errorf("line %d: %w", lineNo, err)}
		}
		if request.ID == "" {
			request.ID = strconv.Itoa(lineNo)
		}
		requests <- request
	}
	j.readErr = scanner.Err()
}

// WriteResults implements Target. After a write error the remaining results are drained.
func (j *JSONLines) WriteResults(results <-chan ops.Result) {
	encoder := json.NewEncoder(j.Writer)
	for result := range results {
		if j.writeErr != nil {
			continue
		}
		j.writeErr = encoder.Encode(result)
	}
}

// Err returns the first read or write error.
func (j *JSONLines) Err() error {
	if j.readErr != nil {
		return j.readErr
	}
	return j.writeErr
}
