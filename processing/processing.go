// Package processing takes care of the logistics around reading requests from a Source and
// writing results to a Target. Not the evaluation itself.
package processing

import (
	"log"
	"sync"

	"github.com/muesli/reflow/truncate"
	"github.com/umpc/go-sortedmap"

	"github.com/pdok/bitlib/ops"
)

// maxLogWidth is where logged error messages are cut off
const maxLogWidth = 120

type evaluateFunc func(ops.Request) (ops.Result, error)

// Summary counts what went through the pipeline.
type Summary struct {
	Total  uint64
	Failed uint64
	PerOp  map[string]uint64
}

func readRequestsFromSource(source Source, requests chan<- ops.Request) {
	source.ReadRequests(requests)
}

// processRequests evaluates the requests in order with the given function.
// A failing or undecodable request yields a Result carrying the error, the pipeline goes on.
func processRequests(requestsIn <-chan ops.Request, resultsOut chan<- ops.Result, f evaluateFunc) Summary {
	summary := Summary{PerOp: make(map[string]uint64)}
	for {
		request, hasMore := <-requestsIn
		if !hasMore {
			break
		}
		summary.Total++
		var result ops.Result
		var err error
		if request.DecodeErr != nil {
			result, err = ops.Result{ID: request.ID}, request.DecodeErr
		} else {
			summary.PerOp[request.Op]++
			result, err = f(request)
		}
		if err != nil {
			summary.Failed++
			result.Error = err.Error()
			log.Printf("  request %s failed: %s", request.ID, truncate.StringWithTail(err.Error(), maxLogWidth, "..."))
		}
		resultsOut <- result
	}
	close(resultsOut)
	return summary
}

func writeResultsToTarget(results <-chan ops.Result, target Target) {
	target.WriteResults(results)
}

// ProcessRequests runs every request from source through f and hands the results to target,
// in the order of the source.
func ProcessRequests(source Source, target Target, f evaluateFunc) Summary {
	requests := make(chan ops.Request)
	results := make(chan ops.Result)

	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		writeResultsToTarget(results, target)
	}()
	go readRequestsFromSource(source, requests)
	summary := processRequests(requests, results, f)

	wg.Wait()
	logSummary(summary)
	return summary
}

func logSummary(summary Summary) {
	log.Printf("    total requests: %d", summary.Total)
	log.Printf("            failed: %d", summary.Failed)
	log.Printf("                ok: %d", summary.Total-summary.Failed)

	// busiest operations first
	perOp := sortedmap.New(len(summary.PerOp), func(x, y interface{}) bool {
		return x.(uint64) > y.(uint64)
	})
	for op, n := range summary.PerOp {
		perOp.Insert(op, n)
	}
	counts := perOp.Map()
	for _, op := range perOp.Keys() {
		log.Printf("      %12s: %d", op, counts[op])
	}
}
