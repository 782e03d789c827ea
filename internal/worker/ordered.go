package worker

import "github.com/lgbarn/bureaucrat-chess/internal/processing"

// AnalyzeFunc returns a ProcessFunc that analyses each line as a position.
func AnalyzeFunc(includeEmpty bool) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		analysis, err := processing.AnalyzeLine(item.Line, includeEmpty)
		return ProcessResult{
			Item:     item,
			Index:    item.Index,
			Analysis: analysis,
			Error:    err,
		}
	}
}

// CollectOrdered reads results until the channel closes and passes them to
// emit in index order, starting at index 0. Results that arrive early are
// held until their predecessors have been emitted.
func CollectOrdered(results <-chan ProcessResult, emit func(ProcessResult)) {
	pending := make(map[int]ProcessResult)
	next := 0

	for result := range results {
		pending[result.Index] = result
		for {
			r, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			emit(r)
			next++
		}
	}
}
