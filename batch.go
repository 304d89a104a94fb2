package bhasha

import (
	"context"
	"sync"
)

// batchParallelThreshold is the batch size at which cache lookups go
// parallel. Below it the goroutine overhead outweighs the lookup cost.
const batchParallelThreshold = 5

// TranslateBatch translates several texts for one language pair, e.g. a
// chat history. Cache lookups for large batches run in parallel; misses
// are computed sequentially through Translate so results and cache writes
// are identical to single calls.
func (e *Engine) TranslateBatch(ctx context.Context, texts []string, sourceLang, targetLang string) ([]*TranslationResult, error) {
	src := e.registry.Normalize(sourceLang)
	tgt := e.registry.Normalize(targetLang)

	results := make([]*TranslationResult, len(texts))

	if e.cache != nil && len(texts) >= batchParallelThreshold && !e.registry.IsSameLanguage(src, tgt) {
		var wg sync.WaitGroup
		for i, text := range texts {
			wg.Add(1)
			go func(i int, text string) {
				defer wg.Done()
				if cached, ok := e.cache.Get(CacheKey(src, tgt, HashText(text))); ok {
					results[i] = decodeResult(cached)
				}
			}(i, text)
		}
		wg.Wait()
	}

	for i, text := range texts {
		if results[i] != nil {
			continue
		}
		r, err := e.Translate(ctx, text, src, tgt)
		if err != nil {
			return nil, err
		}
		results[i] = r
	}
	return results, nil
}
