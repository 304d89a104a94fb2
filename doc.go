// Package bhasha is a multi-strategy offline translation and
// transliteration pipeline. It translates between ~75 natural languages
// using a cascade of deterministic techniques: idiom substitution, word
// sense disambiguation, English-pivot dictionary lookup, morphological
// normalization, constituent reordering and script transliteration, with an
// optional model backend as an enhancement layer when dictionary confidence
// is low.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/openlexica/bhasha"
//	    "github.com/openlexica/bhasha/cache"
//	)
//
//	func main() {
//	    e := bhasha.NewEngine(
//	        bhasha.WithCache(cache.NewMemoryCache(3600, 10000)),
//	    )
//
//	    result, err := e.Translate(context.Background(), "How are you?", "english", "hindi")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(result.Text) // आप कैसे हैं?
//	}
//
// Chat messages are anchored in English: TranslateForChat derives an English
// core first, then renders the sender's and receiver's views independently
// from that core so errors never compound across two hops.
package bhasha
