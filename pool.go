package porter

import (
	"github.com/oarkflow/gopool"
	"github.com/oarkflow/log"
)

// Result is the outcome of stemming one word of a batch.
type Result struct {
	Word  string `json:"word"`
	Stem  string `json:"stem"`
	Error string `json:"error,omitempty"`
}

type batchJob struct {
	index int
	word  string
}

// StemBatch stems words on a pool of noOfWorker goroutines and returns the
// results in input order. An invalid word only fails its own result.
func StemBatch(words []string, noOfWorker int) []Result {
	results := make([]Result, len(words))
	if len(words) == 0 {
		return results
	}
	if noOfWorker < 1 {
		noOfWorker = 1
	}
	pool, err := gopool.NewPoolSimple(noOfWorker, func(job gopool.Job[batchJob], _ int) error {
		stemmed, err := Stem(job.Payload.word)
		results[job.Payload.index] = Result{Word: job.Payload.word, Stem: stemmed}
		if err != nil {
			results[job.Payload.index].Error = err.Error()
			log.Error().Err(err).Str("word", job.Payload.word).Msg("Unable to stem word")
		}
		return err
	}, gopool.Name("stem-batch"))
	if err != nil {
		log.Error().Err(err).Msg("Unable to start stem pool, stemming inline")
		for i, word := range words {
			stemmed, err := Stem(word)
			results[i] = Result{Word: word, Stem: stemmed}
			if err != nil {
				results[i].Error = err.Error()
			}
		}
		return results
	}
	for i, word := range words {
		pool.Submit(batchJob{index: i, word: word})
	}
	pool.StopAndWait()
	return results
}

// Failed reports whether any result in the batch carries an error.
func Failed(results []Result) bool {
	for _, r := range results {
		if r.Error != "" {
			return true
		}
	}
	return false
}
