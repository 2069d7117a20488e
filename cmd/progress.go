package cmd

import (
	"sync"

	"s3hive/core/hive"

	"github.com/schollz/progressbar/v3"
)

// barProgress adapts a terminal progress bar to the facade's callback.
// The total is unknown until the first chunk arrives (downloads learn it
// from the object's metadata), so the bar's max is set lazily.
func barProgress(bar *progressbar.ProgressBar) hive.ProgressFunc {
	var once sync.Once
	return func(delta, total int64) {
		once.Do(func() {
			if total > 0 {
				bar.ChangeMax64(total)
			}
		})
		_ = bar.Add64(delta)
	}
}
