package sorter

import (
	"tidy/internal/logging"
	"tidy/internal/mover"
)

// Summary aggregates the terminal outcome of every entry touched by a run.
type Summary struct {
	RunID             string
	Directory         string
	Moved             int
	Collisions        int
	AlreadyPlaced     int
	Failures          int
	CategoriesSkipped int
	Results           []mover.Result
}

func (s *Summary) record(res mover.Result) {
	s.Results = append(s.Results, res)
	switch res.Disposition {
	case mover.Moved:
		s.Moved++
	case mover.SkippedCollision:
		s.Collisions++
	case mover.AlreadyPlaced:
		s.AlreadyPlaced++
	case mover.Failed:
		s.Failures++
	}
}

// Clean reports whether the run completed without collisions or failures.
func (s *Summary) Clean() bool {
	return s.Collisions == 0 && s.Failures == 0
}

func (s *Summary) attrs() []logging.Attr {
	return []logging.Attr{
		logging.Int("moved", s.Moved),
		logging.Int("collisions", s.Collisions),
		logging.Int("already_placed", s.AlreadyPlaced),
		logging.Int("failures", s.Failures),
		logging.Int("category_dirs_skipped", s.CategoriesSkipped),
	}
}
