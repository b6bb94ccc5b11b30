package app

import "github.com/habitkit/habitkit/internal/models"

// UpsertLog inserts or fully replaces the daily log for log.Date.
// Last write wins; callers wanting a partial update must carry the prior
// fields themselves.
func (s *State) UpsertLog(log models.DailyLog) error {
	if err := log.Validate(); err != nil {
		return err
	}

	for i := range s.Logs {
		if s.Logs[i].Date == log.Date {
			s.Logs[i] = log
			return s.saveLogs()
		}
	}

	s.Logs = append(s.Logs, log)
	return s.saveLogs()
}

// LogFor returns the daily log for a date, if one exists.
func (s *State) LogFor(date string) (models.DailyLog, bool) {
	for _, l := range s.Logs {
		if l.Date == date {
			return l, true
		}
	}
	return models.DailyLog{}, false
}

// RecentLogs returns up to the last n daily logs in insertion order.
func (s *State) RecentLogs(n int) []models.DailyLog {
	if len(s.Logs) <= n {
		return s.Logs
	}
	return s.Logs[len(s.Logs)-n:]
}
