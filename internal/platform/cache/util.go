package cache

import (
	"time"
)

// TimeUntilNextRefresh は now から次の hour 時（loc のタイムゾーン）までの期間を返します。
// loc が nil の場合は UTC を使用します。
func TimeUntilNextRefresh(now time.Time, hour int, loc *time.Location) time.Duration {
	if loc == nil {
		loc = time.UTC
	}
	now = now.In(loc)

	// 次の更新時刻を計算
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, loc)

	// 今日の更新時刻が既に過ぎている場合は明日の同時刻を使用
	if !now.Before(next) {
		next = next.AddDate(0, 0, 1)
	}

	return next.Sub(now)
}
