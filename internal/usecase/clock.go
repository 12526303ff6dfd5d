package usecase

import "time"

// 取引のタイムスタンプ用。テストで差し替える。
type Clock interface {
	Now() time.Time
}
