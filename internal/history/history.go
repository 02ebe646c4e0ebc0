// Package history exposes the host shell's most recent command outcome.
package history

import "math"

// Record는 직전에 실행된 명령의 결과와 시작/종료 시각(초 단위)이다.
type Record struct {
	ReturnCode int
	Start      float64
	End        float64
}

// LatestCommandProvider는 가장 최근 명령 기록을 제공한다.
// 기록이 없으면 false를 반환한다.
type LatestCommandProvider interface {
	Latest() (Record, bool)
}

// Slice는 오래된 순서로 정렬된 메모리 내 기록 목록이다.
type Slice []Record

// Latest는 마지막 기록을 반환한다.
func (s Slice) Latest() (Record, bool) {
	if len(s) == 0 {
		return Record{}, false
	}
	return s[len(s)-1], true
}

// Fixed는 이미 계산된 status와 실행 시간을 그대로 돌려주는 provider다.
type Fixed struct {
	Status     int
	DurationMs int
}

// Latest는 DurationMs를 [0, DurationMs/1000] 구간의 기록으로 표현한다.
func (f Fixed) Latest() (Record, bool) {
	return Record{ReturnCode: f.Status, End: float64(f.DurationMs) / 1000}, true
}

// DurationMs는 실행 시간을 밀리초로 반올림한다. 반올림은 xonsh와 같이 half-to-even이다.
// 종료 시각이 기록되지 않아 End가 Start보다 앞서면 0이다.
func (r Record) DurationMs() int {
	if r.End < r.Start {
		return 0
	}
	return int(math.RoundToEven((r.End - r.Start) * 1000))
}

// CommandContext는 직전 명령의 status와 실행 시간(ms)을 반환한다.
// 기록이 없으면 (0, 0)이다.
func CommandContext(p LatestCommandProvider) (status, durationMs int) {
	if p == nil {
		return 0, 0
	}
	last, ok := p.Latest()
	if !ok {
		return 0, 0
	}
	return last.ReturnCode, last.DurationMs()
}
