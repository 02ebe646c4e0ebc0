package history

import (
	"encoding/json"
	"fmt"
	"os"
)

// xonshFile은 xonsh JSON history backend 파일에서 필요한 부분만 담는다.
type xonshFile struct {
	Data struct {
		Cmds []xonshCmd `json:"cmds"`
	} `json:"data"`
}

type xonshCmd struct {
	Inp string    `json:"inp"`
	Rtn int       `json:"rtn"`
	TS  []float64 `json:"ts"`
}

// LoadXonsh는 xonsh JSON history 파일을 읽어 Slice로 변환한다.
// 파일이 없으면 빈 기록을 반환한다.
func LoadXonsh(path string) (Slice, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("history.LoadXonsh: %w", err)
	}

	var f xonshFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("history.LoadXonsh: %s 파싱 실패: %w", path, err)
	}

	records := make(Slice, 0, len(f.Data.Cmds))
	for _, c := range f.Data.Cmds {
		r := Record{ReturnCode: c.Rtn}
		if len(c.TS) == 2 {
			r.Start, r.End = c.TS[0], c.TS[1]
		}
		records = append(records, r)
	}
	return records, nil
}
