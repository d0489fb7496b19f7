package ledger

import (
	"fmt"
	"math"

	"github.com/alexanderramin/idlewage/internal/domain"
	"github.com/goccy/go-json"
)

// activityRecord is the persisted shape of an activity.
type activityRecord struct {
	Description string `json:"description"`
	Seconds     int64  `json:"seconds"`
}

// looseActivityRecord accepts any JSON so each field can be type-checked.
type looseActivityRecord struct {
	Description *string  `json:"description"`
	Seconds     *float64 `json:"seconds"`
}

func encodeActivities(items []domain.Activity) (string, error) {
	records := make([]activityRecord, len(items))
	for i, a := range items {
		records[i] = activityRecord{Description: a.Description, Seconds: a.Seconds}
	}
	b, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("encoding activities: %w", err)
	}
	return string(b), nil
}

// decodeActivities parses a persisted activity list. Elements with a missing
// or mistyped field, or negative seconds, are skipped and counted in dropped.
// Only a blob that is not a JSON array is an error.
func decodeActivities(blob string) (items []domain.Activity, dropped int, err error) {
	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(blob), &raw); err != nil {
		return nil, 0, fmt.Errorf("decoding activities: %w", err)
	}

	items = make([]domain.Activity, 0, len(raw))
	for _, elem := range raw {
		var rec looseActivityRecord
		if err := json.Unmarshal(elem, &rec); err != nil {
			dropped++
			continue
		}
		if rec.Description == nil || rec.Seconds == nil {
			dropped++
			continue
		}
		secs := *rec.Seconds
		if math.IsNaN(secs) || math.IsInf(secs, 0) || secs < 0 || secs >= math.MaxInt64 {
			dropped++
			continue
		}
		items = append(items, domain.NewActivity(*rec.Description, int64(math.Floor(secs))))
	}
	return items, dropped, nil
}
