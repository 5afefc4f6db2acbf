package attendance

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind classifies an attendance record. The numeric codes are persisted.
type Kind int16

const (
	KindNormal        Kind = 1
	KindOvertime      Kind = 2
	KindIncident      Kind = 3
	KindAbsence       Kind = 4
	KindHoliday       Kind = 5
	KindWorkedRestDay Kind = 6
)

var kindNames = map[Kind]string{
	KindNormal:        "normal",
	KindOvertime:      "overtime",
	KindIncident:      "incident",
	KindAbsence:       "absence",
	KindHoliday:       "holiday",
	KindWorkedRestDay: "worked_rest_day",
}

// Kinds lists every kind in code order.
func Kinds() []Kind {
	return []Kind{KindNormal, KindOvertime, KindIncident, KindAbsence, KindHoliday, KindWorkedRestDay}
}

func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// ParseKind accepts either a kind name or its numeric code.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && Kind(n).Valid() {
		return Kind(n), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

// MarshalJSON writes the kind name. An unset kind encodes as null.
func (k Kind) MarshalJSON() ([]byte, error) {
	if k == 0 {
		return []byte("null"), nil
	}
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKind, k)
	}
	return json.Marshal(k.String())
}

func (k *Kind) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		var n int
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidKind, data)
		}
		s = strconv.Itoa(n)
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
