// Package flatten converts decoded JSON objects into ordered records of
// scalar fields, upholding the journal encoder's no-collections contract.
package flatten

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/carverauto/journalgate/pkg/models"
)

// Object flattens obj into a record. Nested objects contribute dot-joined
// keys, arrays index-suffixed keys. Keys are visited in sorted order at
// each level so the output is deterministic.
func Object(obj map[string]interface{}) models.Record {
	return appendObject(make(models.Record, 0, len(obj)), "", obj)
}

func appendObject(rec models.Record, prefix string, obj map[string]interface{}) models.Record {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		rec = appendValue(rec, key, obj[k])
	}

	return rec
}

func appendValue(rec models.Record, key string, v interface{}) models.Record {
	switch t := v.(type) {
	case nil:
		return rec.Add(key, models.NullValue())
	case string:
		return rec.Add(key, models.TextValue(t))
	case bool:
		return rec.Add(key, models.BoolValue(t))
	case float64:
		// encoding/json decodes every number as float64; the encoder's
		// shortest rendering keeps integral values integral.
		return rec.Add(key, models.FloatValue(t))
	case int:
		return rec.Add(key, models.IntValue(int64(t)))
	case int64:
		return rec.Add(key, models.IntValue(t))
	case []byte:
		return rec.Add(key, models.BytesValue(t))
	case time.Time:
		return rec.Add(key, models.TimeValue(t))
	case map[string]interface{}:
		return appendObject(rec, key, t)
	case []interface{}:
		for i, elem := range t {
			rec = appendValue(rec, key+"."+strconv.Itoa(i), elem)
		}

		return rec
	default:
		return rec.Add(key, models.TextValue(fmt.Sprintf("%v", t)))
	}
}
