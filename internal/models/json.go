package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
)

// marshalWithExtra serializes a document struct and folds its overflow map
// back into the top-level JSON object. Declared fields win over overflow
// keys. dropID removes a zero "_id" that omitempty cannot catch (ObjectID
// is an array type, so it is never "empty" to encoding/json).
func marshalWithExtra(doc any, extra bson.M, dropID bool) ([]byte, error) {
	base, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 && !dropID {
		return base, nil
	}
	var merged map[string]any
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	if dropID {
		delete(merged, "_id")
	}
	for k, v := range extra {
		if _, ok := merged[k]; !ok {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}

// unmarshalExtra collects the JSON keys of data not covered by the known
// field list. Returns nil when the payload has no overflow keys.
func unmarshalExtra(data []byte, known []string) (bson.M, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	for _, k := range known {
		delete(raw, k)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	extra := bson.M{}
	for k, v := range raw {
		var val any
		if err := json.Unmarshal(v, &val); err != nil {
			return nil, err
		}
		extra[k] = val
	}
	return extra, nil
}
