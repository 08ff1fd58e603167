package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal([]string(a))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}
	bytes, err := jsonBytes(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(bytes, a)
}

// Clone returns a copy that shares no backing array with a
func (a JSONBStringArray) Clone() JSONBStringArray {
	out := make(JSONBStringArray, len(a))
	copy(out, a)
	return out
}

// RoutineSteps is the JSONB representation of an ordered step list
type RoutineSteps []RoutineStep

// Value implements the driver.Valuer interface
func (s RoutineSteps) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal([]RoutineStep(s))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements the sql.Scanner interface
func (s *RoutineSteps) Scan(value interface{}) error {
	if value == nil {
		*s = RoutineSteps{}
		return nil
	}
	bytes, err := jsonBytes(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(bytes, s)
}

// Clone deep-copies the steps and their product lists
func (s RoutineSteps) Clone() RoutineSteps {
	out := make(RoutineSteps, len(s))
	for i, step := range s {
		out[i] = step
		if step.Frequency != nil {
			f := *step.Frequency
			out[i].Frequency = &f
		}
		out[i].Products = make([]StepProduct, len(step.Products))
		for j, p := range step.Products {
			if p.Instructions != nil {
				ins := *p.Instructions
				p.Instructions = &ins
			}
			out[i].Products[j] = p
		}
	}
	return out
}

// Value implements the driver.Valuer interface
func (l Lifestyle) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "{}", nil
	}
	data, err := json.Marshal(map[string]LifestyleValue(l))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements the sql.Scanner interface
func (l *Lifestyle) Scan(value interface{}) error {
	if value == nil {
		*l = Lifestyle{}
		return nil
	}
	bytes, err := jsonBytes(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(bytes, l)
}

func jsonBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported JSONB source type %T", value)
	}
}
