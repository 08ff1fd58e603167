package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Assessment is a completed skin questionnaire. It is never modified after creation.
type Assessment struct {
	ID            uuid.UUID        `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID        uuid.UUID        `gorm:"type:varchar(36);not null;index" json:"userId"`
	SkinType      SkinType         `gorm:"size:20;not null" json:"skinType"`
	Concerns      JSONBStringArray `gorm:"type:jsonb;not null" json:"concerns"`
	AgeRange      string           `gorm:"size:20;not null" json:"ageRange"`
	Budget        string           `gorm:"size:50;not null" json:"budget"`
	TimeAvailable TimeAvailable    `gorm:"size:20;not null" json:"timeAvailable"`
	Lifestyle     Lifestyle        `gorm:"type:jsonb;not null" json:"lifestyle"`
	CreatedAt     time.Time        `json:"createdAt"`
}

func (Assessment) TableName() string {
	return "assessments"
}

// Clone returns a deep copy of a
func (a Assessment) Clone() Assessment {
	out := a
	out.Concerns = a.Concerns.Clone()
	out.Lifestyle = a.Lifestyle.Clone()
	return out
}

// Lifestyle holds free-form questionnaire answers such as sleep or diet habits
type Lifestyle map[string]LifestyleValue

// Clone returns a copy of l
func (l Lifestyle) Clone() Lifestyle {
	if l == nil {
		return Lifestyle{}
	}
	out := make(Lifestyle, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}

// LifestyleKind enumerates the value kinds a lifestyle answer may hold
type LifestyleKind int

const (
	LifestyleString LifestyleKind = iota + 1
	LifestyleNumber
	LifestyleBool
)

// LifestyleValue is a string, a number or a boolean. Any other JSON kind
// decodes to an unset value (Kind() == 0) so the caller can report the key.
type LifestyleValue struct {
	kind LifestyleKind
	str  string
	num  float64
	b    bool
}

// StringValue wraps s
func StringValue(s string) LifestyleValue {
	return LifestyleValue{kind: LifestyleString, str: s}
}

// NumberValue wraps n
func NumberValue(n float64) LifestyleValue {
	return LifestyleValue{kind: LifestyleNumber, num: n}
}

// BoolValue wraps b
func BoolValue(b bool) LifestyleValue {
	return LifestyleValue{kind: LifestyleBool, b: b}
}

// Kind returns the held kind, zero for an unset value
func (v LifestyleValue) Kind() LifestyleKind { return v.kind }

// String returns the held string and whether the value is a string
func (v LifestyleValue) String() (string, bool) { return v.str, v.kind == LifestyleString }

// Number returns the held number and whether the value is a number
func (v LifestyleValue) Number() (float64, bool) { return v.num, v.kind == LifestyleNumber }

// Bool returns the held boolean and whether the value is a boolean
func (v LifestyleValue) Bool() (bool, bool) { return v.b, v.kind == LifestyleBool }

// MarshalJSON implements json.Marshaler
func (v LifestyleValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case LifestyleString:
		return json.Marshal(v.str)
	case LifestyleNumber:
		return json.Marshal(v.num)
	case LifestyleBool:
		return json.Marshal(v.b)
	default:
		return nil, fmt.Errorf("lifestyle value is unset")
	}
}

// UnmarshalJSON implements json.Unmarshaler
func (v *LifestyleValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty lifestyle value")
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = StringValue(s)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = BoolValue(b)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*v = NumberValue(n)
	default:
		// null, objects and arrays
		*v = LifestyleValue{}
	}
	return nil
}
