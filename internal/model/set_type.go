package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// SetType is the extra bedding prepared for a room.
type SetType uint8

const (
	SetTypeUnknown SetType = iota
	SetTypeNone
	SetTypeSofa
	SetTypeFuton
	SetTypeFutonOneSet
	SetTypeFutonTwoSets
	SetTypeSofaAndFuton
)

// DefaultSetType is stored when a write omits set_type.
const DefaultSetType = SetTypeNone

func SetTypes() []SetType {
	return []SetType{
		SetTypeNone,
		SetTypeSofa,
		SetTypeFuton,
		SetTypeFutonOneSet,
		SetTypeFutonTwoSets,
		SetTypeSofaAndFuton,
	}
}

func (t SetType) String() string {
	switch t {
	case SetTypeNone:
		return "none"
	case SetTypeSofa:
		return "sofa"
	case SetTypeFuton:
		return "futon"
	case SetTypeFutonOneSet:
		return "futon-one-set"
	case SetTypeFutonTwoSets:
		return "futon-two-sets"
	case SetTypeSofaAndFuton:
		return "sofa-and-futon"
	case SetTypeUnknown:
	}
	return ""
}

func (t SetType) Label() string {
	switch t {
	case SetTypeNone:
		return "なし"
	case SetTypeSofa:
		return "ソファ"
	case SetTypeFuton:
		return "和布団"
	case SetTypeFutonOneSet:
		return "和布団1組"
	case SetTypeFutonTwoSets:
		return "和布団2組"
	case SetTypeSofaAndFuton:
		return "ソファ・和布団"
	case SetTypeUnknown:
	}
	return ""
}

func (t SetType) Valid() bool { return t.String() != "" }

func ParseSetType(raw string) (SetType, bool) {
	v := strings.TrimSpace(raw)
	for _, t := range SetTypes() {
		if v == t.String() || v == t.Label() {
			return t, true
		}
	}
	return SetTypeUnknown, false
}

func (t SetType) MarshalJSON() ([]byte, error) {
	if !t.Valid() {
		return json.Marshal(DefaultSetType.String())
	}
	return json.Marshal(t.String())
}

func (t *SetType) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	v, ok := ParseSetType(raw)
	if !ok {
		return fmt.Errorf("invalid set_type: %s", raw)
	}
	*t = v
	return nil
}

func (t *SetType) Scan(src any) error {
	if src == nil {
		*t = DefaultSetType
		return nil
	}
	raw, err := scanString(src, "set_type")
	if err != nil {
		return err
	}
	v, ok := ParseSetType(raw)
	if !ok {
		return fmt.Errorf("invalid set_type in store: %q", raw)
	}
	*t = v
	return nil
}

func (t SetType) Value() (driver.Value, error) {
	if !t.Valid() {
		return DefaultSetType.String(), nil
	}
	return t.String(), nil
}

// scanString converts the textual column types drivers hand back.
func scanString(src any, column string) (string, error) {
	switch v := src.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case nil:
		return "", fmt.Errorf("%s is NULL", column)
	}
	return "", fmt.Errorf("unsupported %s column type %T", column, src)
}
