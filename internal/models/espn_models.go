package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

type LeaderboardResponse struct {
	Events []Event `json:"events"`
}

type Event struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	ShortName    string        `json:"shortName"`
	Competitions []Competition `json:"competitions"`
}

type Competition struct {
	ID          string       `json:"id"`
	Competitors []Competitor `json:"competitors"`
}

type Competitor struct {
	ID       string           `json:"id"`
	Order    int              `json:"sortOrder"`
	Athlete  *Athlete         `json:"athlete"`
	Score    FlexString       `json:"score"`
	Position FlexString       `json:"position"`
	Status   CompetitorStatus `json:"status"`
}

type Athlete struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

type CompetitorStatus struct {
	Thru     FlexString           `json:"thru"`
	Position PositionDetails      `json:"position"`
	Type     CompetitorStatusType `json:"type"`
}

type PositionDetails struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	IsTie       bool   `json:"isTie"`
}

type CompetitorStatusType struct {
	Name  string `json:"name"`
	State string `json:"state"`
}

// FlexString decodes a JSON string, number or {"displayValue": ...} object
// into its display text. ESPN has served all three for score and thru.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	case '{':
		var obj struct {
			DisplayValue *string     `json:"displayValue"`
			Value        json.Number `json:"value"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		if obj.DisplayValue != nil {
			*f = FlexString(*obj.DisplayValue)
		} else {
			*f = FlexString(obj.Value.String())
		}
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("unexpected value %s", string(data))
	}
	if i, err := n.Int64(); err == nil {
		*f = FlexString(strconv.FormatInt(i, 10))
		return nil
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string {
	return string(f)
}
