package trials

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Item is one disease name returned by the service.
type Item struct {
	Code         string
	DisplayLabel string // may carry highlight markers
	RawName      string // name used to build the trial search URL
}

// Page is the answer to a search.
type Page struct {
	TotalCount int
	Items      []Item
}

// APIError is a non-success result code reported inside a 200 response.
type APIError struct {
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api result %s: %s", e.Code, e.Message)
}

// envelope mirrors the public data portal response:
//
//	{"response":{"header":{"resultCode":"00","resultMsg":"NORMAL SERVICE."},
//	 "body":{"items":{"item":[...]},"numOfRows":10,"pageNo":1,"totalCount":3}}}
type envelope struct {
	Response *struct {
		Header struct {
			ResultCode string `json:"resultCode"`
			ResultMsg  string `json:"resultMsg"`
		} `json:"header"`
		Body *struct {
			TotalCount json.Number `json:"totalCount"`
			Items      itemList    `json:"items"`
		} `json:"body"`
	} `json:"response"`
}

type wireItem struct {
	SickCd       string `json:"sickCd"`
	SickNm       string `json:"sickNm"`
	OriginSickNm string `json:"originSickNm"`
}

// itemList accepts every shape the service uses for items: an object with
// an "item" array, an object with a single "item", or "" / null when there
// are no results.
type itemList []wireItem

func (l *itemList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) || bytes.Equal(data, []byte(`""`)) {
		*l = nil
		return nil
	}

	var wrapper struct {
		Item json.RawMessage `json:"item"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return fmt.Errorf("items: %w", err)
	}

	raw := bytes.TrimSpace(wrapper.Item)
	switch {
	case len(raw) == 0, bytes.Equal(raw, []byte("null")):
		*l = nil
	case raw[0] == '[':
		var items []wireItem
		if err := json.Unmarshal(raw, &items); err != nil {
			return fmt.Errorf("item list: %w", err)
		}
		*l = items
	case raw[0] == '{':
		var item wireItem
		if err := json.Unmarshal(raw, &item); err != nil {
			return fmt.Errorf("item: %w", err)
		}
		*l = itemList{item}
	default:
		return fmt.Errorf("unexpected item value %.20q", raw)
	}
	return nil
}
