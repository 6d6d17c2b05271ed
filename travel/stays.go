package travel

import (
	"encoding/json"
	"fmt"
	"io"
)

// Stay is an extracted hotel stay before geocoding: the importer resolves
// its name into a full Hotel record.
type Stay struct {
	Date   string // check-in date as exported; may be empty
	Name   string
	Nights int
}

// stayExport mirrors the loyalty account activity export.
type stayExport struct {
	Data struct {
		Customer struct {
			LoyaltyInformation struct {
				AccountActivity struct {
					Edges []stayEdge `json:"edges"`
				} `json:"accountActivity"`
			} `json:"loyaltyInformation"`
		} `json:"customer"`
	} `json:"data"`
}

type stayEdge struct {
	Node stayNode `json:"node"`
}

type stayNode struct {
	Type struct {
		Code string `json:"code"`
	} `json:"type"`
	StartDate   string         `json:"startDate"`
	EndDate     string         `json:"endDate"`
	Description string         `json:"description"`
	Properties  []stayProperty `json:"properties"`
}

type stayProperty struct {
	BasicInformation struct {
		Name string `json:"name"`
	} `json:"basicInformation"`
}

// StaysFromActivity parses a loyalty account activity export and returns
// the STAY nodes as extracted stays. Nights is the whole-day difference
// between end and start dates, clamped to at least 1; missing or
// unparsable dates also default to 1 night rather than dropping the stay.
// The name comes from the first property's display name, falling back to
// the node description.
func StaysFromActivity(r io.Reader) ([]Stay, error) {
	var export stayExport
	if err := json.NewDecoder(r).Decode(&export); err != nil {
		return nil, fmt.Errorf("travel: decoding stay activity export: %w", err)
	}

	var stays []Stay
	for _, edge := range export.Data.Customer.LoyaltyInformation.AccountActivity.Edges {
		node := edge.Node
		if node.Type.Code != "STAY" {
			continue
		}

		name := node.Description
		if len(node.Properties) > 0 && node.Properties[0].BasicInformation.Name != "" {
			name = node.Properties[0].BasicInformation.Name
		}

		stays = append(stays, Stay{
			Date:   node.StartDate,
			Name:   name,
			Nights: stayNights(node.StartDate, node.EndDate),
		})
	}
	return stays, nil
}

// stayNights computes the stay length in whole nights, never less than 1.
func stayNights(start, end string) int {
	s, okStart := ParseDate(start)
	e, okEnd := ParseDate(end)
	if !okStart || !okEnd {
		return 1
	}
	nights := int(e.Sub(s).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}
