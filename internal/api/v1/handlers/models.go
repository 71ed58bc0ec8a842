package handlers

import (
	"bytes"
	"encoding/json"
	"strconv"
)

type Error struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Title  string `json:"title"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// coordinateValue accepts a JSON string or number and keeps its text for parsing.
type coordinateValue string

func (c *coordinateValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = coordinateValue(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return err
	}
	*c = coordinateValue(n.String())
	return nil
}

type CoordinateRequest struct {
	Lat coordinateValue `json:"lat" validate:"required"`
	Lon coordinateValue `json:"lon" validate:"required"`
}
