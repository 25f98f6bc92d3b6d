// file: model/request.go

package model

import (
	"fmt"
	"time"
)

// Field declarations for the three request shapes. Each parser walks its
// fields in declaration order and fails on the first violated rule, so the
// reported message is always a single rule's text.

var methodRequestFields = []field{
	{name: "account", nullable: true, check: checkChar},
	{name: "login", required: true, nullable: true, check: checkChar},
	{name: "token", required: true, nullable: true, check: checkChar},
	{name: "arguments", required: true, nullable: true, check: checkArguments},
	{name: "method", required: true, nullable: false, check: checkChar},
}

var onlineScoreFields = []field{
	{name: "first_name", nullable: true, check: checkChar},
	{name: "last_name", nullable: true, check: checkChar},
	{name: "email", nullable: true, check: checkEmail},
	{name: "phone", nullable: true, check: checkPhone},
	{name: "birthday", nullable: true, check: checkBirthday},
	{name: "gender", nullable: true, check: checkGender},
}

var clientsInterestsFields = []field{
	{name: "client_ids", required: true, check: checkClientIDs},
	{name: "date", nullable: true, check: checkDate},
}

// MethodRequest is the envelope every call arrives in.
type MethodRequest struct {
	Account   string
	Login     string
	Token     string
	Arguments map[string]interface{}
	Method    string
}

// ParseMethodRequest builds the envelope from a decoded request body. Keys
// outside the declared field set reject the request before any field
// validation runs.
func ParseMethodRequest(body map[string]interface{}) (*MethodRequest, error) {
	allowed := make(map[string]bool, len(methodRequestFields))
	for _, f := range methodRequestFields {
		allowed[f.name] = true
	}
	for key := range body {
		if !allowed[key] {
			return nil, fmt.Errorf("unknown field: %s", key)
		}
	}

	req := &MethodRequest{}
	for _, f := range methodRequestFields {
		raw, ok := body[f.name]
		v, err := f.bind(raw, ok)
		if err != nil {
			return nil, err
		}
		if v == nil {
			continue
		}
		switch f.name {
		case "account":
			req.Account = v.(string)
		case "login":
			req.Login = v.(string)
		case "token":
			req.Token = v.(string)
		case "arguments":
			req.Arguments = v.(map[string]interface{})
		case "method":
			req.Method = v.(string)
		}
	}
	return req, nil
}

// OnlineScoreRequest is the online_score payload. All six fields are
// individually optional; presence is tracked separately for the types whose
// zero value is a legal input (gender 0, for one).
type OnlineScoreRequest struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       int64
	HasPhone    bool
	Birthday    time.Time
	HasBirthday bool
	Gender      int
	HasGender   bool
}

func ParseOnlineScoreRequest(args map[string]interface{}) (*OnlineScoreRequest, error) {
	req := &OnlineScoreRequest{}
	for _, f := range onlineScoreFields {
		raw, ok := args[f.name]
		v, err := f.bind(raw, ok)
		if err != nil {
			return nil, err
		}
		if v == nil {
			continue
		}
		switch f.name {
		case "first_name":
			req.FirstName = v.(string)
		case "last_name":
			req.LastName = v.(string)
		case "email":
			req.Email = v.(string)
		case "phone":
			req.Phone = v.(int64)
			req.HasPhone = true
		case "birthday":
			req.Birthday = v.(time.Time)
			req.HasBirthday = true
		case "gender":
			req.Gender = v.(int)
			req.HasGender = true
		}
	}
	return req, nil
}

// PairFilled reports whether at least one of the declared field pairs is
// jointly present and non-empty: (phone, email), (first_name, last_name)
// or (gender, birthday).
func (r *OnlineScoreRequest) PairFilled() bool {
	if r.HasPhone && r.Email != "" {
		return true
	}
	if r.FirstName != "" && r.LastName != "" {
		return true
	}
	if r.HasGender && r.HasBirthday {
		return true
	}
	return false
}

// ClientsInterestsRequest is the clients_interests payload.
type ClientsInterestsRequest struct {
	ClientIDs []int64
	Date      string
}

func ParseClientsInterestsRequest(args map[string]interface{}) (*ClientsInterestsRequest, error) {
	req := &ClientsInterestsRequest{}
	for _, f := range clientsInterestsFields {
		raw, ok := args[f.name]
		v, err := f.bind(raw, ok)
		if err != nil {
			return nil, err
		}
		if v == nil {
			continue
		}
		switch f.name {
		case "client_ids":
			req.ClientIDs = v.([]int64)
		case "date":
			req.Date = v.(string)
		}
	}
	return req, nil
}
