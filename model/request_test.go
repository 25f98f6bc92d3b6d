// file: model/request_test.go

package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validBody() map[string]interface{} {
	return map[string]interface{}{
		"account":   "horns&hoofs",
		"login":     "h&f",
		"token":     "sdd",
		"arguments": map[string]interface{}{},
		"method":    "online_score",
	}
}

func TestParseMethodRequest(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		req, err := ParseMethodRequest(validBody())
		assert.NoError(t, err)
		assert.Equal(t, "horns&hoofs", req.Account)
		assert.Equal(t, "h&f", req.Login)
		assert.Equal(t, "online_score", req.Method)
		assert.NotNil(t, req.Arguments)
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		body := validBody()
		body["extra"] = "value"
		_, err := ParseMethodRequest(body)
		assert.EqualError(t, err, "unknown field: extra")
	})

	t.Run("missing login", func(t *testing.T) {
		body := validBody()
		delete(body, "login")
		_, err := ParseMethodRequest(body)
		assert.EqualError(t, err, "login is required")
	})

	t.Run("null arguments", func(t *testing.T) {
		body := validBody()
		body["arguments"] = nil
		_, err := ParseMethodRequest(body)
		assert.EqualError(t, err, "arguments is required")
	})

	t.Run("arguments wrong type", func(t *testing.T) {
		body := validBody()
		body["arguments"] = "not an object"
		_, err := ParseMethodRequest(body)
		assert.EqualError(t, err, "arguments must be an object")
	})

	t.Run("empty method", func(t *testing.T) {
		body := validBody()
		body["method"] = ""
		_, err := ParseMethodRequest(body)
		assert.EqualError(t, err, "method cannot be empty")
	})

	t.Run("empty login and token are allowed", func(t *testing.T) {
		body := validBody()
		body["login"] = ""
		body["token"] = ""
		req, err := ParseMethodRequest(body)
		assert.NoError(t, err)
		assert.Equal(t, "", req.Login)
		assert.Equal(t, "", req.Token)
	})

	t.Run("account is optional", func(t *testing.T) {
		body := validBody()
		delete(body, "account")
		req, err := ParseMethodRequest(body)
		assert.NoError(t, err)
		assert.Equal(t, "", req.Account)
	})
}

func TestParseOnlineScoreRequest(t *testing.T) {
	t.Run("phone is normalized to an integer", func(t *testing.T) {
		req, err := ParseOnlineScoreRequest(map[string]interface{}{
			"phone": "79175002040",
			"email": "a@b.com",
		})
		assert.NoError(t, err)
		assert.True(t, req.HasPhone)
		assert.Equal(t, int64(79175002040), req.Phone)
		assert.Equal(t, "a@b.com", req.Email)
	})

	t.Run("invalid field fails construction", func(t *testing.T) {
		_, err := ParseOnlineScoreRequest(map[string]interface{}{
			"phone": "89175002040",
		})
		assert.EqualError(t, err, "phone must be 11 digits starting with 7")
	})

	t.Run("birthday is parsed", func(t *testing.T) {
		req, err := ParseOnlineScoreRequest(map[string]interface{}{
			"birthday": "01.01.1990",
			"gender":   1.0,
		})
		assert.NoError(t, err)
		assert.True(t, req.HasBirthday)
		assert.Equal(t, time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), req.Birthday)
		assert.True(t, req.HasGender)
		assert.Equal(t, 1, req.Gender)
	})

	t.Run("empty payload is constructible", func(t *testing.T) {
		req, err := ParseOnlineScoreRequest(map[string]interface{}{})
		assert.NoError(t, err)
		assert.False(t, req.PairFilled())
	})
}

func TestOnlineScoreRequestPairFilled(t *testing.T) {
	cases := []struct {
		name string
		args map[string]interface{}
		want bool
	}{
		{"phone and email", map[string]interface{}{"phone": "79175002040", "email": "a@b.com"}, true},
		{"first and last name", map[string]interface{}{"first_name": "a", "last_name": "b"}, true},
		{"gender and birthday", map[string]interface{}{"gender": 1.0, "birthday": "01.01.2000"}, true},
		{"gender zero counts as present", map[string]interface{}{"gender": 0.0, "birthday": "01.01.2000"}, true},
		{"phone only", map[string]interface{}{"phone": "79175002040"}, false},
		{"email only", map[string]interface{}{"email": "a@b.com"}, false},
		{"first name only", map[string]interface{}{"first_name": "a"}, false},
		{"gender only", map[string]interface{}{"gender": 2.0}, false},
		{"empty names do not count", map[string]interface{}{"first_name": "", "last_name": ""}, false},
		{"empty email does not count", map[string]interface{}{"phone": "79175002040", "email": ""}, false},
		{"all empty", map[string]interface{}{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := ParseOnlineScoreRequest(tc.args)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, req.PairFilled())
		})
	}
}

func TestParseClientsInterestsRequest(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		req, err := ParseClientsInterestsRequest(map[string]interface{}{
			"client_ids": []interface{}{1.0, 2.0, 2.0},
			"date":       "19.07.2017",
		})
		assert.NoError(t, err)
		assert.Equal(t, []int64{1, 2, 2}, req.ClientIDs)
		assert.Equal(t, "19.07.2017", req.Date)
	})

	t.Run("date is optional", func(t *testing.T) {
		req, err := ParseClientsInterestsRequest(map[string]interface{}{
			"client_ids": []interface{}{7.0},
		})
		assert.NoError(t, err)
		assert.Equal(t, []int64{7}, req.ClientIDs)
	})

	t.Run("empty client_ids", func(t *testing.T) {
		_, err := ParseClientsInterestsRequest(map[string]interface{}{
			"client_ids": []interface{}{},
		})
		assert.EqualError(t, err, "client_ids cannot be empty")
	})

	t.Run("missing client_ids", func(t *testing.T) {
		_, err := ParseClientsInterestsRequest(map[string]interface{}{})
		assert.EqualError(t, err, "client_ids is required")
	})

	t.Run("non-integer ids", func(t *testing.T) {
		_, err := ParseClientsInterestsRequest(map[string]interface{}{
			"client_ids": []interface{}{1.0, "two"},
		})
		assert.EqualError(t, err, "client_ids must contain integers only")
	})
}
