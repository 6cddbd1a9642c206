package greeting_test

import (
	"testing"

	"fullstack-starter/feature/greeting"

	"github.com/stretchr/testify/assert"
)

func TestSayHello(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"Regular", "NikoRoberts", greeting.SuccessMessage, nil},
		{"Empty", "", greeting.SuccessMessage, nil},
		{"SpecialCharacters", "ü/%20<script>", greeting.SuccessMessage, nil},
		{"SentinelUppercase", "USERFAIL", greeting.SuccessMessage, nil},
		{"SentinelWithSuffix", "userfail2", greeting.SuccessMessage, nil},
		{"Sentinel", "userfail", "", greeting.ErrUserTriggered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := greeting.SayHello(tt.input)
			assert.Equal(t, tt.want, got)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRespond(t *testing.T) {
	assert.Equal(t, greeting.Outcome{Status: 250, Body: greeting.Response{Response: "hello"}}, greeting.Respond("NikoRoberts"))
	assert.Equal(t, greeting.Outcome{Status: 400, Body: greeting.Response{Response: "error"}}, greeting.Respond("userfail"))
}
