package alexa

import (
	"encoding/json"
	"testing"
)

const intentEvent = `{
  "version": "1.0",
  "session": {
    "new": true,
    "sessionId": "amzn1.echo-api.session.1",
    "application": {"applicationId": "amzn1.ask.skill.weather"},
    "user": {
      "userId": "amzn1.ask.account.user",
      "permissions": {"consentToken": "session-token"}
    }
  },
  "context": {
    "System": {
      "application": {"applicationId": "amzn1.ask.skill.weather"},
      "user": {"userId": "amzn1.ask.account.user", "permissions": {"consentToken": "context-token"}},
      "device": {"deviceId": "amzn1.ask.device.1"},
      "apiEndpoint": "https://api.eu.amazonalexa.com"
    }
  },
  "request": {
    "type": "IntentRequest",
    "requestId": "amzn1.echo-api.request.1",
    "timestamp": "2017-05-01T12:00:00Z",
    "locale": "en-US",
    "intent": {
      "name": "LocationForecastIntent",
      "slots": {
        "city": {"name": "city", "value": "new york"},
        "address": {"name": "address"}
      }
    }
  }
}`

func TestRequestEnvelope_Accessors(t *testing.T) {
	var req RequestEnvelope
	if err := json.Unmarshal([]byte(intentEvent), &req); err != nil {
		t.Fatalf("failed to decode event: %v", err)
	}

	checks := []struct {
		name string
		got  string
		want string
	}{
		{"ApplicationID", req.ApplicationID(), "amzn1.ask.skill.weather"},
		{"UserID", req.UserID(), "amzn1.ask.account.user"},
		{"DeviceID", req.DeviceID(), "amzn1.ask.device.1"},
		{"APIEndpoint", req.APIEndpoint(), "https://api.eu.amazonalexa.com"},
		{"ConsentToken", req.ConsentToken(), "session-token"},
		{"IntentName", req.IntentName(), "LocationForecastIntent"},
		{"city slot", req.SlotValue("city"), "new york"},
		{"empty address slot", req.SlotValue("address"), ""},
		{"missing slot", req.SlotValue("zip"), ""},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %q, want %q", c.name, c.got, c.want)
		}
	}
}

func TestRequestEnvelope_ConsentTokenFallback(t *testing.T) {
	req := RequestEnvelope{}
	if got := req.ConsentToken(); got != "" {
		t.Errorf("ConsentToken() = %q, want empty", got)
	}

	req.Context.System.User.Permissions = &Permissions{ConsentToken: "context-token"}
	if got := req.ConsentToken(); got != "context-token" {
		t.Errorf("ConsentToken() = %q, want context-token", got)
	}

	req.Session.User.Permissions = &Permissions{}
	if got := req.ConsentToken(); got != "context-token" {
		t.Errorf("ConsentToken() with empty session permissions = %q, want context-token", got)
	}

	req.Context.System.APIAccessToken = "api-access-token"
	if got := req.ConsentToken(); got != "context-token" {
		t.Errorf("ConsentToken() = %q, want permissions token before api access token", got)
	}

	req.Context.System.User.Permissions = &Permissions{}
	if got := req.ConsentToken(); got != "api-access-token" {
		t.Errorf("ConsentToken() = %q, want api-access-token", got)
	}
}

func TestRequestEnvelope_APIAccessTokenOnly(t *testing.T) {
	const event = `{
	  "version": "1.0",
	  "session": {"application": {"applicationId": "amzn1.ask.skill.weather"}, "user": {"userId": "user-1"}},
	  "context": {"System": {"device": {"deviceId": "device-1"}, "apiEndpoint": "https://api.amazonalexa.com", "apiAccessToken": "eyJ0eXAi"}},
	  "request": {"type": "IntentRequest", "requestId": "req-1", "intent": {"name": "EchoForecastIntent"}}
	}`

	var req RequestEnvelope
	if err := json.Unmarshal([]byte(event), &req); err != nil {
		t.Fatalf("failed to decode event: %v", err)
	}
	if got := req.ConsentToken(); got != "eyJ0eXAi" {
		t.Errorf("ConsentToken() = %q, want eyJ0eXAi", got)
	}
}

func TestRequestEnvelope_LaunchHasNoIntent(t *testing.T) {
	req := RequestEnvelope{Request: Request{Type: RequestTypeLaunch}}
	if req.IntentName() != "" || req.SlotValue("city") != "" {
		t.Error("launch request should have no intent or slots")
	}
}
