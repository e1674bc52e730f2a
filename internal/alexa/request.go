package alexa

// Request types
const (
	RequestTypeLaunch       = "LaunchRequest"
	RequestTypeIntent       = "IntentRequest"
	RequestTypeSessionEnded = "SessionEndedRequest"
)

// RequestEnvelope is the event sent to a skill for every request
type RequestEnvelope struct {
	Version string  `json:"version"`
	Session Session `json:"session"`
	Context Context `json:"context"`
	Request Request `json:"request"`
}

type Session struct {
	New         bool           `json:"new"`
	SessionID   string         `json:"sessionId"`
	Application Application    `json:"application"`
	Attributes  map[string]any `json:"attributes,omitempty"`
	User        User           `json:"user"`
}

type Application struct {
	ApplicationID string `json:"applicationId"`
}

type User struct {
	UserID      string       `json:"userId"`
	AccessToken string       `json:"accessToken,omitempty"`
	Permissions *Permissions `json:"permissions,omitempty"`
}

type Permissions struct {
	ConsentToken string `json:"consentToken"`
}

type Context struct {
	System System `json:"System"`
}

type System struct {
	Application    Application `json:"application"`
	User           User        `json:"user"`
	Device         Device      `json:"device"`
	APIEndpoint    string      `json:"apiEndpoint"`
	APIAccessToken string      `json:"apiAccessToken,omitempty"`
}

type Device struct {
	DeviceID string `json:"deviceId"`
}

type Request struct {
	Type      string  `json:"type"`
	RequestID string  `json:"requestId"`
	Timestamp string  `json:"timestamp"`
	Locale    string  `json:"locale,omitempty"`
	Intent    *Intent `json:"intent,omitempty"`
	Reason    string  `json:"reason,omitempty"`
}

type Intent struct {
	Name  string          `json:"name"`
	Slots map[string]Slot `json:"slots,omitempty"`
}

type Slot struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// ApplicationID returns the skill ID the request was sent to
func (r *RequestEnvelope) ApplicationID() string {
	if id := r.Session.Application.ApplicationID; id != "" {
		return id
	}
	return r.Context.System.Application.ApplicationID
}

// UserID returns the requesting user's ID
func (r *RequestEnvelope) UserID() string {
	if id := r.Session.User.UserID; id != "" {
		return id
	}
	return r.Context.System.User.UserID
}

// DeviceID returns the requesting device's ID
func (r *RequestEnvelope) DeviceID() string {
	return r.Context.System.Device.DeviceID
}

// APIEndpoint returns the regional voice platform API endpoint for this request
func (r *RequestEnvelope) APIEndpoint() string {
	return r.Context.System.APIEndpoint
}

// ConsentToken returns the token for the device address API. Events without
// the older permissions.consentToken fall back to System.apiAccessToken, which
// the API rejects with 403 when the address permission is not granted.
func (r *RequestEnvelope) ConsentToken() string {
	if p := r.Session.User.Permissions; p != nil && p.ConsentToken != "" {
		return p.ConsentToken
	}
	if p := r.Context.System.User.Permissions; p != nil && p.ConsentToken != "" {
		return p.ConsentToken
	}
	return r.Context.System.APIAccessToken
}

// IntentName returns the intent name of an IntentRequest, empty otherwise
func (r *RequestEnvelope) IntentName() string {
	if r.Request.Intent == nil {
		return ""
	}
	return r.Request.Intent.Name
}

// SlotValue returns the spoken value of the named slot, empty when unset
func (r *RequestEnvelope) SlotValue(name string) string {
	if r.Request.Intent == nil {
		return ""
	}
	return r.Request.Intent.Slots[name].Value
}
