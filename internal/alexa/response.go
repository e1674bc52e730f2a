package alexa

import "strings"

const (
	speechTypeSSML = "SSML"

	cardTypeSimple     = "Simple"
	cardTypeStandard   = "Standard"
	cardTypePermission = "AskForPermissionsConsent"
)

// PermissionDeviceAddress grants read access to the device's full address
const PermissionDeviceAddress = "read::alexa:device:all:address"

// ResponseEnvelope is the skill's reply to a request
type ResponseEnvelope struct {
	Version           string         `json:"version"`
	SessionAttributes map[string]any `json:"sessionAttributes,omitempty"`
	Response          Response       `json:"response"`
}

type Response struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	Card             *Card         `json:"card,omitempty"`
	Reprompt         *Reprompt     `json:"reprompt,omitempty"`
	ShouldEndSession *bool         `json:"shouldEndSession,omitempty"`
}

type OutputSpeech struct {
	Type string `json:"type"`
	SSML string `json:"ssml"`
}

type Reprompt struct {
	OutputSpeech OutputSpeech `json:"outputSpeech"`
}

type Card struct {
	Type        string   `json:"type"`
	Title       string   `json:"title,omitempty"`
	Content     string   `json:"content,omitempty"`
	Text        string   `json:"text,omitempty"`
	Image       *Image   `json:"image,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
}

type Image struct {
	SmallImageURL string `json:"smallImageUrl"`
	LargeImageURL string `json:"largeImageUrl"`
}

func speech(ssml string) *OutputSpeech {
	return &OutputSpeech{Type: speechTypeSSML, SSML: wrapSpeak(ssml)}
}

// wrapSpeak encloses ssml in a <speak> element unless it already is
func wrapSpeak(ssml string) string {
	trimmed := strings.TrimSpace(ssml)
	if strings.HasPrefix(trimmed, "<speak>") {
		return trimmed
	}
	return "<speak>" + trimmed + "</speak>"
}

func newResponse(endSession bool) *ResponseEnvelope {
	return &ResponseEnvelope{
		Version:  "1.0",
		Response: Response{ShouldEndSession: &endSession},
	}
}

// Tell speaks and ends the session
func Tell(ssml string) *ResponseEnvelope {
	r := newResponse(true)
	r.Response.OutputSpeech = speech(ssml)
	return r
}

// Ask speaks and keeps the session open for a reply. An empty reprompt repeats the speech.
func Ask(ssml, reprompt string) *ResponseEnvelope {
	if reprompt == "" {
		reprompt = ssml
	}
	r := newResponse(false)
	r.Response.OutputSpeech = speech(ssml)
	r.Response.Reprompt = &Reprompt{OutputSpeech: *speech(reprompt)}
	return r
}

// TellWithCard speaks and shows a card. A card with an image is a Standard
// card, otherwise a Simple one.
func TellWithCard(ssml, title, text string, image *Image) *ResponseEnvelope {
	r := Tell(ssml)
	card := &Card{Title: title}
	if image != nil {
		card.Type = cardTypeStandard
		card.Text = text
		card.Image = image
	} else {
		card.Type = cardTypeSimple
		card.Content = text
	}
	r.Response.Card = card
	return r
}

// AskForPermission speaks and shows a card asking the user to grant permissions in the companion app
func AskForPermission(ssml string, permissions ...string) *ResponseEnvelope {
	r := Tell(ssml)
	r.Response.Card = &Card{
		Type:        cardTypePermission,
		Permissions: permissions,
	}
	return r
}

// Empty acknowledges a request without speech
func Empty() *ResponseEnvelope {
	return &ResponseEnvelope{Version: "1.0"}
}
