package voice_webhook

import (
	"encoding/xml"
	"fmt"
)

// TwiML ответ провайдеру телефонии (Twilio / Exotel)
type TwiML struct {
	XMLName xml.Name      `xml:"Response"`
	Verbs   []interface{} `xml:",any"`
}

type say struct {
	XMLName xml.Name `xml:"Say"`
	Text    string   `xml:",chardata"`
}

type pause struct {
	XMLName xml.Name `xml:"Pause"`
	Length  int      `xml:"length,attr"`
}

type hangup struct {
	XMLName xml.Name `xml:"Hangup"`
}

// IncomingCall поля формы входящего звонка
type IncomingCall struct {
	CallSid    string
	From       string
	To         string
	CallStatus string
}

// VerifyResponse ответ на GET проверку webhook
type VerifyResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// StatusResponse состояние голосового канала
type StatusResponse struct {
	Status           string   `json:"status"`
	FacilitiesLoaded int      `json:"facilities_loaded"`
	FacilityIDs      []string `json:"facility_ids"`
}

func greetingTwiML(facilityName string) *TwiML {
	return &TwiML{Verbs: []interface{}{
		say{Text: fmt.Sprintf("Welcome to %s. Please hold while we connect you to our AI assistant.", facilityName)},
		pause{Length: 1},
		say{Text: "This is a demo webhook. In production, this would connect to the OpenAI Realtime API via WebSocket."},
	}}
}

func notConfiguredTwiML() *TwiML {
	return &TwiML{Verbs: []interface{}{
		say{Text: "We're sorry, this facility is not configured. Please try again later."},
		hangup{},
	}}
}

func errorTwiML() *TwiML {
	return &TwiML{Verbs: []interface{}{
		say{Text: "We're sorry, an error occurred. Please try again later."},
		hangup{},
	}}
}
