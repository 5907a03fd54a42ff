// Package contact builds the pre-filled messaging deep links for the
// floating contact widget.
package contact

import (
	"net/url"

	"petro-catalog/internal/model"
)

// Builder constructs contact links from the configured channel endpoints.
type Builder struct {
	phoneNumber  string
	chatEndpoint string
}

// Links is the set of contact channels offered to the user.
type Links struct {
	Chat      string `json:"chat"`
	ChatLabel string `json:"chatLabel"`
	Tel       string `json:"tel"`
	TelLabel  string `json:"telLabel"`
}

// NewBuilder creates a contact link builder. phoneNumber is in international
// format without the leading plus; chatEndpoint is the messaging base URL,
// e.g. "https://wa.me/".
func NewBuilder(phoneNumber, chatEndpoint string) *Builder {
	return &Builder{
		phoneNumber:  phoneNumber,
		chatEndpoint: chatEndpoint,
	}
}

// Links returns the localized contact links. The chat link carries the
// pre-filled message for the given language, URL-encoded.
func (b *Builder) Links(lang model.Language) Links {
	message := chatMessageFA
	chatLabel := "چت در واتس‌اپ"
	telLabel := "تماس تلفنی"
	if lang == model.LanguageEN {
		message = chatMessageEN
		chatLabel = "Chat on WhatsApp"
		telLabel = "Phone Call"
	}

	return Links{
		Chat:      b.chatEndpoint + b.phoneNumber + "?text=" + url.QueryEscape(message),
		ChatLabel: chatLabel,
		Tel:       "tel:+" + b.phoneNumber,
		TelLabel:  telLabel,
	}
}

const (
	chatMessageFA = "سلام 👋\nاز سایت پترو پالایش تماس می‌گیرم 🔬\nسوال یا درخواست مشاوره دارم..."
	chatMessageEN = "Hello 👋\nI'm contacting from Petro Palayesh website 🔬\nI have a question or consultation request..."
)
