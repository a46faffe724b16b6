package onechat

// Kind identifies an outbound message variant. For push_message kinds it is
// also the wire "type" discriminator.
type Kind string

const (
	KindText          Kind = "text"
	KindTemplate      Kind = "template"
	KindFile          Kind = "file"
	KindWebView       Kind = "web"
	KindLocation      Kind = "location"
	KindSticker       Kind = "sticker"
	KindQuickReply    Kind = "quick_reply"
	KindImageCarousel Kind = "image_carousel"
)

// Element is one vendor-defined entry of a template, quick-reply or carousel list
type Element map[string]any

// Message is an outbound message. The set of implementations is closed:
// Text, Template, File, WebView, Location, Sticker, QuickReply, ImageCarousel.
type Message interface {
	Kind() Kind
	isMessage()
}

// Text is a plain text message
type Text struct {
	Message      string
	Notification string // custom push notification text, optional
}

// Template is a template message built from elements
type Template struct {
	Elements     []Element
	Notification string
}

// File uploads the file at Path
type File struct {
	Path         string
	Notification string
}

// WebView opens URL in the recipient's in-app browser
type WebView struct {
	URL          string
	Notification string
}

// Location shares a map point
type Location struct {
	Latitude     string
	Longitude    string
	Address      string
	Notification string
}

// Sticker sends a sticker by ID
type Sticker struct {
	StickerID    string
	Notification string
}

// QuickReply is a text message with tappable reply options
type QuickReply struct {
	Message      string
	Options      []Element
	Notification string
}

// ImageCarousel is a horizontally scrolling set of image cards
type ImageCarousel struct {
	Elements     []Element
	Notification string
}

func (Text) Kind() Kind          { return KindText }
func (Template) Kind() Kind      { return KindTemplate }
func (File) Kind() Kind          { return KindFile }
func (WebView) Kind() Kind       { return KindWebView }
func (Location) Kind() Kind      { return KindLocation }
func (Sticker) Kind() Kind       { return KindSticker }
func (QuickReply) Kind() Kind    { return KindQuickReply }
func (ImageCarousel) Kind() Kind { return KindImageCarousel }

func (Text) isMessage()          {}
func (Template) isMessage()      {}
func (File) isMessage()          {}
func (WebView) isMessage()       {}
func (Location) isMessage()      {}
func (Sticker) isMessage()       {}
func (QuickReply) isMessage()    {}
func (ImageCarousel) isMessage() {}

// Wire payloads

type pushHeader struct {
	To                 string `json:"to"`
	BotID              string `json:"bot_id"`
	Type               Kind   `json:"type"`
	CustomNotification string `json:"custom_notification,omitempty"`
}

type textPayload struct {
	pushHeader
	Message string `json:"message"`
}

type templatePayload struct {
	pushHeader
	Elements []Element `json:"elements"`
}

type webViewPayload struct {
	pushHeader
	URL string `json:"url"`
}

type locationPayload struct {
	pushHeader
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	Address   string `json:"address"`
}

type stickerPayload struct {
	pushHeader
	StickerID string `json:"sticker_id"`
}

type quickReplyPayload struct {
	To                 string    `json:"to"`
	BotID              string    `json:"bot_id"`
	Message            string    `json:"message"`
	QuickReply         []Element `json:"quick_reply"`
	CustomNotification string    `json:"custom_notification,omitempty"`
}

type imageCarouselPayload struct {
	To                 string    `json:"to"`
	BotID              string    `json:"bot_id"`
	Elements           []Element `json:"elements"`
	CustomNotification string    `json:"custom_notification,omitempty"`
}

type broadcastPayload struct {
	BotID   string   `json:"bot_id"`
	To      []string `json:"to"`
	Message string   `json:"message"`
}

type roomListPayload struct {
	BotID string `json:"bot_id"`
}

// valueOf unwraps pointer variants so Send accepts &Text{} as well as Text{}.
// A nil pointer becomes a nil Message.
func valueOf(msg Message) Message {
	switch m := msg.(type) {
	case *Text:
		if m != nil {
			return *m
		}
	case *Template:
		if m != nil {
			return *m
		}
	case *File:
		if m != nil {
			return *m
		}
	case *WebView:
		if m != nil {
			return *m
		}
	case *Location:
		if m != nil {
			return *m
		}
	case *Sticker:
		if m != nil {
			return *m
		}
	case *QuickReply:
		if m != nil {
			return *m
		}
	case *ImageCarousel:
		if m != nil {
			return *m
		}
	default:
		return msg
	}
	return nil
}

// elementList keeps nil lists off the wire as null
func elementList(elements []Element) []Element {
	if elements == nil {
		return []Element{}
	}
	return elements
}

func newPushHeader(to, botID string, kind Kind, notification string) pushHeader {
	return pushHeader{To: to, BotID: botID, Type: kind, CustomNotification: notification}
}

// fileForm is the multipart field set that accompanies a file upload
func fileForm(to, botID, notification string) map[string]string {
	form := map[string]string{
		"to":     to,
		"bot_id": botID,
		"type":   string(KindFile),
	}
	if notification != "" {
		form["custom_notification"] = notification
	}
	return form
}
