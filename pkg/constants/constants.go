package constants

import "time"

// API host and per-capability endpoints
const (
	// DefaultBaseURL is the OneChat API host
	DefaultBaseURL = "https://chat-api.one.th"
	// PushMessagePath serves text, template, file, webview, location and sticker messages
	PushMessagePath = "/message/api/v1/push_message"
	// PushQuickReplyPath serves quick-reply messages
	PushQuickReplyPath = "/message/api/v1/push_quickreply"
	// ImageCarouselPath serves image carousel messages
	ImageCarouselPath = "/bot-message/api/v1/image-carousel"
	// BroadcastGroupPath serves broadcast messages
	BroadcastGroupPath = "/bc_msg/api/v1/broadcast_group"
	// GetListRoomPath returns a bot's friends and groups
	GetListRoomPath = "/manage/api/v1/getlistroom"
)

// Timeouts
const (
	// DefaultConnectTimeout bounds TCP connection establishment
	DefaultConnectTimeout = 5 * time.Second
	// DefaultReadTimeout bounds the wait for response headers once connected
	DefaultReadTimeout = 15 * time.Second
)

// Request limits
const (
	// MaxBroadcastRecipients is the largest recipient list a broadcast accepts
	MaxBroadcastRecipients = 100
)

// Auth
const (
	// BearerPrefix is the auth scheme prefix stripped from tokens and re-added on requests
	BearerPrefix = "Bearer "
)

// Response status values
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
)

// Fixed failure messages
const (
	MsgUnknownError        = "Unknown error occurred."
	MsgInvalidResponse     = "Invalid response from the server."
	MsgRequestFailedPrefix = "Request failed: "
	MsgWebviewProtocol     = "Please specify a protocol (http or https) in the URL."
	MsgFilePathRequired    = "Please specify a file path."
	MsgFileOpenPrefix      = "Unable to open file: "
	MsgBroadcastOutOfRange = "parameter to out of range."
)

// Token masking
const (
	// MinSecretLengthForMasking is the minimum secret length to apply partial masking
	MinSecretLengthForMasking = 10
	// SecretMaskPrefixLength is the length of prefix to show before masking
	SecretMaskPrefixLength = 4
	// SecretMaskSuffixLength is the length of suffix to show after masking
	SecretMaskSuffixLength = 4
)

// Logging defaults
const (
	// DefaultLogLevel is used when no level is configured
	DefaultLogLevel = "info"
	// DefaultLogMaxSize is the default maximum log file size in MB
	DefaultLogMaxSize = 100
	// DefaultLogMaxBackups is the default number of rotated files to keep
	DefaultLogMaxBackups = 5
	// DefaultLogMaxAge is the default maximum number of days to retain old logs
	DefaultLogMaxAge = 30
)
