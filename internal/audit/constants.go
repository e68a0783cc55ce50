package audit

// Object layout
const (
	KeyPrefix       = "raffles"
	KeyDateLayout   = "2006/01"
	ContentTypeJSON = "application/json"
)

// Log messages
const (
	LogMsgDrawRecorded = "Raffle draw audit stored"
	LogMsgAuditorReady = "Raffle draw auditor configured"
)

// Error messages
const (
	ErrMsgMissingBucket = "audit bucket is required"
	ErrMsgLoadConfig    = "failed to load object storage config"
	ErrMsgEncodeRecord  = "failed to encode draw record"
	ErrMsgPutObject     = "failed to store draw record"
)
