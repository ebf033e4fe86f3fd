package model

// NoticeKind distinguishes informational notices from error notices
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeError
)

// String returns the default dialog title for the kind
func (k NoticeKind) String() string {
	switch k {
	case NoticeError:
		return "Error"
	default:
		return "Info"
	}
}

// Notice is a user-visible message raised at the boundary of an action
type Notice struct {
	Kind    NoticeKind
	Title   string
	Message string
}

// InfoNotice builds an informational notice. An empty title falls back to "Info".
func InfoNotice(title, message string) Notice {
	if title == "" {
		title = NoticeInfo.String()
	}
	return Notice{Kind: NoticeInfo, Title: title, Message: message}
}

// ErrorNotice builds an error notice titled "Error"
func ErrorNotice(message string) Notice {
	return Notice{Kind: NoticeError, Title: NoticeError.String(), Message: message}
}

// IsError reports whether the notice reports a failure
func (n Notice) IsError() bool {
	return n.Kind == NoticeError
}
