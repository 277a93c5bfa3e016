package media

import "strings"

// Kind classifies a file by its extension.
type Kind int

const (
	KindUnknown Kind = iota
	KindVideo
	KindAudio
)

func (k Kind) String() string {
	switch k {
	case KindVideo:
		return "video"
	case KindAudio:
		return "audio"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind as its lowercase name for JSON reports.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText accepts the lowercase names. Unrecognized values decode to
// KindUnknown rather than failing; the resolve phase never branches on kind.
func (k *Kind) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "video":
		*k = KindVideo
	case "audio":
		*k = KindAudio
	default:
		*k = KindUnknown
	}
	return nil
}

// The extension sets are fixed. Extensions are compared lowercase with the
// leading dot.
var videoExtensions = map[string]struct{}{
	".mp4":  {},
	".avi":  {},
	".mkv":  {},
	".mov":  {},
	".wmv":  {},
	".flv":  {},
	".webm": {},
	".m4v":  {},
	".3gp":  {},
	".ogv":  {},
	".ts":   {},
	".mts":  {},
	".m2ts": {},
}

var audioExtensions = map[string]struct{}{
	".mp3":  {},
	".wav":  {},
	".flac": {},
	".aac":  {},
	".ogg":  {},
	".wma":  {},
	".m4a":  {},
}

// KindForExtension reports the media kind for a file extension. The
// extension may be any case and must include the leading dot.
func KindForExtension(ext string) (Kind, bool) {
	ext = strings.ToLower(ext)
	if _, ok := videoExtensions[ext]; ok {
		return KindVideo, true
	}
	if _, ok := audioExtensions[ext]; ok {
		return KindAudio, true
	}
	return KindUnknown, false
}
