package enum

// MediaType classifies a posted media item by its primary payload.
type MediaType int

const (
	MediaTypeText  MediaType = 1
	MediaTypeImage MediaType = 2
	MediaTypeVideo MediaType = 3
)

func (t MediaType) String() string {
	switch t {
	case MediaTypeText:
		return "Text"
	case MediaTypeImage:
		return "Image"
	case MediaTypeVideo:
		return "Video"
	default:
		return "Unknown"
	}
}
